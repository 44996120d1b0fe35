package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TiGG-TV/Realtime/internal/models"
)

var ErrBriefNotFound = errors.New("brief not found")

type BriefRepository interface {
	Create(brief *models.Brief) error
	FindByID(id uuid.UUID) (*models.Brief, error)
}

type briefRepository struct {
	db *gorm.DB
}

func NewBriefRepository(db *gorm.DB) BriefRepository {
	return &briefRepository{db: db}
}

func (r *briefRepository) Create(brief *models.Brief) error {
	if err := r.db.Create(brief).Error; err != nil {
		return fmt.Errorf("failed to create brief: %w", err)
	}
	return nil
}

func (r *briefRepository) FindByID(id uuid.UUID) (*models.Brief, error) {
	var brief models.Brief
	if err := r.db.Where("id = ?", id).First(&brief).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBriefNotFound
		}
		return nil, fmt.Errorf("failed to find brief: %w", err)
	}
	return &brief, nil
}
