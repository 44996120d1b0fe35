package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/TiGG-TV/Realtime/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id string) (*models.Profile, error)
	FindByOwner(userID string, category models.Category) ([]models.Profile, error)
	FindAll() ([]models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *models.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) FindByOwner(userID string, category models.Category) ([]models.Profile, error) {
	query := r.db.Where("user_id = ?", userID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var profiles []models.Profile
	if err := query.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to find profiles: %w", err)
	}
	return profiles, nil
}

func (r *profileRepository) FindAll() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to find profiles: %w", err)
	}
	return profiles, nil
}
