package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TiGG-TV/Realtime/internal/models"
)

type ScoreRepository interface {
	Upsert(score *models.LatestScore) error
	FindByUser(userID string) ([]models.LatestScore, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

// Upsert overwrites the previous score for the same user and profile.
func (r *scoreRepository) Upsert(score *models.LatestScore) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(score).Error
	if err != nil {
		return fmt.Errorf("failed to save latest score: %w", err)
	}
	return nil
}

func (r *scoreRepository) FindByUser(userID string) ([]models.LatestScore, error) {
	var scores []models.LatestScore
	if err := r.db.Where("user_id = ?", userID).Order("scored_at DESC").Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to find scores: %w", err)
	}
	return scores, nil
}
