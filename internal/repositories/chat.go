package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/TiGG-TV/Realtime/internal/models"
)

var ErrChatNotFound = errors.New("chat not found")

type ChatRepository interface {
	Create(chat *models.Chat) error
	FindByID(id uuid.UUID) (*models.Chat, error)
	Claim(id uuid.UUID) (bool, error)
	UpdateResult(id uuid.UUID, result *models.ScoringResult) error
	UpdateError(id uuid.UUID, notice, cause string) error
	FindPendingJobs(limit int) ([]models.Chat, error)
	RequeueStale(before time.Time) (int64, error)
	FindRecentByUser(userID string, limit int) ([]models.Chat, error)
	FindScored(filter ChatFilter) ([]models.Chat, error)
}

// ChatFilter narrows completed chats. Empty fields match everything.
type ChatFilter struct {
	UserID    string
	Category  models.Category
	ProfileID string
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(chat *models.Chat) error {
	if err := r.db.Create(chat).Error; err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

func (r *chatRepository) FindByID(id uuid.UUID) (*models.Chat, error) {
	var chat models.Chat
	if err := r.db.Where("id = ?", id).First(&chat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to find chat: %w", err)
	}
	return &chat, nil
}

// Claim moves a queued chat to processing. It reports false when another
// worker got there first or the chat is no longer queued.
func (r *chatRepository) Claim(id uuid.UUID) (bool, error) {
	result := r.db.Model(&models.Chat{}).
		Where("id = ? AND status = ?", id, models.StatusQueued).
		Updates(map[string]interface{}{
			"status":     models.StatusProcessing,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to claim chat: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (r *chatRepository) UpdateResult(id uuid.UUID, res *models.ScoringResult) error {
	chat := models.Chat{
		Status:              models.StatusCompleted,
		Score:               lo.ToPtr(res.Score),
		Feedback:            res.Feedback,
		AreasForImprovement: res.AreasForImprovement,
		ScoredAt:            lo.ToPtr(res.Timestamp),
	}

	result := r.db.Model(&models.Chat{}).
		Where("id = ?", id).
		Select("status", "score", "feedback", "areas_for_improvement", "scored_at", "updated_at").
		Updates(&chat)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}

	return nil
}

// UpdateError marks a chat failed. notice is shown to the user, cause is kept
// for operators only.
func (r *chatRepository) UpdateError(id uuid.UUID, notice, cause string) error {
	result := r.db.Model(&models.Chat{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": notice,
			"failure_cause": cause,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}

	return nil
}

func (r *chatRepository) FindPendingJobs(limit int) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&chats).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return chats, nil
}

// RequeueStale puts chats stuck in processing since before the cutoff back in
// the queue. A process that died mid-scoring leaves such rows behind.
func (r *chatRepository) RequeueStale(before time.Time) (int64, error) {
	result := r.db.Model(&models.Chat{}).
		Where("status = ? AND updated_at < ?", models.StatusProcessing, before).
		Updates(map[string]interface{}{
			"status":     models.StatusQueued,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to requeue stale chats: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *chatRepository) FindRecentByUser(userID string, limit int) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&chats).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find chats: %w", err)
	}

	return chats, nil
}

func (r *chatRepository) FindScored(filter ChatFilter) ([]models.Chat, error) {
	query := r.db.Where("status = ? AND score IS NOT NULL", models.StatusCompleted)
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ProfileID != "" {
		query = query.Where("profile_id = ?", filter.ProfileID)
	}

	var chats []models.Chat
	if err := query.Order("scored_at ASC").Find(&chats).Error; err != nil {
		return nil, fmt.Errorf("failed to find scored chats: %w", err)
	}

	return chats, nil
}
