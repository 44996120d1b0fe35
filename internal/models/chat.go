package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatStatus string

const (
	StatusQueued     ChatStatus = "queued"
	StatusProcessing ChatStatus = "processing"
	StatusCompleted  ChatStatus = "completed"
	StatusFailed     ChatStatus = "failed"
)

// Chat is a finished practice conversation waiting for, or carrying, its score.
// The profile is snapshotted so later edits never change what was graded.
type Chat struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID              string     `gorm:"type:text;index;not null" json:"user_id"`
	Username            string     `gorm:"type:text" json:"username"`
	ProfileID           string     `gorm:"type:text;index;not null" json:"profile_id"`
	ProfileName         string     `gorm:"type:text" json:"name"`
	Description         string     `gorm:"type:text" json:"description"`
	Category            Category   `gorm:"type:text;index" json:"category"`
	ImageURL            string     `gorm:"type:text" json:"image_url"`
	ProfileSnapshot     Profile    `gorm:"serializer:json;type:jsonb" json:"-"`
	Transcript          string     `gorm:"type:text;not null" json:"transcript"`
	Status              ChatStatus `gorm:"not null;default:'queued';index" json:"status"`
	Score               *int       `json:"score,omitempty"`
	Feedback            []string   `gorm:"serializer:json;type:jsonb" json:"feedback,omitempty"`
	AreasForImprovement []string   `gorm:"serializer:json;type:jsonb" json:"areas_for_improvement,omitempty"`
	ScoredAt            *time.Time `json:"scored_at,omitempty"`
	ErrorMessage        *string    `gorm:"type:text" json:"error_message,omitempty"`
	FailureCause        *string    `gorm:"type:text" json:"-"`
	CreatedAt           time.Time  `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Chat) TableName() string {
	return "chats"
}

// Result returns the stored scoring outcome, or nil when the chat is not completed.
func (c Chat) Result() *ScoringResult {
	if c.Status != StatusCompleted || c.Score == nil {
		return nil
	}

	result := &ScoringResult{
		Score:               *c.Score,
		Feedback:            c.Feedback,
		AreasForImprovement: c.AreasForImprovement,
		Profile:             c.ProfileName,
	}
	if c.ScoredAt != nil {
		result.Timestamp = *c.ScoredAt
	}
	return result
}
