package models

import (
	"fmt"
	"time"
)

// ScoringResult is the outcome of grading one conversation.
type ScoringResult struct {
	Score               int       `json:"score"`
	Feedback            []string  `json:"feedback"`
	AreasForImprovement []string  `json:"areas_for_improvement"`
	Profile             string    `json:"profile"`
	Timestamp           time.Time `json:"timestamp"`
}

// LatestScore keeps the most recent score a user earned against a persona.
type LatestScore struct {
	ID        string    `gorm:"type:text;primary_key" json:"id"`
	UserID    string    `gorm:"type:text;index;not null" json:"user_id"`
	ProfileID string    `gorm:"type:text;not null" json:"profile_id"`
	Profile   string    `gorm:"type:text" json:"profile"`
	Category  Category  `gorm:"type:text" json:"category"`
	Score     int       `gorm:"not null" json:"score"`
	ScoredAt  time.Time `json:"scored_at"`
}

func (LatestScore) TableName() string {
	return "latest_scores"
}

func LatestScoreID(userID, profileID string) string {
	return fmt.Sprintf("%s_%s", userID, profileID)
}
