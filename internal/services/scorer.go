package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/TiGG-TV/Realtime/internal/models"
)

const (
	ScoringTemperature float32 = 0.7
	ScoringMaxTokens           = 1000
)

type ScorerService interface {
	ScoreConversation(ctx context.Context, profile models.Profile, conversation string) (*models.ScoringResult, error)
}

type scorerService struct {
	llm           TextGenerator
	promptBuilder *PromptBuilder
	retry         RetryPolicy
	now           func() time.Time
}

// NewScorerService wires a grading backend. A nil llm is allowed; every
// call then fails with ErrClientUnavailable without touching the network.
func NewScorerService(llm TextGenerator, retry RetryPolicy) ScorerService {
	return &scorerService{
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
		retry:         retry,
		now:           time.Now,
	}
}

func (s *scorerService) ScoreConversation(ctx context.Context, profile models.Profile, conversation string) (*models.ScoringResult, error) {
	if s.llm == nil {
		return nil, ErrClientUnavailable
	}

	prompt := s.promptBuilder.BuildScoringPrompt(profile, conversation)
	log.Printf("📝 Scoring prompt for %q: %d characters", profile.Name, len(prompt))

	response, err := GenerateTextWithRetry(ctx, s.llm, prompt, GenerationOptions{
		Temperature: ScoringTemperature,
		MaxTokens:   ScoringMaxTokens,
	}, s.retry)
	if err != nil {
		log.Printf("❌ Scoring failed for %q: %v", profile.Name, err)
		return nil, fmt.Errorf("failed to score conversation: %w", err)
	}

	parsed := ParseScoringResponse(response)
	log.Printf("✅ Scored conversation with %q: %d", profile.Name, parsed.Score)

	return &models.ScoringResult{
		Score:               parsed.Score,
		Feedback:            parsed.Feedback,
		AreasForImprovement: parsed.AreasForImprovement,
		Profile:             profile.Name,
		Timestamp:           s.now().UTC(),
	}, nil
}
