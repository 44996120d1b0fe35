package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
)

// ScoringFailedNotice is stored on chats whose scoring failed.
const ScoringFailedNotice = "We couldn't score this conversation. Please try again later."

// ErrChatNotClaimable means the chat was already picked up or is finished.
var ErrChatNotClaimable = errors.New("chat is not queued")

type SubmitChatInput struct {
	UserID     string
	Username   string
	ProfileID  string
	Transcript string
	Turns      []Turn
}

type ConversationService interface {
	SubmitChat(ctx context.Context, in SubmitChatInput) (*models.Chat, error)
	ScoreChat(ctx context.Context, chatID uuid.UUID) error
	ScoreTranscript(ctx context.Context, profileID, transcript string) (*models.ScoringResult, error)
	GetChat(chatID uuid.UUID) (*models.Chat, error)
	ListUserChats(userID string, limit int) ([]models.Chat, error)
}

type conversationService struct {
	chatRepo  repositories.ChatRepository
	scoreRepo repositories.ScoreRepository
	profiles  ProfileService
	scorer    ScorerService
}

func NewConversationService(
	chatRepo repositories.ChatRepository,
	scoreRepo repositories.ScoreRepository,
	profiles ProfileService,
	scorer ScorerService,
) ConversationService {
	return &conversationService{
		chatRepo:  chatRepo,
		scoreRepo: scoreRepo,
		profiles:  profiles,
		scorer:    scorer,
	}
}

// SubmitChat stores a finished conversation as queued. Raw turns take
// precedence over a preformatted transcript.
func (s *conversationService) SubmitChat(ctx context.Context, in SubmitChatInput) (*models.Chat, error) {
	profile, err := s.profiles.Get(in.ProfileID)
	if err != nil {
		return nil, err
	}

	transcript := in.Transcript
	if len(in.Turns) > 0 {
		transcript = FormatTranscript(in.Turns)
	}

	chat := &models.Chat{
		ID:              uuid.New(),
		UserID:          in.UserID,
		Username:        in.Username,
		ProfileID:       profile.ID,
		ProfileName:     profile.Name,
		Description:     profile.Description,
		Category:        profile.Category,
		ImageURL:        profile.ImageURL,
		ProfileSnapshot: profile.Clone(),
		Transcript:      transcript,
		Status:          models.StatusQueued,
	}

	if err := s.chatRepo.Create(chat); err != nil {
		return nil, err
	}

	log.Printf("💬 Chat %s stored for user %s with %q\n", chat.ID, chat.UserID, chat.ProfileName)
	return chat, nil
}

// ScoreChat grades one queued chat. The chat ends up either completed with
// its result and latest score saved, or failed with ScoringFailedNotice.
func (s *conversationService) ScoreChat(ctx context.Context, chatID uuid.UUID) error {
	claimed, err := s.chatRepo.Claim(chatID)
	if err != nil {
		return err
	}
	if !claimed {
		return fmt.Errorf("%w: %s", ErrChatNotClaimable, chatID)
	}

	log.Printf("🔄 Scoring chat %s\n", chatID)

	chat, err := s.chatRepo.FindByID(chatID)
	if err != nil {
		return s.fail(chatID, err)
	}

	result, err := s.scorer.ScoreConversation(ctx, chat.ProfileSnapshot, chat.Transcript)
	if err != nil {
		return s.fail(chatID, err)
	}

	if err := s.chatRepo.UpdateResult(chatID, result); err != nil {
		return s.fail(chatID, err)
	}

	latest := &models.LatestScore{
		ID:        models.LatestScoreID(chat.UserID, chat.ProfileID),
		UserID:    chat.UserID,
		ProfileID: chat.ProfileID,
		Profile:   chat.ProfileName,
		Category:  chat.Category,
		Score:     result.Score,
		ScoredAt:  result.Timestamp,
	}
	if err := s.scoreRepo.Upsert(latest); err != nil {
		log.Printf("⚠️  Chat %s scored but latest score not saved: %v\n", chatID, err)
	}

	log.Printf("✅ Chat %s scored %d\n", chatID, result.Score)
	return nil
}

func (s *conversationService) fail(chatID uuid.UUID, cause error) error {
	log.Printf("❌ Chat %s failed: %v\n", chatID, cause)
	if err := s.chatRepo.UpdateError(chatID, ScoringFailedNotice, cause.Error()); err != nil {
		log.Printf("❌ Failed to record error for chat %s: %v\n", chatID, err)
	}
	return fmt.Errorf("failed to score chat %s: %w", chatID, cause)
}

// ScoreTranscript grades without persisting anything.
func (s *conversationService) ScoreTranscript(ctx context.Context, profileID, transcript string) (*models.ScoringResult, error) {
	profile, err := s.profiles.Get(profileID)
	if err != nil {
		return nil, err
	}
	return s.scorer.ScoreConversation(ctx, *profile, transcript)
}

func (s *conversationService) GetChat(chatID uuid.UUID) (*models.Chat, error) {
	return s.chatRepo.FindByID(chatID)
}

func (s *conversationService) ListUserChats(userID string, limit int) ([]models.Chat, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.chatRepo.FindRecentByUser(userID, limit)
}
