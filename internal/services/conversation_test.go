package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
)

type conversationFixture struct {
	chats  *memChatRepo
	scores *memScoreRepo
	svc    ConversationService
}

func newConversationFixture(gen TextGenerator) conversationFixture {
	chats := newMemChatRepo()
	scores := newMemScoreRepo()
	profiles := NewProfileService(newMemProfileRepo())
	return conversationFixture{
		chats:  chats,
		scores: scores,
		svc:    NewConversationService(chats, scores, profiles, NewScorerService(gen, fastRetry)),
	}
}

func TestSubmitChatSnapshotsProfile(t *testing.T) {
	f := newConversationFixture(nil)

	chat, err := f.svc.SubmitChat(context.Background(), SubmitChatInput{
		UserID:    "u1",
		Username:  "sam",
		ProfileID: "jake",
		Turns: []Turn{
			{Role: "user", Text: "hi"},
			{Role: "assistant", Transcript: "hey"},
		},
		Transcript: "ignored when turns are present",
	})
	require.NoError(t, err)

	require.Equal(t, models.StatusQueued, chat.Status)
	require.Equal(t, "user: hi\nassistant: hey", chat.Transcript)
	require.Equal(t, "Jake", chat.ProfileName)
	require.Equal(t, models.CategoryDating, chat.Category)
	require.Equal(t, "jake", chat.ProfileSnapshot.ID)

	stored, err := f.chats.FindByID(chat.ID)
	require.NoError(t, err)
	require.Equal(t, chat.Transcript, stored.Transcript)
}

func TestSubmitChatUnknownProfile(t *testing.T) {
	f := newConversationFixture(nil)

	_, err := f.svc.SubmitChat(context.Background(), SubmitChatInput{UserID: "u1", ProfileID: "nobody"})
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestScoreChatCompletesAndSavesLatestScore(t *testing.T) {
	f := newConversationFixture(replyWith("Overall Score: 85\nOverall Feedback:\n- Good energy\nAreas for Improvement:\n- Ask more questions"))
	chat, err := f.svc.SubmitChat(context.Background(), SubmitChatInput{UserID: "u1", ProfileID: "jake", Transcript: "user: hi"})
	require.NoError(t, err)

	require.NoError(t, f.svc.ScoreChat(context.Background(), chat.ID))

	stored, err := f.svc.GetChat(chat.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, stored.Status)
	require.NotNil(t, stored.Result())
	require.Equal(t, 68, stored.Result().Score)
	require.Equal(t, []string{"Good energy"}, stored.Feedback)

	latest, err := f.scores.FindByUser("u1")
	require.NoError(t, err)
	require.Len(t, latest, 1)
	require.Equal(t, "u1_jake", latest[0].ID)
	require.Equal(t, 68, latest[0].Score)
}

func TestScoreChatFailureMarksChatFailed(t *testing.T) {
	f := newConversationFixture(nil)
	chat, err := f.svc.SubmitChat(context.Background(), SubmitChatInput{UserID: "u1", ProfileID: "jake", Transcript: "user: hi"})
	require.NoError(t, err)

	err = f.svc.ScoreChat(context.Background(), chat.ID)
	require.ErrorIs(t, err, ErrClientUnavailable)

	stored, _ := f.chats.FindByID(chat.ID)
	require.Equal(t, models.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	require.Equal(t, ScoringFailedNotice, *stored.ErrorMessage)
	require.NotNil(t, stored.FailureCause)
	require.Contains(t, *stored.FailureCause, ErrClientUnavailable.Error())
	require.Nil(t, stored.Result())

	latest, _ := f.scores.FindByUser("u1")
	require.Empty(t, latest)
}

func TestScoreChatOnlyOnce(t *testing.T) {
	f := newConversationFixture(replyWith("Overall Score: 50"))
	chat, err := f.svc.SubmitChat(context.Background(), SubmitChatInput{UserID: "u1", ProfileID: "jake", Transcript: "user: hi"})
	require.NoError(t, err)

	require.NoError(t, f.svc.ScoreChat(context.Background(), chat.ID))
	require.ErrorIs(t, f.svc.ScoreChat(context.Background(), chat.ID), ErrChatNotClaimable)
	require.ErrorIs(t, f.svc.ScoreChat(context.Background(), uuid.New()), ErrChatNotClaimable)
}

func TestScoreTranscriptPersistsNothing(t *testing.T) {
	f := newConversationFixture(replyWith("Overall Score: 30"))

	result, err := f.svc.ScoreTranscript(context.Background(), "jake", "user: hi")
	require.NoError(t, err)
	require.Equal(t, 30, result.Score)
	require.Equal(t, "Jake", result.Profile)

	scored, _ := f.chats.FindScored(repositories.ChatFilter{})
	require.Empty(t, scored)
}
