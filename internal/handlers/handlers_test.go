package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TiGG-TV/Realtime/internal/catalog"
	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
	"github.com/TiGG-TV/Realtime/internal/services"
)

type fakeConversation struct {
	submitted []services.SubmitChatInput
	chats     map[uuid.UUID]*models.Chat
	scoreErr  error
}

func (f *fakeConversation) SubmitChat(_ context.Context, in services.SubmitChatInput) (*models.Chat, error) {
	if _, ok := catalog.ByID(in.ProfileID); !ok {
		return nil, fmt.Errorf("%w: %s", services.ErrProfileNotFound, in.ProfileID)
	}
	f.submitted = append(f.submitted, in)
	chat := &models.Chat{ID: uuid.New(), UserID: in.UserID, ProfileID: in.ProfileID, Status: models.StatusQueued}
	f.chats[chat.ID] = chat
	return chat, nil
}

func (f *fakeConversation) ScoreChat(context.Context, uuid.UUID) error { return nil }

func (f *fakeConversation) ScoreTranscript(_ context.Context, profileID, transcript string) (*models.ScoringResult, error) {
	if f.scoreErr != nil {
		return nil, f.scoreErr
	}
	return &models.ScoringResult{Score: len(transcript), Profile: profileID}, nil
}

func (f *fakeConversation) GetChat(id uuid.UUID) (*models.Chat, error) {
	c, ok := f.chats[id]
	if !ok {
		return nil, repositories.ErrChatNotFound
	}
	return c, nil
}

func (f *fakeConversation) ListUserChats(string, int) ([]models.Chat, error) { return nil, nil }

type fakeWorker struct {
	enqueued []uuid.UUID
}

func (w *fakeWorker) Start(context.Context)    {}
func (w *fakeWorker) Stop()                    {}
func (w *fakeWorker) EnqueueChat(id uuid.UUID) { w.enqueued = append(w.enqueued, id) }

type fakeGenerator struct{}

func (fakeGenerator) GenerateProfile(_ context.Context, in services.GenerateProfileInput) (*models.Profile, error) {
	if !in.Category.IsProfileCategory() {
		return nil, models.ErrInvalidProfile
	}
	return &models.Profile{ID: "gen", UserID: in.UserID, Category: in.Category, Name: "Gen"}, nil
}

func (fakeGenerator) EnhanceText(_ context.Context, _ models.Category, _, text string, _ services.EnhanceField) (string, error) {
	return strings.ToUpper(text), nil
}

type fakeProfileRepo struct{}

func (fakeProfileRepo) Create(*models.Profile) error { return nil }
func (fakeProfileRepo) FindByID(string) (*models.Profile, error) {
	return nil, repositories.ErrProfileNotFound
}
func (fakeProfileRepo) FindByOwner(string, models.Category) ([]models.Profile, error) {
	return nil, nil
}
func (fakeProfileRepo) FindAll() ([]models.Profile, error) { return nil, nil }

type testServer struct {
	app          *fiber.App
	conversation *fakeConversation
	worker       *fakeWorker
}

func newTestServer() *testServer {
	conversation := &fakeConversation{chats: map[uuid.UUID]*models.Chat{}}
	worker := &fakeWorker{}
	profiles := services.NewProfileService(fakeProfileRepo{})

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app.Group("/api/v1"), Handlers{
		Chat:     NewChatHandler(conversation, worker),
		Profile:  NewProfileHandler(profiles, services.NewProfileSearchService(nil, nil, profiles), fakeGenerator{}),
		Brief:    NewBriefHandler(nil, services.NewStorageService(""), 1024),
		Progress: NewProgressHandler(nil),
	})

	return &testServer{app: app, conversation: conversation, worker: worker}
}

func (s *testServer) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	code, body := newTestServer().do(t, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "healthy", body["status"])
}

func TestCategories(t *testing.T) {
	code, body := newTestServer().do(t, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["categories"], len(services.RubricCategories()))
}

func TestSubmitChat(t *testing.T) {
	s := newTestServer()

	code, body := s.do(t, http.MethodPost, "/api/v1/chats", `{"user_id":"u1","profile_id":"jake","turns":[{"role":"user","text":"hi"}]}`)
	require.Equal(t, http.StatusAccepted, code)
	require.Equal(t, "queued", body["status"])
	require.Len(t, s.worker.enqueued, 1)
	require.Equal(t, body["id"], s.worker.enqueued[0].String())
	require.Equal(t, "hi", s.conversation.submitted[0].Turns[0].Text)
}

func TestSubmitChatValidation(t *testing.T) {
	s := newTestServer()

	cases := map[string]string{
		"missing user":       `{"profile_id":"jake","transcript":"user: hi"}`,
		"missing transcript": `{"user_id":"u1","profile_id":"jake"}`,
		"bad role":           `{"user_id":"u1","profile_id":"jake","turns":[{"role":"narrator","text":"hi"}]}`,
		"not json":           `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			code, out := s.do(t, http.MethodPost, "/api/v1/chats", body)
			require.Equal(t, http.StatusBadRequest, code)
			require.NotEmpty(t, out["error"])
		})
	}
	require.Empty(t, s.worker.enqueued)
}

func TestSubmitChatUnknownProfile(t *testing.T) {
	code, _ := newTestServer().do(t, http.MethodPost, "/api/v1/chats", `{"user_id":"u1","profile_id":"nobody","transcript":"user: hi"}`)
	require.Equal(t, http.StatusNotFound, code)
}

func TestGetChat(t *testing.T) {
	s := newTestServer()
	notice := "We couldn't score this conversation."
	chat := &models.Chat{ID: uuid.New(), ProfileID: "jake", ProfileName: "Jake", Status: models.StatusFailed, ErrorMessage: &notice}
	s.conversation.chats[chat.ID] = chat

	code, body := s.do(t, http.MethodGet, "/api/v1/chats/"+chat.ID.String(), "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "failed", body["status"])
	require.Equal(t, notice, body["error_message"])
	require.Nil(t, body["result"])

	code, _ = s.do(t, http.MethodGet, "/api/v1/chats/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodGet, "/api/v1/chats/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, code)
}

func TestScoreMapsErrors(t *testing.T) {
	s := newTestServer()

	code, body := s.do(t, http.MethodPost, "/api/v1/score", `{"profile_id":"jake","transcript":"user: hi"}`)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, len("user: hi"), body["score"])

	s.conversation.scoreErr = fmt.Errorf("failed to score conversation: %w: api error 401: invalid key", services.ErrClientUnavailable)
	code, body = s.do(t, http.MethodPost, "/api/v1/score", `{"profile_id":"jake","transcript":"user: hi"}`)
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Equal(t, services.ScoringFailedNotice, body["error"])
	require.EqualValues(t, http.StatusServiceUnavailable, body["code"])

	s.conversation.scoreErr = services.ErrEmptyCompletion
	code, body = s.do(t, http.MethodPost, "/api/v1/score", `{"profile_id":"jake","transcript":"user: hi"}`)
	require.Equal(t, http.StatusBadGateway, code)
	require.Equal(t, services.ScoringFailedNotice, body["error"])

	s.conversation.scoreErr = fmt.Errorf("%w: nobody", services.ErrProfileNotFound)
	code, body = s.do(t, http.MethodPost, "/api/v1/score", `{"profile_id":"nobody","transcript":"user: hi"}`)
	require.Equal(t, http.StatusNotFound, code)
	require.Contains(t, body["error"], "nobody")
}

func TestProfiles(t *testing.T) {
	s := newTestServer()

	code, body := s.do(t, http.MethodGet, "/api/v1/profiles?category=Dating", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["profiles"], len(catalog.ByCategory(models.CategoryDating)))

	code, _ = s.do(t, http.MethodGet, "/api/v1/profiles?category=Karaoke", "")
	require.Equal(t, http.StatusBadRequest, code)

	code, body = s.do(t, http.MethodGet, "/api/v1/profiles/jake", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Jake", body["name"])

	code, _ = s.do(t, http.MethodGet, "/api/v1/profiles/nobody", "")
	require.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(t, http.MethodGet, "/api/v1/profiles/search?q=coffee", "")
	require.Equal(t, http.StatusServiceUnavailable, code)
}

func TestGenerateAndEnhance(t *testing.T) {
	s := newTestServer()

	code, body := s.do(t, http.MethodPost, "/api/v1/profiles/generate", `{"user_id":"u1","category":"Dating","instructions":"shy painter"}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "gen", body["id"])

	code, _ = s.do(t, http.MethodPost, "/api/v1/profiles/generate", `{"user_id":"u1","category":"Dating","instructions":"x","brief_id":"nope"}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, body = s.do(t, http.MethodPost, "/api/v1/profiles/enhance", `{"category":"Dating","name":"Sam","text":"coffee","field":"instructions"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "COFFEE", body["text"])

	code, _ = s.do(t, http.MethodPost, "/api/v1/profiles/enhance", `{"category":"Dating","name":"Sam","text":"coffee","field":"voice"}`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestBriefUploadRequiresFile(t *testing.T) {
	code, body := newTestServer().do(t, http.MethodPost, "/api/v1/briefs", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.NotEmpty(t, body["error"])
}
