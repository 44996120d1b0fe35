package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
)

// scriptedGenerator returns its replies in order and records every prompt.
type scriptedGenerator struct {
	mu      sync.Mutex
	replies []scriptedReply
	prompts []string
	opts    []GenerationOptions
}

type scriptedReply struct {
	text string
	err  error
}

func (g *scriptedGenerator) GenerateText(_ context.Context, prompt string, opts GenerationOptions) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.prompts = append(g.prompts, prompt)
	g.opts = append(g.opts, opts)

	if len(g.replies) == 0 {
		return "", ErrEmptyCompletion
	}
	r := g.replies[0]
	if len(g.replies) > 1 {
		g.replies = g.replies[1:]
	}
	return r.text, r.err
}

func (g *scriptedGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

func replyWith(text string) *scriptedGenerator {
	return &scriptedGenerator{replies: []scriptedReply{{text: text}}}
}

type memChatRepo struct {
	mu    sync.Mutex
	chats map[uuid.UUID]*models.Chat
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{chats: map[uuid.UUID]*models.Chat{}}
}

func (r *memChatRepo) Create(chat *models.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *chat
	r.chats[chat.ID] = &c
	return nil
}

func (r *memChatRepo) FindByID(id uuid.UUID) (*models.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[id]
	if !ok {
		return nil, repositories.ErrChatNotFound
	}
	out := *c
	return &out, nil
}

func (r *memChatRepo) Claim(id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[id]
	if !ok || c.Status != models.StatusQueued {
		return false, nil
	}
	c.Status = models.StatusProcessing
	c.UpdatedAt = time.Now()
	return true, nil
}

func (r *memChatRepo) UpdateResult(id uuid.UUID, res *models.ScoringResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[id]
	if !ok {
		return repositories.ErrChatNotFound
	}
	score, at := res.Score, res.Timestamp
	c.Status = models.StatusCompleted
	c.Score = &score
	c.ScoredAt = &at
	c.Feedback = res.Feedback
	c.AreasForImprovement = res.AreasForImprovement
	return nil
}

func (r *memChatRepo) UpdateError(id uuid.UUID, notice, cause string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[id]
	if !ok {
		return repositories.ErrChatNotFound
	}
	c.Status = models.StatusFailed
	c.ErrorMessage = &notice
	c.FailureCause = &cause
	return nil
}

func (r *memChatRepo) RequeueStale(before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.chats {
		if c.Status == models.StatusProcessing && c.UpdatedAt.Before(before) {
			c.Status = models.StatusQueued
			c.UpdatedAt = time.Now()
			n++
		}
	}
	return n, nil
}

// setStatus forces a chat into a state, as a crashed process would leave it.
func (r *memChatRepo) setStatus(id uuid.UUID, status models.ChatStatus, updatedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chats[id].Status = status
	r.chats[id].UpdatedAt = updatedAt
}

func (r *memChatRepo) FindPendingJobs(limit int) ([]models.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Chat
	for _, c := range r.chats {
		if c.Status == models.StatusQueued && len(out) < limit {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memChatRepo) FindRecentByUser(userID string, limit int) ([]models.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Chat
	for _, c := range r.chats {
		if c.UserID == userID && len(out) < limit {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memChatRepo) FindScored(filter repositories.ChatFilter) ([]models.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Chat
	for _, c := range r.chats {
		if c.Status != models.StatusCompleted || c.Score == nil {
			continue
		}
		if filter.UserID != "" && c.UserID != filter.UserID {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.ProfileID != "" && c.ProfileID != filter.ProfileID {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *memChatRepo) status(id uuid.UUID) models.ChatStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.chats[id].Status
}

type memScoreRepo struct {
	mu     sync.Mutex
	scores map[string]models.LatestScore
}

func newMemScoreRepo() *memScoreRepo {
	return &memScoreRepo{scores: map[string]models.LatestScore{}}
}

func (r *memScoreRepo) Upsert(score *models.LatestScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores[score.ID] = *score
	return nil
}

func (r *memScoreRepo) FindByUser(userID string) ([]models.LatestScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.LatestScore
	for _, s := range r.scores {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memProfileRepo struct {
	profiles map[string]models.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[string]models.Profile{}}
}

func (r *memProfileRepo) Create(p *models.Profile) error {
	r.profiles[p.ID] = p.Clone()
	return nil
}

func (r *memProfileRepo) FindByID(id string) (*models.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return &p, nil
}

func (r *memProfileRepo) FindByOwner(userID string, category models.Category) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range r.profiles {
		if p.UserID == userID && (category == "" || p.Category == category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProfileRepo) FindAll() ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

type stubEmbedder struct {
	err error
}

func (e stubEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []float32{float32(len(text)), 1}, nil
}

type memQdrant struct {
	chunks  []ProfileChunk
	deleted []string
	hits    []SearchResult
}

func (q *memQdrant) InitCollection(context.Context) error { return nil }

func (q *memQdrant) UpsertProfileChunk(_ context.Context, chunk ProfileChunk, _ []float32) error {
	q.chunks = append(q.chunks, chunk)
	return nil
}

func (q *memQdrant) SearchSimilar(_ context.Context, _ []float32, category models.Category, _ int) ([]SearchResult, error) {
	var out []SearchResult
	for _, h := range q.hits {
		if category == "" || h.Category == category {
			out = append(out, h)
		}
	}
	return out, nil
}

func (q *memQdrant) DeleteProfile(_ context.Context, profileID string) error {
	q.deleted = append(q.deleted, profileID)
	return nil
}

type stubSearch struct {
	indexed []string
	err     error
}

func (s *stubSearch) Index(_ context.Context, p models.Profile) error {
	s.indexed = append(s.indexed, p.ID)
	return s.err
}

func (s *stubSearch) Search(context.Context, string, models.Category, int) ([]ProfileMatch, error) {
	return nil, ErrSearchUnavailable
}
