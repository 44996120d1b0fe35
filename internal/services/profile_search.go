package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/samber/lo"

	"github.com/TiGG-TV/Realtime/internal/models"
)

const (
	searchChunkSize    = 800
	searchChunkOverlap = 100
	defaultSearchLimit = 5
)

var ErrSearchUnavailable = errors.New("profile search is not configured")

type ProfileMatch struct {
	Profile models.Profile `json:"profile"`
	Score   float32        `json:"score"`
}

type ProfileSearchService interface {
	Index(ctx context.Context, profile models.Profile) error
	Search(ctx context.Context, query string, category models.Category, limit int) ([]ProfileMatch, error)
}

type profileSearchService struct {
	embedder      Embedder
	qdrant        QdrantService
	chunker       TextChunker
	profiles      ProfileService
	promptBuilder *PromptBuilder
}

// NewProfileSearchService returns a search backed by embeddings. When either
// the embedder or qdrant is nil every call fails with ErrSearchUnavailable.
func NewProfileSearchService(embedder Embedder, qdrant QdrantService, profiles ProfileService) ProfileSearchService {
	return &profileSearchService{
		embedder:      embedder,
		qdrant:        qdrant,
		chunker:       NewTextChunker(),
		profiles:      profiles,
		promptBuilder: NewPromptBuilder(),
	}
}

func (s *profileSearchService) available() bool {
	return s.embedder != nil && s.qdrant != nil
}

// Index replaces every stored chunk for the profile.
func (s *profileSearchService) Index(ctx context.Context, profile models.Profile) error {
	if !s.available() {
		return ErrSearchUnavailable
	}

	if err := s.qdrant.DeleteProfile(ctx, profile.ID); err != nil {
		return fmt.Errorf("failed to clear previous index: %w", err)
	}

	doc := s.promptBuilder.BuildSearchDocument(profile)
	chunks := s.chunker.ChunkText(doc, searchChunkSize, searchChunkOverlap)

	for i, chunk := range chunks {
		embedding, err := s.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed chunk %d of %s: %w", i, profile.ID, err)
		}

		err = s.qdrant.UpsertProfileChunk(ctx, ProfileChunk{
			ProfileID: profile.ID,
			Category:  profile.Category,
			Text:      chunk,
		}, embedding)
		if err != nil {
			return fmt.Errorf("failed to store chunk %d of %s: %w", i, profile.ID, err)
		}
	}

	log.Printf("📚 Indexed profile %s (%d chunks)\n", profile.ID, len(chunks))
	return nil
}

// Search returns at most limit distinct profiles, best match first.
func (s *profileSearchService) Search(ctx context.Context, query string, category models.Category, limit int) ([]ProfileMatch, error) {
	if !s.available() {
		return nil, ErrSearchUnavailable
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	embedding, err := s.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	// several chunks can belong to one profile
	hits, err := s.qdrant.SearchSimilar(ctx, embedding, category, limit*3)
	if err != nil {
		return nil, err
	}

	best := bestHitPerProfile(hits)

	matches := make([]ProfileMatch, 0, len(best))
	for _, hit := range best {
		if len(matches) == limit {
			break
		}
		profile, err := s.profiles.Get(hit.ProfileID)
		if err != nil {
			log.Printf("⚠️  Indexed profile %s could not be resolved: %v\n", hit.ProfileID, err)
			continue
		}
		matches = append(matches, ProfileMatch{Profile: *profile, Score: hit.Score})
	}

	return matches, nil
}

func bestHitPerProfile(hits []SearchResult) []SearchResult {
	grouped := lo.GroupBy(hits, func(h SearchResult) string { return h.ProfileID })
	delete(grouped, "")

	best := lo.MapToSlice(grouped, func(_ string, group []SearchResult) SearchResult {
		return lo.MaxBy(group, func(a, b SearchResult) bool { return a.Score > b.Score })
	})

	sort.SliceStable(best, func(i, j int) bool {
		if best[i].Score != best[j].Score {
			return best[i].Score > best[j].Score
		}
		return best[i].ProfileID < best[j].ProfileID
	})
	return best
}
