package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TiGG-TV/Realtime/internal/catalog"
	"github.com/TiGG-TV/Realtime/internal/models"
)

func TestProfileSearchIndexReplacesChunks(t *testing.T) {
	q := &memQdrant{}
	svc := NewProfileSearchService(stubEmbedder{}, q, NewProfileService(newMemProfileRepo()))
	jake, _ := catalog.ByID("jake")

	require.NoError(t, svc.Index(context.Background(), jake))

	require.Equal(t, []string{"jake"}, q.deleted)
	require.NotEmpty(t, q.chunks)
	for _, c := range q.chunks {
		require.Equal(t, "jake", c.ProfileID)
		require.Equal(t, models.CategoryDating, c.Category)
	}
	require.Contains(t, q.chunks[0].Text, "Jake (Dating)")
}

func TestProfileSearchIndexEmbeddingFailure(t *testing.T) {
	boom := errors.New("quota")
	q := &memQdrant{}
	svc := NewProfileSearchService(stubEmbedder{err: boom}, q, NewProfileService(newMemProfileRepo()))
	jake, _ := catalog.ByID("jake")

	require.ErrorIs(t, svc.Index(context.Background(), jake), boom)
	require.Empty(t, q.chunks)
}

func TestProfileSearchDeduplicatesByProfile(t *testing.T) {
	q := &memQdrant{hits: []SearchResult{
		{ProfileID: "jake", Category: models.CategoryDating, Score: 0.7},
		{ProfileID: "capitalism", Category: models.CategoryDebate, Score: 0.8},
		{ProfileID: "jake", Category: models.CategoryDating, Score: 0.9},
		{ProfileID: "deleted-custom", Category: models.CategoryDating, Score: 0.95},
		{ProfileID: "", Score: 0.99},
	}}
	svc := NewProfileSearchService(stubEmbedder{}, q, NewProfileService(newMemProfileRepo()))

	matches, err := svc.Search(context.Background(), "romantic dinner", "", 5)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, "jake", matches[0].Profile.ID)
	require.InDelta(t, 0.9, matches[0].Score, 1e-6)
	require.Equal(t, "capitalism", matches[1].Profile.ID)

	dating, err := svc.Search(context.Background(), "romantic dinner", models.CategoryDating, 1)
	require.NoError(t, err)
	require.Len(t, dating, 1)
	require.Equal(t, "jake", dating[0].Profile.ID)
}

func TestProfileSearchUnavailable(t *testing.T) {
	svc := NewProfileSearchService(nil, nil, NewProfileService(newMemProfileRepo()))

	_, err := svc.Search(context.Background(), "x", "", 3)
	require.ErrorIs(t, err, ErrSearchUnavailable)
	require.ErrorIs(t, svc.Index(context.Background(), models.Profile{}), ErrSearchUnavailable)
}
