package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TiGG-TV/Realtime/internal/models"
)

func TestEveryBuiltinIsValid(t *testing.T) {
	for _, p := range All() {
		require.NoError(t, p.Validate(), p.ID)
		require.True(t, p.IsBuiltin(), p.ID)
	}
}

func TestEveryCategoryHasPersonas(t *testing.T) {
	for _, category := range models.ProfileCategories {
		require.NotEmpty(t, ByCategory(category), string(category))
	}
	require.Empty(t, ByCategory(models.CategoryLanguagePractice))
	require.Equal(t, models.ProfileCategories, Categories())
}

func TestByID(t *testing.T) {
	jake, ok := ByID("jake")
	require.True(t, ok)
	require.Equal(t, "Jake", jake.Name)
	require.Equal(t, models.CategoryDating, jake.Category)
	require.Equal(t, models.VoiceEcho, jake.Voice)

	_, ok = ByID("nobody")
	require.False(t, ok)
}

func TestReturnedProfilesAreCopies(t *testing.T) {
	jake, _ := ByID("jake")
	jake.Name = "Mutated"
	jake.Personality.Traits[0] = "mutated"

	again, _ := ByID("jake")
	require.Equal(t, "Jake", again.Name)
	require.Equal(t, "laid-back", again.Personality.Traits[0])
}

func TestReferenceCoversEveryCategory(t *testing.T) {
	for _, category := range models.ProfileCategories {
		ref, ok := Reference(category)
		require.True(t, ok, string(category))
		require.Equal(t, category, ref.Category)
	}
}
