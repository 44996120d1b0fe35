package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TiGG-TV/Realtime/internal/models"
)

func TestRubricWeightsSumTo100(t *testing.T) {
	for _, category := range RubricCategories() {
		rubric, ok := RubricFor(category)
		require.True(t, ok, category)
		require.Len(t, rubric.Criteria, 5, category)
		require.Equal(t, 100, rubric.TotalWeight(), category)
	}
}

func TestRubricCoversEveryProfileCategory(t *testing.T) {
	for _, category := range models.ProfileCategories {
		_, ok := RubricFor(category)
		require.True(t, ok, category)
	}
	require.Contains(t, RubricCategories(), models.CategoryLanguagePractice)
}

func TestRubricTextListsCriteria(t *testing.T) {
	text := RubricText(models.CategoryDating)

	require.True(t, strings.HasPrefix(text, rubricBaseInstructions+"\n"))
	require.Contains(t, text, "Score based on the following criteria (total 100%):")
	require.Contains(t, text, "- Emotional Intelligence and Active Listening (30%): Assess how well the user picks up on emotional cues and responds empathetically.")
	require.NotContains(t, text, rubricFallback)
	require.False(t, strings.HasSuffix(text, "\n"))
}

func TestRubricTextFallsBackForUnknownCategory(t *testing.T) {
	text := RubricText(models.Category("Karaoke"))

	require.Equal(t, rubricBaseInstructions+"\n"+rubricFallback, text)
	_, ok := RubricFor("Karaoke")
	require.False(t, ok)
}

func TestRubricForReturnsCopy(t *testing.T) {
	r, _ := RubricFor(models.CategoryDebate)
	r.Criteria[0].Weight = 99

	again, _ := RubricFor(models.CategoryDebate)
	require.Equal(t, 30, again.Criteria[0].Weight)
}
