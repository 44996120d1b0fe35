package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TiGG-TV/Realtime/internal/models"
)

func TestFormatTranscript(t *testing.T) {
	turns := []Turn{
		{Role: "user", Text: "hi"},
		{Role: "assistant", Transcript: "hello there"},
		{Role: "user", Text: "typed", Transcript: "spoken"},
	}

	require.Equal(t, "user: hi\nassistant: hello there\nuser: typed", FormatTranscript(turns))
	require.Empty(t, FormatTranscript(nil))
}

func TestTurnsFromRequest(t *testing.T) {
	turns := TurnsFromRequest([]models.TurnRequest{{Role: "user", Text: "a", Transcript: "b"}})

	require.Equal(t, []Turn{{Role: "user", Text: "a", Transcript: "b"}}, turns)
}
