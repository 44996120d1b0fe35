package services

import (
	"fmt"
	"strings"

	"github.com/TiGG-TV/Realtime/internal/models"
)

type Turn struct {
	Role       string
	Text       string
	Transcript string
}

// FormatTranscript renders turns as "role: text" lines. Audio turns carry
// their words in Transcript, which is used when Text is empty.
func FormatTranscript(turns []Turn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		content := t.Text
		if content == "" {
			content = t.Transcript
		}
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, content))
	}
	return strings.Join(lines, "\n")
}

func TurnsFromRequest(in []models.TurnRequest) []Turn {
	turns := make([]Turn, 0, len(in))
	for _, t := range in {
		turns = append(turns, Turn{Role: t.Role, Text: t.Text, Transcript: t.Transcript})
	}
	return turns
}
