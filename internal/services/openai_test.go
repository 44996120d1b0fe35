package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) TextGenerator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gen, err := NewOpenAIService("test-key", "gpt-test", srv.URL+"/")
	require.NoError(t, err)
	return gen
}

func TestOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAIService("", "", "")
	require.ErrorIs(t, err, ErrClientUnavailable)
}

func TestOpenAISendsChatCompletion(t *testing.T) {
	var got openAIRequest
	gen := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Overall Score: 40"}}]}`))
	})

	text, err := gen.GenerateText(context.Background(), "grade this", GenerationOptions{
		System:      "be fair",
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	require.NoError(t, err)
	require.Equal(t, "Overall Score: 40", text)

	require.Equal(t, "gpt-test", got.Model)
	require.Equal(t, []openAIMessage{
		{Role: "system", Content: "be fair"},
		{Role: "user", Content: "grade this"},
	}, got.Messages)
	require.InDelta(t, 0.7, got.Temperature, 1e-6)
	require.Equal(t, 1000, got.MaxTokens)
}

func TestOpenAIOmitsEmptySystemMessage(t *testing.T) {
	var got openAIRequest
	gen := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	_, err := gen.GenerateText(context.Background(), "p", GenerationOptions{})
	require.NoError(t, err)
	require.Equal(t, []openAIMessage{{Role: "user", Content: "p"}}, got.Messages)
}

func TestOpenAIEmptyCompletion(t *testing.T) {
	for name, body := range map[string]string{
		"no choices":    `{"choices":[]}`,
		"empty content": `{"choices":[{"message":{"content":""}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			gen := newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := gen.GenerateText(context.Background(), "p", GenerationOptions{})
			require.ErrorIs(t, err, ErrEmptyCompletion)
		})
	}
}

func TestOpenAIAPIError(t *testing.T) {
	gen := newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit","message":"slow down"}}`))
	})

	_, err := gen.GenerateText(context.Background(), "p", GenerationOptions{})
	require.EqualError(t, err, "api error 429: rate_limit: slow down")
	require.NotErrorIs(t, err, ErrEmptyCompletion)
}
