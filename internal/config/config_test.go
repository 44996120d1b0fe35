package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GRADING_PROVIDER", "GRADING_TIMEOUT", "GRADING_MAX_ATTEMPTS", "WORKER_QUEUE_SIZE", "WORKER_POLL_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, "3000", cfg.Server.Port)
	require.Equal(t, "openai", cfg.Grading.Provider)
	require.Equal(t, 60*time.Second, cfg.Grading.Timeout)
	require.Equal(t, 2, cfg.Grading.MaxAttempts)
	require.Equal(t, 100, cfg.Worker.QueueSize)
	require.Equal(t, 10*time.Second, cfg.Worker.PollInterval)
	require.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GRADING_PROVIDER", "gemini")
	t.Setenv("GRADING_TIMEOUT", "15s")
	t.Setenv("GRADING_MAX_ATTEMPTS", "4")
	t.Setenv("WORKER_CONCURRENCY", "not-a-number")
	t.Setenv("DB_NAME", "scores")

	cfg := Load()

	require.Equal(t, "gemini", cfg.Grading.Provider)
	require.Equal(t, 15*time.Second, cfg.Grading.Timeout)
	require.Equal(t, 4, cfg.Grading.MaxAttempts)
	require.Equal(t, 3, cfg.Worker.Concurrency)
	require.Contains(t, cfg.GetDatabaseDSN(), "dbname=scores")
}

func TestGetEnvAsDurationFallsBack(t *testing.T) {
	t.Setenv("SOME_DELAY", "soon")
	require.Equal(t, 2*time.Second, getEnvAsDuration("SOME_DELAY", "2s"))
}

func TestValidate(t *testing.T) {
	t.Setenv("GRADING_PROVIDER", "")
	cfg := Load()
	require.NoError(t, cfg.Validate())

	cfg.Grading.Provider = "claude"
	cfg.Worker.Concurrency = 0
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "GRADING_PROVIDER")
	require.Contains(t, err.Error(), "WORKER_CONCURRENCY")
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")

	cfg := Load()

	require.Contains(t, cfg.GetDatabaseDSN(), "sslmode=require")
	require.Equal(t, 25, cfg.Database.MaxOpenConns)
	require.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
}
