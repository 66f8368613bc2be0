package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mira/puzzleacademy/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:puzzleacademy.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.DefaultPuzzleCount)
	assert.Equal(t, 10, cfg.HintPenalty)
	assert.Equal(t, 2, cfg.ArchiveWorkerCount)
	assert.Equal(t, 32, cfg.ArchiveQueueSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("HINT_PENALTY", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 5, cfg.HintPenalty)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("ARCHIVE_QUEUE_SIZE", "lots")

	cfg := config.Load()

	assert.Equal(t, 32, cfg.ArchiveQueueSize)
}
