package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 3, cfg.MaxRounds)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 60*time.Second, cfg.CallTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Deadline)
	assert.Equal(t, 32, cfg.MaxAgentCalls)
	assert.Equal(t, 8, cfg.PoolSize)
	assert.NoError(t, cfg.Validate())
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("max_rounds: 5\ncall_timeout: 90s\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxRounds)
	assert.Equal(t, 90*time.Second, cfg.CallTimeout)
	// untouched fields keep defaults
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 5*time.Minute, cfg.Deadline)
}

func TestParse_BadDuration(t *testing.T) {
	_, err := Parse([]byte("deadline: tomorrow\n"))
	assert.Error(t, err)
}

func TestParse_InvalidBudget(t *testing.T) {
	_, err := Parse([]byte("max_rounds: 0\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("pool_size: 0\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swarm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_retries: 4\ndeadline: 2m\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxRetries)
	assert.Equal(t, 2*time.Minute, cfg.Deadline)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
