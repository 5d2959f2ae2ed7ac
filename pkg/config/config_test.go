package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/selfhq/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SELFHQ_TEST_ADDR=:9090\nSELFHQ_TEST_LIMIT=42\nSELFHQ_TEST_TTL=2h\n"), 0o600))
	t.Setenv("SELFHQ_ENV_FILE", envFile)
	cfg := config.New()

	assert.Equal(t, ":9090", cfg.GetString("SELFHQ_TEST_ADDR"))
	assert.Equal(t, ":9090", cfg.GetStringOr("SELFHQ_TEST_ADDR", ":8080"))
	assert.Equal(t, ":8080", cfg.GetStringOr("SELFHQ_TEST_UNSET", ":8080"))
	assert.Equal(t, 42, cfg.GetInt("SELFHQ_TEST_LIMIT", 1))
	assert.Equal(t, 1, cfg.GetInt("SELFHQ_TEST_ADDR", 1))
	assert.Equal(t, 2*time.Hour, cfg.GetDuration("SELFHQ_TEST_TTL", time.Minute))
	assert.Equal(t, time.Minute, cfg.GetDuration("SELFHQ_TEST_UNSET", time.Minute))
}
