package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "resumeforge:resumes", cfg.Storage.Key)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "mock", cfg.ATS.Scorer)
	assert.Equal(t, int64(5*1024*1024), cfg.ATS.MaxUploadBytes)
	assert.Equal(t, 2*time.Second, cfg.ATS.MockDelay)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("ATS_SCORER", "llm")
	t.Setenv("ATS_MOCK_DELAY", "50ms")
	t.Setenv("LLM_API_KEY", "test-key")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "llm", cfg.ATS.Scorer)
	assert.Equal(t, 50*time.Millisecond, cfg.ATS.MockDelay)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
}

func TestLoadConfig_InvalidPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_YAMLWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_REDIS_URL", "redis://example:6380")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "storage:\n  backend: file\n  redis:\n    url: ${TEST_REDIS_URL}\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "redis://example:6380", cfg.Storage.Redis.URL)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("FOO", "bar")

	assert.Equal(t, "bar", expandEnvVars("${FOO}"))
	assert.Equal(t, "bar", expandEnvVars("$FOO"))
	// Unset variables are left as written
	assert.Equal(t, "${UNSET_VALUE_XYZ}", expandEnvVars("${UNSET_VALUE_XYZ}"))
}
