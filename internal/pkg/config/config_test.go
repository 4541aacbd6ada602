package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CFG_INT", "42")
	t.Setenv("CFG_BAD_INT", "forty")
	t.Setenv("CFG_FLOAT", "2.5")
	t.Setenv("CFG_BOOL", "true")
	t.Setenv("CFG_DURATION", "90s")
	t.Setenv("CFG_LIST", "https://a.example, ,https://b.example")

	assert.Equal(t, "fallback", GetEnv("CFG_MISSING", "fallback"))
	assert.Equal(t, 42, GetEnvAsInt("CFG_INT", 0))
	assert.Equal(t, 7, GetEnvAsInt("CFG_BAD_INT", 7))
	assert.Equal(t, int64(42), GetEnvAsInt64("CFG_INT", 0))
	assert.Equal(t, 2.5, GetEnvAsFloat("CFG_FLOAT", 0))
	assert.True(t, GetEnvAsBool("CFG_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvAsDuration("CFG_DURATION", time.Second))
	assert.Equal(t, time.Second, GetEnvAsDuration("CFG_MISSING", time.Second))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, GetEnvAsList("CFG_LIST", nil))
}

func TestParseAPIKeys(t *testing.T) {
	keys := ParseAPIKeys("booking:abc, payment:def,broken,:nokey")

	assert.Equal(t, map[string]string{"booking": "abc", "payment": "def"}, keys)
	assert.Empty(t, ParseAPIKeys(""))
}

func TestInitConfig_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "realtime.env")
	content := "SERVER_PORT=7001\nPRESENCE_BACKEND=redis\nGEOFENCE_SOURCE=file\nGEOFENCE_FILE=geofences.yaml\nINTERNAL_API_KEYS=booking:secret\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that are already set
	for _, k := range []string{"SERVER_PORT", "PRESENCE_BACKEND", "GEOFENCE_SOURCE", "GEOFENCE_FILE", "INTERNAL_API_KEYS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := InitConfig(path)

	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Presence.Backend)
	assert.Equal(t, "file", cfg.Geofence.Source)
	assert.Equal(t, "geofences.yaml", cfg.Geofence.FilePath)
	assert.Equal(t, "secret", cfg.APIKeys["booking"])
	assert.Equal(t, 64, cfg.Gateway.SendBufferSize)
	assert.Equal(t, 100, cfg.Location.MaxHeatMapGridSize)
}
