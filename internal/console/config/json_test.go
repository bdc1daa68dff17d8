package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads every field", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"data_dir":      "/tmp/desk",
			"database_file": "desk.db",
			"demo":          true,
			"in_memory":     true,
			"save_timeout":  "750ms",
			"log_level":     "error",
		})

		cfg := &Config{}
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, Config{
			DataDir:      "/tmp/desk",
			DatabaseFile: "desk.db",
			Demo:         true,
			InMemory:     true,
			SaveTimeout:  750 * time.Millisecond,
			LogLevel:     "error",
		}, *cfg)
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"demo": false})

		var cfg Config
		cfg.LoadDefaults()
		cfg.Demo = true
		parseJson(&cfg, []string{"-c", path})

		assert.False(t, cfg.Demo)
		assert.Equal(t, "console.db", cfg.DatabaseFile)
		assert.Equal(t, 3*time.Second, cfg.SaveTimeout)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		cfg := &Config{DataDir: "keep"}
		parseJson(cfg, []string{"-d", "other"})
		assert.Equal(t, "keep", cfg.DataDir)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-config", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() {
			parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		})
	})
}
