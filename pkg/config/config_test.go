package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("reads json config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"url": "https://rat.example.org",
			"token_url": "https://id.example.org/token",
			"client_id": "top-walker",
			"username": "alice",
			"password": "pw",
			"debug": true
		}`), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "https://rat.example.org", cfg.URL)
		assert.Equal(t, "top-walker", cfg.ClientID)
		assert.True(t, cfg.Debug)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("directory is an error", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
