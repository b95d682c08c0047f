package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "roar")
	assert.Equal(t, defaultUploadsDir, cfg.Paths.Uploads)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yaml := `
port: 8080
env: production
dsn: "user:pass@tcp(db:3306)/roar?parseTime=True"
jwt_secret: topsecret
allowed_origins:
  - roar.example.edu
  - "*.roar.example.edu"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "user:pass@tcp(db:3306)/roar?parseTime=True", cfg.DSN)
	assert.Equal(t, "topsecret", cfg.JWTSecret)
	assert.Len(t, cfg.AllowedOrigins, 2)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a port"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
