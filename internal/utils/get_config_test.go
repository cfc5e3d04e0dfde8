package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: db.internal\nDB_NAME: meals\nSMTP_PORT: \"587\"\n"), 0o600))
	require.NoError(t, LoadConfigFrom(path))
	t.Cleanup(func() { config = Config{} })
	for _, key := range []string{"DB_HOST", "DB_NAME", "SMTP_PORT", "APP_PORT"} {
		t.Setenv(key, "")
	}

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "587", GetConfig("SMTP_PORT"))
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Empty(t, GetConfig("NOT_A_KEY"))

	t.Setenv("DB_NAME", "meals_test")
	assert.Equal(t, "meals_test", GetConfig("DB_NAME"))
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
