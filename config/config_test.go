package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadfromFile(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")
	require.Equal(t, int64(8*1024*1024), cfg.Upload.MaxBytes)
	require.Equal(t, "image/", cfg.Upload.AllowedTypePrefix)
	require.Equal(t, "test-session-secret", cfg.SessionSecret)
}

func TestLoad_MissingSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load("./config.yml")
	require.Error(t, err, "an empty signing key must not pass validation")
	require.Contains(t, err.Error(), "SESSION_SECRET")
}
