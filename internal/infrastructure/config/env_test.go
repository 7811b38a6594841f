package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("LETSMIME_LOG_LEVEL", "")
	t.Setenv("LETSMIME_LOG_PRETTY", "")
	t.Setenv("LETSMIME_WORD_PACK", "")
	t.Setenv("LETSMIME_HAPTICS", "")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", env.LogLevel)
	assert.True(t, env.LogPretty)
	assert.Empty(t, env.WordPack)
	assert.Nil(t, env.Haptics)
}

func TestLoadEnv_FromFileAndProcess(t *testing.T) {
	t.Setenv("LETSMIME_LOG_LEVEL", "warn")
	t.Setenv("LETSMIME_LOG_PRETTY", "")
	t.Setenv("LETSMIME_HAPTICS", "")
	t.Setenv("LETSMIME_WORD_PACK", "")
	// t.Setenv restores these after godotenv sets them from the file
	require.NoError(t, os.Unsetenv("LETSMIME_WORD_PACK"))
	require.NoError(t, os.Unsetenv("LETSMIME_HAPTICS"))

	path := filepath.Join(t.TempDir(), ".env")
	content := "LETSMIME_LOG_LEVEL=debug\nLETSMIME_WORD_PACK=animals\nLETSMIME_HAPTICS=false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	env, err := LoadEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", env.LogLevel, "process environment wins")
	assert.Equal(t, "animals", env.WordPack)
	require.NotNil(t, env.Haptics)
	assert.False(t, *env.Haptics)

	settings := &SettingsConfig{Haptics: HapticsConfig{Enabled: true}}
	env.Apply(settings)
	assert.False(t, settings.Haptics.Enabled)
}
