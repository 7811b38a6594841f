package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds settings taken from the environment.
type Env struct {
	LogLevel  string // LETSMIME_LOG_LEVEL: trace, debug, info, warn, error
	LogPretty bool   // LETSMIME_LOG_PRETTY: console output instead of JSON
	WordPack  string // LETSMIME_WORD_PACK: overrides game.json's wordPack
	Haptics   *bool  // LETSMIME_HAPTICS: overrides game.json's haptics.enabled
}

// LoadEnv loads the given .env files, skipping missing ones, and reads the
// LETSMIME_ variables. Variables already set in the process win over the
// files.
func LoadEnv(files ...string) (Env, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, err
		}
	}

	env := Env{
		LogLevel:  getEnv("LETSMIME_LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LETSMIME_LOG_PRETTY", true),
		WordPack:  getEnv("LETSMIME_WORD_PACK", ""),
	}
	if v := os.Getenv("LETSMIME_HAPTICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			env.Haptics = &b
		}
	}
	return env, nil
}

// Apply copies environment overrides onto the loaded settings
func (e Env) Apply(s *SettingsConfig) {
	if e.Haptics != nil {
		s.Haptics.Enabled = *e.Haptics
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
