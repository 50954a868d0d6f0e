package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mymdb/internal/logger"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg := LoadFrom(env(nil))

	assert.Equal(t, DBPath, cfg.DBPath)
	assert.Equal(t, logger.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.False(t, cfg.Seed)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg := LoadFrom(env(map[string]string{
		"MYMDB_DB":       "/tmp/films.db",
		"LOG_LEVEL":      "warn",
		"MYMDB_LOG_JSON": "1",
		"MYMDB_SEED":     "1",
	}))

	assert.Equal(t, DBPath, cfg.DBPath, "database path is not configurable")
	assert.Equal(t, logger.WarnLevel, cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.True(t, cfg.Seed)
}

func TestLoadFrom_LogLevelPrecedence(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want logger.LogLevel
	}{
		{"debug flag", map[string]string{"DEBUG": "1"}, logger.DebugLevel},
		{"level wins over flag", map[string]string{"DEBUG": "1", "LOG_LEVEL": "error"}, logger.ErrorLevel},
		{"unknown level falls back", map[string]string{"LOG_LEVEL": "verbose"}, logger.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LoadFrom(env(tt.vars)).LogLevel)
		})
	}
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, LoadFrom(env(nil)).NewLogger())
	assert.NotNil(t, LoadFrom(env(map[string]string{"MYMDB_LOG_JSON": "1"})).NewLogger())
}
