package config

import (
	"os"

	"mymdb/internal/logger"
)

// DBPath is the fixed database location, relative to the working directory.
const DBPath = "movies.db"

// Config holds the settings read from the environment at startup. Only
// logging and first-run seeding are configurable; the database path is not.
type Config struct {
	DBPath   string
	LogLevel logger.LogLevel
	LogJSON  bool
	Seed     bool
}

// Load reads the process environment.
func Load() Config {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads settings through getenv so tests can supply their own.
func LoadFrom(getenv func(string) string) Config {
	return Config{
		DBPath:   DBPath,
		LogLevel: determineLogLevel(getenv),
		LogJSON:  getenv("MYMDB_LOG_JSON") == "1",
		Seed:     getenv("MYMDB_SEED") == "1",
	}
}

// determineLogLevel reads LOG_LEVEL, falling back to DEBUG=1 and then info.
func determineLogLevel(getenv func(string) string) logger.LogLevel {
	if level, ok := logger.ParseLevel(getenv("LOG_LEVEL")); ok {
		return level
	}
	if getenv("DEBUG") == "1" {
		return logger.DebugLevel
	}
	return logger.InfoLevel
}

// NewLogger builds the zerolog-backed logger this config asks for.
func (c Config) NewLogger() logger.Logger {
	if c.LogJSON {
		return logger.NewJSONLogger(c.LogLevel)
	}
	return logger.NewConsoleLogger(c.LogLevel)
}
