package adapter

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// EnvLookup resolves an environment variable, reporting whether it is set.
type EnvLookup func(key string) (string, bool)

// Get returns the value for key, or "" when it is unset.
func (e EnvLookup) Get(key string) string {
	value, _ := e(key)
	return value
}

// NewEnvLookup returns a lookup over the process environment. When dotenvPath
// names a readable dotenv file its entries are used for keys the process
// environment does not define. A missing file is not an error.
func NewEnvLookup(dotenvPath string) EnvLookup {
	fileValues := map[string]string{}

	if dotenvPath != "" {
		values, err := godotenv.Read(dotenvPath)

		switch {
		case err == nil:
			fileValues = values
			slog.Debug("loaded dotenv file", "path", dotenvPath, "keys", len(values))
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("dotenv file not found", "path", dotenvPath)
		default:
			slog.Warn("Failed to read dotenv file", "path", dotenvPath, "error", err)
		}
	}

	return func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}

		value, ok := fileValues[key]

		return value, ok
	}
}

// MapEnv returns a lookup backed by a fixed map.
func MapEnv(values map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}
