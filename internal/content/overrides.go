package content

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/tartampluch/go-cards/internal/config"
)

// ReadOverrides collects display overrides from an optional .env file and
// the process environment. Environment variables win over file values.
// Only keys listed in config.OverrideKeys are kept. An empty path skips the
// file; a path that cannot be read is an error.
func ReadOverrides(path string) (map[string]string, error) {
	fileValues := map[string]string{}
	if path != "" {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrEnvRead, err)
		}
		fileValues = values
	}

	out := make(map[string]string)
	for _, key := range config.OverrideKeys {
		if v, ok := os.LookupEnv(key); ok {
			out[key] = v
			continue
		}
		if v, ok := fileValues[key]; ok {
			out[key] = v
		}
	}

	slog.Debug(config.MsgOverrides,
		config.LogKeyComponent, config.CompContent,
		config.LogKeyFile, path,
		config.LogKeyCount, len(out))

	return out, nil
}
