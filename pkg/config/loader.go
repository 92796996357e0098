package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/docbridge/docbridge/pkg/errors"
	"github.com/docbridge/docbridge/pkg/logger"
)

// EnvPrefix is the prefix for configuration environment variables:
// engine.objectStore is read from DOCBRIDGE_ENGINE_OBJECTSTORE.
const EnvPrefix = "DOCBRIDGE"

// Load builds raw configuration Values with precedence
// environment > file > defaults. The path may be empty, in which case
// only the environment and defaults apply. File format follows the
// extension (yaml, json, toml, properties). Values may reference
// environment variables with ${VAR} syntax.
//
// Load performs no validation; pass the result to NewOptions.
func Load(path string) (Values, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Defaults()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig,
				fmt.Sprintf("failed to read config file %s", path))
		}
		warnUnknownKeys(v, defaults)
	}

	values := make(Values, len(defaults))
	for key := range defaults {
		values[key] = substituteEnvVars(v.GetString(key))
	}
	return values, nil
}

// warnUnknownKeys logs file keys that no declared key matches. Viper
// lowercases keys, so the comparison is case-insensitive.
func warnUnknownKeys(v *viper.Viper, defaults Values) {
	declared := make(map[string]struct{}, len(defaults))
	for key := range defaults {
		declared[strings.ToLower(key)] = struct{}{}
	}

	for _, key := range v.AllKeys() {
		if _, ok := declared[key]; !ok {
			logger.Warn("ignoring unknown configuration key", zap.String("key", key))
		}
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
