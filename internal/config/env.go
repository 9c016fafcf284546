// This file contains environment variable binding for configuration override.

package config

import (
	"strings"

	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SNIPPETS"

// envKeys lists the keys that may be overridden from the environment.
// Keys map to variables by upper-casing and replacing '-' with '_', so
// "fail-local" is read from SNIPPETS_FAIL_LOCAL.
var envKeys = []string{
	KeyN,
	KeyFailLocal,
	KeyFailLibrary,
	KeyLocalMessage,
	KeyLibraryMessage,
	KeyInput,
	KeyLogLevel,
	KeyNoColor,
	KeyTheme,
	KeyMetrics,
	KeyConfig,
}

// EnvVar returns the environment variable name for key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(envReplacer.Replace(key))
}

var envReplacer = strings.NewReplacer("-", "_")

// bindEnv makes v consult the environment for every key in envKeys. Explicit
// flags still win because viper ranks flags above environment values.
func bindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return apperrors.WrapError(err, "bind %s", EnvVar(key))
		}
	}
	return nil
}
