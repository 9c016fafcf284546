// Package config resolves the application configuration.
//
// Resolution chain (highest priority first):
//  1. CLI flags (--n, --fail-local, ...)
//  2. Environment variables (SNIPPETS_N, SNIPPETS_FAIL_LOCAL, ...)
//  3. The optional --config file (YAML or TOML)
//  4. Defaults
package config

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/agbru/snippets/internal/unify"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration keys. Flags, environment variables and config files share
// these names.
const (
	KeyN              = "n"
	KeyFailLocal      = "fail-local"
	KeyFailLibrary    = "fail-library"
	KeyLocalMessage   = "local-message"
	KeyLibraryMessage = "library-message"
	KeyInput          = "input"
	KeyLogLevel       = "log-level"
	KeyNoColor        = "no-color"
	KeyTheme          = "theme"
	KeyMetrics        = "metrics"
	KeyConfig         = "config"
)

// Default values.
const (
	DefaultN        = 10
	DefaultInput    = "1 true hello"
	DefaultLogLevel = "warn"
	DefaultTheme    = "dark"
)

// Themes lists the accepted values of the theme key.
var Themes = []string{"dark", "light", "none"}

// AppConfig holds the resolved configuration.
type AppConfig struct {
	// N is the exclusive upper bound of the harmonic series.
	N int `mapstructure:"n" yaml:"n"`
	// FailLocal makes the local-error computation fail.
	FailLocal bool `mapstructure:"fail-local" yaml:"fail-local"`
	// FailLibrary makes the library-error computation fail.
	FailLibrary bool `mapstructure:"fail-library" yaml:"fail-library"`
	// LocalMessage is the message of the LocalError.
	LocalMessage string `mapstructure:"local-message" yaml:"local-message"`
	// LibraryMessage is the message of the library error.
	LibraryMessage string `mapstructure:"library-message" yaml:"library-message"`
	// Input is the line parsed into a Record.
	Input string `mapstructure:"input" yaml:"input"`
	// LogLevel is the minimum zerolog level written to stderr.
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
	// NoColor disables styled output.
	NoColor bool `mapstructure:"no-color" yaml:"no-color"`
	// Theme selects the color theme used on a terminal.
	Theme string `mapstructure:"theme" yaml:"theme"`
	// Metrics prints a metrics summary after the run.
	Metrics bool `mapstructure:"metrics" yaml:"metrics"`
}

// Defaults returns the configuration used when nothing is overridden. The
// failure flags match the original demo: the local computation fails, the
// library one succeeds.
func Defaults() AppConfig {
	opts := unify.DefaultOptions()
	return AppConfig{
		N:              DefaultN,
		FailLocal:      opts.FailLocal,
		FailLibrary:    opts.FailLibrary,
		LocalMessage:   opts.LocalMessage,
		LibraryMessage: opts.LibraryMessage,
		Input:          DefaultInput,
		LogLevel:       DefaultLogLevel,
		Theme:          DefaultTheme,
	}
}

// UnifyOptions extracts the options of the error-unification step.
func (c AppConfig) UnifyOptions() unify.Options {
	return unify.Options{
		FailLocal:      c.FailLocal,
		FailLibrary:    c.FailLibrary,
		LocalMessage:   c.LocalMessage,
		LibraryMessage: c.LibraryMessage,
	}
}

// Validate checks values that cannot be checked by type alone.
func (c AppConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.ValidationError{Field: KeyLogLevel, Message: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}
	if !slices.Contains(Themes, c.Theme) {
		return apperrors.ValidationError{
			Field:   KeyTheme,
			Message: fmt.Sprintf("unknown theme %q (want one of %s)", c.Theme, strings.Join(Themes, ", ")),
		}
	}
	return nil
}

// YAML renders the configuration as a YAML document.
func (c AppConfig) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// BindFlags registers every configuration flag on fs with its default.
func BindFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.Int(KeyN, d.N, "exclusive upper bound of the harmonic series")
	fs.Bool(KeyFailLocal, d.FailLocal, "make the local-error computation fail")
	fs.Bool(KeyFailLibrary, d.FailLibrary, "make the library-error computation fail")
	fs.String(KeyLocalMessage, d.LocalMessage, "message of the local error")
	fs.String(KeyLibraryMessage, d.LibraryMessage, "message of the library error")
	fs.String(KeyInput, d.Input, "line parsed into a record")
	fs.String(KeyLogLevel, d.LogLevel, "log level (trace, debug, info, warn, error, disabled)")
	fs.Bool(KeyNoColor, d.NoColor, "disable colored output")
	fs.String(KeyTheme, d.Theme, "color theme ("+strings.Join(Themes, ", ")+")")
	fs.Bool(KeyMetrics, d.Metrics, "print a metrics summary after the run")
	fs.String(KeyConfig, "", "optional config file (YAML or TOML)")
}

// Load resolves an AppConfig from fs, the environment and the config file
// named by the --config flag, if any.
func Load(v *viper.Viper, fs *pflag.FlagSet) (AppConfig, error) {
	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return AppConfig{}, apperrors.ConfigError{Message: "bind environment", Cause: err}
	}

	if err := v.BindPFlags(fs); err != nil {
		return AppConfig{}, apperrors.ConfigError{Message: "bind flags", Cause: err}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, apperrors.ConfigError{Message: "read config " + path, Cause: err}
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, apperrors.ConfigError{Message: "decode config", Cause: err}
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyN, d.N)
	v.SetDefault(KeyFailLocal, d.FailLocal)
	v.SetDefault(KeyFailLibrary, d.FailLibrary)
	v.SetDefault(KeyLocalMessage, d.LocalMessage)
	v.SetDefault(KeyLibraryMessage, d.LibraryMessage)
	v.SetDefault(KeyInput, d.Input)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyNoColor, d.NoColor)
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyMetrics, d.Metrics)
}
