// Package config loads the judgeflow runtime settings: an optional YAML
// file, JUDGEFLOW_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Stdio is the path meaning stdin for Input and stdout for Output.
const Stdio = "-"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved runtime configuration.
type Config struct {
	Input     string `mapstructure:"input" validate:"required"`
	Output    string `mapstructure:"output" validate:"required"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`
}

// flag name → config key
var flagKeys = map[string]string{
	"input":      "input",
	"output":     "output",
	"log-level":  "log_level",
	"log-format": "log_format",
}

// Load resolves the configuration. An empty path searches judgeflow.yaml in
// the working directory and in $HOME/.judgeflow and tolerates its absence;
// an explicit path must exist. Flags present in flags override everything
// else when set; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("input", Stdio)
	v.SetDefault("output", Stdio)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("judgeflow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.judgeflow")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix("JUDGEFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the field constraints.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fields))
	for _, fe := range fields {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %q is not %s [%s]", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// UsesStdin reports whether input is read from stdin.
func (c *Config) UsesStdin() bool { return c.Input == Stdio }

// UsesStdout reports whether answers are written to stdout.
func (c *Config) UsesStdout() bool { return c.Output == Stdio }
