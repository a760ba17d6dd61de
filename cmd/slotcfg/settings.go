package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Settings keys.
const (
	keyLogLevel  = "log_level"
	keyLogFormat = "log_format"
	keyMathDir   = "math_dir"
	keyDryRun    = "dry_run"
)

// newSettings reads ~/.slotcfg.yaml or ./.slotcfg.yaml if present, then SLOTCFG_* env vars.
func newSettings() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(".slotcfg")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("SLOTCFG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyMathDir, "")
	v.SetDefault(keyDryRun, false)

	return v
}

// readSettingsFile loads the config file; a missing file is not an error.
func readSettingsFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || stderrors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read settings file: %w", err)
}

// newLogger builds the command logger from the log_level and log_format settings.
func newLogger(v *viper.Viper, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", v.GetString(keyLogLevel), err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch v.GetString(keyLogFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (must be 'text' or 'json')", v.GetString(keyLogFormat))
	}
}
