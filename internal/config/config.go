package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	LogLevel  string
	LogFile   string
	Locale    string
	Currency  string
	AltScreen bool
}

// Load reads configuration from environment variables and an optional .env
// file in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	return &Config{
		LogLevel:  valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFile:   strings.TrimSpace(k.String("LOG_FILE")),
		Locale:    valueOrDefault(k.String("TIPSPLITTER_LOCALE"), localeFromPOSIX(k.String("LC_ALL"), k.String("LANG"))),
		Currency:  strings.ToUpper(strings.TrimSpace(k.String("TIPSPLITTER_CURRENCY"))),
		AltScreen: parseBool(k.String("TIPSPLITTER_ALT_SCREEN"), true),
	}, nil
}

// OpenLogFile opens the configured log file for appending. It returns nil
// when no log file is configured.
func (c *Config) OpenLogFile() (*os.File, error) {
	if c.LogFile == "" {
		return nil, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// localeFromPOSIX turns the first usable POSIX locale value, such as
// "de_DE.UTF-8", into a BCP 47 tag ("de-DE"). It returns "" for the C and
// POSIX locales.
func localeFromPOSIX(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseBool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
