package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	envLogLevel     = "ALGODISPATCH_LOG_LEVEL"
	envForceGeneric = "ALGODISPATCH_FORCE_GENERIC"
)

// envVar returns the trimmed value of key without surrounding quotes.
func envVar(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// envBool reads key as a boolean. Set but unparsable values count as true.
func envBool(key string) bool {
	s := envVar(key)
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return true
	}
	return b
}

// envLevel returns the log level name from the environment, "info" if unset.
func envLevel() string {
	if s := envVar(envLogLevel); s != "" {
		return s
	}
	return "info"
}

// parseLevel accepts slog level names and numeric levels.
func parseLevel(s string) (slog.Level, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return slog.Level(i), nil
	}
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}
