package pkglog

import (
	"io"
	"log/slog"
	"strings"
)

var level = new(slog.LevelVar)

// Init installs a handler writing to w as the default logger. The level
// starts at info and can be changed later with SetLevel.
func Init(w io.Writer, format string) {
	slog.SetDefault(slog.New(NewHandler(w, format)))
}

// NewHandler returns a text or JSON handler sharing the package level.
func NewHandler(w io.Writer, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// SetLevel accepts debug, info, warn or error. Unknown values fall back to info.
func SetLevel(value string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		l = slog.LevelInfo
	}
	level.Set(l)
}

func Level() slog.Level {
	return level.Level()
}
