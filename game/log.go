package game

import (
	"io"
	"log/slog"
)

var pkgLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger installs the logger used by the simulation core.
// Call it before the first Game is created; nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	pkgLogger = l
}

func logger() *slog.Logger {
	return pkgLogger
}
