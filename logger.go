package gfxbind

import (
	"log/slog"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxbind/internal/logging"
)

// SetLogger configures the logger for gfxbind, all its sub-packages and
// the wgpu HAL beneath the wgpu backends. By default gfxbind produces no
// log output. Pass nil to restore silence.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
//
// Log levels used by gfxbind:
//   - [slog.LevelDebug]: wrapper installation, backend selection
//   - [slog.LevelInfo]: lifecycle events (device opened, bridge ready)
//   - [slog.LevelWarn]: non-fatal issues (unreadable pixel sources, teardown errors)
//
// Example:
//
//	gfxbind.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	hal.SetLogger(l)
}

// Logger returns the current logger used by gfxbind.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
