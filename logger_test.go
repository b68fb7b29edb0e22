package gfxbind

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/wgpu/hal"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLoggerPropagates(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Error("Logger() did not return the logger set via SetLogger")
	}
	if hal.Logger() != custom {
		t.Error("hal.Logger() did not receive the logger")
	}

	Logger().Info("bridge message", "key", "value")
	if !strings.Contains(buf.String(), "bridge message") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("logger still enabled after SetLogger(nil)")
	}
	if hal.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("hal logger still enabled after SetLogger(nil)")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				SetLogger(slog.Default())
			} else {
				_ = Logger()
			}
		}(i)
	}
	wg.Wait()
}
