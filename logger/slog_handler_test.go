package logger

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogHandler_Enabled(t *testing.T) {
	l, _ := newMemLogger("app.log")
	sh := NewSlogHandler(l, slog.LevelInfo)

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	l, mem := newMemLogger("app.log")
	log := slog.New(NewSlogHandler(l, slog.LevelDebug))

	log.Info("test message", "key", "value", "count", 42)
	log.Warn("careful")
	log.Debug("details")
	log.Error("failed")

	output, _ := mem.Content("app.log")
	for _, want := range []string{
		"[INFO] test message key=value count=42\n",
		"[WARN] careful\n",
		"[DEBUG] details\n",
		"[ERROR] failed\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	l, mem := newMemLogger("app.log")
	log := slog.New(NewSlogHandler(l, nil)).
		With("service", "api").
		WithGroup("req").
		With("id", "r-1")

	log.Info("handled", "status", 200, slog.Group("user", "name", "alice"))

	output, _ := mem.Content("app.log")
	want := "[INFO] handled service=api req.id=r-1 req.status=200 req.user.name=alice\n"
	if !strings.Contains(output, want) {
		t.Errorf("Expected %q in output, got: %s", want, output)
	}
}

func TestSlogHandler_DefaultLevelDropsDebug(t *testing.T) {
	l, mem := newMemLogger("app.log")
	log := slog.New(NewSlogHandler(l, nil))

	log.Debug("hidden")
	if _, ok := mem.Content("app.log"); ok {
		t.Error("debug record was written with the default Info threshold")
	}
}
