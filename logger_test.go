package dosplot

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLoggerDefaultsSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Logger().Debug("probe", "k", "v")
	if buf.Len() == 0 {
		t.Error("configured logger produced no output")
	}
}

func TestRenderLogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := Render(denseTable(t, false)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("dos chart rendered")) {
		t.Errorf("expected renderer diagnostics, got %q", buf.String())
	}
}
