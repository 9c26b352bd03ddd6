package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestMultiHandler_FanOut(t *testing.T) {
	var first, second bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&first, nil),
		slog.NewTextHandler(&second, nil),
	)
	logger := slog.New(h)

	logger.Info("converted", "format", "yaml")

	for name, buf := range map[string]*bytes.Buffer{"first": &first, "second": &second} {
		output := buf.String()
		if !strings.Contains(output, "converted") {
			t.Errorf("expected message in %s handler output, got: %q", name, output)
		}
		if !strings.Contains(output, "format=yaml") {
			t.Errorf("expected attribute in %s handler output, got: %q", name, output)
		}
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info to be disabled when all handlers require Warn or higher")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("expected Warn to be enabled when one handler accepts it")
	}
}

func TestMultiHandler_SkipsDisabledHandlers(t *testing.T) {
	var debug, errOnly bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(h)

	logger.Info("scan complete")

	if !strings.Contains(debug.String(), "scan complete") {
		t.Errorf("expected debug handler to receive record, got: %q", debug.String())
	}
	if errOnly.Len() != 0 {
		t.Errorf("expected error-only handler to be skipped, got: %q", errOnly.String())
	}
}

func TestMultiHandler_ReturnsFirstError(t *testing.T) {
	errFirst := errors.New("first failure")
	h := NewMultiHandler(
		failingHandler{err: errFirst},
		failingHandler{err: errors.New("second failure")},
	)

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "boom", 0)
	if err := h.Handle(context.Background(), r); !errors.Is(err, errFirst) {
		t.Errorf("expected first handler error, got: %v", err)
	}
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, nil))
	logger := slog.New(h).With("tool", "sshconv").WithGroup("source")

	logger.Info("parsed", "path", "config")

	output := buf.String()
	if !strings.Contains(output, "tool=sshconv") {
		t.Errorf("expected shared attribute in output, got: %q", output)
	}
	if !strings.Contains(output, "source.path=config") {
		t.Errorf("expected grouped attribute in output, got: %q", output)
	}
}

type failingHandler struct {
	err error
}

func (f failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (f failingHandler) Handle(context.Context, slog.Record) error { return f.err }
func (f failingHandler) WithAttrs([]slog.Attr) slog.Handler        { return f }
func (f failingHandler) WithGroup(string) slog.Handler             { return f }
