package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func record(level slog.Level, msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC), level, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	err := h.Handle(context.Background(), record(slog.LevelInfo, "cloning repository",
		slog.String("url", "https://example.com/aliases.git")))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"2:30PM", "INFO", "cloning repository", "url=https://example.com/aliases.git"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	// Writer is a plain buffer, so no ANSI escapes
	if strings.Contains(out, "\033[") {
		t.Errorf("unexpected color codes in non-TTY output: %q", out)
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	derived := h.WithAttrs([]slog.Attr{slog.String("scope", "global")})
	if err := derived.Handle(context.Background(), record(slog.LevelInfo, "removed alias")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !strings.Contains(buf.String(), "scope=global") {
		t.Errorf("output missing attached attribute: %q", buf.String())
	}

	// Original handler is unaffected
	buf.Reset()
	if err := h.Handle(context.Background(), record(slog.LevelInfo, "removed alias")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if strings.Contains(buf.String(), "scope=global") {
		t.Errorf("original handler leaked derived attrs: %q", buf.String())
	}
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	derived := h.WithGroup("clone")
	if err := derived.Handle(context.Background(), record(slog.LevelInfo, "done",
		slog.Int("depth", 1))); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !strings.Contains(buf.String(), "clone.depth=1") {
		t.Errorf("output missing group-prefixed key: %q", buf.String())
	}
}

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	if err := h.Handle(context.Background(), record(slog.LevelInfo, "only text")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !strings.Contains(a.String(), "only text") {
		t.Errorf("text handler missed record: %q", a.String())
	}
	if b.Len() != 0 {
		t.Errorf("json handler should have filtered info record: %q", b.String())
	}

	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("multi handler should be enabled when any handler is")
	}
}
