package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != FormatJSON {
		t.Fatalf("expected json format")
	}
	if ParseFormat("whatever") != FormatText {
		t.Fatalf("expected text fallback")
	}
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"request_id": "r-1", "": "ignored"})

	l.Error("fetch failed", map[string]any{"error": errors.New("boom"), "user_id": "u-1"})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["request_id"] != "r-1" || ctx["user_id"] != "u-1" {
		t.Fatalf("unexpected context: %#v", ctx)
	}
	if ctx["error"] != "boom" {
		t.Fatalf("expected error field, got %#v", ctx["error"])
	}
	if _, ok := ctx[""]; ok {
		t.Fatalf("empty key should be skipped")
	}
}

func TestZapLogger_SyncFlushesCore(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := FromZap(zap.New(core))

	l.Info("shutting down", nil)
	if err := l.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
}
