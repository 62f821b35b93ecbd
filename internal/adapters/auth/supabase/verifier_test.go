package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != userPath || r.Header.Get("apikey") != "anon-key" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Header.Get("Authorization") {
		case "Bearer good":
			_, _ = w.Write([]byte(`{"id":"user-1","email":"a@b.c","role":"authenticated"}`))
		case "Bearer noid":
			_, _ = w.Write([]byte(`{"email":"a@b.c"}`))
		case "Bearer down":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
}

func TestVerify(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	v, err := NewVerifier(Config{BaseURL: ts.URL, AnonKey: "anon-key"})
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	c, err := v.Verify(context.Background(), "good")
	if err != nil {
		t.Fatalf("Verify good: %v", err)
	}
	if c.UserID != "user-1" || c.Email != "a@b.c" {
		t.Fatalf("unexpected claims %#v", c)
	}

	if _, err := v.Verify(context.Background(), "bad"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := v.Verify(context.Background(), "down"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if _, err := v.Verify(context.Background(), "noid"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream for missing id, got %v", err)
	}
	if _, err := v.Verify(context.Background(), ""); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestNewVerifier_NotConfigured(t *testing.T) {
	if _, err := NewVerifier(Config{BaseURL: "https://x.supabase.co"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
