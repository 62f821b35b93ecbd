package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_SendsDefaultHeadersAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "anon" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/auth/v1/user" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":"u-1"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", time.Second, WithHeader("apikey", "anon"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.DoJSON(context.Background(), http.MethodGet, "auth/v1/user", nil, nil, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out.ID != "u-1" {
		t.Fatalf("expected u-1, got %q", out.ID)
	}
}

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer ts.Close()

	c, _ := New(ts.URL, time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	if !IsStatus(err, http.StatusUnauthorized, http.StatusForbidden) {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestResolveURL_RelativeWithoutBase(t *testing.T) {
	c, _ := New("", time.Second)
	if _, err := c.resolveURL("/x"); err == nil {
		t.Fatalf("expected error for relative path without base url")
	}
	u, err := c.resolveURL("https://example.com/a")
	if err != nil || u != "https://example.com/a" {
		t.Fatalf("absolute url should pass through, got %q %v", u, err)
	}
}
