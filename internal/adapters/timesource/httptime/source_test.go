package httptime

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shelter-care/internal/platform/clock"
	"shelter-care/internal/platform/httpclient"
)

func TestSource_Today(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/time" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"date":"2024-05-10","timezone":"America/Argentina/Buenos_Aires"}`))
	}))
	defer srv.Close()

	src, err := New(Config{URL: srv.URL + "/time", Timeout: time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := src.Today(context.Background())
	if err != nil || got != "2024-05-10" {
		t.Fatalf("Today = %q, %v", got, err)
	}
}

func TestSource_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/empty":
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c, err := httpclient.New(httpclient.Config{BaseURL: srv.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("httpclient.New: %v", err)
	}

	if _, err := NewWithClient(c, "/empty").Today(context.Background()); !errors.Is(err, ErrEmptyDate) {
		t.Fatalf("expected ErrEmptyDate, got %v", err)
	}
	if _, err := NewWithClient(c, "/down").Today(context.Background()); !httpclient.IsStatus(err, http.StatusBadGateway) {
		t.Fatalf("expected 502 HTTPError, got %v", err)
	}

	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error without url")
	}
}

func TestSource_ProviderFallsBackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src, _ := New(Config{URL: srv.URL, Timeout: time.Second})
	p := clock.NewProvider(clock.Options{Source: src, Location: time.UTC})

	before := clock.DateOf(time.Now().UTC())
	got := p.Today(context.Background())
	after := clock.DateOf(time.Now().UTC())
	if got != before && got != after {
		t.Fatalf("fallback Today = %s, want local date %s", got, before)
	}
}
