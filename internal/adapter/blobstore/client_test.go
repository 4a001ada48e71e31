package blobstore

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHTTPClient_InvalidURL(t *testing.T) {
	if _, err := NewHTTPClient("not-a-url", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewHTTPClient("://bad", testLogger()); err == nil {
		t.Fatal("expected error for malformed url")
	}
}

func TestHTTPClient_Upload(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := c.Upload(context.Background(), "translations", "orders/abc/7/translation.pdf", []byte("%PDF-1.7"), "application/pdf"); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if gotPath != "/translations/orders/abc/7/translation.pdf" {
		t.Errorf("path = %s", gotPath)
	}
	if gotContentType != "application/pdf" {
		t.Errorf("content type = %s", gotContentType)
	}
	if string(gotBody) != "%PDF-1.7" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestHTTPClient_UploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "store offline", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, _ := NewHTTPClient(srv.URL, testLogger())
	if err := c.Upload(context.Background(), "b", "p", []byte("x"), "text/plain"); err == nil {
		t.Fatal("expected error on 503")
	}
}

func TestHTTPClient_DeleteMissingBlobIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, _ := NewHTTPClient(srv.URL, testLogger())
	if err := c.Delete(context.Background(), "translations", "orders/gone/1/translation.pdf"); err != nil {
		t.Fatalf("delete of missing blob should succeed, got %v", err)
	}
}

func TestHTTPClient_SignedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sign") != "900" {
			t.Errorf("sign query = %s, want 900", r.URL.Query().Get("sign"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://store.example/signed/abc?exp=123"}`))
	}))
	defer srv.Close()

	c, _ := NewHTTPClient(srv.URL, testLogger())
	got, err := c.SignedURL(context.Background(), "translations", "orders/abc/7/translation.pdf", 15*time.Minute)
	if err != nil {
		t.Fatalf("signed url: %v", err)
	}
	if got != "https://store.example/signed/abc?exp=123" {
		t.Errorf("url = %s", got)
	}
}

func TestHTTPClient_SignedURLEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, _ := NewHTTPClient(srv.URL, testLogger())
	if _, err := c.SignedURL(context.Background(), "b", "p", time.Minute); err == nil {
		t.Fatal("expected error for empty url")
	}
}
