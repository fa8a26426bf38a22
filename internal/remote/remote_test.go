package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcliao/offline-assist/internal/config"
	"github.com/rcliao/offline-assist/internal/model"
	"github.com/rcliao/offline-assist/internal/responder"
	"github.com/rcliao/offline-assist/internal/store"
)

func TestHTTPClient_Ask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req Request
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(map[string]string{"answer": "remote says " + req.Language})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", "secret", time.Second)
	got, err := c.Ask(context.Background(), Request{Query: "hi", Language: "tagalog"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "remote says tagalog" {
		t.Errorf("unexpected answer %q", got)
	}
}

func TestHTTPClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}, nil},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{"))
		}, nil},
		{"empty answer", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"answer":"  "}`))
		}, ErrEmptyAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewHTTPClient(srv.URL, "", time.Second).Ask(context.Background(), Request{Query: "q"})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	if c := NewFromConfig(&config.Config{}); c != nil {
		t.Error("expected nil client without remote URL")
	}
	if c := NewFromConfig(&config.Config{RemoteURL: "http://example.invalid"}); c == nil {
		t.Error("expected client with remote URL")
	}
}

type failingClient struct{ calls int }

func (f *failingClient) Ask(context.Context, Request) (string, error) {
	f.calls++
	return "", errors.New("network down")
}

func newOffline(t *testing.T) *responder.Responder {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	s.InsertEntries(context.Background(), []model.Entry{
		{Category: "wifi", Language: model.English, Keywords: []string{"wifi"}, Answer: "restart the router", Confidence: 1},
	})
	return responder.New(s, responder.WithLogger(quiet()))
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAssistant_FallsBackOffline(t *testing.T) {
	remote := &failingClient{}
	a := &Assistant{Remote: remote, Offline: newOffline(t), Logger: quiet()}

	reply := a.Ask(context.Background(), "wifi broken", "english")
	if remote.calls != 1 {
		t.Errorf("expected one remote attempt, got %d", remote.calls)
	}
	if reply.Source != SourceOffline || reply.Answer != "restart the router" {
		t.Errorf("unexpected reply: %+v", reply)
	}
	if reply.Match == nil || reply.Match.Category != "wifi" {
		t.Errorf("expected match details, got %+v", reply.Match)
	}
}

func TestAssistant_OfflineOnly(t *testing.T) {
	a := &Assistant{Offline: newOffline(t), Logger: quiet()}

	reply := a.Ask(context.Background(), "something else", "bisaya")
	if reply.Source != SourceOffline {
		t.Errorf("expected offline source, got %q", reply.Source)
	}
	if reply.Answer != responder.GenericResponse("bisaya") {
		t.Errorf("expected bisaya generic, got %q", reply.Answer)
	}
}

func TestAssistant_PrefersRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer":"from the cloud"}`))
	}))
	defer srv.Close()

	a := &Assistant{Remote: NewHTTPClient(srv.URL, "", time.Second), Offline: newOffline(t), Logger: quiet()}
	reply := a.Ask(context.Background(), "wifi", "english")
	if reply.Source != SourceRemote || reply.Answer != "from the cloud" {
		t.Errorf("unexpected reply: %+v", reply)
	}
}

func TestAssistant_OfflineStoreFailureIsGeneric(t *testing.T) {
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	a := &Assistant{Remote: &failingClient{}, Offline: responder.New(s, responder.WithLogger(quiet())), Logger: quiet()}
	reply := a.Ask(context.Background(), "wifi", "waray")
	if reply.Source != SourceOffline || reply.Answer != responder.GenericResponse("waray") {
		t.Errorf("unexpected reply: %+v", reply)
	}
	if reply.Match == nil || !reply.Match.Generic {
		t.Errorf("expected generic match details, got %+v", reply.Match)
	}
}
