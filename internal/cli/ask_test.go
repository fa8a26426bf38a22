package cli

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcliao/offline-assist/internal/corpus"
	"github.com/rcliao/offline-assist/internal/model"
	"github.com/rcliao/offline-assist/internal/responder"
	"github.com/rcliao/offline-assist/internal/store"
)

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("wifi down\n\n  forgot password  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[1] != "forgot password" {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func TestAnswerAll_KeepsInputOrder(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, err := s.Seed(ctx, corpus.Entries()); err != nil {
		t.Fatal(err)
	}

	r := responder.New(s, responder.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	queries := []string{"wifi connection", "forgot password reset", "xyzzy", "contact support"}

	results, err := answerAll(ctx, r, queries, model.English, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{corpus.WiFi, corpus.Password, "", corpus.Contact}
	for i, res := range results {
		if res.Category != want[i] {
			t.Errorf("query %d (%q): expected category %q, got %q", i, queries[i], want[i], res.Category)
		}
		if res.Answer == "" {
			t.Errorf("query %d: empty answer", i)
		}
	}

	logs, _ := s.RecentQueries(ctx, store.QueryLogParams{Limit: 10})
	if len(logs) != len(queries) {
		t.Errorf("expected %d logged queries, got %d", len(queries), len(logs))
	}
}
