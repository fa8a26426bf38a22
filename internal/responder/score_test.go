package responder

import (
	"context"
	"math"
	"testing"

	"github.com/rcliao/offline-assist/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		keywords []string
		want     float64
	}{
		{"all", "wifi internet connection", []string{"wifi", "internet", "connection"}, 1},
		{"two of three", "my wifi connection is down", []string{"wifi", "internet", "connection"}, 2.0 / 3.0},
		{"substring not word", "my wifi is not connecting", []string{"wifi", "internet", "connection"}, 1.0 / 3.0},
		{"case insensitive", "WIFI", []string{"WiFi"}, 1},
		{"multi-word keyword", "how to use this", []string{"how to use", "app"}, 0.5},
		{"unicode", "olvidé mi contraseña", []string{"olvidé", "contraseña"}, 1},
		{"none", "weather", []string{"wifi"}, 0},
		{"empty query", "", []string{"wifi"}, 0},
		{"no keywords", "wifi", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.query, tt.keywords)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%q, %v) = %v, want %v", tt.query, tt.keywords, got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	st := newFakeStore(
		kw("a", model.English, "a", "router", "x"),
		kw("b", model.English, "b", "router"),
		kw("c", model.English, "c", "router", "y"),
		kw("d", model.English, "d", "modem"),
		kw("e", model.Tagalog, "e", "router"),
	)
	r := quietResponder(st)

	got, err := r.Rank(context.Background(), "router", model.English, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(got))
	}

	order := []string{"b", "a", "c", "d"}
	for i, want := range order {
		if got[i].Entry.Category != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got[i].Entry.Category)
		}
	}
	if !got[0].Accepted || got[3].Accepted {
		t.Errorf("unexpected acceptance flags: %+v", got)
	}

	top, _ := r.Rank(context.Background(), "router", model.English, 2)
	if len(top) != 2 {
		t.Errorf("expected limit 2, got %d", len(top))
	}

	if len(st.logs) != 0 || len(st.usage) != 0 {
		t.Error("Rank must not write")
	}
}
