package metrics

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/rcliao/offline-assist/internal/store"
)

type fakeSource struct {
	outcomes []store.QueryOutcome
	usage    []store.UsageStats
	err      error
}

func (f *fakeSource) QueryOutcomes(context.Context) ([]store.QueryOutcome, error) {
	return f.outcomes, f.err
}

func (f *fakeSource) EntryUsage(context.Context) ([]store.UsageStats, error) {
	return f.usage, f.err
}

func TestCollector(t *testing.T) {
	src := &fakeSource{
		outcomes: []store.QueryOutcome{
			{Language: "english", Outcome: "matched", Count: 3},
			{Language: "tagalog", Outcome: "fallback", Count: 1},
		},
		usage: []store.UsageStats{
			{Category: "wifi", Language: "english", Usage: 4},
		},
	}

	expected := `
# HELP offline_assist_queries_total Logged offline queries by requested language and outcome.
# TYPE offline_assist_queries_total counter
offline_assist_queries_total{language="english",outcome="matched"} 3
offline_assist_queries_total{language="tagalog",outcome="fallback"} 1
# HELP offline_assist_entry_usage_total Times an entry answered a query, by category and language.
# TYPE offline_assist_entry_usage_total counter
offline_assist_entry_usage_total{category="wifi",language="english"} 4
`
	err := testutil.CollectAndCompare(NewCollector(src), strings.NewReader(expected),
		"offline_assist_queries_total", "offline_assist_entry_usage_total")
	if err != nil {
		t.Error(err)
	}
}

func TestCollector_SourceErrorEmitsNothing(t *testing.T) {
	src := &fakeSource{err: errors.New("store unavailable")}
	if n := testutil.CollectAndCount(NewCollector(src)); n != 0 {
		t.Errorf("expected 0 metrics, got %d", n)
	}
}

func TestWriteText(t *testing.T) {
	src := &fakeSource{
		outcomes: []store.QueryOutcome{{Language: "waray", Outcome: "generic", Count: 2}},
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, src); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `offline_assist_queries_total{language="waray",outcome="generic"} 2`) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
