// Package metrics exposes query outcomes and entry usage as Prometheus
// metrics read from the store on each collection.
package metrics

import (
	"context"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/rcliao/offline-assist/internal/store"
)

var (
	queriesDesc = prometheus.NewDesc(
		"offline_assist_queries_total",
		"Logged offline queries by requested language and outcome.",
		[]string{"language", "outcome"},
		nil,
	)
	usageDesc = prometheus.NewDesc(
		"offline_assist_entry_usage_total",
		"Times an entry answered a query, by category and language.",
		[]string{"category", "language"},
		nil,
	)
)

// Source is the aggregate read surface the collector needs.
type Source interface {
	QueryOutcomes(ctx context.Context) ([]store.QueryOutcome, error)
	EntryUsage(ctx context.Context) ([]store.UsageStats, error)
}

// Collector is a custom Prometheus collector that reads counts from the
// store on each scrape.
type Collector struct {
	src Source
}

// NewCollector creates a collector over the given source.
func NewCollector(src Source) *Collector {
	return &Collector{src: src}
}

// Describe sends the metric descriptors to the channel.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- queriesDesc
	ch <- usageDesc
}

// Collect queries the store and emits one counter per row.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	outcomes, err := c.src.QueryOutcomes(ctx)
	if err != nil {
		slog.Error("failed to collect query outcome metrics", "error", err)
	}
	for _, o := range outcomes {
		ch <- prometheus.MustNewConstMetric(queriesDesc, prometheus.CounterValue,
			float64(o.Count), o.Language, o.Outcome)
	}

	usage, err := c.src.EntryUsage(ctx)
	if err != nil {
		slog.Error("failed to collect entry usage metrics", "error", err)
	}
	for _, u := range usage {
		ch <- prometheus.MustNewConstMetric(usageDesc, prometheus.CounterValue,
			float64(u.Usage), u.Category, u.Language)
	}
}

// WriteText registers a collector on a fresh registry and writes the text
// exposition format to w.
func WriteText(w io.Writer, src Source) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewCollector(src)); err != nil {
		return err
	}

	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
