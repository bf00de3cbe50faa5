// Package observability provides a metrics extension for the token
// ledger that records operation counts via a MetricFactory.
package observability

import (
	"context"
	"time"

	"github.com/xraph/token/event"
	"github.com/xraph/token/plugin"
)

// Ensure MetricsExtension implements required interfaces.
var (
	_ plugin.Plugin           = (*MetricsExtension)(nil)
	_ plugin.OnInit           = (*MetricsExtension)(nil)
	_ plugin.OnTransfer       = (*MetricsExtension)(nil)
	_ plugin.OnApproval       = (*MetricsExtension)(nil)
	_ plugin.OnMint           = (*MetricsExtension)(nil)
	_ plugin.OnBurn           = (*MetricsExtension)(nil)
	_ plugin.OnJournalFlushed = (*MetricsExtension)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// Histogram interface for metric histograms.
type Histogram interface {
	Observe(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// MetricsExtension records system-wide ledger metrics.
// Register it as a plugin to automatically track token operations.
type MetricsExtension struct {
	factory MetricFactory

	// Operation metrics
	Transfers Counter
	Approvals Counter
	Mints     Counter
	Burns     Counter

	// Journal metrics
	JournalRecords      Counter
	JournalBatchSize    Histogram
	JournalFlushLatency Histogram

	// Error metrics
	StoreErrors  Counter
	PluginErrors Counter
}

// NewMetricsExtension creates a MetricsExtension with the provided MetricFactory.
// Use app.Metrics() in forge extensions.
func NewMetricsExtension(factory MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		factory: factory,

		// Operation metrics
		Transfers: factory.Counter("token.transfer.completed"),
		Approvals: factory.Counter("token.approval.set"),
		Mints:     factory.Counter("token.supply.minted"),
		Burns:     factory.Counter("token.supply.burned"),

		// Journal metrics
		JournalRecords:      factory.Counter("token.journal.records"),
		JournalBatchSize:    factory.Histogram("token.journal.batch.size"),
		JournalFlushLatency: factory.Histogram("token.journal.flush.latency_ms"),

		// Error metrics
		StoreErrors:  factory.Counter("token.store.errors"),
		PluginErrors: factory.Counter("token.plugin.errors"),
	}
}

// Name implements plugin.Plugin.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnInit implements plugin.OnInit.
func (m *MetricsExtension) OnInit(_ context.Context, _ interface{}) error {
	// No initialization needed
	return nil
}

// ──────────────────────────────────────────────────
// Operation hooks
// ──────────────────────────────────────────────────

// OnTransfer implements plugin.OnTransfer.
func (m *MetricsExtension) OnTransfer(_ context.Context, _ *event.Record) error {
	m.Transfers.Inc()
	return nil
}

// OnApproval implements plugin.OnApproval.
func (m *MetricsExtension) OnApproval(_ context.Context, _ *event.Record) error {
	m.Approvals.Inc()
	return nil
}

// OnMint implements plugin.OnMint.
func (m *MetricsExtension) OnMint(_ context.Context, _ *event.Record) error {
	m.Mints.Inc()
	return nil
}

// OnBurn implements plugin.OnBurn.
func (m *MetricsExtension) OnBurn(_ context.Context, _ *event.Record) error {
	m.Burns.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Journal hooks
// ──────────────────────────────────────────────────

// OnJournalFlushed implements plugin.OnJournalFlushed.
func (m *MetricsExtension) OnJournalFlushed(_ context.Context, count int, elapsed time.Duration) error {
	m.JournalRecords.Add(float64(count))
	m.JournalBatchSize.Observe(float64(count))
	m.JournalFlushLatency.Observe(float64(elapsed.Milliseconds()))
	return nil
}
