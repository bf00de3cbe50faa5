// Package plugin provides an extensible plugin system for the token ledger.
// Plugins can hook into operation and lifecycle events to extend functionality.
package plugin

import (
	"context"
	"time"

	"github.com/xraph/token/event"
)

// Plugin is the base interface that all plugins must implement.
type Plugin interface {
	Name() string
}

// ──────────────────────────────────────────────────
// Lifecycle hooks
// ──────────────────────────────────────────────────

// OnInit is called when the ledger starts. The ledger instance is passed
// as an opaque value to avoid an import cycle with the root package.
type OnInit interface {
	Plugin
	OnInit(ctx context.Context, ledger interface{}) error
}

// OnShutdown is called when the ledger is shutting down.
type OnShutdown interface {
	Plugin
	OnShutdown(ctx context.Context) error
}

// ──────────────────────────────────────────────────
// Operation hooks
// ──────────────────────────────────────────────────

// OnTransfer is called after a successful transfer between two accounts.
// Mint and burn have their own hooks and do not fire OnTransfer.
type OnTransfer interface {
	Plugin
	OnTransfer(ctx context.Context, rec *event.Record) error
}

// OnApproval is called after a successful allowance change.
type OnApproval interface {
	Plugin
	OnApproval(ctx context.Context, rec *event.Record) error
}

// OnMint is called after a successful mint. The record is a Transfer
// with From set to the null identity.
type OnMint interface {
	Plugin
	OnMint(ctx context.Context, rec *event.Record) error
}

// OnBurn is called after a successful burn. The record is a Transfer
// with To set to the null identity.
type OnBurn interface {
	Plugin
	OnBurn(ctx context.Context, rec *event.Record) error
}

// ──────────────────────────────────────────────────
// Journal hooks
// ──────────────────────────────────────────────────

// OnJournalFlushed is called when buffered records are flushed to the store.
type OnJournalFlushed interface {
	Plugin
	OnJournalFlushed(ctx context.Context, count int, elapsed time.Duration) error
}
