package extension

import (
	"time"

	"github.com/xraph/token"
	"github.com/xraph/token/plugin"
	"github.com/xraph/token/store"
	"github.com/xraph/token/types"
)

// Option configures the token Forge extension.
type Option func(*Extension)

// WithStore sets the store for the ledger engine.
func WithStore(s store.Store) Option {
	return func(e *Extension) {
		e.store = s
	}
}

// WithLedgerOption passes a token.Option through to the underlying engine.
func WithLedgerOption(opt token.Option) Option {
	return func(e *Extension) {
		e.ledgerOpts = append(e.ledgerOpts, opt)
	}
}

// WithPlugin registers a ledger plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(e *Extension) {
		e.ledgerOpts = append(e.ledgerOpts, token.WithPlugin(p))
	}
}

// WithConfig sets the Forge extension configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extension) { e.config = cfg }
}

// WithToken sets the token's display name and ticker symbol.
func WithToken(name, symbol string) Option {
	return func(e *Extension) {
		e.config.Name = name
		e.config.Symbol = symbol
	}
}

// WithCreator sets the identity that receives the initial supply.
func WithCreator(creator types.Identity) Option {
	return func(e *Extension) { e.config.Creator = creator.String() }
}

// WithDisableMigrate prevents auto-migration on start.
func WithDisableMigrate() Option {
	return func(e *Extension) { e.config.DisableMigrate = true }
}

// WithRestore loads the latest persisted snapshot from the store instead
// of creating a fresh ledger.
func WithRestore() Option {
	return func(e *Extension) { e.config.Restore = true }
}

// WithRequireConfig requires config to be present in YAML files.
// If true and no config is found, Register returns an error.
func WithRequireConfig(require bool) Option {
	return func(e *Extension) { e.config.RequireConfig = require }
}

// WithJournalBatchSize sets the number of records to buffer before flushing.
func WithJournalBatchSize(size int) Option {
	return func(e *Extension) { e.config.JournalBatchSize = size }
}

// WithJournalFlushInterval sets how frequently the journal buffer is flushed.
func WithJournalFlushInterval(d time.Duration) Option {
	return func(e *Extension) { e.config.JournalFlushInterval = d }
}
