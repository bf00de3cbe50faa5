package store

import (
	"context"
	"time"

	"github.com/xraph/token/event"
	"github.com/xraph/token/state"
)

// Store is the unified storage interface for the token ledger's
// persistence layer: the append-only notification journal and periodic
// state snapshots. Instead of embedding the per-domain sub-interfaces,
// all methods are declared explicitly to avoid naming conflicts.
type Store interface {
	// Event journal methods
	AppendEvents(ctx context.Context, records []*event.Record) error
	QueryEvents(ctx context.Context, opts event.QueryOpts) ([]*event.Record, error)
	PurgeEvents(ctx context.Context, before time.Time) (int64, error)

	// Snapshot methods
	SaveSnapshot(ctx context.Context, snap *state.Snapshot) error
	LatestSnapshot(ctx context.Context) (*state.Snapshot, error)

	// Core methods
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
