package event

import (
	"context"
	"time"

	"github.com/xraph/token/types"
)

// Store is the journal slice of the unified store interface. Backends
// satisfy it through the same method set declared on store.Store.
type Store interface {
	AppendEvents(ctx context.Context, records []*Record) error
	QueryEvents(ctx context.Context, opts QueryOpts) ([]*Record, error)
	PurgeEvents(ctx context.Context, before time.Time) (int64, error)
}

// QueryOpts filters record queries. The zero value matches everything.
// Identity filters match any participant field of the record (From, To,
// Owner or Spender).
type QueryOpts struct {
	Kind     Kind
	Identity types.Identity
	SinceSeq uint64
	Start    time.Time
	End      time.Time
	Limit    int
	Offset   int
}
