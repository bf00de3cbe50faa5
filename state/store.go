package state

import "context"

// Store is the snapshot slice of the unified store interface. Backends
// satisfy it through the same method set declared on store.Store.
type Store interface {
	SaveSnapshot(ctx context.Context, snap *Snapshot) error
	LatestSnapshot(ctx context.Context) (*Snapshot, error)
}
