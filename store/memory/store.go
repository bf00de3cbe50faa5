package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xraph/token"
	"github.com/xraph/token/event"
	"github.com/xraph/token/state"
)

type Store struct {
	mu sync.RWMutex

	// Append-only notification journal
	records []event.Record

	// Snapshot history, oldest first
	snapshots []*state.Snapshot
}

func New() *Store {
	return &Store{
		records: make([]event.Record, 0),
	}
}

// Event journal implementation
func (s *Store) AppendEvents(_ context.Context, records []*event.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		s.records = append(s.records, *r)
	}
	return nil
}

func (s *Store) QueryEvents(_ context.Context, opts event.QueryOpts) ([]*event.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*event.Record, 0)
	for i := range s.records {
		r := s.records[i]
		if !matches(&r, opts) {
			continue
		}
		result = append(result, &r)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Seq < result[j].Seq })

	// Apply limit/offset
	start := opts.Offset
	if start > len(result) {
		start = len(result)
	}
	end := start + opts.Limit
	if opts.Limit == 0 || end > len(result) {
		end = len(result)
	}

	return result[start:end], nil
}

func (s *Store) PurgeEvents(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	kept := make([]event.Record, 0, len(s.records))
	for _, r := range s.records {
		if r.Timestamp.Before(before) {
			count++
		} else {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return count, nil
}

// Snapshot implementation
func (s *Store) SaveSnapshot(_ context.Context, snap *state.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, snap.Clone())
	return nil
}

func (s *Store) LatestSnapshot(_ context.Context) (*state.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.snapshots) == 0 {
		return nil, token.ErrSnapshotNotFound
	}
	return s.snapshots[len(s.snapshots)-1].Clone(), nil
}

// Store management
func (s *Store) Migrate(_ context.Context) error {
	return nil // No migration needed for memory store
}

func (s *Store) Ping(_ context.Context) error {
	return nil // Always available
}

func (s *Store) Close() error {
	return nil // Nothing to close; data stays readable for inspection
}

// matches applies every set filter in opts to r. Identity filters match
// any participant field.
func matches(r *event.Record, opts event.QueryOpts) bool {
	if opts.Kind != "" && r.Kind != opts.Kind {
		return false
	}
	if !opts.Identity.IsNull() {
		if r.From != opts.Identity && r.To != opts.Identity &&
			r.Owner != opts.Identity && r.Spender != opts.Identity {
			return false
		}
	}
	if opts.SinceSeq > 0 && r.Seq < opts.SinceSeq {
		return false
	}
	if !opts.Start.IsZero() && r.Timestamp.Before(opts.Start) {
		return false
	}
	if !opts.End.IsZero() && !r.Timestamp.Before(opts.End) {
		return false
	}
	return true
}
