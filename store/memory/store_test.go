package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xraph/token"
	"github.com/xraph/token/event"
	"github.com/xraph/token/state"
	"github.com/xraph/token/store/memory"
	"github.com/xraph/token/types"
)

func seedRecords(t *testing.T, s *memory.Store, a, b types.Identity) {
	t.Helper()
	ctx := context.Background()

	records := []*event.Record{
		event.NewTransfer(types.Null, a, types.Tokens(100), 1),
		event.NewTransfer(a, b, types.Tokens(10), 2),
		event.NewApproval(a, b, types.Tokens(5), 3),
		event.NewTransfer(b, types.Null, types.Tokens(1), 4),
	}
	if err := s.AppendEvents(ctx, records); err != nil {
		t.Fatalf("AppendEvents: %v", err)
	}
}

func TestQueryEventsFilters(t *testing.T) {
	s := memory.New()
	a, b := types.NewIdentity(), types.NewIdentity()
	seedRecords(t, s, a, b)
	ctx := context.Background()

	tests := []struct {
		name string
		opts event.QueryOpts
		want int
	}{
		{"All", event.QueryOpts{}, 4},
		{"Transfers", event.QueryOpts{Kind: event.KindTransfer}, 3},
		{"Approvals", event.QueryOpts{Kind: event.KindApproval}, 1},
		{"By identity a", event.QueryOpts{Identity: a}, 3},
		{"By identity b", event.QueryOpts{Identity: b}, 3},
		{"Since seq 3", event.QueryOpts{SinceSeq: 3}, 2},
		{"Limit", event.QueryOpts{Limit: 2}, 2},
		{"Offset past end", event.QueryOpts{Offset: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.QueryEvents(ctx, tt.opts)
			if err != nil {
				t.Fatalf("QueryEvents: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestQueryEventsOrderedBySeq(t *testing.T) {
	s := memory.New()
	a, b := types.NewIdentity(), types.NewIdentity()
	seedRecords(t, s, a, b)

	got, err := s.QueryEvents(context.Background(), event.QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Seq <= got[i-1].Seq {
			t.Fatalf("records not ordered by seq: %d then %d", got[i-1].Seq, got[i].Seq)
		}
	}
}

func TestPurgeEvents(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	old := event.NewTransfer(types.NewIdentity(), types.NewIdentity(), types.Tokens(1), 1)
	old.Timestamp = time.Now().UTC().Add(-time.Hour)
	recent := event.NewTransfer(types.NewIdentity(), types.NewIdentity(), types.Tokens(1), 2)

	if err := s.AppendEvents(ctx, []*event.Record{old, recent}); err != nil {
		t.Fatal(err)
	}

	count, err := s.PurgeEvents(ctx, time.Now().UTC().Add(-time.Minute))
	if err != nil {
		t.Fatalf("PurgeEvents: %v", err)
	}
	if count != 1 {
		t.Errorf("purged %d, want 1", count)
	}

	remaining, err := s.QueryEvents(ctx, event.QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].Seq != 2 {
		t.Errorf("unexpected remaining records: %v", remaining)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	if _, err := s.LatestSnapshot(ctx); !errors.Is(err, token.ErrSnapshotNotFound) {
		t.Fatalf("empty store: got %v, want ErrSnapshotNotFound", err)
	}

	owner, spender := types.NewIdentity(), types.NewIdentity()
	snap := state.New("Testcoin", "TST", types.Decimals)
	snap.Supply = types.Tokens(100)
	snap.Balances[owner] = types.Tokens(100)
	snap.Allowances[state.Pair{Owner: owner, Spender: spender}] = types.Tokens(5)
	snap.Seq = 7

	if err := s.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := s.LatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if !got.Equal(snap) {
		t.Error("restored snapshot differs from saved")
	}

	// Mutating the saved snapshot must not affect the stored copy.
	snap.Balances[spender] = types.Tokens(1)
	got2, err := s.LatestSnapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got2.Balances) != 1 {
		t.Error("store returned aliased snapshot state")
	}
}

func TestLatestSnapshotReturnsNewest(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	first := state.New("Testcoin", "TST", types.Decimals)
	first.Seq = 1
	second := state.New("Testcoin", "TST", types.Decimals)
	second.Seq = 2

	if err := s.SaveSnapshot(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := s.LatestSnapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Seq != 2 {
		t.Errorf("got seq %d, want 2", got.Seq)
	}
}

func TestCloseKeepsDataReadable(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	a, b := types.NewIdentity(), types.NewIdentity()
	seedRecords(t, s, a, b)

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := s.QueryEvents(ctx, event.QueryOpts{})
	if err != nil {
		t.Fatalf("QueryEvents after close: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("got %d records after close, want 4", len(got))
	}
}
