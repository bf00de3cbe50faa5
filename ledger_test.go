package token_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xraph/token"
	"github.com/xraph/token/event"
	"github.com/xraph/token/store/memory"
	"github.com/xraph/token/types"
)

// newLedger builds an unstarted in-memory ledger with a fresh creator.
func newLedger(t *testing.T) (*token.Ledger, types.Identity) {
	t.Helper()
	creator := types.NewIdentity()
	l, err := token.New(nil, "Testcoin", "TST", creator)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, creator
}

func mustTransfer(t *testing.T, l *token.Ledger, from, to types.Identity, v types.Amount) {
	t.Helper()
	ok, err := l.Transfer(context.Background(), from, to, v)
	if err != nil || !ok {
		t.Fatalf("Transfer: ok=%v err=%v", ok, err)
	}
}

func mustApprove(t *testing.T, l *token.Ledger, owner, spender types.Identity, v types.Amount) {
	t.Helper()
	ok, err := l.Approve(context.Background(), owner, spender, v)
	if err != nil || !ok {
		t.Fatalf("Approve: ok=%v err=%v", ok, err)
	}
}

func checkConservation(t *testing.T, l *token.Ledger) {
	t.Helper()
	if err := l.VerifyConservation(); err != nil {
		t.Fatalf("conservation violated: %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	creator := types.NewIdentity()

	tests := []struct {
		name    string
		tkName  string
		symbol  string
		creator types.Identity
		wantErr error
	}{
		{"Valid", "Testcoin", "TST", creator, nil},
		{"Empty name", "", "TST", creator, token.ErrEmptyMetadata},
		{"Empty symbol", "Testcoin", "", creator, token.ErrEmptyMetadata},
		{"Null creator", "Testcoin", "TST", types.Null, token.ErrInvalidCreator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := token.New(nil, tt.tkName, tt.symbol, tt.creator)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenesis(t *testing.T) {
	l, creator := newLedger(t)

	want := types.Tokens(100)
	if got := l.BalanceOf(creator); !got.Equal(want) {
		t.Errorf("creator balance: got %s, want %s", got, want)
	}
	if got := l.TotalSupply(); !got.Equal(want) {
		t.Errorf("total supply: got %s, want %s", got, want)
	}
	if l.Name() != "Testcoin" || l.Symbol() != "TST" || l.Decimals() != 18 {
		t.Errorf("metadata: %s %s %d", l.Name(), l.Symbol(), l.Decimals())
	}
	checkConservation(t, l)
}

func TestBalanceOfUnknownIsZero(t *testing.T) {
	l, _ := newLedger(t)

	if got := l.BalanceOf(types.NewIdentity()); !got.IsZero() {
		t.Errorf("unknown balance: got %s, want 0", got)
	}
	if got := l.Allowance(types.NewIdentity(), types.NewIdentity()); !got.IsZero() {
		t.Errorf("unknown allowance: got %s, want 0", got)
	}
}

func TestTransfer(t *testing.T) {
	l, a := newLedger(t)
	b := types.NewIdentity()
	ctx := context.Background()

	ok, err := l.Transfer(ctx, a, b, types.Tokens(10))
	if err != nil || !ok {
		t.Fatalf("Transfer: ok=%v err=%v", ok, err)
	}

	if got := l.BalanceOf(a); !got.Equal(types.Tokens(90)) {
		t.Errorf("sender balance: got %s", got)
	}
	if got := l.BalanceOf(b); !got.Equal(types.Tokens(10)) {
		t.Errorf("recipient balance: got %s", got)
	}
	checkConservation(t, l)
}

func TestTransferFailures(t *testing.T) {
	l, a := newLedger(t)
	b := types.NewIdentity()
	poor := types.NewIdentity()
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  types.Identity
		to      types.Identity
		value   types.Amount
		wantErr error
	}{
		{"Insufficient balance", poor, b, types.Tokens(1), token.ErrInsufficientBalance},
		{"Over balance", a, b, types.Tokens(101), token.ErrInsufficientBalance},
		{"Null recipient", a, types.Null, types.Tokens(5), token.ErrInvalidRecipient},
		{"Balance checked before recipient", poor, types.Null, types.Tokens(1), token.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := l.Snapshot()

			ok, err := l.Transfer(ctx, tt.caller, tt.to, tt.value)
			if ok || !errors.Is(err, tt.wantErr) {
				t.Fatalf("got ok=%v err=%v, want %v", ok, err, tt.wantErr)
			}

			// Atomicity: nothing changed.
			if !l.Snapshot().Equal(before) {
				t.Error("failed operation mutated state")
			}
		})
	}
}

func TestTransferZeroValue(t *testing.T) {
	l, a := newLedger(t)
	b := types.NewIdentity()

	// Zero-value transfer succeeds, even from an empty account.
	mustTransfer(t, l, b, a, types.Zero())
	mustTransfer(t, l, a, b, types.Zero())
	if got := l.BalanceOf(b); !got.IsZero() {
		t.Errorf("balance after zero transfers: %s", got)
	}
	checkConservation(t, l)
}

func TestTransferToSelf(t *testing.T) {
	l, a := newLedger(t)

	mustTransfer(t, l, a, a, types.Tokens(5))
	if got := l.BalanceOf(a); !got.Equal(types.Tokens(100)) {
		t.Errorf("self-transfer changed balance: %s", got)
	}
	checkConservation(t, l)
}

func TestApproveAndAllowance(t *testing.T) {
	l, a := newLedger(t)
	c := types.NewIdentity()

	mustApprove(t, l, a, c, types.Tokens(30))
	if got := l.Allowance(a, c); !got.Equal(types.Tokens(30)) {
		t.Errorf("allowance: got %s", got)
	}
	// Reverse direction is independent.
	if got := l.Allowance(c, a); !got.IsZero() {
		t.Errorf("reverse allowance: got %s", got)
	}
}

func TestApproveOverwrites(t *testing.T) {
	l, a := newLedger(t)
	c := types.NewIdentity()

	mustApprove(t, l, a, c, types.Tokens(30))
	mustApprove(t, l, a, c, types.Tokens(7))

	// Overwrite, not accumulate.
	if got := l.Allowance(a, c); !got.Equal(types.Tokens(7)) {
		t.Errorf("allowance after second approve: got %s, want 7 tokens", got)
	}
}

func TestApproveFailures(t *testing.T) {
	l, a := newLedger(t)
	c := types.NewIdentity()
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  types.Identity
		spender types.Identity
		value   types.Amount
		wantErr error
	}{
		// The approval ceiling is the caller's current balance.
		{"Over balance", a, c, types.Tokens(101), token.ErrInsufficientBalance},
		{"No balance at all", c, a, types.Tokens(1), token.ErrInsufficientBalance},
		{"Null spender", a, types.Null, types.Tokens(5), token.ErrInvalidSpender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := l.Snapshot()

			ok, err := l.Approve(ctx, tt.caller, tt.spender, tt.value)
			if ok || !errors.Is(err, tt.wantErr) {
				t.Fatalf("got ok=%v err=%v, want %v", ok, err, tt.wantErr)
			}
			if !l.Snapshot().Equal(before) {
				t.Error("failed operation mutated state")
			}
		})
	}
}

func TestTransferFrom(t *testing.T) {
	l, a := newLedger(t)
	c, d := types.NewIdentity(), types.NewIdentity()
	ctx := context.Background()

	mustApprove(t, l, a, c, types.Tokens(100))

	ok, err := l.TransferFrom(ctx, c, a, d, types.Tokens(40))
	if err != nil || !ok {
		t.Fatalf("TransferFrom: ok=%v err=%v", ok, err)
	}

	if got := l.BalanceOf(a); !got.Equal(types.Tokens(60)) {
		t.Errorf("owner balance: got %s", got)
	}
	if got := l.BalanceOf(d); !got.Equal(types.Tokens(40)) {
		t.Errorf("recipient balance: got %s", got)
	}
	// Exact decrement: 100 - 40 = 60.
	if got := l.Allowance(a, c); !got.Equal(types.Tokens(60)) {
		t.Errorf("allowance: got %s, want 60 tokens", got)
	}
	checkConservation(t, l)
}

func TestTransferFromAllowanceIsolation(t *testing.T) {
	l, a := newLedger(t)
	c, c2, d := types.NewIdentity(), types.NewIdentity(), types.NewIdentity()
	ctx := context.Background()

	mustApprove(t, l, a, c, types.Tokens(50))
	mustApprove(t, l, a, c2, types.Tokens(50))

	if _, err := l.TransferFrom(ctx, c, a, d, types.Tokens(20)); err != nil {
		t.Fatal(err)
	}

	// Another spender's allowance on the same owner is untouched.
	if got := l.Allowance(a, c2); !got.Equal(types.Tokens(50)) {
		t.Errorf("other spender allowance: got %s, want 50 tokens", got)
	}
}

func TestTransferFromFailures(t *testing.T) {
	l, a := newLedger(t)
	c, d := types.NewIdentity(), types.NewIdentity()
	ctx := context.Background()

	mustApprove(t, l, a, c, types.Tokens(30))

	t.Run("InsufficientAllowance", func(t *testing.T) {
		before := l.Snapshot()

		ok, err := l.TransferFrom(ctx, c, a, d, types.Tokens(50))
		if ok || !errors.Is(err, token.ErrInsufficientAllowance) {
			t.Fatalf("got ok=%v err=%v", ok, err)
		}
		if !l.Snapshot().Equal(before) {
			t.Error("failed operation mutated state")
		}
	})

	t.Run("AllowanceCheckedBeforeBalance", func(t *testing.T) {
		// Spender with no allowance against an owner with no balance:
		// the allowance error wins.
		ok, err := l.TransferFrom(ctx, d, c, d, types.Tokens(1))
		if ok || !errors.Is(err, token.ErrInsufficientAllowance) {
			t.Fatalf("got ok=%v err=%v", ok, err)
		}
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		// Allowance covers the value but the owner's balance does not.
		b := types.NewIdentity()
		mustTransfer(t, l, a, b, types.Tokens(5))
		mustApprove(t, l, b, c, types.Tokens(5))
		mustTransfer(t, l, b, a, types.Tokens(3))

		before := l.Snapshot()
		ok, err := l.TransferFrom(ctx, c, b, d, types.Tokens(5))
		if ok || !errors.Is(err, token.ErrInsufficientBalance) {
			t.Fatalf("got ok=%v err=%v", ok, err)
		}
		if !l.Snapshot().Equal(before) {
			t.Error("failed operation mutated state")
		}
	})
}

func TestTransferFromNullRecipientAllowed(t *testing.T) {
	l, a := newLedger(t)
	c := types.NewIdentity()
	ctx := context.Background()

	mustApprove(t, l, a, c, types.Tokens(10))

	// Unlike Transfer, TransferFrom does not reject the null recipient.
	ok, err := l.TransferFrom(ctx, c, a, types.Null, types.Tokens(10))
	if err != nil || !ok {
		t.Fatalf("TransferFrom to null: ok=%v err=%v", ok, err)
	}

	if got := l.BalanceOf(a); !got.Equal(types.Tokens(90)) {
		t.Errorf("owner balance: got %s", got)
	}
	// Supply is untouched: the funds sit on the null identity.
	if got := l.TotalSupply(); !got.Equal(types.Tokens(100)) {
		t.Errorf("supply: got %s", got)
	}
	checkConservation(t, l)
}

func TestMint(t *testing.T) {
	l, a := newLedger(t)
	b := types.NewIdentity()
	ctx := context.Background()

	// Any non-null identity may mint to itself, even with no balance.
	if err := l.Mint(ctx, b, types.Tokens(7)); err != nil {
		t.Fatalf("Mint: %v", err)
	}

	if got := l.BalanceOf(b); !got.Equal(types.Tokens(7)) {
		t.Errorf("minter balance: got %s", got)
	}
	if got := l.TotalSupply(); !got.Equal(types.Tokens(107)) {
		t.Errorf("supply: got %s", got)
	}
	if got := l.BalanceOf(a); !got.Equal(types.Tokens(100)) {
		t.Errorf("creator balance changed: %s", got)
	}
	checkConservation(t, l)
}

func TestMintFailures(t *testing.T) {
	l, a := newLedger(t)
	ctx := context.Background()

	t.Run("NullCaller", func(t *testing.T) {
		if err := l.Mint(ctx, types.Null, types.Tokens(1)); !errors.Is(err, token.ErrInvalidAccount) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("SupplyOverflow", func(t *testing.T) {
		b := types.NewIdentity()
		headroom, err := types.MaxAmount().Sub(l.TotalSupply())
		if err != nil {
			t.Fatal(err)
		}
		if err := l.Mint(ctx, b, headroom); err != nil {
			t.Fatalf("mint to max: %v", err)
		}

		before := l.Snapshot()
		if err := l.Mint(ctx, b, types.New(1)); !errors.Is(err, token.ErrAmountOverflow) {
			t.Fatalf("got %v, want overflow", err)
		}
		if !l.Snapshot().Equal(before) {
			t.Error("failed mint mutated state")
		}
		_ = a
		checkConservation(t, l)
	})
}

func TestBurn(t *testing.T) {
	l, a := newLedger(t)
	ctx := context.Background()

	if err := l.Burn(ctx, a, types.Tokens(40)); err != nil {
		t.Fatalf("Burn: %v", err)
	}

	if got := l.BalanceOf(a); !got.Equal(types.Tokens(60)) {
		t.Errorf("balance: got %s", got)
	}
	if got := l.TotalSupply(); !got.Equal(types.Tokens(60)) {
		t.Errorf("supply: got %s", got)
	}
	checkConservation(t, l)
}

func TestBurnBeyondBalance(t *testing.T) {
	l, a := newLedger(t)
	ctx := context.Background()

	over, err := l.BalanceOf(a).Add(types.New(1))
	if err != nil {
		t.Fatal(err)
	}

	before := l.Snapshot()
	if err := l.Burn(ctx, a, over); !errors.Is(err, token.ErrInsufficientBalance) {
		t.Fatalf("got %v", err)
	}
	if !l.Snapshot().Equal(before) {
		t.Error("failed burn mutated state")
	}
	if got := l.TotalSupply(); !got.Equal(types.Tokens(100)) {
		t.Errorf("supply changed: %s", got)
	}
}

func TestBurnFrom(t *testing.T) {
	l, a := newLedger(t)
	c := types.NewIdentity()
	ctx := context.Background()

	mustApprove(t, l, a, c, types.Tokens(50))

	if err := l.BurnFrom(ctx, c, a, types.Tokens(20)); err != nil {
		t.Fatalf("BurnFrom: %v", err)
	}

	if got := l.BalanceOf(a); !got.Equal(types.Tokens(80)) {
		t.Errorf("balance: got %s", got)
	}
	if got := l.TotalSupply(); !got.Equal(types.Tokens(80)) {
		t.Errorf("supply: got %s", got)
	}
	if got := l.Allowance(a, c); !got.Equal(types.Tokens(30)) {
		t.Errorf("allowance: got %s, want 30 tokens", got)
	}
	checkConservation(t, l)
}

func TestBurnFromFailures(t *testing.T) {
	l, a := newLedger(t)
	c := types.NewIdentity()
	ctx := context.Background()

	mustApprove(t, l, a, c, types.Tokens(10))

	tests := []struct {
		name    string
		caller  types.Identity
		account types.Identity
		amount  types.Amount
		wantErr error
	}{
		{"Insufficient allowance", c, a, types.Tokens(11), token.ErrInsufficientAllowance},
		{"No allowance", a, c, types.Tokens(1), token.ErrInsufficientAllowance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := l.Snapshot()

			err := l.BurnFrom(ctx, tt.caller, tt.account, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			if !l.Snapshot().Equal(before) {
				t.Error("failed operation mutated state")
			}
		})
	}
}

func TestConservationUnderMixedOps(t *testing.T) {
	l, a := newLedger(t)
	b, c := types.NewIdentity(), types.NewIdentity()
	ctx := context.Background()

	mustTransfer(t, l, a, b, types.Tokens(25))
	mustApprove(t, l, b, c, types.Tokens(25))
	if _, err := l.TransferFrom(ctx, c, b, c, types.Tokens(10)); err != nil {
		t.Fatal(err)
	}
	if err := l.Mint(ctx, c, types.Tokens(3)); err != nil {
		t.Fatal(err)
	}
	if err := l.Burn(ctx, a, types.Tokens(5)); err != nil {
		t.Fatal(err)
	}
	if err := l.BurnFrom(ctx, c, b, types.Tokens(5)); err != nil {
		t.Fatal(err)
	}

	checkConservation(t, l)
	if got := l.TotalSupply(); !got.Equal(types.Tokens(93)) {
		t.Errorf("supply: got %s, want 93 tokens", got)
	}
}

func TestSequenceNumbersMonotonic(t *testing.T) {
	l, a := newLedger(t)
	b := types.NewIdentity()

	start := l.Seq()
	mustTransfer(t, l, a, b, types.Tokens(1))
	mustApprove(t, l, a, b, types.Tokens(1))

	if got := l.Seq(); got != start+2 {
		t.Errorf("seq: got %d, want %d", got, start+2)
	}
}

func TestJournalPersistsRecords(t *testing.T) {
	s := memory.New()
	creator := types.NewIdentity()

	l, err := token.New(s, "Testcoin", "TST", creator,
		token.WithJournalConfig(2, 10*time.Millisecond),
	)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := l.Start(ctx); err != nil {
		t.Fatal(err)
	}

	b := types.NewIdentity()
	mustTransfer(t, l, creator, b, types.Tokens(10))
	mustApprove(t, l, creator, b, types.Tokens(5))

	if err := l.Stop(); err != nil {
		t.Fatal(err)
	}

	// Stop performs a final flush, so all records are queryable.
	records, err := s.QueryEvents(ctx, event.QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	// Genesis + transfer + approval.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Kind != event.KindTransfer || !records[0].From.IsNull() {
		t.Errorf("first record is not the genesis mint: %+v", records[0])
	}
	if records[2].Kind != event.KindApproval {
		t.Errorf("last record kind: %s", records[2].Kind)
	}

	if l.JournalDropped() != 0 {
		t.Errorf("dropped %d records", l.JournalDropped())
	}
}

func TestStopWritesSnapshotAndLoadRestores(t *testing.T) {
	s := memory.New()
	creator := types.NewIdentity()
	b := types.NewIdentity()
	ctx := context.Background()

	l, err := token.New(s, "Testcoin", "TST", creator)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Start(ctx); err != nil {
		t.Fatal(err)
	}
	mustTransfer(t, l, creator, b, types.Tokens(10))
	mustApprove(t, l, creator, b, types.Tokens(5))
	if err := l.Stop(); err != nil {
		t.Fatal(err)
	}

	restored, err := token.Load(ctx, s)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := restored.BalanceOf(creator); !got.Equal(types.Tokens(90)) {
		t.Errorf("restored creator balance: %s", got)
	}
	if got := restored.BalanceOf(b); !got.Equal(types.Tokens(10)) {
		t.Errorf("restored b balance: %s", got)
	}
	if got := restored.Allowance(creator, b); !got.Equal(types.Tokens(5)) {
		t.Errorf("restored allowance: %s", got)
	}
	if restored.Name() != "Testcoin" || restored.Symbol() != "TST" {
		t.Errorf("restored metadata: %s %s", restored.Name(), restored.Symbol())
	}
	checkConservation(t, restored)
}

func TestLoadWithoutSnapshot(t *testing.T) {
	if _, err := token.Load(context.Background(), memory.New()); !errors.Is(err, token.ErrSnapshotNotFound) {
		t.Errorf("got %v", err)
	}
	if _, err := token.Load(context.Background(), nil); !errors.Is(err, token.ErrStoreNotReady) {
		t.Errorf("nil store: got %v", err)
	}
}

func TestStartStopGuards(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	if err := l.Stop(); !errors.Is(err, token.ErrNotStarted) {
		t.Errorf("Stop before Start: got %v", err)
	}
	if err := l.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if err := l.Start(ctx); !errors.Is(err, token.ErrAlreadyStarted) {
		t.Errorf("second Start: got %v", err)
	}
	if err := l.Stop(); err != nil {
		t.Fatal(err)
	}
}

type recordingPlugin struct {
	transfers []*event.Record
	approvals []*event.Record
	mints     []*event.Record
	burns     []*event.Record
}

func (p *recordingPlugin) Name() string { return "recorder" }

func (p *recordingPlugin) OnTransfer(_ context.Context, rec *event.Record) error {
	p.transfers = append(p.transfers, rec)
	return nil
}

func (p *recordingPlugin) OnApproval(_ context.Context, rec *event.Record) error {
	p.approvals = append(p.approvals, rec)
	return nil
}

func (p *recordingPlugin) OnMint(_ context.Context, rec *event.Record) error {
	p.mints = append(p.mints, rec)
	return nil
}

func (p *recordingPlugin) OnBurn(_ context.Context, rec *event.Record) error {
	p.burns = append(p.burns, rec)
	return nil
}

func TestPluginHooksFire(t *testing.T) {
	rec := &recordingPlugin{}
	creator := types.NewIdentity()

	l, err := token.New(nil, "Testcoin", "TST", creator, token.WithPlugin(rec))
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	b := types.NewIdentity()
	mustTransfer(t, l, creator, b, types.Tokens(10))
	mustApprove(t, l, creator, b, types.Tokens(5))
	if err := l.Mint(ctx, b, types.Tokens(1)); err != nil {
		t.Fatal(err)
	}
	if err := l.Burn(ctx, b, types.Tokens(1)); err != nil {
		t.Fatal(err)
	}

	if len(rec.transfers) != 1 {
		t.Errorf("transfers: got %d, want 1", len(rec.transfers))
	}
	if len(rec.approvals) != 1 {
		t.Errorf("approvals: got %d, want 1", len(rec.approvals))
	}
	if len(rec.mints) != 1 {
		t.Errorf("mints: got %d, want 1", len(rec.mints))
	}
	if len(rec.burns) != 1 {
		t.Errorf("burns: got %d, want 1", len(rec.burns))
	}

	// Transfer records carry the participants and value.
	xfer := rec.transfers[0]
	if xfer.From != creator || xfer.To != b || !xfer.Value.Equal(types.Tokens(10)) {
		t.Errorf("transfer record: %+v", xfer)
	}
	// Mint uses the null identity as source.
	if !rec.mints[0].From.IsNull() || rec.mints[0].To != b {
		t.Errorf("mint record: %+v", rec.mints[0])
	}
	// Burn uses the null identity as destination.
	if rec.burns[0].From != b || !rec.burns[0].To.IsNull() {
		t.Errorf("burn record: %+v", rec.burns[0])
	}
}

func TestTokenInterface(t *testing.T) {
	l, _ := newLedger(t)
	var tk token.Token = l
	if tk.Decimals() != 18 {
		t.Errorf("Decimals via interface: %d", tk.Decimals())
	}
}

func BenchmarkTransfer(b *testing.B) {
	creator := types.NewIdentity()
	l, err := token.New(nil, "Testcoin", "TST", creator)
	if err != nil {
		b.Fatal(err)
	}
	other := types.NewIdentity()
	ctx := context.Background()
	one := types.New(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Transfer(ctx, creator, other, one); err != nil {
			b.Fatal(err)
		}
	}
}
