package token

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xraph/token/event"
	"github.com/xraph/token/plugin"
	"github.com/xraph/token/state"
	"github.com/xraph/token/store"
	"github.com/xraph/token/types"
)

// InitialSupply is the amount credited to the creator at construction:
// 100 whole tokens (100 × 10^18 base units).
var InitialSupply = types.Tokens(100)

// Ledger is the fungible-token accounting engine. All balances,
// allowances and the total supply live in memory under a single mutex;
// every operation is all-or-nothing. An optional store persists the
// notification journal and periodic snapshots in the background;
// persistence never participates in operation atomicity.
type Ledger struct {
	store   store.Store
	plugins *plugin.Registry
	logger  *slog.Logger

	// Immutable metadata
	name   string
	symbol string

	// Accounting state, guarded by mu. Operations serialize on this
	// single mutex so observers never see a partially applied change.
	mu         sync.Mutex
	balances   map[types.Identity]types.Amount
	allowances map[state.Pair]types.Amount
	supply     types.Amount
	seq        uint64
	started    bool

	// Background journal worker
	journalBuffer chan *event.Record
	stopChan      chan struct{}
	wg            sync.WaitGroup
	dropped       atomic.Uint64

	// Configuration
	journalBatchSize     int
	journalFlushInterval time.Duration
	disableMigrate       bool
}

// New creates a Ledger and mints InitialSupply to creator, recording a
// Transfer from the null identity. The store may be nil for a purely
// in-memory ledger. Construction is one-time: there is no
// re-initialization entry point.
func New(s store.Store, name, symbol string, creator types.Identity, opts ...Option) (*Ledger, error) {
	if name == "" || symbol == "" {
		return nil, ErrEmptyMetadata
	}
	if creator.IsNull() {
		return nil, ErrInvalidCreator
	}

	l := &Ledger{
		store:                s,
		plugins:              plugin.NewRegistry(),
		logger:               slog.Default(),
		name:                 name,
		symbol:               symbol,
		balances:             make(map[types.Identity]types.Amount),
		allowances:           make(map[state.Pair]types.Amount),
		journalBuffer:        make(chan *event.Record, 10000),
		stopChan:             make(chan struct{}),
		journalBatchSize:     100,
		journalFlushInterval: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(l)
	}

	// Genesis credit. The journal record is buffered here and flushed
	// once Start launches the worker.
	l.balances[creator] = InitialSupply
	l.supply = InitialSupply
	l.seq = 1
	l.journal(event.NewTransfer(types.Null, creator, InitialSupply, l.seq))

	return l, nil
}

// Load rebuilds a Ledger from the most recent snapshot in the store.
func Load(ctx context.Context, s store.Store, opts ...Option) (*Ledger, error) {
	if s == nil {
		return nil, ErrStoreNotReady
	}

	snap, err := s.LatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		store:                s,
		plugins:              plugin.NewRegistry(),
		logger:               slog.Default(),
		name:                 snap.Name,
		symbol:               snap.Symbol,
		balances:             make(map[types.Identity]types.Amount, len(snap.Balances)),
		allowances:           make(map[state.Pair]types.Amount, len(snap.Allowances)),
		supply:               snap.Supply,
		seq:                  snap.Seq,
		journalBuffer:        make(chan *event.Record, 10000),
		stopChan:             make(chan struct{}),
		journalBatchSize:     100,
		journalFlushInterval: 5 * time.Second,
	}
	for k, v := range snap.Balances {
		l.balances[k] = v
	}
	for k, v := range snap.Allowances {
		l.allowances[k] = v
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Option configures a Ledger instance.
type Option func(*Ledger)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
		l.plugins.WithLogger(logger)
	}
}

// WithPlugin registers a plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(l *Ledger) {
		_ = l.plugins.Register(p) //nolint:errcheck // best-effort plugin registration during init
	}
}

// WithJournalConfig configures journal batching parameters.
func WithJournalConfig(batchSize int, flushInterval time.Duration) Option {
	return func(l *Ledger) {
		l.journalBatchSize = batchSize
		l.journalFlushInterval = flushInterval
	}
}

// WithoutMigrate skips store migration during Start. Use when the schema
// is managed externally.
func WithoutMigrate() Option {
	return func(l *Ledger) {
		l.disableMigrate = true
	}
}

// Start migrates the store and begins the background journal worker.
func (l *Ledger) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return ErrAlreadyStarted
	}
	l.started = true
	l.mu.Unlock()

	if l.store != nil && !l.disableMigrate {
		if err := l.store.Migrate(ctx); err != nil {
			return err
		}
	}

	// Initialize plugins
	l.plugins.EmitInit(ctx, l)

	// Start journal flush worker
	l.wg.Add(1)
	go l.journalFlushWorker(ctx)

	l.logger.Info("token ledger started",
		"name", l.name,
		"symbol", l.symbol,
		"batch_size", l.journalBatchSize,
		"flush_interval", l.journalFlushInterval,
	)

	return nil
}

// Stop drains the journal, writes a closing snapshot and shuts down.
func (l *Ledger) Stop() error {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return ErrNotStarted
	}
	l.started = false
	l.mu.Unlock()

	close(l.stopChan)
	l.wg.Wait()

	ctx := context.Background()
	if l.store != nil {
		if err := l.store.SaveSnapshot(ctx, l.Snapshot()); err != nil {
			l.logger.Error("failed to save closing snapshot", "error", err)
		}
	}

	l.plugins.EmitShutdown(ctx)

	if l.store != nil {
		return l.store.Close()
	}
	return nil
}

// ──────────────────────────────────────────────────
// Metadata and read operations
// ──────────────────────────────────────────────────

// Name returns the token's display name. Immutable after construction.
func (l *Ledger) Name() string { return l.name }

// Symbol returns the token's symbol. Immutable after construction.
func (l *Ledger) Symbol() string { return l.symbol }

// Decimals returns the fixed decimal count, always 18.
func (l *Ledger) Decimals() uint8 { return types.Decimals }

// TotalSupply returns the current total supply.
func (l *Ledger) TotalSupply() types.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.supply
}

// BalanceOf returns owner's balance. Unknown identities hold zero;
// this query cannot fail.
func (l *Ledger) BalanceOf(owner types.Identity) types.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[owner]
}

// Allowance returns what spender may still move on owner's behalf.
// Absent pairs return zero; this query cannot fail.
func (l *Ledger) Allowance(owner, spender types.Identity) types.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[state.Pair{Owner: owner, Spender: spender}]
}

// Seq returns the monotonic operation sequence number.
func (l *Ledger) Seq() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.seq
}

// ──────────────────────────────────────────────────
// Transfers
// ──────────────────────────────────────────────────

// Transfer moves value from caller to recipient. Requires caller's
// balance to cover value and a non-null recipient; checked in that
// order, before any write. Returns true on success; a false return
// always carries an error.
func (l *Ledger) Transfer(ctx context.Context, caller, to types.Identity, value types.Amount) (bool, error) {
	l.mu.Lock()

	if !l.balances[caller].AtLeast(value) {
		l.mu.Unlock()
		return false, ErrInsufficientBalance
	}
	if to.IsNull() {
		l.mu.Unlock()
		return false, ErrInvalidRecipient
	}
	// A self-transfer nets to zero and cannot overflow.
	if to != caller {
		if _, err := l.balances[to].Add(value); err != nil {
			l.mu.Unlock()
			return false, err
		}
	}

	l.debit(caller, value)
	newTo, _ := l.balances[to].Add(value)
	l.credit(to, newTo)
	l.seq++
	rec := event.NewTransfer(caller, to, value, l.seq)
	l.mu.Unlock()

	l.journal(rec)
	l.plugins.EmitTransfer(ctx, rec)
	return true, nil
}

// TransferFrom moves value from `from` to `to` on the strength of the
// (from, caller) allowance. The allowance is checked before the balance,
// and a null recipient is deliberately not rejected. The asymmetry with
// Transfer is preserved behavior, not an oversight. On success the
// allowance is reduced by value.
func (l *Ledger) TransferFrom(ctx context.Context, caller, from, to types.Identity, value types.Amount) (bool, error) {
	l.mu.Lock()

	pair := state.Pair{Owner: from, Spender: caller}
	allowed := l.allowances[pair]
	if !allowed.AtLeast(value) {
		l.mu.Unlock()
		return false, ErrInsufficientAllowance
	}
	if !l.balances[from].AtLeast(value) {
		l.mu.Unlock()
		return false, ErrInsufficientBalance
	}
	if to != from {
		if _, err := l.balances[to].Add(value); err != nil {
			l.mu.Unlock()
			return false, err
		}
	}
	newAllowed, err := allowed.Sub(value)
	if err != nil {
		l.mu.Unlock()
		return false, err
	}

	l.debit(from, value)
	newTo, _ := l.balances[to].Add(value)
	l.credit(to, newTo)
	l.setAllowance(pair, newAllowed)
	l.seq++
	rec := event.NewTransfer(from, to, value, l.seq)
	l.mu.Unlock()

	l.journal(rec)
	l.plugins.EmitTransfer(ctx, rec)
	return true, nil
}

// ──────────────────────────────────────────────────
// Approvals
// ──────────────────────────────────────────────────

// Approve sets spender's allowance over caller's funds to exactly value,
// replacing any prior allowance. The approval ceiling is tied to the
// caller's current balance: approving more than currently held fails
// with ErrInsufficientBalance. This is stricter than the common
// convention and is preserved behavior. The read-modify-write race
// between two approvals is documented, not mitigated.
func (l *Ledger) Approve(ctx context.Context, caller, spender types.Identity, value types.Amount) (bool, error) {
	l.mu.Lock()

	if !l.balances[caller].AtLeast(value) {
		l.mu.Unlock()
		return false, ErrInsufficientBalance
	}
	if spender.IsNull() {
		l.mu.Unlock()
		return false, ErrInvalidSpender
	}

	l.setAllowance(state.Pair{Owner: caller, Spender: spender}, value)
	l.seq++
	rec := event.NewApproval(caller, spender, value, l.seq)
	l.mu.Unlock()

	l.journal(rec)
	l.plugins.EmitApproval(ctx, rec)
	return true, nil
}

// ──────────────────────────────────────────────────
// Supply changes
// ──────────────────────────────────────────────────

// Mint credits amount to caller and grows the total supply, recording a
// Transfer from the null identity. Any non-null identity may mint to
// itself; the unrestricted permission model is preserved behavior.
// Fails on a null caller or arithmetic overflow of balance or supply.
func (l *Ledger) Mint(ctx context.Context, caller types.Identity, amount types.Amount) error {
	l.mu.Lock()

	if caller.IsNull() {
		l.mu.Unlock()
		return ErrInvalidAccount
	}
	newBal, err := l.balances[caller].Add(amount)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	newSupply, err := l.supply.Add(amount)
	if err != nil {
		l.mu.Unlock()
		return err
	}

	l.credit(caller, newBal)
	l.supply = newSupply
	l.seq++
	rec := event.NewTransfer(types.Null, caller, amount, l.seq)
	l.mu.Unlock()

	l.journal(rec)
	l.plugins.EmitMint(ctx, rec)
	return nil
}

// Burn destroys amount from caller's balance and shrinks the total
// supply, recording a Transfer to the null identity.
func (l *Ledger) Burn(ctx context.Context, caller types.Identity, amount types.Amount) error {
	l.mu.Lock()
	rec, err := l.burnLocked(caller, amount)
	l.mu.Unlock()
	if err != nil {
		return err
	}

	l.journal(rec)
	l.plugins.EmitBurn(ctx, rec)
	return nil
}

// BurnFrom destroys amount from account on the strength of the
// (account, caller) allowance. All checks (allowance, non-null account,
// balance) happen before any write, so a failure leaves the allowance
// untouched too.
func (l *Ledger) BurnFrom(ctx context.Context, caller, account types.Identity, amount types.Amount) error {
	l.mu.Lock()

	pair := state.Pair{Owner: account, Spender: caller}
	allowed := l.allowances[pair]
	if !allowed.AtLeast(amount) {
		l.mu.Unlock()
		return ErrInsufficientAllowance
	}
	if account.IsNull() {
		l.mu.Unlock()
		return ErrInvalidAccount
	}
	if !l.balances[account].AtLeast(amount) {
		l.mu.Unlock()
		return ErrInsufficientBalance
	}

	newAllowed, err := allowed.Sub(amount)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	l.setAllowance(pair, newAllowed)

	rec, err := l.burnLocked(account, amount)
	l.mu.Unlock()
	if err != nil {
		return err
	}

	l.journal(rec)
	l.plugins.EmitBurn(ctx, rec)
	return nil
}

// burnLocked is the shared burn primitive. Caller holds mu.
func (l *Ledger) burnLocked(account types.Identity, amount types.Amount) (*event.Record, error) {
	if account.IsNull() {
		return nil, ErrInvalidAccount
	}
	if !l.balances[account].AtLeast(amount) {
		return nil, ErrInsufficientBalance
	}

	newBal, err := l.balances[account].Sub(amount)
	if err != nil {
		return nil, err
	}
	newSupply, err := l.supply.Sub(amount)
	if err != nil {
		return nil, err
	}

	l.credit(account, newBal)
	l.supply = newSupply
	l.seq++
	return event.NewTransfer(account, types.Null, amount, l.seq), nil
}

// ──────────────────────────────────────────────────
// State inspection
// ──────────────────────────────────────────────────

// Snapshot returns a deep copy of complete ledger state.
func (l *Ledger) Snapshot() *state.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := state.New(l.name, l.symbol, types.Decimals)
	snap.Supply = l.supply
	snap.Seq = l.seq
	for k, v := range l.balances {
		snap.Balances[k] = v
	}
	for k, v := range l.allowances {
		snap.Allowances[k] = v
	}
	return snap
}

// VerifyConservation recomputes the balance sum and compares it to the
// total supply. A non-nil return means the books are corrupted.
func (l *Ledger) VerifyConservation() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := types.Zero()
	for _, v := range l.balances {
		var err error
		total, err = total.Add(v)
		if err != nil {
			return err
		}
	}
	if !total.Equal(l.supply) {
		return ErrConservation
	}
	return nil
}

// Events queries the persisted notification journal.
func (l *Ledger) Events(ctx context.Context, opts event.QueryOpts) ([]*event.Record, error) {
	if l.store == nil {
		return nil, ErrStoreNotReady
	}
	return l.store.QueryEvents(ctx, opts)
}

// JournalDropped returns how many records were dropped because the
// journal buffer was full. Accounting state is never affected by drops.
func (l *Ledger) JournalDropped() uint64 {
	return l.dropped.Load()
}

// ──────────────────────────────────────────────────
// Balance and allowance bookkeeping. Callers hold mu.
// ──────────────────────────────────────────────────

// debit subtracts value from an account the caller has already checked.
func (l *Ledger) debit(account types.Identity, value types.Amount) {
	newBal, _ := l.balances[account].Sub(value)
	l.credit(account, newBal)
}

// credit stores a precomputed balance, dropping zero entries so the
// balance map holds only live accounts.
func (l *Ledger) credit(account types.Identity, newBal types.Amount) {
	if newBal.IsZero() {
		delete(l.balances, account)
		return
	}
	l.balances[account] = newBal
}

func (l *Ledger) setAllowance(pair state.Pair, value types.Amount) {
	if value.IsZero() {
		delete(l.allowances, pair)
		return
	}
	l.allowances[pair] = value
}

// ──────────────────────────────────────────────────
// Journal worker
// ──────────────────────────────────────────────────

// journal buffers a record for the background worker. A full buffer
// drops the record rather than block or fail the operation.
func (l *Ledger) journal(rec *event.Record) {
	select {
	case l.journalBuffer <- rec:
	default:
		l.dropped.Add(1)
		l.logger.Warn("journal buffer full, dropping record",
			"kind", rec.Kind,
			"seq", rec.Seq,
		)
	}
}

// journalFlushWorker flushes buffered records to the store.
func (l *Ledger) journalFlushWorker(ctx context.Context) {
	defer l.wg.Done()

	batch := make([]*event.Record, 0, l.journalBatchSize)
	ticker := time.NewTicker(l.journalFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			// Drain whatever is still buffered, then final flush.
			for {
				select {
				case rec := <-l.journalBuffer:
					batch = append(batch, rec)
					continue
				default:
				}
				break
			}
			if len(batch) > 0 {
				l.flushJournalBatch(ctx, batch)
			}
			return

		case rec := <-l.journalBuffer:
			batch = append(batch, rec)
			if len(batch) >= l.journalBatchSize {
				l.flushJournalBatch(ctx, batch)
				batch = make([]*event.Record, 0, l.journalBatchSize)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				l.flushJournalBatch(ctx, batch)
				batch = make([]*event.Record, 0, l.journalBatchSize)
			}
		}
	}
}

func (l *Ledger) flushJournalBatch(ctx context.Context, batch []*event.Record) {
	if l.store == nil {
		return
	}

	start := time.Now()

	if err := l.store.AppendEvents(ctx, batch); err != nil {
		l.logger.Error("failed to flush journal batch",
			"error", err,
			"batch_size", len(batch),
		)
		return
	}

	elapsed := time.Since(start)
	l.plugins.EmitJournalFlushed(ctx, len(batch), elapsed)

	l.logger.Debug("flushed journal batch",
		"batch_size", len(batch),
		"elapsed_ms", elapsed.Milliseconds(),
	)
}
