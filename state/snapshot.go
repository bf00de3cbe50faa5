// Package state defines snapshot types for persisting and restoring
// full ledger state.
package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/xraph/token/id"
	"github.com/xraph/token/types"
)

// Pair keys an allowance: Owner granted Spender the right to move
// Owner's tokens. Pairs are comparable and usable as map keys.
type Pair struct {
	Owner   types.Identity `json:"owner"`
	Spender types.Identity `json:"spender"`
}

// MarshalText encodes the pair as "owner:spender" so allowance maps
// serialize as JSON objects.
func (p Pair) MarshalText() ([]byte, error) {
	return []byte(p.Owner.String() + ":" + p.Spender.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pair) UnmarshalText(text []byte) error {
	owner, spender, ok := strings.Cut(string(text), ":")
	if !ok {
		return fmt.Errorf("state: invalid allowance key %q", text)
	}
	o, err := types.ParseIdentity(owner)
	if err != nil {
		return err
	}
	s, err := types.ParseIdentity(spender)
	if err != nil {
		return err
	}
	p.Owner, p.Spender = o, s
	return nil
}

// Snapshot is a point-in-time copy of complete ledger state. Snapshots
// are what the persistence layer stores and what atomicity checks
// compare.
type Snapshot struct {
	ID         id.SnapshotID                  `json:"id"`
	Name       string                         `json:"name"`
	Symbol     string                         `json:"symbol"`
	Decimals   uint8                          `json:"decimals"`
	Supply     types.Amount                   `json:"supply"`
	Balances   map[types.Identity]types.Amount `json:"balances"`
	Allowances map[Pair]types.Amount          `json:"allowances"`
	Seq        uint64                         `json:"seq"`
	TakenAt    time.Time                      `json:"taken_at"`
}

// New creates an empty snapshot shell with a fresh ID and timestamp.
func New(name, symbol string, decimals uint8) *Snapshot {
	return &Snapshot{
		ID:         id.NewSnapshotID(),
		Name:       name,
		Symbol:     symbol,
		Decimals:   decimals,
		Balances:   make(map[types.Identity]types.Amount),
		Allowances: make(map[Pair]types.Amount),
		TakenAt:    time.Now().UTC(),
	}
}

// Clone returns a deep copy. Amounts are immutable, so copying the maps
// is sufficient.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Balances = make(map[types.Identity]types.Amount, len(s.Balances))
	for k, v := range s.Balances {
		out.Balances[k] = v
	}
	out.Allowances = make(map[Pair]types.Amount, len(s.Allowances))
	for k, v := range s.Allowances {
		out.Allowances[k] = v
	}
	return &out
}

// SumBalances adds every balance with overflow checking.
func (s *Snapshot) SumBalances() (types.Amount, error) {
	total := types.Zero()
	for _, v := range s.Balances {
		var err error
		total, err = total.Add(v)
		if err != nil {
			return types.Amount{}, err
		}
	}
	return total, nil
}

// Equal compares two snapshots by ledger state, ignoring ID and TakenAt.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Name != other.Name || s.Symbol != other.Symbol || s.Decimals != other.Decimals {
		return false
	}
	if !s.Supply.Equal(other.Supply) || s.Seq != other.Seq {
		return false
	}
	if len(s.Balances) != len(other.Balances) || len(s.Allowances) != len(other.Allowances) {
		return false
	}
	for k, v := range s.Balances {
		if ov, ok := other.Balances[k]; !ok || !v.Equal(ov) {
			return false
		}
	}
	for k, v := range s.Allowances {
		if ov, ok := other.Allowances[k]; !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
