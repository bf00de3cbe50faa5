package mongo

import (
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/token/event"
	"github.com/xraph/token/id"
	"github.com/xraph/token/state"
	"github.com/xraph/token/types"
)

// ==================== Event models ====================

type eventModel struct {
	grove.BaseModel `grove:"table:token_events"`

	ID        string    `grove:"id,pk"      bson:"_id"`
	Kind      string    `grove:"kind"       bson:"kind"`
	FromID    string    `grove:"from_id"    bson:"from_id"`
	ToID      string    `grove:"to_id"      bson:"to_id"`
	OwnerID   string    `grove:"owner_id"   bson:"owner_id"`
	SpenderID string    `grove:"spender_id" bson:"spender_id"`
	Value     string    `grove:"value"      bson:"value"`
	Seq       int64     `grove:"seq"        bson:"seq"`
	Timestamp time.Time `grove:"timestamp"  bson:"timestamp"`
	CreatedAt time.Time `grove:"created_at" bson:"created_at"`
}

func toEventModel(r *event.Record) *eventModel {
	return &eventModel{
		ID:        r.ID.String(),
		Kind:      string(r.Kind),
		FromID:    r.From.String(),
		ToID:      r.To.String(),
		OwnerID:   r.Owner.String(),
		SpenderID: r.Spender.String(),
		Value:     r.Value.String(),
		Seq:       int64(r.Seq),
		Timestamp: r.Timestamp,
		CreatedAt: time.Now().UTC(),
	}
}

func fromEventModel(m *eventModel) (*event.Record, error) {
	recID, err := id.ParseAny(m.ID)
	if err != nil {
		return nil, err
	}
	from, err := types.ParseIdentity(m.FromID)
	if err != nil {
		return nil, err
	}
	to, err := types.ParseIdentity(m.ToID)
	if err != nil {
		return nil, err
	}
	owner, err := types.ParseIdentity(m.OwnerID)
	if err != nil {
		return nil, err
	}
	spender, err := types.ParseIdentity(m.SpenderID)
	if err != nil {
		return nil, err
	}
	value, err := types.Parse(m.Value)
	if err != nil {
		return nil, err
	}

	return &event.Record{
		ID:        recID,
		Kind:      event.Kind(m.Kind),
		From:      from,
		To:        to,
		Owner:     owner,
		Spender:   spender,
		Value:     value,
		Seq:       uint64(m.Seq),
		Timestamp: m.Timestamp,
	}, nil
}

// ==================== Snapshot models ====================

type snapshotModel struct {
	grove.BaseModel `grove:"table:token_snapshots"`

	ID         string           `grove:"id,pk"      bson:"_id"`
	Name       string           `grove:"name"       bson:"name"`
	Symbol     string           `grove:"symbol"     bson:"symbol"`
	Decimals   int              `grove:"decimals"   bson:"decimals"`
	Supply     string           `grove:"supply"     bson:"supply"`
	Balances   []balanceEntry   `grove:"balances"   bson:"balances"`
	Allowances []allowanceEntry `grove:"allowances" bson:"allowances"`
	Seq        int64            `grove:"seq"        bson:"seq"`
	TakenAt    time.Time        `grove:"taken_at"   bson:"taken_at"`
	CreatedAt  time.Time        `grove:"created_at" bson:"created_at"`
}

type balanceEntry struct {
	Account string `bson:"account"`
	Value   string `bson:"value"`
}

type allowanceEntry struct {
	Owner   string `bson:"owner"`
	Spender string `bson:"spender"`
	Value   string `bson:"value"`
}

func toSnapshotModel(s *state.Snapshot) *snapshotModel {
	balances := make([]balanceEntry, 0, len(s.Balances))
	for account, value := range s.Balances {
		balances = append(balances, balanceEntry{
			Account: account.String(),
			Value:   value.String(),
		})
	}

	allowances := make([]allowanceEntry, 0, len(s.Allowances))
	for pair, value := range s.Allowances {
		allowances = append(allowances, allowanceEntry{
			Owner:   pair.Owner.String(),
			Spender: pair.Spender.String(),
			Value:   value.String(),
		})
	}

	return &snapshotModel{
		ID:         s.ID.String(),
		Name:       s.Name,
		Symbol:     s.Symbol,
		Decimals:   int(s.Decimals),
		Supply:     s.Supply.String(),
		Balances:   balances,
		Allowances: allowances,
		Seq:        int64(s.Seq),
		TakenAt:    s.TakenAt,
		CreatedAt:  time.Now().UTC(),
	}
}

func fromSnapshotModel(m *snapshotModel) (*state.Snapshot, error) {
	snapID, err := id.ParseSnapshotID(m.ID)
	if err != nil {
		return nil, err
	}
	supply, err := types.Parse(m.Supply)
	if err != nil {
		return nil, err
	}

	balances := make(map[types.Identity]types.Amount, len(m.Balances))
	for _, entry := range m.Balances {
		account, err := types.ParseIdentity(entry.Account)
		if err != nil {
			return nil, err
		}
		value, err := types.Parse(entry.Value)
		if err != nil {
			return nil, err
		}
		balances[account] = value
	}

	allowances := make(map[state.Pair]types.Amount, len(m.Allowances))
	for _, entry := range m.Allowances {
		owner, err := types.ParseIdentity(entry.Owner)
		if err != nil {
			return nil, err
		}
		spender, err := types.ParseIdentity(entry.Spender)
		if err != nil {
			return nil, err
		}
		value, err := types.Parse(entry.Value)
		if err != nil {
			return nil, err
		}
		allowances[state.Pair{Owner: owner, Spender: spender}] = value
	}

	return &state.Snapshot{
		ID:         snapID,
		Name:       m.Name,
		Symbol:     m.Symbol,
		Decimals:   uint8(m.Decimals),
		Supply:     supply,
		Balances:   balances,
		Allowances: allowances,
		Seq:        uint64(m.Seq),
		TakenAt:    m.TakenAt,
	}, nil
}
