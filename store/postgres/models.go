package postgres

import (
	"encoding/json"
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

	ID        string    `grove:"id,pk"`
	Kind      string    `grove:"kind"`
	FromID    string    `grove:"from_id"`
	ToID      string    `grove:"to_id"`
	OwnerID   string    `grove:"owner_id"`
	SpenderID string    `grove:"spender_id"`
	Value     string    `grove:"value"`
	Seq       int64     `grove:"seq"`
	Timestamp time.Time `grove:"timestamp"`
	CreatedAt time.Time `grove:"created_at"`
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

	ID         string          `grove:"id,pk"`
	Name       string          `grove:"name"`
	Symbol     string          `grove:"symbol"`
	Decimals   int             `grove:"decimals"`
	Supply     string          `grove:"supply"`
	Balances   json.RawMessage `grove:"balances,type:jsonb"`
	Allowances json.RawMessage `grove:"allowances,type:jsonb"`
	Seq        int64           `grove:"seq"`
	TakenAt    time.Time       `grove:"taken_at"`
	CreatedAt  time.Time       `grove:"created_at"`
}

func toSnapshotModel(s *state.Snapshot) (*snapshotModel, error) {
	balances, err := json.Marshal(s.Balances)
	if err != nil {
		return nil, err
	}
	allowances, err := json.Marshal(s.Allowances)
	if err != nil {
		return nil, err
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
	}, nil
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

	balances := make(map[types.Identity]types.Amount)
	if len(m.Balances) > 0 {
		if err := json.Unmarshal(m.Balances, &balances); err != nil {
			return nil, err
		}
	}
	allowances := make(map[state.Pair]types.Amount)
	if len(m.Allowances) > 0 {
		if err := json.Unmarshal(m.Allowances, &allowances); err != nil {
			return nil, err
		}
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
