// Package event defines the notification records emitted by ledger
// operations: Transfer records for balance movement (including mint and
// burn, which use the null identity as counterparty) and Approval
// records for allowance changes.
package event

import (
	"time"

	"github.com/xraph/token/id"
	"github.com/xraph/token/types"
)

// Kind discriminates record types.
type Kind string

const (
	KindTransfer Kind = "transfer"
	KindApproval Kind = "approval"
)

// Record is an immutable notification record. Transfer records populate
// From/To; Approval records populate Owner/Spender. Seq is the ledger's
// monotonic operation sequence number at emission time.
type Record struct {
	ID        id.ID          `json:"id"`
	Kind      Kind           `json:"kind"`
	From      types.Identity `json:"from,omitempty"`
	To        types.Identity `json:"to,omitempty"`
	Owner     types.Identity `json:"owner,omitempty"`
	Spender   types.Identity `json:"spender,omitempty"`
	Value     types.Amount   `json:"value"`
	Seq       uint64         `json:"seq"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewTransfer creates a Transfer record. Mint emits From = Null;
// burn emits To = Null.
func NewTransfer(from, to types.Identity, value types.Amount, seq uint64) *Record {
	return &Record{
		ID:        id.NewTransferID(),
		Kind:      KindTransfer,
		From:      from,
		To:        to,
		Value:     value,
		Seq:       seq,
		Timestamp: time.Now().UTC(),
	}
}

// NewApproval creates an Approval record.
func NewApproval(owner, spender types.Identity, value types.Amount, seq uint64) *Record {
	return &Record{
		ID:        id.NewApprovalID(),
		Kind:      KindApproval,
		Owner:     owner,
		Spender:   spender,
		Value:     value,
		Seq:       seq,
		Timestamp: time.Now().UTC(),
	}
}
