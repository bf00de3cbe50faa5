package token

import (
	"context"

	"github.com/xraph/token/types"
)

// Token is the capability interface covering the standard fungible-token
// surface: metadata, the three read queries and the three write
// operations. Ledger implements it; embedders that only need the
// standard surface can depend on this instead of the concrete engine.
type Token interface {
	Name() string
	Symbol() string
	Decimals() uint8
	TotalSupply() types.Amount
	BalanceOf(owner types.Identity) types.Amount
	Allowance(owner, spender types.Identity) types.Amount
	Transfer(ctx context.Context, caller, to types.Identity, value types.Amount) (bool, error)
	Approve(ctx context.Context, caller, spender types.Identity, value types.Amount) (bool, error)
	TransferFrom(ctx context.Context, caller, from, to types.Identity, value types.Amount) (bool, error)
}

var _ Token = (*Ledger)(nil)
