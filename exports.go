package token

import "github.com/xraph/token/types"

// Re-export common types for convenience so users don't have to import types package.

// Amount is re-exported from types package.
type Amount = types.Amount

// Identity is re-exported from types package.
type Identity = types.Identity

// Null is the reserved all-zero identity.
var Null = types.Null

// Re-export Amount constructors
var (
	NewAmount   = types.New
	Tokens      = types.Tokens
	ZeroAmount  = types.Zero
	ParseAmount = types.Parse
	Sum         = types.Sum
)

// Re-export Identity constructors
var (
	NewIdentity   = types.NewIdentity
	ParseIdentity = types.ParseIdentity
	MustIdentity  = types.MustIdentity
)
