// Package token provides an embeddable fungible-token accounting engine
// for Go applications.
//
// Token is designed as a library, not a service. Import it directly into
// your Go application and drive it with explicit caller identities. It
// provides:
//
//   - Per-account balances, delegated allowances and a tracked total supply
//   - Strict conservation: the balance sum always equals the total supply
//   - Checked 256-bit arithmetic that fails explicitly instead of wrapping
//   - All-or-nothing operations serialized on a single mutex
//   - A write-behind notification journal with pluggable storage backends
//   - Plugin hooks for transfers, approvals, mints and burns
//
// # Quick Start
//
// Create a ledger instance with your preferred store:
//
//	import (
//	    "github.com/xraph/token"
//	    "github.com/xraph/token/store/memory"
//	)
//
//	creator := token.NewIdentity()
//
//	l, err := token.New(memory.New(), "Testcoin", "TST", creator)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Start the ledger (begins the background journal worker)
//	if err := l.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Stop()
//
// Construction mints 100 whole tokens (100 × 10^18 base units) to the
// creator; there is no re-initialization entry point.
//
// # Core Concepts
//
// Balances move with Transfer; allowances let a spender move an owner's
// funds with TransferFrom:
//
//	ok, err := l.Transfer(ctx, alice, bob, token.Tokens(10))
//	ok, err = l.Approve(ctx, alice, charlie, token.Tokens(5))
//	ok, err = l.TransferFrom(ctx, charlie, alice, bob, token.Tokens(5))
//
// Supply changes use Mint, Burn and BurnFrom, which record the null
// identity as the symbolic counterparty:
//
//	err := l.Mint(ctx, alice, token.Tokens(1))
//	err = l.Burn(ctx, alice, token.Tokens(1))
//
// Two behaviors are deliberately non-standard and preserved as
// specified: Approve caps the allowance at the caller's current balance,
// and TransferFrom does not reject a null recipient even though Transfer
// does.
//
// # Arithmetic
//
// All amounts use the immutable Amount type: a non-negative integer
// count of base units capped at 2^256-1. Additions that would exceed the
// cap and subtractions that would go negative return errors and leave
// the ledger untouched. Amounts never wrap and never go negative.
//
// # TypeID
//
// All journal records use TypeID for globally unique, type-safe
// identifiers:
//
//	xfer_01h2xcejqtf2nbrexx3vqjhp41  // Transfer record ID
//	appr_01h2xcejqtf2nbrexx3vqjhp41  // Approval record ID
//	snap_01h455vb4pex5vsknk084sn02q  // Snapshot ID
//
// TypeIDs are K-sortable, making them ideal for database indexes and
// providing natural time-ordering of records.
package token
