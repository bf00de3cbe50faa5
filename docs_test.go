package token_test

import (
	"context"
	"log"
	"log/slog"
	"testing"
	"time"

	"github.com/xraph/token"
	"github.com/xraph/token/store/memory"
	"github.com/xraph/token/types"
)

// TestDocumentationExamples verifies that all examples in the documentation compile
func TestDocumentationExamples(t *testing.T) {
	// Test Quick Start example from README
	t.Run("QuickStartExample", func(t *testing.T) {
		// Create store (memory for demo, use PostgreSQL in production)
		store := memory.New()

		creator := token.NewIdentity()

		// Initialize the ledger; construction mints the initial supply
		// to the creator
		l, err := token.New(store, "Testcoin", "TST", creator,
			token.WithLogger(slog.Default()),
			token.WithJournalConfig(100, 5*time.Second),
		)
		if err != nil {
			t.Fatal(err)
		}

		// Start the engine
		ctx := context.Background()
		if err := l.Start(ctx); err != nil {
			t.Fatal(err)
		}
		defer l.Stop()

		alice, bob := creator, token.NewIdentity()
		charlie := token.NewIdentity()

		// Move balances directly
		if _, err := l.Transfer(ctx, alice, bob, token.Tokens(10)); err != nil {
			t.Fatal(err)
		}

		// Delegate spending and move funds on the owner's behalf
		if _, err := l.Approve(ctx, alice, charlie, token.Tokens(5)); err != nil {
			t.Fatal(err)
		}
		if _, err := l.TransferFrom(ctx, charlie, alice, bob, token.Tokens(5)); err != nil {
			t.Fatal(err)
		}

		// Supply changes record the null identity as counterparty
		if err := l.Mint(ctx, alice, token.Tokens(1)); err != nil {
			t.Fatal(err)
		}
		if err := l.Burn(ctx, alice, token.Tokens(1)); err != nil {
			t.Fatal(err)
		}

		log.Printf("%s (%s) supply: %s\n", l.Name(), l.Symbol(), l.TotalSupply().Format())
		log.Printf("bob holds: %s\n", l.BalanceOf(bob).Format())
	})

	// Test Amount type examples
	t.Run("AmountExamples", func(t *testing.T) {
		// Constructors
		_ = types.Tokens(49)            // 49 whole tokens (49 x 10^18 base units)
		_ = types.New(4900)             // 4900 base units
		_ = types.Zero()                // zero
		_ = types.MustParse("1000000")  // from a decimal string

		// Arithmetic is checked: errors instead of wrapping
		a1 := types.Tokens(1)
		a2 := types.Tokens(2)
		sum, err := a1.Add(a2)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := a1.Sub(a2); err == nil {
			t.Fatal("expected underflow error")
		}

		// Comparison
		if a1.LessThan(a2) {
			// a1 is less than a2
		}

		// Formatting
		_ = sum.String() // "3000000000000000000" (base units)
		_ = sum.Format() // "3.000000000000000000"
	})
}
