// Package types provides common value types used across the token ledger.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Decimals is the fixed number of decimal places for token amounts.
// One whole token equals 10^18 base units.
const Decimals = 18

// Amount arithmetic errors. Overflow and underflow are reported
// explicitly; amounts never wrap and never go negative.
var (
	ErrAmountOverflow = errors.New("token: amount overflow")
	ErrAmountNegative = errors.New("token: amount underflow")
	ErrAmountInvalid  = errors.New("token: invalid amount")
)

var (
	// maxAmount is 2^256 - 1, the largest representable amount.
	maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	// baseFactor is 10^Decimals, the number of base units per whole token.
	baseFactor = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

	bigZero = new(big.Int)
)

// Amount represents a non-negative quantity of token base units.
// The zero value is a valid zero amount. All arithmetic is checked:
// no operation silently overflows or produces a negative result.
//
// Examples:
//   - Tokens(1)  = 1 whole token (10^18 base units)
//   - New(2500)  = 2500 base units
type Amount struct {
	i *big.Int // nil means zero; never mutated after construction
}

// Common constructors

// New creates an Amount of the given number of base units.
func New(units uint64) Amount {
	if units == 0 {
		return Amount{}
	}
	return Amount{i: new(big.Int).SetUint64(units)}
}

// Tokens creates an Amount of n whole tokens (n × 10^18 base units).
// Panics if n is negative.
func Tokens(n int64) Amount {
	if n < 0 {
		panic(fmt.Sprintf("amount: negative token count %d", n))
	}
	if n == 0 {
		return Amount{}
	}
	return Amount{i: new(big.Int).Mul(big.NewInt(n), baseFactor)}
}

// Zero returns the zero Amount.
func Zero() Amount { return Amount{} }

// MaxAmount returns the largest representable Amount (2^256 - 1).
func MaxAmount() Amount { return Amount{i: maxAmount} }

// Parse parses a decimal base-unit string into an Amount.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty string", ErrAmountInvalid)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %q", ErrAmountInvalid, s)
	}
	if v.Sign() < 0 {
		return Amount{}, fmt.Errorf("%w: %q", ErrAmountNegative, s)
	}
	if v.Cmp(maxAmount) > 0 {
		return Amount{}, fmt.Errorf("%w: %q", ErrAmountOverflow, s)
	}
	return Amount{i: v}, nil
}

// MustParse parses a decimal base-unit string, panicking on error.
// Intended for constants and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// big returns the backing integer for read-only use.
func (a Amount) big() *big.Int {
	if a.i == nil {
		return bigZero
	}
	return a.i
}

// Arithmetic operations

// Add returns a + other, or ErrAmountOverflow if the result would
// exceed 2^256 - 1.
func (a Amount) Add(other Amount) (Amount, error) {
	sum := new(big.Int).Add(a.big(), other.big())
	if sum.Cmp(maxAmount) > 0 {
		return Amount{}, ErrAmountOverflow
	}
	return Amount{i: sum}, nil
}

// Sub returns a - other, or ErrAmountNegative if other exceeds a.
func (a Amount) Sub(other Amount) (Amount, error) {
	if a.big().Cmp(other.big()) < 0 {
		return Amount{}, ErrAmountNegative
	}
	return Amount{i: new(big.Int).Sub(a.big(), other.big())}, nil
}

// Comparison methods

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool { return a.big().Sign() == 0 }

// Cmp compares two amounts: -1 if a < other, 0 if equal, 1 if a > other.
func (a Amount) Cmp(other Amount) int { return a.big().Cmp(other.big()) }

// Equal returns true if both amounts are equal.
func (a Amount) Equal(other Amount) bool { return a.Cmp(other) == 0 }

// LessThan returns true if a is strictly less than other.
func (a Amount) LessThan(other Amount) bool { return a.Cmp(other) < 0 }

// GreaterThan returns true if a is strictly greater than other.
func (a Amount) GreaterThan(other Amount) bool { return a.Cmp(other) > 0 }

// AtLeast returns true if a is greater than or equal to other.
func (a Amount) AtLeast(other Amount) bool { return a.Cmp(other) >= 0 }

// Formatting methods

// String returns the amount as a decimal base-unit string.
func (a Amount) String() string { return a.big().String() }

// Format returns the amount as a whole-token decimal string with 18
// fractional digits. Tokens(1).Format() == "1.000000000000000000".
func (a Amount) Format() string {
	whole, frac := new(big.Int).QuoRem(a.big(), baseFactor, new(big.Int))
	return fmt.Sprintf("%s.%018s", whole.String(), frac.String())
}

// MarshalText implements encoding.TextMarshaler.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. Amounts serialize as decimal
// strings to survive JSON number precision limits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts both string and
// number encodings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer for SQL storage.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Amount{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		return a.UnmarshalText(v)
	case int64:
		if v < 0 {
			return fmt.Errorf("%w: %d", ErrAmountNegative, v)
		}
		*a = New(uint64(v))
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrAmountInvalid, src)
	}
}

// Sum adds multiple amounts with overflow checking.
func Sum(values ...Amount) (Amount, error) {
	total := Zero()
	for _, v := range values {
		var err error
		total, err = total.Add(v)
		if err != nil {
			return Amount{}, err
		}
	}
	return total, nil
}
