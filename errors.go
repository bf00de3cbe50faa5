package token

import (
	"errors"
	"fmt"

	"github.com/xraph/token/types"
)

// Sentinel errors for common failure scenarios.
var (
	// General errors
	ErrNotFound     = errors.New("token: not found")
	ErrInvalidInput = errors.New("token: invalid input")

	// Operation precondition errors. Every precondition is checked before
	// any state is written, so a returned error means nothing changed.
	ErrInsufficientBalance   = errors.New("token: insufficient balance")
	ErrInsufficientAllowance = errors.New("token: insufficient allowance")
	ErrInvalidRecipient      = errors.New("token: invalid recipient")
	ErrInvalidSpender        = errors.New("token: invalid spender")
	ErrInvalidAccount        = errors.New("token: invalid account")

	// Arithmetic errors, aliased from types so callers can match either.
	ErrAmountOverflow = types.ErrAmountOverflow
	ErrAmountNegative = types.ErrAmountNegative

	// Construction errors
	ErrInvalidCreator  = errors.New("token: creator must not be the null identity")
	ErrEmptyMetadata   = errors.New("token: name and symbol must not be empty")
	ErrAlreadyStarted  = errors.New("token: engine already started")
	ErrNotStarted      = errors.New("token: engine not started")
	ErrConservation    = errors.New("token: balance sum does not match total supply")

	// Journal errors
	ErrJournalBufferFull = errors.New("token: journal buffer full")

	// Store errors
	ErrStoreNotReady     = errors.New("token: store not ready")
	ErrStoreClosed       = errors.New("token: store is closed")
	ErrSnapshotNotFound  = errors.New("token: snapshot not found")
	ErrTransactionFailed = errors.New("token: transaction failed")
	ErrMigrationFailed   = errors.New("token: migration failed")
)

// ValidationError represents a validation failure with details.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("token: validation failed for %s: %s", e.Field, e.Message)
}

// MultiError represents multiple errors that occurred.
type MultiError struct {
	Errors []error
}

func (e MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "token: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("token: %d errors occurred", len(e.Errors))
}

// Add adds an error to the multi-error.
func (e *MultiError) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// HasErrors returns true if there are any errors.
func (e MultiError) HasErrors() bool {
	return len(e.Errors) > 0
}

// First returns the first error or nil.
func (e MultiError) First() error {
	if len(e.Errors) > 0 {
		return e.Errors[0]
	}
	return nil
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrSnapshotNotFound)
}

// IsInsufficientFunds returns true if the error reports an inadequate
// balance or allowance.
func IsInsufficientFunds(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrInsufficientAllowance)
}

// IsInvalidIdentity returns true if the error reports a rejected
// participant identity.
func IsInvalidIdentity(err error) bool {
	return errors.Is(err, ErrInvalidRecipient) ||
		errors.Is(err, ErrInvalidSpender) ||
		errors.Is(err, ErrInvalidAccount) ||
		errors.Is(err, ErrInvalidCreator)
}

// IsArithmetic returns true if the error is an overflow or underflow.
func IsArithmetic(err error) bool {
	return errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrAmountNegative)
}

// IsRetryable returns true if the error is temporary and the operation can be retried.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrJournalBufferFull) ||
		errors.Is(err, ErrStoreNotReady) ||
		errors.Is(err, ErrTransactionFailed)
}
