// Package types provides common value types used across the token ledger.
package types

import (
	"crypto/rand"
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// IdentitySize is the byte length of an account identity.
const IdentitySize = 20

// ErrIdentityInvalid reports a malformed identity string.
var ErrIdentityInvalid = errors.New("token: invalid identity")

// Identity is an opaque 20-byte account identifier. Identities are
// comparable and usable as map keys. The zero value is Null, the
// reserved identity that can never initiate an operation and serves as
// the symbolic counterparty of mint and burn notifications.
type Identity [IdentitySize]byte

// Null is the reserved all-zero identity.
var Null Identity

// NewIdentity generates a random identity. Intended for tests and
// tooling; production identities come from the host system.
func NewIdentity() Identity {
	var id Identity
	if _, err := rand.Read(id[:]); err != nil {
		panic(fmt.Sprintf("identity: entropy unavailable: %v", err))
	}
	return id
}

// ParseIdentity parses a hex identity string, with or without the
// "0x" prefix.
func ParseIdentity(s string) (Identity, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(h) != IdentitySize*2 {
		return Null, fmt.Errorf("%w: %q", ErrIdentityInvalid, s)
	}
	raw, err := hex.DecodeString(h)
	if err != nil {
		return Null, fmt.Errorf("%w: %q", ErrIdentityInvalid, s)
	}
	var id Identity
	copy(id[:], raw)
	return id, nil
}

// MustIdentity parses a hex identity string, panicking on error.
// Intended for constants and tests.
func MustIdentity(s string) Identity {
	id, err := ParseIdentity(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsNull returns true for the reserved zero identity.
func (id Identity) IsNull() bool { return id == Null }

// String returns the lowercase 0x-prefixed hex form.
func (id Identity) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer for SQL storage.
func (id Identity) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner.
func (id *Identity) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Null
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrIdentityInvalid, src)
	}
}
