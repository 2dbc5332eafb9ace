package keying

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is returned when Options sets both or neither of Field and KeyFunc.
	ErrConfig = errors.New("keying: exactly one of field name or key function must be set")
	// ErrMissingKey is the sentinel wrapped by MissingKeyError.
	ErrMissingKey = errors.New("keying: key is missing")
	// ErrDuplicateKey is the sentinel wrapped by DuplicateKeyError.
	ErrDuplicateKey = errors.New("keying: duplicate key")
)

// MissingKeyError reports an entity whose identity key could not be derived.
type MissingKeyError struct {
	// Field is the configured field name, empty when a key function was used.
	Field string
	// Position is the index of the entity in the input collection.
	Position int
	// Entity is the offending entity.
	Entity any
}

func (e *MissingKeyError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("key %q is missing in entity #%d: %+v", e.Field, e.Position, e.Entity)
	}
	return fmt.Sprintf("key is missing in entity #%d: %+v", e.Position, e.Entity)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// DuplicateKeyError reports two entities resolving to the same identity key.
type DuplicateKeyError struct {
	Key        string
	ExistingID int
	Position   int
	Entity     any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("key collision: %q is already taken by id %d (entity #%d: %+v)",
		e.Key, e.ExistingID, e.Position, e.Entity)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }
