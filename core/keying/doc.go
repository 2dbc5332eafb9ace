// Package keying assigns dense integer identifiers to finite entity collections.
//
// A collection is keyed either by a named field (looked up by Go field name or by its
// json tag, on structs, struct pointers and map[string]any values) or by a custom key
// function. Exactly one of the two must be configured.
//
// # Identifiers
//
// Identifiers follow the input order and are contiguous from zero (0, 1, 2, ...). Entities
// dropped by Options.SkipMissing take no identifier. Two runs only produce the same
// identifiers when the caller supplies the entities in the same order.
//
// # Failure modes
//
//   - ErrConfig: both or neither of Field and KeyFunc are set.
//   - MissingKeyError: an entity has no key, unless Options.SkipMissing is set.
//   - DuplicateKeyError: two entities resolve to the same key. This is never recoverable,
//     downstream cross-referencing assumes keys are unique.
//
// # Usage
//
//	idx, err := keying.Assign(structs, keying.Options[models.Struct]{Field: "name"})
//	if err != nil {
//	    return err
//	}
//	pk, ok := idx.Get("Математический факультет")
package keying
