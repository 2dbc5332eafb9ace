// Package teachers upgrades initials-only teacher references on lessons to canonical
// roster profiles.
//
// The roster is grouped by lower-cased initials. A reference with one roster match adopts
// it. A reference with several matches is either dropped or, when heuristics are enabled,
// resolved by ranking the candidates against the lesson subject (see Score). A reference
// with no match is kept as-is or dropped, depending on Options.SkipUnrecognized.
package teachers
