// Package fuzzy provides normalized string similarity for matching free-form
// subject and discipline names.
//
// Ratio is the indel similarity: one minus the insert/delete distance over the combined
// length. TokenSet splits both strings on whitespace and compares the shared tokens
// against each side's remainder, keeping the best Ratio. A string whose tokens are a
// subset of the other's scores 1. Comparison is case-sensitive.
package fuzzy
