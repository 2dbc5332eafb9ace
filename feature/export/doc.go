// Package export writes a built dataset to its downstream sinks.
//
// # Sinks
//
//   - File: the dataset JSON, compact or indented with two spaces. The file name is given
//     explicitly or derived from the date (all_tvgu_data-YYYY-MM-DD.json).
//   - Bucket: the same JSON uploaded to object storage.
//   - Database: one hub_* table per collection, replaced in a single transaction.
//
// Encoding happens before any sink is touched, so a failed run never leaves partial JSON.
package export
