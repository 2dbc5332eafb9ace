// Package hub runs the reconciliation pipeline and exposes its result over HTTP.
//
// The three upstream sources (structs, teacher roster, schedules) are fetched concurrently
// and joined before the engine runs. The engine itself is synchronous:
//
//  1. structs and groups are keyed (models.StructKey, models.GroupKey)
//  2. schedules are normalized into lesson occurrences (package normalize)
//  3. abbreviated teachers are resolved against the roster (package teachers)
//  4. the entity graph is aggregated (package aggregate)
//
// Any failure aborts the run; callers never see a partial dataset.
//
// # HTTP Endpoints
//
//   - GET /hub : the full dataset.
//   - GET /hub/:collection : one of departments, structs, teachers, places, subjects, groups, lessons.
//   - POST /hub/refresh : drops the cached dataset and rebuilds it.
package hub
