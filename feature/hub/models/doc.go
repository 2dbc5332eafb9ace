// Package models defines the raw records received from the structural, roster and
// schedule sources, and the aggregated entities produced from them.
//
// Every entity type has a named identity-key function (StructKey, GroupKey, ...). These are
// the only notion of equality the pipeline uses: deduplication, collision checks and
// cross-reference lookups all go through them.
//
// Teacher and TeacherSmall are the two variants of a teacher reference. Both implement
// TeacherRef; their aggregated forms implement TeacherEntity.
package models
