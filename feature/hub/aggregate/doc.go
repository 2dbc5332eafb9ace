// Package aggregate stitches keyed structs, groups, resolved lessons and the teacher
// roster into the final entity graph, with every foreign key resolved.
//
// Build order: teachers, departments, structs, places, subjects, groups, lessons.
// Teachers come first because department and struct bosses are matched against them;
// bosses that match nobody are synthesized as initials-only teachers whose ids come from
// an IDAllocator seeded past every id the roster and lessons already use.
package aggregate
