package teachers

import (
	"strings"

	"tvgu-data-hub/core/keying"
	"tvgu-data-hub/feature/hub/models"
)

// Options holds the resolver switches.
type Options struct {
	// UseHeuristics resolves initials collisions by scoring candidates.
	// When false, ambiguous references are dropped.
	UseHeuristics bool
	// SkipUnrecognized drops references without any roster match instead of keeping them.
	SkipUnrecognized bool
}

// Stats counts what happened to the references passing through a Resolver.
type Stats struct {
	Resolved     int
	Heuristic    int
	Unrecognized int
	Dropped      int
}

func (s *Stats) add(o Stats) {
	s.Resolved += o.Resolved
	s.Heuristic += o.Heuristic
	s.Unrecognized += o.Unrecognized
	s.Dropped += o.Dropped
}

// Resolver matches initials-only references against a roster.
type Resolver struct {
	byInitials map[string][]models.Teacher
	opts       Options
}

// NewResolver groups the roster by lower-cased initials.
func NewResolver(roster []models.Teacher, opts Options) *Resolver {
	byInitials := make(map[string][]models.Teacher)
	for _, t := range roster {
		key := strings.ToLower(t.InitialsKey())
		byInitials[key] = append(byInitials[key], t)
	}
	return &Resolver{byInitials: byInitials, opts: opts}
}

// Candidates returns the roster teachers sharing the given initials.
func (r *Resolver) Candidates(initials string) []models.Teacher {
	return r.byInitials[strings.ToLower(initials)]
}

// Resolve returns lesson with its teacher references upgraded where possible.
// Full profiles already on the lesson pass through untouched.
func (r *Resolver) Resolve(lesson models.LessonWithGroups) (models.LessonWithGroups, Stats) {
	var (
		stats    Stats
		resolved = make([]models.TeacherRef, 0, len(lesson.Teachers))
	)

	for _, ref := range lesson.Teachers {
		small, ok := ref.(models.TeacherSmall)
		if !ok {
			resolved = append(resolved, ref)
			continue
		}

		candidates := r.Candidates(small.Initials)
		switch {
		case len(candidates) == 0:
			stats.Unrecognized++
			if r.opts.SkipUnrecognized {
				stats.Dropped++
				continue
			}
			resolved = append(resolved, small)
		case len(candidates) == 1:
			stats.Resolved++
			resolved = append(resolved, candidates[0])
		default:
			if !r.opts.UseHeuristics {
				stats.Dropped++
				continue
			}
			stats.Resolved++
			stats.Heuristic++
			resolved = append(resolved, Rank(lesson, candidates, true)[0].Teacher)
		}
	}

	lesson.Teachers = resolved
	return lesson, stats
}

// ResolveIndex resolves every lesson of idx in place, keeping lesson ids.
func (r *Resolver) ResolveIndex(idx *keying.Index[models.LessonWithGroups]) Stats {
	var total Stats
	for _, pk := range idx.Values() {
		lesson, stats := r.Resolve(pk.Entity)
		idx.Replace(pk.Key, lesson)
		total.add(stats)
	}
	return total
}
