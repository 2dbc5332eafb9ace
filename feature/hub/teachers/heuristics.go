package teachers

import (
	"sort"

	"tvgu-data-hub/core/fuzzy"
	"tvgu-data-hub/feature/hub/models"
)

// SingleCandidateScore is reported for a lone candidate accepted without scoring.
const SingleCandidateScore = 100.0

const (
	weightDisciplines = 50.0
	weightPrograms    = 20.0
	weightDirection   = 7.0
	weightLevel       = 7.0
	weightExperience  = 0.1
	maxExperience     = 40
)

// Scored is a candidate with its heuristic score.
type Scored struct {
	Teacher models.Teacher
	Score   float64
}

// Score rates how likely candidate teaches the subject of lesson.
func Score(lesson models.LessonWithGroups, candidate models.Teacher) float64 {
	score := 0.0
	subject := lesson.SubjectName

	if subject != "" {
		score += weightDisciplines * fuzzy.Best(subject, candidate.TeachingDisciplines)
		score += weightPrograms * fuzzy.Best(subject, candidate.TeachingPrograms)
		score += weightDirection * fuzzy.TokenSet(subject, candidate.DirectionEducation)
		score += weightLevel * fuzzy.TokenSet(subject, candidate.LevelEducation)
	}

	score += weightExperience * float64(min(max(candidate.ExperienceAge, 0), maxExperience))
	return score
}

// Rank scores candidates for lesson, best first. Equal scores keep input order.
// With acceptSingle a lone candidate is returned with SingleCandidateScore unscored.
func Rank(lesson models.LessonWithGroups, candidates []models.Teacher, acceptSingle bool) []Scored {
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) == 1 && acceptSingle {
		return []Scored{{Teacher: candidates[0], Score: SingleCandidateScore}}
	}

	scored := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, Scored{Teacher: c, Score: Score(lesson, c)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
