// Package normalize flattens per-group schedules into canonical lesson occurrences.
package normalize

import (
	"tvgu-data-hub/core/keying"
	"tvgu-data-hub/feature/hub/models"
)

// Lessons flattens every (group, lesson) pair and merges the pairs that describe the
// same real class session.
//
// Week days are shifted so that Monday is 0. Occurrences are grouped by
// models.OccurrenceKey, which ignores teachers and groups. Inside a bucket groups are
// united and teachers are deduplicated by initials, the first reference winning.
// The result is ordered by first appearance.
func Lessons(schedules models.Schedules) []models.LessonWithGroups {
	var (
		order   []string
		buckets = make(map[string][]models.LessonWithGroups)
	)

	for _, code := range schedules.Codes() {
		for _, gs := range schedules[code] {
			for _, lesson := range gs.Lessons {
				flat := flatten(lesson, gs.Group)
				key := models.OccurrenceKey(flat)
				if _, seen := buckets[key]; !seen {
					order = append(order, key)
				}
				buckets[key] = append(buckets[key], flat)
			}
		}
	}

	out := make([]models.LessonWithGroups, 0, len(order))
	for _, key := range order {
		out = append(out, merge(buckets[key]))
	}
	return out
}

// Index assigns occurrence ids to normalized lessons.
func Index(lessons []models.LessonWithGroups) (*keying.Index[models.LessonWithGroups], error) {
	return keying.Assign(lessons, keying.Options[models.LessonWithGroups]{
		KeyFunc: func(l models.LessonWithGroups) (string, bool) {
			return models.OccurrenceKey(l), true
		},
	})
}

func flatten(lesson models.Lesson, group models.Group) models.LessonWithGroups {
	teachers := make([]models.TeacherRef, 0, len(lesson.Teachers))
	for _, t := range lesson.Teachers {
		teachers = append(teachers, t)
	}

	return models.LessonWithGroups{
		WeekMark:     lesson.WeekMark,
		WeekDay:      lesson.WeekDay - 1,
		LessonNumber: lesson.LessonNumber,
		SubjectName:  lesson.SubjectName,
		SubjectType:  lesson.SubjectType,
		Place:        lesson.Place,
		Teachers:     teachers,
		Groups:       []models.Group{group},
	}
}

// merge collapses one bucket. The same initials with different roles count as one
// teacher: two namesakes co-teaching a single slot is not expected.
func merge(bucket []models.LessonWithGroups) models.LessonWithGroups {
	base := bucket[0]

	var (
		teachers     []models.TeacherRef
		groups       []models.Group
		seenInitials = make(map[string]struct{})
		seenGroups   = make(map[string]struct{})
	)

	for _, lesson := range bucket {
		for _, t := range lesson.Teachers {
			if _, ok := seenInitials[t.InitialsKey()]; ok {
				continue
			}
			seenInitials[t.InitialsKey()] = struct{}{}
			teachers = append(teachers, t)
		}
		for _, g := range lesson.Groups {
			key := models.GroupKey(g)
			if _, ok := seenGroups[key]; ok {
				continue
			}
			seenGroups[key] = struct{}{}
			groups = append(groups, g)
		}
	}

	base.Teachers = teachers
	base.Groups = groups
	return base
}
