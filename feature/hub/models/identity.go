package models

import (
	"fmt"
	"strings"
)

const keySep = "\x1f"

func joinKey(parts ...any) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return strings.Join(s, keySep)
}

// StructKey identifies a Struct by its name.
func StructKey(s Struct) string {
	return s.Name
}

// DepartmentKey identifies a Department by its owning struct code and its name.
func DepartmentKey(structCode string, d Department) string {
	return joinKey(structCode, d.Name)
}

// GroupKey identifies a Group by its origin name and owning faculty code.
func GroupKey(g Group) string {
	return joinKey(g.OriginName, g.FacultyCode)
}

// TeacherKey identifies a Teacher by its full name triple.
func TeacherKey(t Teacher) string {
	return joinKey("teacher", t.Surname, t.Name, t.Patronymic)
}

// TeacherSmallKey identifies a TeacherSmall by its initials.
func TeacherSmallKey(t TeacherSmall) string {
	return joinKey("small", t.Initials)
}

// SubjectKey identifies a subject by its (name, type) pair.
func SubjectKey(name, subjectType string) string {
	return joinKey(name, subjectType)
}

// PlaceKey identifies a place by its name.
func PlaceKey(name string) string {
	return name
}

// OccurrenceKey identifies a lesson occurrence independently of its teachers and groups.
func OccurrenceKey(l LessonWithGroups) string {
	return joinKey(l.WeekMark, l.WeekDay, l.LessonNumber, l.SubjectName, l.SubjectType, l.Place)
}

// LessonKey identifies an aggregated lesson by slot, subject and place ids.
func LessonKey(l LessonAggregated) string {
	return joinKey(l.WeekMark, l.WeekDay, l.LessonNumber, l.SubjectID, l.PlaceID)
}
