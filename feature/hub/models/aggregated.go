package models

import "strings"

// StructAggregated is a Struct with resolved boss, groups and departments.
type StructAggregated struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	BossID         *int   `json:"boss_id"`
	GroupsIDs      []int  `json:"groups_ids"`
	DepartmentsIDs []int  `json:"departments_ids"`
}

// DepartmentAggregated is a Department attached to its struct and resolved boss.
type DepartmentAggregated struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	StructID int      `json:"struct_id"`
	BossID   *int     `json:"boss_id"`
	BossJobs []string `json:"boss_jobs"`
}

// GroupAggregated is a Group attached to its owning struct.
type GroupAggregated struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	OriginName  string `json:"origin_name"`
	Course      int    `json:"course,omitempty"`
	StructID    int    `json:"struct_id"`
	HasSchedule bool   `json:"has_schedule"`
}

// TeacherEntity is the common capability of both aggregated teacher variants.
type TeacherEntity interface {
	TeacherRef
	EntityID() int
	IsTeaching() bool
}

// TeacherAggregated is a roster Teacher with an id.
type TeacherAggregated struct {
	ID int `json:"id"`
	Teacher
	HasLessons bool `json:"has_lessons"`
}

func (t TeacherAggregated) EntityID() int    { return t.ID }
func (t TeacherAggregated) IsTeaching() bool { return t.HasLessons }

// MatchesFullName compares the full name triple case-insensitively.
func (t TeacherAggregated) MatchesFullName(b Boss) bool {
	return strings.EqualFold(t.Surname, b.Surname) &&
		strings.EqualFold(t.Name, b.Name) &&
		strings.EqualFold(t.Patronymic, b.Patronymic)
}

// TeacherSmallAggregated is an initials-only teacher with an id.
type TeacherSmallAggregated struct {
	ID int `json:"id"`
	TeacherSmall
	HasLessons bool `json:"has_lessons"`
}

func (t TeacherSmallAggregated) EntityID() int    { return t.ID }
func (t TeacherSmallAggregated) IsTeaching() bool { return t.HasLessons }

// SubjectAggregated is a distinct (name, type) subject pair.
type SubjectAggregated struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// PlaceAggregated is a distinct place string. IsLink marks online venues.
type PlaceAggregated struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	IsLink bool   `json:"is_link"`
}

// LessonAggregated is a lesson occurrence with all references resolved to ids.
type LessonAggregated struct {
	ID           int   `json:"id"`
	WeekMark     int   `json:"week_mark"`
	WeekDay      int   `json:"week_day"`
	LessonNumber int   `json:"lesson_number"`
	GroupsIDs    []int `json:"groups_ids"`
	TeachersIDs  []int `json:"teachers_ids"`
	SubjectID    int   `json:"subject_id"`
	PlaceID      int   `json:"place_id"`
}

// Dataset is the complete reconciled entity graph.
type Dataset struct {
	Departments []DepartmentAggregated `json:"departments"`
	Structs     []StructAggregated     `json:"structs"`
	Teachers    []TeacherEntity        `json:"teachers"`
	Places      []PlaceAggregated      `json:"places"`
	Subjects    []SubjectAggregated    `json:"subjects"`
	Groups      []GroupAggregated      `json:"groups"`
	Lessons     []LessonAggregated     `json:"lessons"`
}

// Collections lists the dataset keys in serialization order.
var Collections = []string{"departments", "structs", "teachers", "places", "subjects", "groups", "lessons"}

// Collection returns the named collection, or false for unknown names.
func (d *Dataset) Collection(name string) (any, bool) {
	switch name {
	case "departments":
		return d.Departments, true
	case "structs":
		return d.Structs, true
	case "teachers":
		return d.Teachers, true
	case "places":
		return d.Places, true
	case "subjects":
		return d.Subjects, true
	case "groups":
		return d.Groups, true
	case "lessons":
		return d.Lessons, true
	default:
		return nil, false
	}
}
