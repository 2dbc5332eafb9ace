package models

import "sort"

// Department is a sub-unit of a Struct.
type Department struct {
	Name           string   `json:"name"`
	BossName       string   `json:"boss_name,omitempty"`
	BossSurname    string   `json:"boss_surname,omitempty"`
	BossPatronymic string   `json:"boss_patronymic,omitempty"`
	BossJobs       []string `json:"boss_jobs,omitempty"`
}

// Boss returns the declared head of the department.
func (d Department) Boss() Boss {
	return Boss{Name: d.BossName, Surname: d.BossSurname, Patronymic: d.BossPatronymic}
}

// Struct is a top-level organizational unit (faculty or institute).
type Struct struct {
	Name           string       `json:"name"`
	Code           string       `json:"code"`
	BossName       string       `json:"boss_name,omitempty"`
	BossSurname    string       `json:"boss_surname,omitempty"`
	BossPatronymic string       `json:"boss_patronymic,omitempty"`
	Departments    []Department `json:"departments"`
	Groups         []string     `json:"groups"`
}

// Boss returns the declared head of the struct.
func (s Struct) Boss() Boss {
	return Boss{Name: s.BossName, Surname: s.BossSurname, Patronymic: s.BossPatronymic}
}

// Boss is the full name of an organizational head.
type Boss struct {
	Name       string
	Surname    string
	Patronymic string
}

// Declared reports whether a boss is present. The surname is mandatory.
func (b Boss) Declared() bool {
	return b.Surname != ""
}

// Initials formats the boss the way schedules abbreviate teachers.
func (b Boss) Initials() string {
	return BuildInitials(b.Surname, b.Name, b.Patronymic)
}

// Group is a student cohort, owned by the faculty with FacultyCode.
type Group struct {
	Name        string `json:"name"`
	OriginName  string `json:"origin_name"`
	FacultyCode string `json:"faculty_code"`
	Course      int    `json:"course,omitempty"`
}

// Lesson is one scheduled occurrence as published for a single group.
// WeekDay uses the upstream convention where Monday is 1.
type Lesson struct {
	WeekMark     int            `json:"week_mark"`
	WeekDay      int            `json:"week_day"`
	LessonNumber int            `json:"lesson_number"`
	SubjectName  string         `json:"subject_name"`
	SubjectType  string         `json:"subject_type"`
	Place        string         `json:"place"`
	Teachers     []TeacherSmall `json:"teachers"`
}

// GroupSchedule is the lesson list published for one group.
// An empty Lessons slice still means the group has a schedule page.
type GroupSchedule struct {
	Group   Group    `json:"group"`
	Lessons []Lesson `json:"lessons"`
}

// Schedules maps a struct code to the schedules of the groups it owns.
type Schedules map[string][]GroupSchedule

// Codes returns the struct codes in ascending order.
func (s Schedules) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Groups flattens all groups, ordered by struct code and then by source order.
func (s Schedules) Groups() []Group {
	var groups []Group
	for _, code := range s.Codes() {
		for _, gs := range s[code] {
			groups = append(groups, gs.Group)
		}
	}
	return groups
}

// Has reports whether the schedule lists group under its own faculty code.
func (s Schedules) Has(group Group) bool {
	key := GroupKey(group)
	for _, gs := range s[group.FacultyCode] {
		if GroupKey(gs.Group) == key {
			return true
		}
	}
	return false
}

// LessonWithGroups is a lesson occurrence together with every group attending it.
type LessonWithGroups struct {
	WeekMark     int
	WeekDay      int
	LessonNumber int
	SubjectName  string
	SubjectType  string
	Place        string
	Teachers     []TeacherRef
	Groups       []Group
}
