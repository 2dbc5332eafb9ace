package models

import (
	"strings"
	"unicode/utf8"
)

// TeacherRef is a reference to a teacher, either a full profile or initials only.
type TeacherRef interface {
	// InitialsKey returns the "Surname N.P." abbreviation.
	InitialsKey() string
	// IdentityKey returns the identity of the referenced teacher.
	IdentityKey() string

	teacherRef()
}

// Teacher is a canonical roster profile.
type Teacher struct {
	Name                string   `json:"name"`
	Surname             string   `json:"surname"`
	Patronymic          string   `json:"patronymic"`
	Initials            string   `json:"initials"`
	Position            string   `json:"position,omitempty"`
	Link                string   `json:"link,omitempty"`
	TeachingDisciplines []string `json:"teaching_disciplines"`
	TeachingPrograms    []string `json:"teaching_programs"`
	DirectionEducation  string   `json:"direction_education,omitempty"`
	LevelEducation      string   `json:"level_education,omitempty"`
	ExperienceAge       int      `json:"experience_age,omitempty"`
}

func (t Teacher) InitialsKey() string {
	if t.Initials != "" {
		return t.Initials
	}
	return BuildInitials(t.Surname, t.Name, t.Patronymic)
}

func (t Teacher) IdentityKey() string {
	return TeacherKey(t)
}

func (Teacher) teacherRef() {}

// TeacherSmall is a teacher known only by initials and an inferred role.
type TeacherSmall struct {
	Initials string `json:"initials"`
	Role     string `json:"role,omitempty"`
}

func (t TeacherSmall) InitialsKey() string {
	return t.Initials
}

func (t TeacherSmall) IdentityKey() string {
	return TeacherSmallKey(t)
}

func (TeacherSmall) teacherRef() {}

// BuildInitials formats "Surname N.P.". Missing name parts are left out.
func BuildInitials(surname, name, patronymic string) string {
	var b strings.Builder
	b.WriteString(surname)
	if r, _ := utf8.DecodeRuneInString(name); name != "" {
		b.WriteString(" ")
		b.WriteRune(r)
		b.WriteString(".")
		if r, _ := utf8.DecodeRuneInString(patronymic); patronymic != "" {
			b.WriteRune(r)
			b.WriteString(".")
		}
	}
	return b.String()
}
