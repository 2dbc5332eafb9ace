package sources

import (
	"context"
	"fmt"

	"tvgu-data-hub/feature/hub/models"

	"gorm.io/gorm"
)

// TeacherRow is a roster entry in the relational `teachers` table.
type TeacherRow struct {
	ID                  int      `gorm:"primaryKey;column:id"`
	Name                string   `gorm:"column:name;type:varchar(128)"`
	Surname             string   `gorm:"column:surname;type:varchar(128)"`
	Patronymic          string   `gorm:"column:patronymic;type:varchar(128)"`
	Initials            string   `gorm:"column:initials;type:varchar(160)"`
	Position            string   `gorm:"column:position;type:varchar(255)"`
	Link                string   `gorm:"column:link;type:varchar(512)"`
	TeachingDisciplines []string `gorm:"column:teaching_disciplines;type:text;serializer:json"`
	TeachingPrograms    []string `gorm:"column:teaching_programs;type:text;serializer:json"`
	DirectionEducation  string   `gorm:"column:direction_education;type:varchar(512)"`
	LevelEducation      string   `gorm:"column:level_education;type:varchar(255)"`
	ExperienceAge       int      `gorm:"column:experience_age;default:0"`
}

func (TeacherRow) TableName() string {
	return "teachers"
}

// ToModel converts the row into a roster teacher.
func (r TeacherRow) ToModel() models.Teacher {
	return models.Teacher{
		Name:                r.Name,
		Surname:             r.Surname,
		Patronymic:          r.Patronymic,
		Initials:            r.Initials,
		Position:            r.Position,
		Link:                r.Link,
		TeachingDisciplines: r.TeachingDisciplines,
		TeachingPrograms:    r.TeachingPrograms,
		DirectionEducation:  r.DirectionEducation,
		LevelEducation:      r.LevelEducation,
		ExperienceAge:       r.ExperienceAge,
	}
}

// DBRoster reads the teacher roster from the database, ordered by id.
type DBRoster struct {
	db *gorm.DB
}

// NewDBRoster creates a database roster source.
func NewDBRoster(db *gorm.DB) *DBRoster {
	return &DBRoster{db: db}
}

// LoadTeachers returns every roster row.
func (r *DBRoster) LoadTeachers(ctx context.Context) ([]models.Teacher, error) {
	var rows []TeacherRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query teachers: %w", err)
	}

	teachers := make([]models.Teacher, 0, len(rows))
	for _, row := range rows {
		teachers = append(teachers, row.ToModel())
	}
	return teachers, nil
}
