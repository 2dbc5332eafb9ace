package export

import "tvgu-data-hub/feature/hub/models"

const (
	teacherKindFull  = "teacher"
	teacherKindSmall = "small"
)

type DepartmentRow struct {
	ID       int      `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name     string   `gorm:"column:name;type:varchar(255)"`
	StructID int      `gorm:"column:struct_id;index"`
	BossID   *int     `gorm:"column:boss_id"`
	BossJobs []string `gorm:"column:boss_jobs;type:text;serializer:json"`
}

func (DepartmentRow) TableName() string {
	return "hub_departments"
}

type StructRow struct {
	ID             int    `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name           string `gorm:"column:name;type:varchar(255)"`
	Code           string `gorm:"column:code;type:varchar(64)"`
	BossID         *int   `gorm:"column:boss_id"`
	GroupsIDs      []int  `gorm:"column:groups_ids;type:text;serializer:json"`
	DepartmentsIDs []int  `gorm:"column:departments_ids;type:text;serializer:json"`
}

func (StructRow) TableName() string {
	return "hub_structs"
}

// TeacherRow flattens both teacher variants. Kind tells them apart.
type TeacherRow struct {
	ID                  int      `gorm:"primaryKey;autoIncrement:false;column:id"`
	Kind                string   `gorm:"column:kind;type:varchar(16)"`
	Name                string   `gorm:"column:name;type:varchar(128)"`
	Surname             string   `gorm:"column:surname;type:varchar(128)"`
	Patronymic          string   `gorm:"column:patronymic;type:varchar(128)"`
	Initials            string   `gorm:"column:initials;type:varchar(160)"`
	Role                string   `gorm:"column:role;type:varchar(512)"`
	Position            string   `gorm:"column:position;type:varchar(255)"`
	Link                string   `gorm:"column:link;type:varchar(512)"`
	TeachingDisciplines []string `gorm:"column:teaching_disciplines;type:text;serializer:json"`
	TeachingPrograms    []string `gorm:"column:teaching_programs;type:text;serializer:json"`
	DirectionEducation  string   `gorm:"column:direction_education;type:varchar(512)"`
	LevelEducation      string   `gorm:"column:level_education;type:varchar(255)"`
	ExperienceAge       int      `gorm:"column:experience_age"`
	HasLessons          bool     `gorm:"column:has_lessons"`
}

func (TeacherRow) TableName() string {
	return "hub_teachers"
}

type PlaceRow struct {
	ID     int    `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name   string `gorm:"column:name;type:varchar(512)"`
	IsLink bool   `gorm:"column:is_link"`
}

func (PlaceRow) TableName() string {
	return "hub_places"
}

type SubjectRow struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name string `gorm:"column:name;type:varchar(512)"`
	Type string `gorm:"column:type;type:varchar(128)"`
}

func (SubjectRow) TableName() string {
	return "hub_subjects"
}

type GroupRow struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name        string `gorm:"column:name;type:varchar(128)"`
	OriginName  string `gorm:"column:origin_name;type:varchar(128)"`
	Course      int    `gorm:"column:course"`
	StructID    int    `gorm:"column:struct_id;index"`
	HasSchedule bool   `gorm:"column:has_schedule"`
}

func (GroupRow) TableName() string {
	return "hub_groups"
}

type LessonRow struct {
	ID           int   `gorm:"primaryKey;autoIncrement:false;column:id"`
	WeekMark     int   `gorm:"column:week_mark"`
	WeekDay      int   `gorm:"column:week_day"`
	LessonNumber int   `gorm:"column:lesson_number"`
	GroupsIDs    []int `gorm:"column:groups_ids;type:text;serializer:json"`
	TeachersIDs  []int `gorm:"column:teachers_ids;type:text;serializer:json"`
	SubjectID    int   `gorm:"column:subject_id;index"`
	PlaceID      int   `gorm:"column:place_id;index"`
}

func (LessonRow) TableName() string {
	return "hub_lessons"
}

// Tables lists every row model in dependency order.
func Tables() []any {
	return []any{&StructRow{}, &DepartmentRow{}, &TeacherRow{}, &PlaceRow{}, &SubjectRow{}, &GroupRow{}, &LessonRow{}}
}

func teacherRow(t models.TeacherEntity) TeacherRow {
	switch v := t.(type) {
	case models.TeacherAggregated:
		return TeacherRow{
			ID:                  v.ID,
			Kind:                teacherKindFull,
			Name:                v.Name,
			Surname:             v.Surname,
			Patronymic:          v.Patronymic,
			Initials:            v.InitialsKey(),
			Position:            v.Position,
			Link:                v.Link,
			TeachingDisciplines: v.TeachingDisciplines,
			TeachingPrograms:    v.TeachingPrograms,
			DirectionEducation:  v.DirectionEducation,
			LevelEducation:      v.LevelEducation,
			ExperienceAge:       v.ExperienceAge,
			HasLessons:          v.HasLessons,
		}
	case models.TeacherSmallAggregated:
		return TeacherRow{
			ID:         v.ID,
			Kind:       teacherKindSmall,
			Initials:   v.Initials,
			Role:       v.Role,
			HasLessons: v.HasLessons,
		}
	}
	return TeacherRow{ID: t.EntityID(), Initials: t.InitialsKey(), HasLessons: t.IsTeaching()}
}

// Rows holds the dataset converted into row models.
type Rows struct {
	Departments []DepartmentRow
	Structs     []StructRow
	Teachers    []TeacherRow
	Places      []PlaceRow
	Subjects    []SubjectRow
	Groups      []GroupRow
	Lessons     []LessonRow
}

// ToRows converts a dataset into row models.
func ToRows(d *models.Dataset) Rows {
	var r Rows
	for _, x := range d.Departments {
		r.Departments = append(r.Departments, DepartmentRow(x))
	}
	for _, x := range d.Structs {
		r.Structs = append(r.Structs, StructRow(x))
	}
	for _, x := range d.Teachers {
		r.Teachers = append(r.Teachers, teacherRow(x))
	}
	for _, x := range d.Places {
		r.Places = append(r.Places, PlaceRow(x))
	}
	for _, x := range d.Subjects {
		r.Subjects = append(r.Subjects, SubjectRow(x))
	}
	for _, x := range d.Groups {
		r.Groups = append(r.Groups, GroupRow(x))
	}
	for _, x := range d.Lessons {
		r.Lessons = append(r.Lessons, LessonRow(x))
	}
	return r
}
