package aggregate

import (
	"tvgu-data-hub/core/keying"
	"tvgu-data-hub/feature/hub/models"
)

// Input is everything the aggregator consumes. Lessons must already be normalized
// and resolved.
type Input struct {
	Structs   *keying.Index[models.Struct]
	Groups    *keying.Index[models.Group]
	Lessons   *keying.Index[models.LessonWithGroups]
	Roster    []models.Teacher
	Schedules models.Schedules
}

// Aggregate builds the final dataset. Any error leaves no partial result.
func Aggregate(in Input) (*models.Dataset, error) {
	lessons := in.Lessons.Values()

	teachers, err := BuildTeachers(in.Roster, lessons)
	if err != nil {
		return nil, err
	}

	departments, departmentIDs, err := BuildDepartments(in.Structs, teachers)
	if err != nil {
		return nil, err
	}

	structs := BuildStructs(in.Structs, in.Groups, departmentIDs, teachers)

	places, placeIDs, err := BuildPlaces(lessons)
	if err != nil {
		return nil, err
	}

	subjects, subjectIDs, err := BuildSubjects(lessons)
	if err != nil {
		return nil, err
	}

	groups, err := BuildGroups(in.Groups, structs, in.Schedules)
	if err != nil {
		return nil, err
	}

	aggregatedLessons, err := BuildLessons(lessons, lessonRefs{
		groups:   in.Groups,
		teachers: teachers,
		subjects: subjectIDs,
		places:   placeIDs,
	})
	if err != nil {
		return nil, err
	}

	return &models.Dataset{
		Departments: departments,
		Structs:     structs,
		Teachers:    teachers.Entities(),
		Places:      places,
		Subjects:    subjects,
		Groups:      groups,
		Lessons:     aggregatedLessons,
	}, nil
}
