package aggregate

import (
	"fmt"
	"strings"

	"tvgu-data-hub/core/keying"
	"tvgu-data-hub/feature/hub/models"
)

type ownedDepartment struct {
	structID   int
	structName string
	structCode string
	department models.Department
}

// BuildDepartments assigns ids to the departments of every struct and resolves their bosses.
// The returned map is keyed by models.DepartmentKey.
func BuildDepartments(structs *keying.Index[models.Struct], teachers *TeacherRegistry) ([]models.DepartmentAggregated, map[string]int, error) {
	var owned []ownedDepartment
	for _, pk := range structs.Values() {
		for _, d := range pk.Entity.Departments {
			owned = append(owned, ownedDepartment{
				structID:   pk.ID,
				structName: pk.Entity.Name,
				structCode: pk.Entity.Code,
				department: d,
			})
		}
	}

	idx, err := keying.Assign(owned, keying.Options[ownedDepartment]{
		KeyFunc: func(o ownedDepartment) (string, bool) {
			return models.DepartmentKey(o.structCode, o.department), true
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to key departments: %w", err)
	}

	out := make([]models.DepartmentAggregated, 0, idx.Len())
	ids := make(map[string]int, idx.Len())
	for _, pk := range idx.Values() {
		d := pk.Entity.department
		out = append(out, models.DepartmentAggregated{
			ID:       pk.ID,
			Name:     d.Name,
			StructID: pk.Entity.structID,
			BossID:   teachers.bossID(d.Boss(), d.Name),
			BossJobs: d.BossJobs,
		})
		ids[pk.Key] = pk.ID
	}
	return out, ids, nil
}

// BuildStructs resolves the groups, departments and boss of every struct.
// Group names without a keyed group are left out: not every group publishes a schedule.
func BuildStructs(
	structs *keying.Index[models.Struct],
	groups *keying.Index[models.Group],
	departments map[string]int,
	teachers *TeacherRegistry,
) []models.StructAggregated {
	byOrigin := make(map[string]int)
	for _, pk := range groups.Values() {
		if _, ok := byOrigin[pk.Entity.OriginName]; !ok {
			byOrigin[pk.Entity.OriginName] = pk.ID
		}
	}

	out := make([]models.StructAggregated, 0, structs.Len())
	for _, pk := range structs.Values() {
		s := pk.Entity

		groupsIDs := []int{}
		for _, name := range s.Groups {
			if id, ok := byOrigin[name]; ok {
				groupsIDs = append(groupsIDs, id)
			}
		}

		departmentsIDs := make([]int, 0, len(s.Departments))
		for _, d := range s.Departments {
			departmentsIDs = append(departmentsIDs, departments[models.DepartmentKey(s.Code, d)])
		}

		out = append(out, models.StructAggregated{
			ID:             pk.ID,
			Name:           s.Name,
			Code:           s.Code,
			BossID:         teachers.bossID(s.Boss(), s.Name),
			GroupsIDs:      groupsIDs,
			DepartmentsIDs: departmentsIDs,
		})
	}
	return out
}

// BuildGroups attaches every group to the struct whose code equals its faculty code.
// A group without such a struct is an integrity error.
func BuildGroups(groups *keying.Index[models.Group], structs []models.StructAggregated, schedules models.Schedules) ([]models.GroupAggregated, error) {
	byCode := make(map[string]int, len(structs))
	for _, s := range structs {
		if _, ok := byCode[s.Code]; !ok {
			byCode[s.Code] = s.ID
		}
	}

	out := make([]models.GroupAggregated, 0, groups.Len())
	for _, pk := range groups.Values() {
		g := pk.Entity
		structID, ok := byCode[g.FacultyCode]
		if !ok {
			return nil, &StructNotFoundError{Code: g.FacultyCode, Group: g.OriginName}
		}

		out = append(out, models.GroupAggregated{
			ID:          pk.ID,
			Name:        g.Name,
			OriginName:  g.OriginName,
			Course:      g.Course,
			StructID:    structID,
			HasSchedule: schedules.Has(g),
		})
	}
	return out, nil
}

// BuildSubjects assigns ids to the distinct (name, type) pairs, in order of first appearance.
// The returned map is keyed by models.SubjectKey.
func BuildSubjects(lessons []keying.PK[models.LessonWithGroups]) ([]models.SubjectAggregated, map[string]int, error) {
	var distinct []models.SubjectAggregated
	seen := make(map[string]struct{})
	for _, pk := range lessons {
		key := models.SubjectKey(pk.Entity.SubjectName, pk.Entity.SubjectType)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, models.SubjectAggregated{Name: pk.Entity.SubjectName, Type: pk.Entity.SubjectType})
	}

	idx, err := keying.Assign(distinct, keying.Options[models.SubjectAggregated]{
		KeyFunc: func(s models.SubjectAggregated) (string, bool) { return models.SubjectKey(s.Name, s.Type), true },
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to key subjects: %w", err)
	}

	out := make([]models.SubjectAggregated, 0, idx.Len())
	ids := make(map[string]int, idx.Len())
	for _, pk := range idx.Values() {
		s := pk.Entity
		s.ID = pk.ID
		out = append(out, s)
		ids[pk.Key] = pk.ID
	}
	return out, ids, nil
}

// BuildPlaces assigns ids to the distinct place strings, in order of first appearance.
func BuildPlaces(lessons []keying.PK[models.LessonWithGroups]) ([]models.PlaceAggregated, map[string]int, error) {
	var distinct []models.PlaceAggregated
	seen := make(map[string]struct{})
	for _, pk := range lessons {
		if _, ok := seen[pk.Entity.Place]; ok {
			continue
		}
		seen[pk.Entity.Place] = struct{}{}
		distinct = append(distinct, models.PlaceAggregated{Name: pk.Entity.Place, IsLink: IsLink(pk.Entity.Place)})
	}

	idx, err := keying.Assign(distinct, keying.Options[models.PlaceAggregated]{Field: "name"})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to key places: %w", err)
	}

	out := make([]models.PlaceAggregated, 0, idx.Len())
	ids := make(map[string]int, idx.Len())
	for _, pk := range idx.Values() {
		p := pk.Entity
		p.ID = pk.ID
		out = append(out, p)
		ids[models.PlaceKey(p.Name)] = pk.ID
	}
	return out, ids, nil
}

// IsLink reports whether a place is an online venue.
func IsLink(place string) bool {
	return strings.Contains(strings.ToLower(place), "http")
}

// lessonRefs bundles the id lookups needed by BuildLessons.
type lessonRefs struct {
	groups   *keying.Index[models.Group]
	teachers *TeacherRegistry
	subjects map[string]int
	places   map[string]int
}

// BuildLessons resolves every reference of the keyed lessons and re-checks occurrence
// identity on the resolved ids.
func BuildLessons(lessons []keying.PK[models.LessonWithGroups], refs lessonRefs) ([]models.LessonAggregated, error) {
	aggregated := make([]models.LessonAggregated, 0, len(lessons))
	for _, pk := range lessons {
		l := pk.Entity

		groupsIDs := make([]int, 0, len(l.Groups))
		for _, g := range l.Groups {
			gpk, ok := refs.groups.Get(models.GroupKey(g))
			if !ok {
				return nil, fmt.Errorf("lesson %d references unknown group %q", pk.ID, g.OriginName)
			}
			groupsIDs = append(groupsIDs, gpk.ID)
		}

		teachersIDs := make([]int, 0, len(l.Teachers))
		for _, t := range l.Teachers {
			id, ok := refs.teachers.ID(t)
			if !ok {
				return nil, fmt.Errorf("lesson %d references unknown teacher %q", pk.ID, t.InitialsKey())
			}
			teachersIDs = append(teachersIDs, id)
		}

		aggregated = append(aggregated, models.LessonAggregated{
			ID:           pk.ID,
			WeekMark:     l.WeekMark,
			WeekDay:      l.WeekDay,
			LessonNumber: l.LessonNumber,
			GroupsIDs:    groupsIDs,
			TeachersIDs:  teachersIDs,
			SubjectID:    refs.subjects[models.SubjectKey(l.SubjectName, l.SubjectType)],
			PlaceID:      refs.places[models.PlaceKey(l.Place)],
		})
	}

	idx, err := keying.Assign(aggregated, keying.Options[models.LessonAggregated]{
		KeyFunc: func(l models.LessonAggregated) (string, bool) { return models.LessonKey(l), true },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to key lessons: %w", err)
	}

	out := make([]models.LessonAggregated, 0, idx.Len())
	for _, pk := range idx.Values() {
		out = append(out, pk.Entity)
	}
	return out, nil
}
