package aggregate

import (
	"fmt"
	"strings"

	"tvgu-data-hub/core/keying"
	"tvgu-data-hub/feature/hub/models"
)

// bossRole describes a synthesized organizational head.
const bossRole = "Руководитель: %s"

// TeacherRegistry owns every aggregated teacher of a run.
type TeacherRegistry struct {
	entities   []models.TeacherEntity
	byIdentity map[string]int
	full       []models.TeacherAggregated
	small      []models.TeacherSmallAggregated
	alloc      *IDAllocator
}

// BuildTeachers unites the roster with every reference found on resolved lessons.
// Roster entries come first, in roster order, followed by lesson references in lesson
// order. A teacher is marked as having lessons when any lesson references it.
func BuildTeachers(roster []models.Teacher, lessons []keying.PK[models.LessonWithGroups]) (*TeacherRegistry, error) {
	var (
		refs     []models.TeacherRef
		seen     = make(map[string]struct{})
		teaching = make(map[string]struct{})
	)

	add := func(ref models.TeacherRef) {
		key := ref.IdentityKey()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		refs = append(refs, ref)
	}

	for _, t := range roster {
		add(t)
	}
	for _, pk := range lessons {
		for _, ref := range pk.Entity.Teachers {
			teaching[ref.IdentityKey()] = struct{}{}
			add(ref)
		}
	}

	idx, err := keying.Assign(refs, keying.Options[models.TeacherRef]{
		KeyFunc: func(ref models.TeacherRef) (string, bool) { return ref.IdentityKey(), true },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to key teachers: %w", err)
	}

	r := &TeacherRegistry{
		byIdentity: make(map[string]int, idx.Len()),
		alloc:      &IDAllocator{},
	}
	for _, pk := range idx.Values() {
		_, has := teaching[pk.Key]
		r.add(pk.Entity, pk.ID, has)
	}
	return r, nil
}

func (r *TeacherRegistry) add(ref models.TeacherRef, id int, hasLessons bool) models.TeacherEntity {
	var entity models.TeacherEntity
	switch t := ref.(type) {
	case models.Teacher:
		agg := models.TeacherAggregated{ID: id, Teacher: t, HasLessons: hasLessons}
		r.full = append(r.full, agg)
		entity = agg
	case models.TeacherSmall:
		agg := models.TeacherSmallAggregated{ID: id, TeacherSmall: t, HasLessons: hasLessons}
		r.small = append(r.small, agg)
		entity = agg
	}

	r.byIdentity[ref.IdentityKey()] = len(r.entities)
	r.entities = append(r.entities, entity)
	r.alloc.Observe(id)
	return entity
}

// ID returns the id assigned to a teacher reference.
func (r *TeacherRegistry) ID(ref models.TeacherRef) (int, bool) {
	i, ok := r.byIdentity[ref.IdentityKey()]
	if !ok {
		return 0, false
	}
	return r.entities[i].EntityID(), true
}

// Entities returns all teachers in id order, synthesized bosses last.
func (r *TeacherRegistry) Entities() []models.TeacherEntity {
	return r.entities
}

// ResolveBoss returns the teacher id for the head of unit.
//
// A roster teacher with the same full name wins, then an initials-only teacher with the
// boss's "Surname N.P." initials. Otherwise a new initials-only teacher is synthesized
// with the next free id, and later bosses with the same name reuse it.
func (r *TeacherRegistry) ResolveBoss(boss models.Boss, unit string) int {
	for _, t := range r.full {
		if t.MatchesFullName(boss) {
			return t.ID
		}
	}

	initials := boss.Initials()
	for _, t := range r.small {
		if strings.EqualFold(t.Initials, initials) {
			return t.ID
		}
	}

	id := r.alloc.Allocate()
	small := models.TeacherSmall{Initials: initials, Role: fmt.Sprintf(bossRole, unit)}
	r.add(small, id, false)
	return id
}

func (r *TeacherRegistry) bossID(boss models.Boss, unit string) *int {
	if !boss.Declared() {
		return nil
	}
	id := r.ResolveBoss(boss, unit)
	return &id
}
