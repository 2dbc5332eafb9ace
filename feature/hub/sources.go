package hub

import (
	"context"

	"tvgu-data-hub/feature/hub/models"
)

// StructSource provides the organizational structure.
type StructSource interface {
	LoadStructs(ctx context.Context) ([]models.Struct, error)
}

// RosterSource provides the canonical teacher roster.
type RosterSource interface {
	LoadTeachers(ctx context.Context) ([]models.Teacher, error)
}

// ScheduleSource provides per-group schedules keyed by struct code.
type ScheduleSource interface {
	LoadSchedules(ctx context.Context) (models.Schedules, error)
}

// Sources bundles the three upstream collaborators.
type Sources struct {
	Structs   StructSource
	Roster    RosterSource
	Schedules ScheduleSource
}

// Inputs is the materialized output of all sources.
type Inputs struct {
	Structs   []models.Struct
	Roster    []models.Teacher
	Schedules models.Schedules
}
