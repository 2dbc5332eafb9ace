package hub

import (
	"fmt"

	"tvgu-data-hub/core/keying"
	"tvgu-data-hub/feature/hub/aggregate"
	"tvgu-data-hub/feature/hub/models"
	"tvgu-data-hub/feature/hub/normalize"
	"tvgu-data-hub/feature/hub/teachers"
)

// Result is a built dataset together with resolver statistics.
type Result struct {
	Dataset *models.Dataset
	Stats   teachers.Stats
}

// Build runs the resolution engine over materialized inputs.
func Build(in Inputs, opts teachers.Options) (*Result, error) {
	structs, err := keying.Assign(in.Structs, keying.Options[models.Struct]{Field: "name"})
	if err != nil {
		return nil, fmt.Errorf("failed to key structs: %w", err)
	}

	groups, err := keying.Assign(in.Schedules.Groups(), keying.Options[models.Group]{
		KeyFunc: func(g models.Group) (string, bool) { return models.GroupKey(g), g.OriginName != "" },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to key groups: %w", err)
	}

	lessons, err := normalize.Index(normalize.Lessons(in.Schedules))
	if err != nil {
		return nil, fmt.Errorf("failed to key lessons: %w", err)
	}

	stats := teachers.NewResolver(in.Roster, opts).ResolveIndex(lessons)

	dataset, err := aggregate.Aggregate(aggregate.Input{
		Structs:   structs,
		Groups:    groups,
		Lessons:   lessons,
		Roster:    in.Roster,
		Schedules: in.Schedules,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Dataset: dataset, Stats: stats}, nil
}
