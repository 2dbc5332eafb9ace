package hub

import "tvgu-data-hub/feature/hub/teachers"

// Config holds the teacher resolver switches.
type Config struct {
	// UseHeuristics scores same-initials candidates instead of dropping the reference.
	UseHeuristics bool `mapstructure:"use_heuristics_for_teachers" default:"true"`
	// SkipUnrecognized drops references that match no roster teacher.
	SkipUnrecognized bool `mapstructure:"skip_unrecognized_teachers" default:"false"`
}

// Options converts the configuration into resolver options.
func (c Config) Options() teachers.Options {
	return teachers.Options{
		UseHeuristics:    c.UseHeuristics,
		SkipUnrecognized: c.SkipUnrecognized,
	}
}
