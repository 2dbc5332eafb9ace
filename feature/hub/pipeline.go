package hub

import (
	"context"
	"fmt"
	"time"

	"tvgu-data-hub/feature/hub/teachers"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Collect fetches all sources concurrently. The first failure cancels the others.
func Collect(ctx context.Context, src Sources) (*Inputs, error) {
	var in Inputs

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		structs, err := src.Structs.LoadStructs(ctx)
		if err != nil {
			return fmt.Errorf("failed to load structs: %w", err)
		}
		in.Structs = structs
		return nil
	})

	g.Go(func() error {
		roster, err := src.Roster.LoadTeachers(ctx)
		if err != nil {
			return fmt.Errorf("failed to load teachers: %w", err)
		}
		in.Roster = roster
		return nil
	})

	g.Go(func() error {
		schedules, err := src.Schedules.LoadSchedules(ctx)
		if err != nil {
			return fmt.Errorf("failed to load schedules: %w", err)
		}
		in.Schedules = schedules
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Service collects the sources and builds the dataset.
type Service struct {
	sources Sources
	opts    teachers.Options
	logger  *zap.Logger
}

// NewService creates a new hub service.
func NewService(sources Sources, opts teachers.Options, logger *zap.Logger) *Service {
	return &Service{
		sources: sources,
		opts:    opts,
		logger:  logger,
	}
}

// Run executes the whole pipeline once.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	s.logger.Debug("Collecting sources")
	in, err := Collect(ctx, s.sources)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Sources collected",
		zap.Int("structs", len(in.Structs)),
		zap.Int("teachers", len(in.Roster)),
		zap.Int("struct_schedules", len(in.Schedules)),
	)

	res, err := Build(*in, s.opts)
	if err != nil {
		return nil, err
	}

	d := res.Dataset
	s.logger.Info("Dataset built",
		zap.Int("departments", len(d.Departments)),
		zap.Int("structs", len(d.Structs)),
		zap.Int("teachers", len(d.Teachers)),
		zap.Int("places", len(d.Places)),
		zap.Int("subjects", len(d.Subjects)),
		zap.Int("groups", len(d.Groups)),
		zap.Int("lessons", len(d.Lessons)),
		zap.Duration("elapsed", time.Since(start)),
	)
	s.logger.Debug("Teacher references resolved",
		zap.Int("resolved", res.Stats.Resolved),
		zap.Int("heuristic", res.Stats.Heuristic),
		zap.Int("unrecognized", res.Stats.Unrecognized),
		zap.Int("dropped", res.Stats.Dropped),
	)

	return res, nil
}
