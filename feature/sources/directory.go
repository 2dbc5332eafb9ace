package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tvgu-data-hub/feature/hub/models"
)

// Directory reads the upstream documents from a local directory.
type Directory struct {
	root string
}

// NewDirectory creates a directory source rooted at root.
func NewDirectory(root string) *Directory {
	return &Directory{root: root}
}

func readFile[T any](ctx context.Context, root, name string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	f, err := os.Open(filepath.Join(root, name))
	if err != nil {
		return zero, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	return decode[T](f, name)
}

// LoadStructs reads structs.json.
func (d *Directory) LoadStructs(ctx context.Context) ([]models.Struct, error) {
	return readFile[[]models.Struct](ctx, d.root, StructsDocument)
}

// LoadTeachers reads teachers.json.
func (d *Directory) LoadTeachers(ctx context.Context) ([]models.Teacher, error) {
	return readFile[[]models.Teacher](ctx, d.root, TeachersDocument)
}

// LoadSchedules reads schedules.json.
func (d *Directory) LoadSchedules(ctx context.Context) (models.Schedules, error) {
	return readFile[models.Schedules](ctx, d.root, SchedulesDocument)
}
