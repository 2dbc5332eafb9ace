package sources

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

const (
	StructsDocument   = "structs.json"
	TeachersDocument  = "teachers.json"
	SchedulesDocument = "schedules.json"
)

func decode[T any](r io.Reader, name string) (T, error) {
	var v T

	data, err := io.ReadAll(r)
	if err != nil {
		return v, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return v, nil
}
