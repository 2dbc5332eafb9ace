package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tvgu-data-hub/feature/hub/models"

	"github.com/goccy/go-json"
)

// ErrConflictingOutput is returned when both an explicit and an automatic output name are requested.
var ErrConflictingOutput = errors.New("output and output-auto cannot be used together")

// AutoName returns the date-based dataset file name.
func AutoName(now time.Time) string {
	return fmt.Sprintf("all_tvgu_data-%s.json", now.Format("2006-01-02"))
}

// ResolvePath decides where the dataset file goes. An empty path means no file is written.
func ResolvePath(output string, auto bool, directory string, now time.Time) (string, error) {
	if output != "" && auto {
		return "", ErrConflictingOutput
	}

	name := output
	if auto {
		name = AutoName(now)
	}
	if name == "" {
		return "", nil
	}

	if directory != "" {
		name = filepath.Join(directory, name)
	}
	return name, nil
}

// Encode serializes the dataset. Non-ASCII text and HTML characters are kept as is.
func Encode(d *models.Dataset, prettify bool) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if prettify {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile stores encoded data at path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
