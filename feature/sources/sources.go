package sources

import (
	"errors"
	"fmt"

	"tvgu-data-hub/core/storage"
	"tvgu-data-hub/feature/hub"

	"gorm.io/gorm"
)

// ErrNoDatabase is returned when the roster is configured to come from a missing database.
var ErrNoDatabase = errors.New("teachers_from_db requires a database connection")

// New wires the configured sources. client and db may be nil when unused.
func New(cfg Config, client storage.Client, bucket string, db *gorm.DB) (hub.Sources, error) {
	var src hub.Sources

	switch cfg.Kind {
	case KindDirectory:
		d := NewDirectory(cfg.Directory)
		src = hub.Sources{Structs: d, Roster: d, Schedules: d}
	case KindBucket:
		if client == nil {
			return src, fmt.Errorf("source kind %q requires a storage client", cfg.Kind)
		}
		b := NewBucket(client, bucket, cfg.BucketPrefix)
		src = hub.Sources{Structs: b, Roster: b, Schedules: b}
	default:
		return src, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}

	if cfg.TeachersFromDB {
		if db == nil {
			return hub.Sources{}, ErrNoDatabase
		}
		src.Roster = NewDBRoster(db)
	}

	return src, nil
}
