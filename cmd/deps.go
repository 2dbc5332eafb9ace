package cmd

import (
	"fmt"

	"tvgu-data-hub/core/config"
	"tvgu-data-hub/core/database"
	"tvgu-data-hub/core/storage"
	"tvgu-data-hub/feature/hub"
	"tvgu-data-hub/feature/sources"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// connectDatabase opens the database. When required is false a failure is only logged.
func connectDatabase(cfg *config.Config, logg *zap.Logger, required bool) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err == nil {
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		return db, nil
	}
	if required {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	logg.Warn("Optional database connection failed", zap.Error(err))
	return nil, nil
}

// buildSources wires the configured upstream sources, opening storage and database only
// when they are needed.
func buildSources(cfg *config.Config, logg *zap.Logger, db *gorm.DB) (hub.Sources, storage.Client, error) {
	var client storage.Client
	if cfg.Sources.Kind == sources.KindBucket {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return hub.Sources{}, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	if cfg.Sources.TeachersFromDB && db == nil {
		conn, err := connectDatabase(cfg, logg, true)
		if err != nil {
			return hub.Sources{}, nil, err
		}
		db = conn
	}

	src, err := sources.New(cfg.Sources, client, cfg.Storage.Bucket, db)
	if err != nil {
		return hub.Sources{}, nil, err
	}

	logg.Debug("Sources configured",
		zap.String("kind", cfg.Sources.Kind),
		zap.Bool("teachers_from_db", cfg.Sources.TeachersFromDB),
	)
	return src, client, nil
}
