package export

import (
	"context"
	"fmt"

	"tvgu-data-hub/feature/hub/models"

	"gorm.io/gorm"
)

const batchSize = 500

// Persist replaces the content of every hub_* table with the dataset.
// Either all tables are replaced or none is.
func Persist(ctx context.Context, db *gorm.DB, d *models.Dataset) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(Tables()...); err != nil {
		return fmt.Errorf("failed to migrate hub tables: %w", err)
	}

	rows := ToRows(d)
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range Tables() {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", table, err)
			}
		}

		inserts := []struct {
			name  string
			value any
			n     int
		}{
			{"structs", rows.Structs, len(rows.Structs)},
			{"departments", rows.Departments, len(rows.Departments)},
			{"teachers", rows.Teachers, len(rows.Teachers)},
			{"places", rows.Places, len(rows.Places)},
			{"subjects", rows.Subjects, len(rows.Subjects)},
			{"groups", rows.Groups, len(rows.Groups)},
			{"lessons", rows.Lessons, len(rows.Lessons)},
		}
		for _, ins := range inserts {
			if ins.n == 0 {
				continue
			}
			if err := tx.CreateInBatches(ins.value, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert %s: %w", ins.name, err)
			}
		}
		return nil
	})
}
