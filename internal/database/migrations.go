package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lynxmind/task-portal/internal/models"
)

// Migrate creates the tasks table if it is missing. Safe to run on every
// startup.
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("running database migrations")

	if err := db.AutoMigrate(&models.Task{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(db, log); err != nil {
		return err
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// AddIndexes adds the indexes the UI's status filter benefits from.
func AddIndexes(db *gorm.DB, log zerolog.Logger) error {
	indexes := []struct {
		name    string
		columns string
	}{
		{"idx_tasks_status", "status"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(&models.Task{}, idx.name) {
			log.Debug().Str("index", idx.name).Msg("index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON tasks (%s)", idx.name, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		log.Info().Str("index", idx.name).Str("columns", idx.columns).Msg("created index")
	}

	return nil
}
