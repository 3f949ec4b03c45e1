package database

import (
	"fmt"

	"github.com/yukikurage/campus-wellness-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the lookup indexes used by the per-user screens.
// Existing indexes are left untouched, so this is safe on databases created
// before the indexes existed.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		name    string
		columns string
	}{
		{&models.MoodEntry{}, "idx_moods_username_date", "username, date"},
		{&models.ProductivityEntry{}, "idx_productivity_username_date", "username, date"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// MigrateDatabase runs the post-AutoMigrate steps.
func MigrateDatabase(db *gorm.DB) error {
	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}
