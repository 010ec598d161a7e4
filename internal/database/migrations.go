package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database. The existence
// check reads pg_indexes, so this only runs on postgres.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Transaction indexes for per-user listings and group deletes
		{"financial_transactions", "idx_transactions_user_id", "user_id"},
		{"financial_transactions", "idx_transactions_property_id", "property_id"},
		{"financial_transactions", "idx_transactions_parent_id", "parent_id"},
		{"financial_transactions", "idx_transactions_date", "date"},

		// Ownership-chain lookups
		{"properties", "idx_properties_user_id", "user_id"},
		{"tasks", "idx_tasks_property_id", "property_id"},
		{"tasks", "idx_tasks_user_id", "user_id"},
		{"property_constructions", "idx_constructions_property_id", "property_id"},

		{"loans", "idx_loans_user_id", "user_id"},
		{"processes", "idx_processes_property_id", "property_id"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
