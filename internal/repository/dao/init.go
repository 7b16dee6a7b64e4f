package dao

import (
	"fmt"

	"gorm.io/gorm"
)

// InitTables creates the tables that are missing. Existing tables are left as they are.
func InitTables(db *gorm.DB) error {
	m := db.Migrator()

	for _, model := range []interface{}{&Stake{}, &Stock{}, &User{}} {
		if m.HasTable(model) {
			continue
		}

		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("m.CreateTable(%T) -> %w", model, err)
		}
	}

	return nil
}
