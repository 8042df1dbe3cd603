package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CameronXie/neptune-tea-api/internal/domain"
)

// EnsureSchema creates the MenuItems and Orders tables when they are missing. Existing tables are left
// untouched: there is no migration step, a mismatched schema needs a fresh database.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	migrator := db.WithContext(ctx).Migrator()

	for _, model := range []any{&domain.MenuItem{}, &domain.Order{}} {
		if migrator.HasTable(model) {
			continue
		}

		if err := migrator.CreateTable(model); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}

	return nil
}
