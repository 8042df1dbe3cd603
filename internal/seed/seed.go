package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/CameronXie/neptune-tea-api/internal/domain"
)

//go:embed catalog.json
var catalogJSON []byte

// MenuRepository is the storage the seeder needs.
type MenuRepository interface {
	HasMenuItems(ctx context.Context) (bool, error)
	InsertMenuItems(ctx context.Context, items []domain.MenuItem) error
}

// Catalog returns a fresh copy of the shop's opening menu.
func Catalog() ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := json.Unmarshal(catalogJSON, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return items, nil
}

// SeedIfEmpty inserts the catalog in one bulk write when no menu item exists yet and reports whether it did.
// It is not safe against several processes booting on the same empty database at once: each may see an
// empty table and insert its own copy.
func SeedIfEmpty(ctx context.Context, repo MenuRepository, logger *slog.Logger) (bool, error) {
	exists, err := repo.HasMenuItems(ctx)
	if err != nil {
		return false, fmt.Errorf("check_menu: %w", err)
	}

	if exists {
		logger.InfoContext(ctx, "menu_seed_skipped")
		return false, nil
	}

	items, err := Catalog()
	if err != nil {
		return false, err
	}

	if err := repo.InsertMenuItems(ctx, items); err != nil {
		return false, fmt.Errorf("insert_menu: %w", err)
	}

	logger.InfoContext(ctx, "menu_seeded", "items", len(items))
	return true, nil
}
