package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CameronXie/neptune-tea-api/internal/domain"
	"github.com/CameronXie/neptune-tea-api/internal/repository"
)

const (
	insertBatchSize = 100
)

// MenuRepository provides database operations for menu items
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new MenuRepository instance
func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{
		db: db,
	}
}

// ListMenuItems returns every menu item in insertion order
func (r *MenuRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	items := make([]domain.MenuItem, 0)

	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "Id"}}).
		Find(&items).Error
	if err != nil {
		return nil, wrapMenuReadError("failed to list menu items", err)
	}

	return items, nil
}

// ListMenuItemsByCategory returns the menu items of one category; an empty slice when none match
func (r *MenuRepository) ListMenuItemsByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error) {
	items := make([]domain.MenuItem, 0)

	err := r.db.WithContext(ctx).
		Where(map[string]any{"Category": category}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "Id"}}).
		Find(&items).Error
	if err != nil {
		return nil, wrapMenuReadError(fmt.Sprintf("failed to list menu items in category %s", category), err)
	}

	return items, nil
}

// InsertMenuItems stores items in a single transaction and assigns their IDs
func (r *MenuRepository) InsertMenuItems(ctx context.Context, items []domain.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&items, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to insert %d menu items: %w", len(items), err)
	}

	return nil
}

// HasMenuItems reports whether at least one menu item exists
func (r *MenuRepository) HasMenuItems(ctx context.Context) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&domain.MenuItem{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count menu items: %w", err)
	}

	return count > 0, nil
}

// wrapMenuReadError turns a category decoding failure into a repository.InvalidValueError.
func wrapMenuReadError(msg string, err error) error {
	var categoryErr *domain.InvalidCategoryError
	if errors.As(err, &categoryErr) {
		err = &repository.InvalidValueError{
			Resource: domain.MenuItem{}.TableName(),
			Field:    "Category",
			Value:    categoryErr.Value,
			Err:      err,
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}
