package database

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CameronXie/neptune-tea-api/internal/domain"
	"github.com/CameronXie/neptune-tea-api/internal/repository"
)

func testMenuItems() []domain.MenuItem {
	return []domain.MenuItem{
		{Name: "Classic Milk Tea", Description: "Traditional black tea with creamy milk", Price: domain.MustPrice("5.50"), Category: domain.CategoryMilkTeaClassics},
		{Name: "Peach Oolong", Description: "Sweet peach with floral oolong", Price: domain.MustPrice("6.00"), Category: domain.CategoryFruitTea},
		{Name: "Yuzu Citrus Tea", Description: "Japanese yuzu with green tea", Price: domain.MustPrice("6.50"), Category: domain.CategoryFruitTea},
		{Name: "Ube Latte", Description: "Purple yam with vanilla notes", Price: domain.MustPrice("6.75"), Category: domain.CategorySpecialLattes},
	}
}

func TestMenuRepository_InsertAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	items := testMenuItems()
	require.NoError(t, repo.InsertMenuItems(ctx, items))

	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID, "ids should be assigned back to the caller's slice")
	}

	listed, err := repo.ListMenuItems(ctx)
	require.NoError(t, err)
	require.Len(t, listed, len(items))

	for i, item := range listed {
		assert.Equal(t, items[i].ID, item.ID)
		assert.Equal(t, items[i].Name, item.Name)
		assert.Equal(t, items[i].Description, item.Description)
		assert.Equal(t, items[i].Category, item.Category)
		assert.True(t, items[i].Price.Equal(item.Price.Decimal), "price %s != %s", items[i].Price, item.Price)
	}
}

func TestMenuRepository_ListMenuItems_Empty(t *testing.T) {
	repo := NewMenuRepository(setupTestDB(t))

	items, err := repo.ListMenuItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMenuRepository_ListMenuItemsByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.InsertMenuItems(ctx, testMenuItems()))

	testCases := map[string]struct {
		category      domain.Category
		expectedNames []string
	}{
		"should return every item of the category": {
			category:      domain.CategoryFruitTea,
			expectedNames: []string{"Peach Oolong", "Yuzu Citrus Tea"},
		},
		"should return a single item": {
			category:      domain.CategorySpecialLattes,
			expectedNames: []string{"Ube Latte"},
		},
		"should return empty slice for category without items": {
			category:      domain.CategoryMilkTea,
			expectedNames: []string{},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			items, err := repo.ListMenuItemsByCategory(ctx, tc.category)
			require.NoError(t, err)
			require.NotNil(t, items)

			names := make([]string, 0, len(items))
			for _, item := range items {
				assert.Equal(t, tc.category, item.Category)
				names = append(names, item.Name)
			}
			assert.Equal(t, tc.expectedNames, names)
		})
	}
}

func TestMenuRepository_CategoryUnionEqualsAll(t *testing.T) {
	repo := NewMenuRepository(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.InsertMenuItems(ctx, testMenuItems()))

	all, err := repo.ListMenuItems(ctx)
	require.NoError(t, err)

	union := make(map[int64]domain.Category)
	for _, category := range domain.Categories() {
		items, err := repo.ListMenuItemsByCategory(ctx, category)
		require.NoError(t, err)
		for _, item := range items {
			_, seen := union[item.ID]
			assert.False(t, seen, "item %d returned by more than one category", item.ID)
			union[item.ID] = item.Category
		}
	}

	require.Len(t, union, len(all))
	for _, item := range all {
		assert.Equal(t, item.Category, union[item.ID])
	}
}

func TestMenuRepository_InvalidStoredCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Exec(
		`INSERT INTO "MenuItems" ("Name", "Description", "Price", "Category") VALUES (?, ?, ?, ?)`,
		"Drip Coffee", "Not a tea", "3.00", "Coffee",
	).Error)

	_, err := repo.ListMenuItems(ctx)
	var invalidErr *repository.InvalidValueError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "MenuItems", invalidErr.Resource)
	assert.Equal(t, "Category", invalidErr.Field)
	assert.Equal(t, "Coffee", invalidErr.Value)

	var categoryErr *domain.InvalidCategoryError
	assert.ErrorAs(t, err, &categoryErr)
}

func TestMenuRepository_HasMenuItems(t *testing.T) {
	repo := NewMenuRepository(setupTestDB(t))
	ctx := context.Background()

	exists, err := repo.HasMenuItems(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.InsertMenuItems(ctx, testMenuItems()[:1]))

	exists, err = repo.HasMenuItems(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMenuRepository_InsertMenuItems(t *testing.T) {
	testCases := map[string]struct {
		items         []domain.MenuItem
		expectedRows  int64
		expectedError string
	}{
		"should accept empty input": {
			items:        nil,
			expectedRows: 0,
		},
		"should roll back the whole batch on invalid category": {
			items: append(testMenuItems(), domain.MenuItem{
				Name:     "Drip Coffee",
				Price:    domain.Price{Decimal: decimal.NewFromInt(3)},
				Category: "Coffee",
			}),
			expectedRows:  0,
			expectedError: "failed to insert 5 menu items",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewMenuRepository(db)

			err := repo.InsertMenuItems(context.Background(), tc.items)
			if tc.expectedError != "" {
				assert.ErrorContains(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}

			var count int64
			require.NoError(t, db.Model(&domain.MenuItem{}).Count(&count).Error)
			assert.Equal(t, tc.expectedRows, count)
		})
	}
}
