package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Category is the closed set of labels partitioning the menu. It is persisted and serialized by label,
// so the stored representation does not depend on declaration order.
type Category string

const (
	CategoryMilkTea          Category = "MilkTea"
	CategoryMilkTeaClassics  Category = "MilkTeaClassics"
	CategoryFruitTea         Category = "FruitTea"
	CategoryCheeseTea        Category = "CheeseTea"
	CategorySpecialLattes    Category = "SpecialLattes"
	CategorySeasonalSpecials Category = "SeasonalSpecials"
)

var categories = []Category{
	CategoryMilkTea,
	CategoryMilkTeaClassics,
	CategoryFruitTea,
	CategoryCheeseTea,
	CategorySpecialLattes,
	CategorySeasonalSpecials,
}

// InvalidCategoryError is returned when a value does not name a known category.
type InvalidCategoryError struct {
	Value string
}

// Error implements the error interface
func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("Invalid category: %s", e.Value)
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	return slices.Clone(categories)
}

// ParseCategory matches s case-insensitively against the known labels.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}

	return "", &InvalidCategoryError{Value: s}
}

// IsValid reports whether c is exactly one of the known labels.
func (c Category) IsValid() bool {
	return slices.Contains(categories, c)
}

func (c Category) String() string {
	return string(c)
}

// Value implements driver.Valuer.
func (c Category) Value() (driver.Value, error) {
	if !c.IsValid() {
		return nil, &InvalidCategoryError{Value: string(c)}
	}

	return string(c), nil
}

// Scan implements sql.Scanner. Stored labels must match exactly; anything else is a data integrity error.
func (c *Category) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported category column type %T", src)
	}

	if !Category(raw).IsValid() {
		return &InvalidCategoryError{Value: raw}
	}

	*c = Category(raw)
	return nil
}

// UnmarshalJSON accepts any known label, ignoring case.
func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseCategory(raw)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
