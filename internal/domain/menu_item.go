package domain

// MenuItem is a drink offered by the shop.
type MenuItem struct {
	ID          int64    `json:"id" gorm:"column:Id;primaryKey;autoIncrement"`
	Name        string   `json:"name" gorm:"column:Name;not null"`
	Description string   `json:"description" gorm:"column:Description"`
	Price       Price    `json:"price" gorm:"column:Price;type:decimal(10,2);not null"`
	Category    Category `json:"category" gorm:"column:Category;type:text;not null"`
}

// TableName overrides the table name used by GORM.
func (MenuItem) TableName() string {
	return "MenuItems"
}
