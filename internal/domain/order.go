package domain

// Order is a customer's request for a quantity of a named item.
// ItemName is free text and is not checked against the menu.
type Order struct {
	ID       int64  `json:"id" gorm:"column:Id;primaryKey;autoIncrement"`
	ItemName string `json:"itemName" gorm:"column:ItemName;not null"`
	Quantity int    `json:"quantity" gorm:"column:Quantity;not null"`
}

// TableName overrides the table name used by GORM.
func (Order) TableName() string {
	return "Orders"
}
