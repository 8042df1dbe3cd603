package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CameronXie/neptune-tea-api/internal/domain"
)

// OrderRepository provides database operations for orders
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// InsertOrder stores the order and sets its generated ID
func (r *OrderRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}
