package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/CameronXie/neptune-tea-api/internal/api/rest/middlewares"
	"github.com/CameronXie/neptune-tea-api/internal/api/rest/response"
	"github.com/CameronXie/neptune-tea-api/internal/domain"
)

const (
	ordersPath = "/api/orders"
)

// OrderRepository defines the interface for order repository operations
type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
}

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	repo   OrderRepository
	logger *slog.Logger
}

// NewOrderHandler creates a new OrderHandler instance
func NewOrderHandler(repo OrderRepository, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateOrderRequest represents the request payload for creating an order
type CreateOrderRequest struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

// CreateOrder handles POST /api/orders - records a new order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSONErrorResponse(w, http.StatusBadRequest, invalidRequestBodyMessage)
		return
	}

	if strings.TrimSpace(req.ItemName) == "" {
		response.JSONErrorResponse(w, http.StatusBadRequest, itemNameRequiredMessage)
		return
	}

	if req.Quantity <= 0 {
		response.JSONErrorResponse(w, http.StatusBadRequest, quantityInvalidMessage)
		return
	}

	order := &domain.Order{
		ItemName: req.ItemName,
		Quantity: req.Quantity,
	}

	if err := h.repo.InsertOrder(r.Context(), order); err != nil {
		h.logger.ErrorContext(
			r.Context(),
			"failed to create order",
			"error", err,
			"item_name", order.ItemName,
			"request_id", middlewares.GetRequestIDFromContext(r.Context()),
		)
		response.JSONErrorResponse(w, http.StatusInternalServerError, internalServerErrorMessage)
		return
	}

	response.JSONCreatedResponse(w, fmt.Sprintf("%s/%d", ordersPath, order.ID), order)
}
