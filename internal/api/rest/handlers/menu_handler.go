package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/CameronXie/neptune-tea-api/internal/api/rest/middlewares"
	"github.com/CameronXie/neptune-tea-api/internal/api/rest/response"
	"github.com/CameronXie/neptune-tea-api/internal/domain"
)

// MenuRepository defines the read operations the menu endpoints need
type MenuRepository interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	ListMenuItemsByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error)
}

// MenuHandler serves the read-only menu catalog
type MenuHandler struct {
	repo   MenuRepository
	logger *slog.Logger
}

// NewMenuHandler creates a new MenuHandler instance
func NewMenuHandler(repo MenuRepository, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListMenuItems handles GET /api/menu
func (h *MenuHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListMenuItems(r.Context())
	if err != nil {
		h.logger.ErrorContext(
			r.Context(),
			"failed to list menu items",
			"error", err,
			"request_id", middlewares.GetRequestIDFromContext(r.Context()),
		)
		response.JSONErrorResponse(w, http.StatusInternalServerError, internalServerErrorMessage)
		return
	}

	response.JSONResponse(w, http.StatusOK, nonNil(items))
}

// ListMenuItemsByCategory handles GET /api/menu/{category}; the category is matched ignoring case
func (h *MenuHandler) ListMenuItemsByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		response.JSONErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.repo.ListMenuItemsByCategory(r.Context(), category)
	if err != nil {
		h.logger.ErrorContext(
			r.Context(),
			"failed to list menu items by category",
			"error", err,
			"category", category,
			"request_id", middlewares.GetRequestIDFromContext(r.Context()),
		)
		response.JSONErrorResponse(w, http.StatusInternalServerError, internalServerErrorMessage)
		return
	}

	response.JSONResponse(w, http.StatusOK, nonNil(items))
}

// nonNil keeps empty results serialised as [] rather than null.
func nonNil(items []domain.MenuItem) []domain.MenuItem {
	if items == nil {
		return []domain.MenuItem{}
	}

	return items
}
