package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"intellieats/internal/delivery/http/response"
	"intellieats/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FoodHandler holds dependencies for food catalog handlers.
type FoodHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler, injected by Fx.
func NewFoodHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search handles free-text food search across the local catalog and the
// external database.
func (h *FoodHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'q' is required")
	}

	candidates, err := h.uc.Search(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, candidates, "Foods retrieved successfully")
}

// LookupBarcode handles barcode lookup with cache-or-fetch semantics.
func (h *FoodHandler) LookupBarcode(c echo.Context) error {
	barcode := strings.TrimSpace(c.Param("code"))
	if barcode == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Barcode is required")
	}

	food, err := h.uc.LookupByBarcode(c.Request().Context(), barcode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, food, "Food retrieved successfully")
}

// CreateFood handles manual food creation.
func (h *FoodHandler) CreateFood(c echo.Context) error {
	var input *usecase.CreateFoodInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	food, err := h.uc.CreateOrGetFood(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, food, "Food created successfully")
}
