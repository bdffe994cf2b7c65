package handler

import (
	"log/slog"
	"net/http"

	"intellieats/internal/delivery/http/response"
	"intellieats/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntryHandler holds dependencies for food entry handlers.
type EntryHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		uc:     uc,
		logger: logger,
	}
}

// LogEntry handles recording one consumption event.
func (h *EntryHandler) LogEntry(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.EntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.LogEntry(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Entry logged successfully")
}

// DeleteEntry handles removing one consumption event.
func (h *EntryHandler) DeleteEntry(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	entryID, err := parseUUIDParam(c, "entryId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteEntry(c.Request().Context(), userID, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Entry deleted successfully")
}

// DailySummary handles the per-day aggregation request.
func (h *EntryHandler) DailySummary(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	day, err := parseDateQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.uc.Aggregate(c.Request().Context(), userID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Daily summary retrieved successfully")
}
