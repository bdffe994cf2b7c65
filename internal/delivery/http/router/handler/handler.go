// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	domainerrors "intellieats/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// parseUUIDParam reads a path parameter as a UUID.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}

// parseDateQuery reads the "date" query parameter as a YYYY-MM-DD calendar
// day, defaulting to today when absent.
func parseDateQuery(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return time.Now(), nil
	}

	day, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidDate
	}

	return day, nil
}
