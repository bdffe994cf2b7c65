package handler

import (
	"log/slog"
	"net/http"

	"intellieats/internal/delivery/http/response"
	"intellieats/internal/domain/entity"
	"intellieats/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// GetProfile handles the request to get a user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateGoals handles replacing a user's daily nutrition targets.
func (h *UserHandler) UpdateGoals(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var goals entity.Goals
	if err := c.Bind(&goals); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid goals input")
	}

	user, err := h.uc.UpdateGoals(c.Request().Context(), userID, goals)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Goals updated successfully")
}
