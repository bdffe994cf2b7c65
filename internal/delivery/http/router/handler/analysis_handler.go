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

// AnalysisHandler holds dependencies for analysis handlers.
type AnalysisHandler struct {
	uc     usecase.AnalysisUsecase
	logger *slog.Logger
}

// NewAnalysisHandler is the constructor for AnalysisHandler, injected by Fx.
func NewAnalysisHandler(uc usecase.AnalysisUsecase, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		uc:     uc,
		logger: logger,
	}
}

// AnalysisContext handles building the structured digest of one day's intake.
func (h *AnalysisHandler) AnalysisContext(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	day, err := parseDateQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	analysisCtx, err := h.uc.BuildAnalysisContext(c.Request().Context(), userID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analysisCtx, "Analysis context built successfully")
}

// SaveAnalysis handles storing a generated analysis.
func (h *AnalysisHandler) SaveAnalysis(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.AnalysisInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	analysis, err := h.uc.SaveAnalysis(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, analysis, "Analysis saved successfully")
}

// ListAnalyses handles listing a user's stored analyses.
func (h *AnalysisHandler) ListAnalyses(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	kind := entity.AnalysisKind(c.QueryParam("type"))

	analyses, err := h.uc.ListAnalyses(c.Request().Context(), userID, kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analyses, "Analyses retrieved successfully")
}
