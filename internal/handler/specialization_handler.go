package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"medibook/internal/dto"
	apperrors "medibook/internal/errors"
	"medibook/internal/service"
)

// SpecializationHandler bundles specialization HTTP handlers.
type SpecializationHandler struct {
	svc service.SpecializationService
}

// NewSpecializationHandler creates a handler layer over the specialization service.
func NewSpecializationHandler(svc service.SpecializationService) *SpecializationHandler {
	return &SpecializationHandler{svc: svc}
}

// CreateSpecialization godoc
// @Summary Create a specialization
// @Tags specializations
// @Accept json
// @Produce json
// @Param specialization body dto.SpecializationRequest true "Specialization payload"
// @Success 201 {object} dto.SpecializationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /specializations [post]
func (h *SpecializationHandler) CreateSpecialization(c echo.Context) error {
	var req dto.SpecializationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	specialization, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, dto.NewSpecializationResponse(specialization))
}

// GetSpecialization godoc
// @Summary Get specialization by id
// @Tags specializations
// @Produce json
// @Param id path int true "Specialization ID"
// @Success 200 {object} dto.SpecializationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /specializations/{id} [get]
func (h *SpecializationHandler) GetSpecialization(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	specialization, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "specialization not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewSpecializationResponse(specialization))
}

// UpdateSpecialization godoc
// @Summary Update a specialization
// @Tags specializations
// @Accept json
// @Produce json
// @Param id path int true "Specialization ID"
// @Param specialization body dto.SpecializationRequest true "Specialization payload"
// @Success 200 {object} dto.SpecializationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /specializations/{id} [put]
func (h *SpecializationHandler) UpdateSpecialization(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req dto.SpecializationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	specialization, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "specialization not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewSpecializationResponse(specialization))
}

// DeleteSpecialization godoc
// @Summary Delete a specialization
// @Tags specializations
// @Param id path int true "Specialization ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /specializations/{id} [delete]
func (h *SpecializationHandler) DeleteSpecialization(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "specialization not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "specialization deleted"})
}

// ListSpecializations godoc
// @Summary List specializations
// @Tags specializations
// @Produce json
// @Success 200 {array} dto.SpecializationResponse
// @Router /specializations [get]
func (h *SpecializationHandler) ListSpecializations(c echo.Context) error {
	specializations, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewSpecializationResponses(specializations))
}
