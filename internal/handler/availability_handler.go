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

// AvailabilityHandler bundles availability HTTP handlers.
type AvailabilityHandler struct {
	svc service.AvailabilityService
}

// NewAvailabilityHandler creates a handler layer over the availability service.
func NewAvailabilityHandler(svc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// CreateAvailability godoc
// @Summary Create an availability window
// @Tags availability
// @Accept json
// @Produce json
// @Param availability body dto.AvailabilityRequest true "Availability payload"
// @Success 201 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /availability [post]
func (h *AvailabilityHandler) CreateAvailability(c echo.Context) error {
	var req dto.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	availability, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, dto.NewAvailabilityResponse(availability))
}

// GetAvailability godoc
// @Summary Get availability by id
// @Tags availability
// @Produce json
// @Param id path int true "Availability ID"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /availability/{id} [get]
func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	availability, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "availability not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewAvailabilityResponse(availability))
}

// UpdateAvailability godoc
// @Summary Update an availability window
// @Tags availability
// @Accept json
// @Produce json
// @Param id path int true "Availability ID"
// @Param availability body dto.AvailabilityRequest true "Availability payload"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /availability/{id} [put]
func (h *AvailabilityHandler) UpdateAvailability(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req dto.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	availability, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "availability not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewAvailabilityResponse(availability))
}

// DeleteAvailability godoc
// @Summary Delete an availability window
// @Tags availability
// @Param id path int true "Availability ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /availability/{id} [delete]
func (h *AvailabilityHandler) DeleteAvailability(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "availability not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "availability deleted"})
}

// ListAvailability godoc
// @Summary List availability windows
// @Tags availability
// @Produce json
// @Success 200 {array} dto.AvailabilityResponse
// @Router /availability [get]
func (h *AvailabilityHandler) ListAvailability(c echo.Context) error {
	availabilities, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewAvailabilityResponses(availabilities))
}
