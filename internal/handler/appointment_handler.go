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

// AppointmentHandler bundles appointment HTTP handlers.
type AppointmentHandler struct {
	svc service.AppointmentService
}

// NewAppointmentHandler creates a handler layer over the appointment service.
func NewAppointmentHandler(svc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body dto.AppointmentRequest true "Appointment payload"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	var req dto.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, dto.NewAppointmentResponse(appointment))
}

// GetAppointment godoc
// @Summary Get appointment by id
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appointment, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewAppointmentResponse(appointment))
}

// UpdateAppointment godoc
// @Summary Update an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param appointment body dto.AppointmentRequest true "Appointment payload"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req dto.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewAppointmentResponse(appointment))
}

// DeleteAppointment godoc
// @Summary Cancel an appointment
// @Tags appointments
// @Param id path int true "Appointment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "appointment deleted"})
}

// ListAppointments godoc
// @Summary List appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} dto.AppointmentResponse
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	appointments, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewAppointmentResponses(appointments))
}

// ListUserAppointments godoc
// @Summary List a user's appointments
// @Tags appointments
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.AppointmentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/{id}/appointments [get]
func (h *AppointmentHandler) ListUserAppointments(c echo.Context) error {
	userID, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appointments, err := h.svc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewAppointmentResponses(appointments))
}
