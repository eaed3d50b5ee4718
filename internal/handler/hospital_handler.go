package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medibook/internal/dto"
	apperrors "medibook/internal/errors"
	"medibook/internal/service"
)

// HospitalHandler bundles hospital HTTP handlers.
type HospitalHandler struct {
	svc service.HospitalService
}

// NewHospitalHandler creates a handler layer over the hospital service.
func NewHospitalHandler(svc service.HospitalService) *HospitalHandler {
	return &HospitalHandler{svc: svc}
}

// CreateHospital godoc
// @Summary Create a hospital
// @Tags hospitals
// @Accept json
// @Produce json
// @Param hospital body dto.HospitalRequest true "Hospital payload"
// @Success 201 {object} dto.HospitalResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /hospitals [post]
func (h *HospitalHandler) CreateHospital(c echo.Context) error {
	var req dto.HospitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hospital, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, dto.NewHospitalResponse(hospital))
}

// GetHospital godoc
// @Summary Get hospital by id
// @Tags hospitals
// @Produce json
// @Param id path int true "Hospital ID"
// @Success 200 {object} dto.HospitalResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /hospitals/{id} [get]
func (h *HospitalHandler) GetHospital(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	hospital, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewHospitalResponse(hospital))
}

// UpdateHospital godoc
// @Summary Update a hospital
// @Tags hospitals
// @Accept json
// @Produce json
// @Param id path int true "Hospital ID"
// @Param hospital body dto.HospitalRequest true "Hospital payload"
// @Success 200 {object} dto.HospitalResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /hospitals/{id} [put]
func (h *HospitalHandler) UpdateHospital(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req dto.HospitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hospital, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewHospitalResponse(hospital))
}

// DeleteHospital godoc
// @Summary Delete a hospital
// @Tags hospitals
// @Param id path int true "Hospital ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /hospitals/{id} [delete]
func (h *HospitalHandler) DeleteHospital(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "hospital deleted"})
}

// ListHospitals godoc
// @Summary List hospitals
// @Tags hospitals
// @Produce json
// @Success 200 {array} dto.HospitalResponse
// @Router /hospitals [get]
func (h *HospitalHandler) ListHospitals(c echo.Context) error {
	hospitals, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewHospitalResponses(hospitals))
}
