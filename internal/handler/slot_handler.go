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

// SlotHandler bundles slot HTTP handlers.
type SlotHandler struct {
	svc service.SlotService
}

// NewSlotHandler creates a handler layer over the slot service.
func NewSlotHandler(svc service.SlotService) *SlotHandler {
	return &SlotHandler{svc: svc}
}

// CreateSlot godoc
// @Summary Create a slot
// @Tags slots
// @Accept json
// @Produce json
// @Param slot body dto.SlotRequest true "Slot payload"
// @Success 201 {object} dto.SlotResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /slots [post]
func (h *SlotHandler) CreateSlot(c echo.Context) error {
	var req dto.SlotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	slot, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, dto.NewSlotResponse(slot))
}

// GetSlot godoc
// @Summary Get slot by id
// @Tags slots
// @Produce json
// @Param id path int true "Slot ID"
// @Success 200 {object} dto.SlotResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /slots/{id} [get]
func (h *SlotHandler) GetSlot(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	slot, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "slot not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewSlotResponse(slot))
}

// UpdateSlot godoc
// @Summary Update a slot
// @Tags slots
// @Accept json
// @Produce json
// @Param id path int true "Slot ID"
// @Param slot body dto.SlotRequest true "Slot payload"
// @Success 200 {object} dto.SlotResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /slots/{id} [put]
func (h *SlotHandler) UpdateSlot(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req dto.SlotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	slot, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "slot not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewSlotResponse(slot))
}

// DeleteSlot godoc
// @Summary Delete a slot
// @Tags slots
// @Param id path int true "Slot ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "slot not found")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "slot deleted"})
}

// ListSlots godoc
// @Summary List slots
// @Tags slots
// @Produce json
// @Success 200 {array} dto.SlotResponse
// @Router /slots [get]
func (h *SlotHandler) ListSlots(c echo.Context) error {
	slots, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dto.NewSlotResponses(slots))
}
