package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// idParam parses the :id path parameter as an unsigned integer.
func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
