package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DashboardHandler returns counts, recent activity and upcoming hearings
func (h *Handler) DashboardHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Summary())
}
