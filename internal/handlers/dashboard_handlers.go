package handlers

import (
	"net/http"

	"acmedash/internal/common"
	"acmedash/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandlers serves the dashboard page data.
type DashboardHandlers struct {
	dashboardSvc services.DashboardService
}

func NewDashboardHandlers(dashboardSvc services.DashboardService) *DashboardHandlers {
	return &DashboardHandlers{dashboardSvc: dashboardSvc}
}

// Revenue handles GET /dashboard/revenue
func (h *DashboardHandlers) Revenue(c echo.Context) error {
	revenue, err := h.dashboardSvc.FetchRevenue(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, revenue)
}

// LatestInvoices handles GET /dashboard/latest-invoices
func (h *DashboardHandlers) LatestInvoices(c echo.Context) error {
	invoices, err := h.dashboardSvc.FetchLatestInvoices(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, invoices)
}

// Cards handles GET /dashboard/cards
func (h *DashboardHandlers) Cards(c echo.Context) error {
	cards, err := h.dashboardSvc.FetchCardData(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, cards)
}
