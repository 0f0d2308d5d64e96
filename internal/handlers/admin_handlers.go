package handlers

import (
	"net/http"
	"strconv"

	"acmedash/internal/common"
	"acmedash/internal/jobs"
	"acmedash/internal/repositories"
	"acmedash/internal/seed"

	"github.com/labstack/echo/v4"
)

// AdminHandlers exposes the seeding route, a manual document-view
// refresh and a diagnostic document-store query. Seed refuses to run
// in production.
type AdminHandlers struct {
	seeder       *seed.Seeder
	customerSync *jobs.CustomerSync
	summaryRepo  repositories.CustomerSummaryRepository
	production   bool
}

func NewAdminHandlers(seeder *seed.Seeder, customerSync *jobs.CustomerSync,
	summaryRepo repositories.CustomerSummaryRepository, production bool) *AdminHandlers {
	return &AdminHandlers{
		seeder:       seeder,
		customerSync: customerSync,
		summaryRepo:  summaryRepo,
		production:   production,
	}
}

// Seed handles GET /seed — bootstrap reference data, then refresh the
// document view so the customer table sees it immediately.
func (h *AdminHandlers) Seed(c echo.Context) error {
	if h.production {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "Seeding disabled in production"})
	}

	ctx := c.Request().Context()
	if err := h.seeder.SeedAll(ctx); err != nil {
		return common.SendServerError(c, "Seeding failed: "+err.Error())
	}
	if err := h.customerSync.RunOnce(ctx); err != nil {
		return common.SendServerError(c, "Seeded, but document view refresh failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Seed completed"})
}

// Sync handles POST /admin/sync — immediate document-view refresh.
func (h *AdminHandlers) Sync(c echo.Context) error {
	if err := h.customerSync.RunOnce(c.Request().Context()); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Sync completed"})
}

// Query handles GET /query?amount= — a diagnostic document-store
// lookup of invoices by exact amount joined to the customer's name.
func (h *AdminHandlers) Query(c echo.Context) error {
	amount := int64(666)
	if raw := c.QueryParam("amount"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return common.SendClientError(c, "amount must be an integer")
		}
		amount = parsed
	}

	rows, err := h.summaryRepo.ListInvoicesByAmount(c.Request().Context(), amount)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}

// Health handles GET /health
func (h *AdminHandlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
