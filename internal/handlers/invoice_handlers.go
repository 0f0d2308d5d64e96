package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"acmedash/internal/common"
	"acmedash/internal/services"

	"github.com/labstack/echo/v4"
)

const invoiceListPath = "/dashboard/invoices"

// InvoiceHandlers handles the invoice list, the edit-form fetch and
// the create/update/delete mutations.
type InvoiceHandlers struct {
	invoiceSvc services.InvoiceService
}

func NewInvoiceHandlers(invoiceSvc services.InvoiceService) *InvoiceHandlers {
	return &InvoiceHandlers{invoiceSvc: invoiceSvc}
}

// List handles GET /invoices?query=&page=
func (h *InvoiceHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("query")
	page := 1
	if p := c.QueryParam("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil || parsed < 1 {
			return common.SendClientError(c, "page must be a positive integer")
		}
		page = parsed
	}

	invoices, err := h.invoiceSvc.FetchFilteredInvoices(ctx, query, page)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, invoices)
}

// Pages handles GET /invoices/pages?query=
func (h *InvoiceHandlers) Pages(c echo.Context) error {
	pages, err := h.invoiceSvc.FetchInvoicesPages(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int64{"total_pages": pages})
}

// Get handles GET /invoices/:id
func (h *InvoiceHandlers) Get(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	invoice, err := h.invoiceSvc.FetchInvoiceByID(c.Request().Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		return common.SendNotFoundError(c, "invoice")
	}
	if err != nil {
		return common.SendServerError(c, "Failed to fetch invoice")
	}
	return c.JSON(http.StatusOK, invoice)
}

// Create handles POST /invoices. The body is a raw form-field bag; a
// validation failure returns the structured form state, success
// redirects to the invoice list.
func (h *InvoiceHandlers) Create(c echo.Context) error {
	input := services.InvoiceInput{
		CustomerID: c.FormValue("customerId"),
		Amount:     c.FormValue("amount"),
		Status:     c.FormValue("status"),
	}

	if state := h.invoiceSvc.CreateInvoice(c.Request().Context(), input); state != nil {
		return sendFormState(c, state)
	}
	return c.Redirect(http.StatusSeeOther, invoiceListPath)
}

// Update handles PUT /invoices/:id
func (h *InvoiceHandlers) Update(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	input := services.InvoiceInput{
		CustomerID: c.FormValue("customerId"),
		Amount:     c.FormValue("amount"),
		Status:     c.FormValue("status"),
	}

	if state := h.invoiceSvc.UpdateInvoice(c.Request().Context(), id, input); state != nil {
		return sendFormState(c, state)
	}
	return c.Redirect(http.StatusSeeOther, invoiceListPath)
}

// Delete handles DELETE /invoices/:id. Deleting an unknown id is a
// no-op success.
func (h *InvoiceHandlers) Delete(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.invoiceSvc.DeleteInvoice(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete invoice")
	}
	return c.NoContent(http.StatusNoContent)
}

// sendFormState renders a mutation's structured feedback: 400 for
// validation failures (field errors present), 500 for storage faults.
func sendFormState(c echo.Context, state *common.FormState) error {
	status := http.StatusBadRequest
	if len(state.Errors) == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, state)
}
