package handlers

import (
	"net/http"

	"acmedash/internal/common"
	"acmedash/internal/services"

	"github.com/labstack/echo/v4"
)

type CustomerHandlers struct {
	customerSvc services.CustomerService
}

func NewCustomerHandlers(customerSvc services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerSvc: customerSvc}
}

// List handles GET /customers — the (id, name) pairs for the invoice
// form select.
func (h *CustomerHandlers) List(c echo.Context) error {
	customers, err := h.customerSvc.FetchCustomers(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, customers)
}

// Table handles GET /customers/table?query= — the searched customer
// table with invoice totals from the document-store view.
func (h *CustomerHandlers) Table(c echo.Context) error {
	customers, err := h.customerSvc.FetchFilteredCustomers(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, customers)
}
