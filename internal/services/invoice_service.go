package services

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"acmedash/internal/caching"
	"acmedash/internal/common"
	"acmedash/internal/models"
	"acmedash/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ItemsPerPage is the invoice list page size.
const ItemsPerPage = 6

const invoicePageCacheTTL = time.Minute

// InvoiceInput is the raw form-field bag submitted by the create and
// edit invoice forms. Coercion and validation happen here, not in the
// handler.
type InvoiceInput struct {
	CustomerID string
	Amount     string
	Status     string
}

type InvoiceService interface {
	FetchFilteredInvoices(ctx context.Context, query string, page int) ([]*models.InvoiceWithCustomer, error)
	FetchInvoicesPages(ctx context.Context, query string) (int64, error)
	FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*models.InvoiceForm, error)
	CreateInvoice(ctx context.Context, input InvoiceInput) *common.FormState
	UpdateInvoice(ctx context.Context, id uuid.UUID, input InvoiceInput) *common.FormState
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	invoiceRepo repositories.InvoiceRepository
	cacheSvc    caching.CacheService
	validate    *validator.Validate
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepository, cacheSvc caching.CacheService) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		cacheSvc:    cacheSvc,
		validate:    validator.New(),
	}
}

// FetchFilteredInvoices returns one page of the invoice list. Both the
// empty-query and filtered branches share the repository's predicate
// construction and the same fault wrapping.
func (s *invoiceService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]*models.InvoiceWithCustomer, error) {
	query = strings.TrimSpace(query)
	offset := (page - 1) * ItemsPerPage

	if cached, err := s.cacheSvc.GetInvoicePage(ctx, query, page); err == nil && cached != nil {
		return cached, nil
	}

	invoices, err := s.invoiceRepo.Filtered(ctx, query, ItemsPerPage, offset)
	if err != nil {
		log.Printf("database error: %v", err)
		return nil, common.NewDataAccessError("invoices", err)
	}

	if err := s.cacheSvc.SetInvoicePage(ctx, query, page, invoices, invoicePageCacheTTL); err != nil {
		log.Printf("failed to cache invoice page: %v", err)
	}

	return invoices, nil
}

// FetchInvoicesPages returns the total page count for a query. It uses
// the same predicate set as FetchFilteredInvoices, so the count can
// never disagree with the pages it describes.
func (s *invoiceService) FetchInvoicesPages(ctx context.Context, query string) (int64, error) {
	query = strings.TrimSpace(query)

	count, err := s.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		log.Printf("database error: %v", err)
		return 0, common.NewDataAccessError("the total number of invoices", err)
	}

	return (count + ItemsPerPage - 1) / ItemsPerPage, nil
}

// FetchInvoiceByID loads one invoice for the edit form, converting the
// stored cents back to dollars. A missing row surfaces as
// common.ErrNotFound; other faults propagate unwrapped.
func (s *invoiceService) FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*models.InvoiceForm, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
	}, nil
}

// invoiceFormValues is the coerced invoice form, checked field by field
// so each failure maps to its own error list.
type invoiceFormValues struct {
	CustomerID uuid.UUID
	Amount     float64 `validate:"gt=0"`
	Status     string  `validate:"oneof=pending paid"`
}

// parseInvoiceInput coerces and validates the raw form bag. It returns
// either the parsed values or the per-field error lists.
func (s *invoiceService) parseInvoiceInput(input InvoiceInput) (*invoiceFormValues, map[string][]string) {
	fieldErrors := make(map[string][]string)
	values := &invoiceFormValues{Status: input.Status}

	customerID, err := uuid.Parse(strings.TrimSpace(input.CustomerID))
	if err != nil {
		fieldErrors["customerId"] = append(fieldErrors["customerId"], "Please select a customer.")
	} else {
		values.CustomerID = customerID
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(input.Amount), 64)
	if err != nil {
		fieldErrors["amount"] = append(fieldErrors["amount"], "Please enter an amount greater than $0.")
	} else {
		values.Amount = amount
	}

	if err := s.validate.Struct(values); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, verr := range verrs {
				switch verr.StructField() {
				case "Amount":
					if len(fieldErrors["amount"]) == 0 {
						fieldErrors["amount"] = append(fieldErrors["amount"], "Please enter an amount greater than $0.")
					}
				case "Status":
					fieldErrors["status"] = append(fieldErrors["status"], "Please select an invoice status.")
				}
			}
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return values, nil
}

// CreateInvoice validates the form, stores the amount in cents with the
// current instant as the invoice date, and invalidates the cached list
// views. A nil return means success and the caller should navigate to
// the invoice list.
func (s *invoiceService) CreateInvoice(ctx context.Context, input InvoiceInput) *common.FormState {
	values, fieldErrors := s.parseInvoiceInput(input)
	if fieldErrors != nil {
		return &common.FormState{
			Errors:  fieldErrors,
			Message: "Missing Fields. Failed to Create Invoice.",
		}
	}

	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: values.CustomerID,
		Amount:     int64(math.Round(values.Amount * 100)),
		Status:     models.InvoiceStatus(values.Status),
		Date:       time.Now().UTC(),
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		log.Printf("database error: %v", err)
		return &common.FormState{Message: "Database Error: Failed to Create Invoice."}
	}

	s.invalidateViews(ctx)
	return nil
}

// UpdateInvoice applies the same validation schema as create, then
// overwrites the invoice's customer, amount and status.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, input InvoiceInput) *common.FormState {
	values, fieldErrors := s.parseInvoiceInput(input)
	if fieldErrors != nil {
		return &common.FormState{
			Errors:  fieldErrors,
			Message: "Missing Fields. Failed to Update Invoice.",
		}
	}

	invoice := &models.Invoice{
		ID:         id,
		CustomerID: values.CustomerID,
		Amount:     int64(math.Round(values.Amount * 100)),
		Status:     models.InvoiceStatus(values.Status),
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		log.Printf("database error: %v", err)
		return &common.FormState{Message: "Database Error: Failed to Update Invoice."}
	}

	s.invalidateViews(ctx)
	return nil
}

// DeleteInvoice removes the invoice. A missing id is a no-op; the list
// views are invalidated either way.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateViews(ctx)
	return nil
}

func (s *invoiceService) invalidateViews(ctx context.Context) {
	if err := s.cacheSvc.InvalidateInvoiceViews(ctx); err != nil {
		log.Printf("failed to invalidate invoice views: %v", err)
	}
}
