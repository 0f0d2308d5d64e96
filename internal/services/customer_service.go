package services

import (
	"context"
	"log"

	"acmedash/internal/common"
	"acmedash/internal/models"
	"acmedash/internal/repositories"
)

type CustomerService interface {
	FetchCustomers(ctx context.Context) ([]*models.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]*models.CustomerSummary, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
	summaryRepo  repositories.CustomerSummaryRepository
	mediaSvc     MediaService // optional, resolves avatar object keys to URLs
}

func NewCustomerService(customerRepo repositories.CustomerRepository, summaryRepo repositories.CustomerSummaryRepository,
	mediaSvc MediaService) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		summaryRepo:  summaryRepo,
		mediaSvc:     mediaSvc,
	}
}

// FetchCustomers returns every customer's (id, name) pair, ordered by
// name, for the invoice form select.
func (s *customerService) FetchCustomers(ctx context.Context) ([]*models.CustomerField, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		log.Printf("database error: %v", err)
		return nil, common.NewDataAccessError("all customers", err)
	}
	return customers, nil
}

// FetchFilteredCustomers searches the document-store customer view and
// formats the invoice totals as currency. Results are memoized per
// request: a second call with the same query during one render reuses
// the first result instead of re-querying storage.
func (s *customerService) FetchFilteredCustomers(ctx context.Context, query string) ([]*models.CustomerSummary, error) {
	memoKey := "filtered-customers:" + query
	memo := common.RequestMemoFromContext(ctx)
	if memo != nil {
		if cached, ok := memo.Get(memoKey); ok {
			return cached.([]*models.CustomerSummary), nil
		}
	}

	rows, err := s.summaryRepo.Search(ctx, query)
	if err != nil {
		log.Printf("database error: %v", err)
		return nil, common.NewDataAccessError("customer table", err)
	}

	customers := make([]*models.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, &models.CustomerSummary{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      s.resolveAvatar(ctx, row.ImageURL),
			TotalInvoices: row.TotalInvoices,
			TotalPending:  common.FormatCurrency(row.TotalPending),
			TotalPaid:     common.FormatCurrency(row.TotalPaid),
		})
	}

	if memo != nil {
		memo.Set(memoKey, customers)
	}

	return customers, nil
}

func (s *customerService) resolveAvatar(ctx context.Context, imageURL string) string {
	if s.mediaSvc == nil || imageURL == "" {
		return imageURL
	}
	resolved, err := s.mediaSvc.AvatarURL(ctx, imageURL)
	if err != nil {
		log.Printf("failed to resolve avatar %q: %v", imageURL, err)
		return imageURL
	}
	return resolved
}
