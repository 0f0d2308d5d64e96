package services

import (
	"context"
	"log"
	"time"

	"acmedash/internal/caching"
	"acmedash/internal/common"
	"acmedash/internal/models"
	"acmedash/internal/repositories"

	"golang.org/x/sync/errgroup"
)

const cardCacheTTL = time.Minute

// DashboardService assembles the dashboard page data: the revenue
// chart, the latest invoices and the summary cards.
type DashboardService interface {
	FetchRevenue(ctx context.Context) ([]*models.Revenue, error)
	FetchLatestInvoices(ctx context.Context) ([]*models.LatestInvoice, error)
	FetchCardData(ctx context.Context) (*models.CardData, error)
}

type dashboardService struct {
	revenueRepo  repositories.RevenueRepository
	invoiceRepo  repositories.InvoiceRepository
	customerRepo repositories.CustomerRepository
	cacheSvc     caching.CacheService
}

func NewDashboardService(revenueRepo repositories.RevenueRepository, invoiceRepo repositories.InvoiceRepository,
	customerRepo repositories.CustomerRepository, cacheSvc caching.CacheService) DashboardService {
	return &dashboardService{
		revenueRepo:  revenueRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		cacheSvc:     cacheSvc,
	}
}

func (s *dashboardService) FetchRevenue(ctx context.Context) ([]*models.Revenue, error) {
	revenue, err := s.revenueRepo.List(ctx)
	if err != nil {
		log.Printf("database error: %v", err)
		return nil, common.NewDataAccessError("revenue data", err)
	}
	return revenue, nil
}

// FetchLatestInvoices returns the 5 newest invoices with their
// customer's display fields, amounts rendered as currency strings.
func (s *dashboardService) FetchLatestInvoices(ctx context.Context) ([]*models.LatestInvoice, error) {
	rows, err := s.invoiceRepo.Latest(ctx, 5)
	if err != nil {
		log.Printf("database error: %v", err)
		return nil, common.NewDataAccessError("the latest invoices", err)
	}

	latest := make([]*models.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, &models.LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
			Amount:   common.FormatCurrency(row.Amount),
		})
	}
	return latest, nil
}

// FetchCardData runs the four card aggregates concurrently. The
// sub-queries are independent, so any one failing fails the whole
// call with a single data-access error.
func (s *dashboardService) FetchCardData(ctx context.Context) (*models.CardData, error) {
	if cached, err := s.cacheSvc.GetCardData(ctx); err == nil && cached != nil {
		return cached, nil
	}

	var (
		invoiceCount  int64
		customerCount int64
		paidSum       int64
		pendingSum    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoiceRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customerRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		paidSum, err = s.invoiceRepo.SumAmountByStatus(gctx, models.InvoiceStatusPaid)
		return err
	})
	g.Go(func() error {
		var err error
		pendingSum, err = s.invoiceRepo.SumAmountByStatus(gctx, models.InvoiceStatusPending)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("database error: %v", err)
		return nil, common.NewDataAccessError("card data", err)
	}

	cards := &models.CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    common.FormatCurrency(paidSum),
		TotalPendingInvoices: common.FormatCurrency(pendingSum),
	}

	if err := s.cacheSvc.SetCardData(ctx, cards, cardCacheTTL); err != nil {
		log.Printf("failed to cache card data: %v", err)
	}

	return cards, nil
}
