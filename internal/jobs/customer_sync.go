// Package jobs holds the background work the dashboard relies on. The
// relational store is the system of record; the document-store view
// used by the customer table is derived from it by the sync job here,
// so invoice mutations never dual-write.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"acmedash/internal/repositories"

	"github.com/go-co-op/gocron/v2"
)

// CustomerSync periodically rebuilds the document-store customer and
// invoice collections from the relational rows.
type CustomerSync struct {
	scheduler    gocron.Scheduler
	customerRepo repositories.CustomerRepository
	invoiceRepo  repositories.InvoiceRepository
	summaryRepo  repositories.CustomerSummaryRepository
	interval     time.Duration
}

func NewCustomerSync(customerRepo repositories.CustomerRepository, invoiceRepo repositories.InvoiceRepository,
	summaryRepo repositories.CustomerSummaryRepository, interval time.Duration) (*CustomerSync, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	cs := &CustomerSync{
		scheduler:    scheduler,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		summaryRepo:  summaryRepo,
		interval:     interval,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(cs.run),
		gocron.WithName("customer-view-sync"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync job: %w", err)
	}

	return cs, nil
}

// Start begins the periodic sync.
func (cs *CustomerSync) Start() {
	log.Printf("Starting customer view sync (every %s)", cs.interval)
	cs.scheduler.Start()
}

// Stop shuts the scheduler down, waiting for a running sync to finish.
func (cs *CustomerSync) Stop() error {
	log.Printf("Stopping customer view sync")
	return cs.scheduler.Shutdown()
}

func (cs *CustomerSync) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := cs.RunOnce(ctx); err != nil {
		log.Printf("customer view sync failed: %v", err)
	}
}

// RunOnce copies the current relational customers and invoices into
// the document store, then prunes documents whose relational row no
// longer exists: deletions converge within one sync interval just like
// inserts and updates. Exposed so the admin endpoint can trigger an
// immediate refresh after seeding.
func (cs *CustomerSync) RunOnce(ctx context.Context) error {
	customers, err := cs.customerRepo.ListFull(ctx)
	if err != nil {
		return fmt.Errorf("failed to read customers: %w", err)
	}
	invoices, err := cs.invoiceRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read invoices: %w", err)
	}

	if err := cs.summaryRepo.UpsertCustomers(ctx, customers); err != nil {
		return fmt.Errorf("failed to sync customers: %w", err)
	}
	if err := cs.summaryRepo.UpsertInvoices(ctx, invoices); err != nil {
		return fmt.Errorf("failed to sync invoices: %w", err)
	}

	customerIDs := make([]string, 0, len(customers))
	for _, c := range customers {
		customerIDs = append(customerIDs, c.ID.String())
	}
	invoiceIDs := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		invoiceIDs = append(invoiceIDs, inv.ID.String())
	}
	if err := cs.summaryRepo.PruneCustomers(ctx, customerIDs); err != nil {
		return fmt.Errorf("failed to prune customers: %w", err)
	}
	if err := cs.summaryRepo.PruneInvoices(ctx, invoiceIDs); err != nil {
		return fmt.Errorf("failed to prune invoices: %w", err)
	}

	log.Printf("customer view sync: %d customers, %d invoices", len(customers), len(invoices))
	return nil
}
