// Package seed bootstraps reference data for non-production
// environments. User seeding is idempotent (upsert keyed by email);
// customers, invoices and revenue are plain inserts, so re-running
// against a populated store raises the duplicate-key fault instead of
// silently skipping rows.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"acmedash/internal/models"
	"acmedash/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type Seeder struct {
	userRepo     repositories.UserRepository
	customerRepo repositories.CustomerRepository
	invoiceRepo  repositories.InvoiceRepository
	revenueRepo  repositories.RevenueRepository
}

func NewSeeder(userRepo repositories.UserRepository, customerRepo repositories.CustomerRepository,
	invoiceRepo repositories.InvoiceRepository, revenueRepo repositories.RevenueRepository) *Seeder {
	return &Seeder{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		revenueRepo:  revenueRepo,
	}
}

// SeedUsers hashes each placeholder password and upserts by email.
// Existing rows are left untouched, so running twice leaves exactly
// one row per distinct email.
func (s *Seeder) SeedUsers(ctx context.Context) error {
	for _, u := range placeholderUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}
		user := &models.User{
			ID:           uuid.New(),
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
		}
		if err := s.userRepo.Upsert(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) SeedCustomers(ctx context.Context) error {
	return s.customerRepo.CreateMany(ctx, placeholderCustomers)
}

// SeedInvoices resolves each invoice's customer email against the
// current customer rows and fails fast when a referenced customer is
// missing.
func (s *Seeder) SeedInvoices(ctx context.Context) error {
	customers, err := s.customerRepo.ListFull(ctx)
	if err != nil {
		return err
	}

	customerIDs := make(map[string]uuid.UUID, len(customers))
	for _, c := range customers {
		customerIDs[strings.ToLower(c.Email)] = c.ID
	}

	for _, inv := range placeholderInvoices {
		customerID, ok := customerIDs[strings.ToLower(inv.CustomerEmail)]
		if !ok {
			return fmt.Errorf("customer not found for %s", inv.CustomerEmail)
		}

		date, err := time.Parse("2006-01-02", inv.Date)
		if err != nil {
			return fmt.Errorf("invalid invoice date %q: %w", inv.Date, err)
		}

		invoice := &models.Invoice{
			ID:         uuid.New(),
			CustomerID: customerID,
			Amount:     inv.Amount,
			Status:     inv.Status,
			Date:       date,
		}
		if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) SeedRevenue(ctx context.Context) error {
	return s.revenueRepo.CreateMany(ctx, placeholderRevenue)
}

// SeedAll runs every routine in dependency order: users, customers,
// then the invoices that reference them, then revenue.
func (s *Seeder) SeedAll(ctx context.Context) error {
	if err := s.SeedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := s.SeedCustomers(ctx); err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	if err := s.SeedInvoices(ctx); err != nil {
		return fmt.Errorf("seed invoices: %w", err)
	}
	if err := s.SeedRevenue(ctx); err != nil {
		return fmt.Errorf("seed revenue: %w", err)
	}
	return nil
}
