package services

import (
	"context"
	"time"

	"acmedash/internal/models"
	"acmedash/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock repositories and collaborators shared by the service tests.

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Latest(ctx context.Context, limit int) ([]*models.InvoiceWithCustomer, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InvoiceWithCustomer), args.Error(1)
}

func (m *MockInvoiceRepository) Filtered(ctx context.Context, query string, limit, offset int) ([]*models.InvoiceWithCustomer, error) {
	args := m.Called(ctx, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InvoiceWithCustomer), args.Error(1)
}

func (m *MockInvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) SumAmountByStatus(ctx context.Context, status models.InvoiceStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) ListAll(ctx context.Context) ([]*models.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invoice), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*models.CustomerField, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CustomerField), args.Error(1)
}

func (m *MockCustomerRepository) ListFull(ctx context.Context) ([]*models.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) CreateMany(ctx context.Context, customers []*models.Customer) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) List(ctx context.Context) ([]*models.Revenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Revenue), args.Error(1)
}

func (m *MockRevenueRepository) CreateMany(ctx context.Context, revenue []*models.Revenue) error {
	args := m.Called(ctx, revenue)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockCustomerSummaryRepository struct {
	mock.Mock
}

func (m *MockCustomerSummaryRepository) Search(ctx context.Context, query string) ([]*repositories.CustomerSummaryRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repositories.CustomerSummaryRow), args.Error(1)
}

func (m *MockCustomerSummaryRepository) ListInvoicesByAmount(ctx context.Context, amount int64) ([]*repositories.InvoiceByAmountRow, error) {
	args := m.Called(ctx, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repositories.InvoiceByAmountRow), args.Error(1)
}

func (m *MockCustomerSummaryRepository) UpsertCustomers(ctx context.Context, customers []*models.Customer) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

func (m *MockCustomerSummaryRepository) UpsertInvoices(ctx context.Context, invoices []*models.Invoice) error {
	args := m.Called(ctx, invoices)
	return args.Error(0)
}

func (m *MockCustomerSummaryRepository) PruneCustomers(ctx context.Context, keepIDs []string) error {
	args := m.Called(ctx, keepIDs)
	return args.Error(0)
}

func (m *MockCustomerSummaryRepository) PruneInvoices(ctx context.Context, keepIDs []string) error {
	args := m.Called(ctx, keepIDs)
	return args.Error(0)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetInvoicePage(ctx context.Context, query string, page int) ([]*models.InvoiceWithCustomer, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InvoiceWithCustomer), args.Error(1)
}

func (m *MockCacheService) SetInvoicePage(ctx context.Context, query string, page int, invoices []*models.InvoiceWithCustomer, ttl time.Duration) error {
	args := m.Called(ctx, query, page, invoices, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetCardData(ctx context.Context) (*models.CardData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CardData), args.Error(1)
}

func (m *MockCacheService) SetCardData(ctx context.Context, cards *models.CardData, ttl time.Duration) error {
	args := m.Called(ctx, cards, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateInvoiceViews(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) Close() error {
	args := m.Called()
	return args.Error(0)
}
