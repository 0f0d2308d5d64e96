package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"acmedash/internal/common"
	"acmedash/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	Latest(ctx context.Context, limit int) ([]*models.InvoiceWithCustomer, error)
	Filtered(ctx context.Context, query string, limit, offset int) ([]*models.InvoiceWithCustomer, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	Count(ctx context.Context) (int64, error)
	SumAmountByStatus(ctx context.Context, status models.InvoiceStatus) (int64, error)
	ListAll(ctx context.Context) ([]*models.Invoice, error)
}

type invoiceRepo struct {
	db DB
}

func NewInvoiceRepo(db DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

const invoiceWithCustomerColumns = `i.id, i.customer_id, i.amount, i.status, i.date, c.name, c.email, c.image_url`

// invoiceFilter builds the WHERE fragment shared by Filtered and
// CountFiltered so page contents and page counts always agree. The OR
// branches are: exact status match when query equals a known status
// value (case-sensitive), exact amount match when query parses as a
// number, and a case-insensitive substring match on customer name or
// email. An empty query yields no filter at all.
func invoiceFilter(query string) (string, []any) {
	if query == "" {
		return "", nil
	}

	var preds []string
	var args []any

	if models.ValidInvoiceStatus(query) {
		args = append(args, query)
		preds = append(preds, fmt.Sprintf("i.status = $%d", len(args)))
	}
	if amount, err := strconv.ParseFloat(query, 64); err == nil {
		args = append(args, amount)
		preds = append(preds, fmt.Sprintf("i.amount = $%d", len(args)))
	}
	args = append(args, "%"+query+"%")
	preds = append(preds, fmt.Sprintf("(c.name ILIKE $%d OR c.email ILIKE $%d)", len(args), len(args)))

	return " WHERE " + strings.Join(preds, " OR "), args
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date)
	return err
}

func (r *invoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.ID)
	return err
}

// Delete removes the invoice row. Deleting an id that does not exist
// is a no-op, not an error.
func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	query := `
		SELECT id, customer_id, amount, status
		FROM invoices
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepo) Latest(ctx context.Context, limit int) ([]*models.InvoiceWithCustomer, error) {
	query := `
		SELECT ` + invoiceWithCustomerColumns + `
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoicesWithCustomer(rows)
}

func (r *invoiceRepo) Filtered(ctx context.Context, query string, limit, offset int) ([]*models.InvoiceWithCustomer, error) {
	where, args := invoiceFilter(query)
	sql := `
		SELECT ` + invoiceWithCustomerColumns + `
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id` + where + `
		ORDER BY i.date DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoicesWithCustomer(rows)
}

func (r *invoiceRepo) CountFiltered(ctx context.Context, query string) (int64, error) {
	where, args := invoiceFilter(query)
	sql := `
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id` + where

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *invoiceRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SumAmountByStatus totals invoice amounts for one status. An empty
// table sums to NULL in SQL, coalesced to zero here.
func (r *invoiceRepo) SumAmountByStatus(ctx context.Context, status models.InvoiceStatus) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = $1`
	if err := r.db.QueryRow(ctx, query, status).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// ListAll returns every invoice row, used by seeding and by the
// document-view sync job.
func (r *invoiceRepo) ListAll(ctx context.Context) ([]*models.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv := &models.Invoice{}
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invoices, nil
}

func scanInvoicesWithCustomer(rows pgx.Rows) ([]*models.InvoiceWithCustomer, error) {
	var invoices []*models.InvoiceWithCustomer
	for rows.Next() {
		inv := &models.InvoiceWithCustomer{}
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date, &inv.Name, &inv.Email, &inv.ImageURL); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invoices, nil
}
