package repositories

import (
	"context"

	"acmedash/internal/models"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]*models.CustomerField, error)
	ListFull(ctx context.Context) ([]*models.Customer, error)
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, customers []*models.Customer) error
}

type customerRepo struct {
	db DB
}

func NewCustomerRepo(db DB) CustomerRepository {
	return &customerRepo{db: db}
}

// List returns every customer's (id, name) pair for the invoice form
// select, ordered by name.
func (r *customerRepo) List(ctx context.Context) ([]*models.CustomerField, error) {
	query := `
		SELECT id, name
		FROM customers
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.CustomerField
	for rows.Next() {
		c := &models.CustomerField{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

// ListFull returns whole customer rows, used by seeding (to map invoice
// email references to ids) and by the document-view sync job.
func (r *customerRepo) ListFull(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c := &models.Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CreateMany inserts customer rows one by one. Duplicate emails violate
// the unique constraint and the fault propagates to the caller.
func (r *customerRepo) CreateMany(ctx context.Context, customers []*models.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)
	`
	for _, c := range customers {
		if _, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Email, c.ImageURL); err != nil {
			return err
		}
	}
	return nil
}
