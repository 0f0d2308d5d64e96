package repositories

import (
	"context"

	"acmedash/internal/models"
)

type RevenueRepository interface {
	List(ctx context.Context) ([]*models.Revenue, error)
	CreateMany(ctx context.Context, revenue []*models.Revenue) error
}

type revenueRepo struct {
	db DB
}

func NewRevenueRepo(db DB) RevenueRepository {
	return &revenueRepo{db: db}
}

// List returns all revenue rows in storage order; the chart does not
// depend on any particular ordering.
func (r *revenueRepo) List(ctx context.Context) ([]*models.Revenue, error) {
	rows, err := r.db.Query(ctx, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenue []*models.Revenue
	for rows.Next() {
		rec := &models.Revenue{}
		if err := rows.Scan(&rec.Month, &rec.Revenue); err != nil {
			return nil, err
		}
		revenue = append(revenue, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return revenue, nil
}

// CreateMany inserts revenue rows. Re-running against seeded data hits
// the unique month constraint and the fault propagates.
func (r *revenueRepo) CreateMany(ctx context.Context, revenue []*models.Revenue) error {
	query := `INSERT INTO revenue (month, revenue) VALUES ($1, $2)`
	for _, rec := range revenue {
		if _, err := r.db.Exec(ctx, query, rec.Month, rec.Revenue); err != nil {
			return err
		}
	}
	return nil
}
