package repositories

import (
	"context"

	"acmedash/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomerSummaryRow is the raw aggregation output: customer fields
// plus invoice totals in cents. Formatting happens in the service.
type CustomerSummaryRow struct {
	ID            string `bson:"_id"`
	Name          string `bson:"name"`
	Email         string `bson:"email"`
	ImageURL      string `bson:"image_url"`
	TotalInvoices int64  `bson:"total_invoices"`
	TotalPending  int64  `bson:"total_pending"`
	TotalPaid     int64  `bson:"total_paid"`
}

// InvoiceByAmountRow is a row of the diagnostic amount lookup.
type InvoiceByAmountRow struct {
	Amount int64  `bson:"amount"`
	Name   string `bson:"name"`
}

// CustomerSummaryRepository runs aggregation queries against the
// document-store view of customers and invoices. The view is derived
// from the relational store by the sync job; it is never written by
// the mutation path.
type CustomerSummaryRepository interface {
	Search(ctx context.Context, query string) ([]*CustomerSummaryRow, error)
	ListInvoicesByAmount(ctx context.Context, amount int64) ([]*InvoiceByAmountRow, error)
	UpsertCustomers(ctx context.Context, customers []*models.Customer) error
	UpsertInvoices(ctx context.Context, invoices []*models.Invoice) error
	PruneCustomers(ctx context.Context, keepIDs []string) error
	PruneInvoices(ctx context.Context, keepIDs []string) error
}

type customerSummaryRepo struct {
	customers *mongo.Collection
	invoices  *mongo.Collection
}

func NewCustomerSummaryRepo(db *mongo.Database) CustomerSummaryRepository {
	return &customerSummaryRepo{
		customers: db.Collection("customers"),
		invoices:  db.Collection("invoices"),
	}
}

// statusSum builds the $addFields expression summing invoice amounts
// whose status matches, counting non-matching invoices as 0.
func statusSum(status models.InvoiceStatus) bson.M {
	return bson.M{
		"$sum": bson.M{
			"$map": bson.M{
				"input": "$invoices",
				"as":    "inv",
				"in": bson.M{
					"$cond": bson.A{
						bson.M{"$eq": bson.A{"$$inv.status", string(status)}},
						"$$inv.amount",
						0,
					},
				},
			},
		},
	}
}

// Search matches customers whose name or email contains query
// (case-insensitive regex), joins their invoices and computes the
// count plus pending/paid totals, sorted by name.
func (r *customerSummaryRepo) Search(ctx context.Context, query string) ([]*CustomerSummaryRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"name": bson.M{"$regex": query, "$options": "i"}},
				bson.M{"email": bson.M{"$regex": query, "$options": "i"}},
			},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "invoices",
			"localField":   "_id",
			"foreignField": "customer_id",
			"as":           "invoices",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"total_invoices": bson.M{"$size": "$invoices"},
			"total_pending":  statusSum(models.InvoiceStatusPending),
			"total_paid":     statusSum(models.InvoiceStatusPaid),
		}}},
		{{Key: "$project", Value: bson.M{"invoices": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}

	cursor, err := r.customers.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []*CustomerSummaryRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListInvoicesByAmount is a diagnostic lookup: invoices with the exact
// amount joined to their customer's name.
func (r *customerSummaryRepo) ListInvoicesByAmount(ctx context.Context, amount int64) ([]*InvoiceByAmountRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"amount": amount}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "customers",
			"localField":   "customer_id",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		{{Key: "$unwind", Value: "$customer"}},
		{{Key: "$project", Value: bson.M{
			"_id":    0,
			"amount": 1,
			"name":   "$customer.name",
		}}},
	}

	cursor, err := r.invoices.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []*InvoiceByAmountRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertCustomers replaces customer documents keyed by id. Used by the
// sync job to keep the derived view current.
func (r *customerSummaryRepo) UpsertCustomers(ctx context.Context, customers []*models.Customer) error {
	opts := options.Replace().SetUpsert(true)
	for _, c := range customers {
		doc := bson.M{
			"_id":       c.ID.String(),
			"name":      c.Name,
			"email":     c.Email,
			"image_url": c.ImageURL,
		}
		filter := bson.M{"_id": c.ID.String()}
		if _, err := r.customers.ReplaceOne(ctx, filter, doc, opts); err != nil {
			return err
		}
	}
	return nil
}

// PruneCustomers removes customer documents whose id is absent from
// the relational snapshot. Without this, a deleted relational row
// would leave its document behind forever.
func (r *customerSummaryRepo) PruneCustomers(ctx context.Context, keepIDs []string) error {
	if keepIDs == nil {
		keepIDs = []string{}
	}
	_, err := r.customers.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": keepIDs}})
	return err
}

// PruneInvoices removes invoice documents whose id is absent from the
// relational snapshot.
func (r *customerSummaryRepo) PruneInvoices(ctx context.Context, keepIDs []string) error {
	if keepIDs == nil {
		keepIDs = []string{}
	}
	_, err := r.invoices.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": keepIDs}})
	return err
}

// UpsertInvoices replaces invoice documents keyed by id.
func (r *customerSummaryRepo) UpsertInvoices(ctx context.Context, invoices []*models.Invoice) error {
	opts := options.Replace().SetUpsert(true)
	for _, inv := range invoices {
		doc := bson.M{
			"_id":         inv.ID.String(),
			"customer_id": inv.CustomerID.String(),
			"amount":      inv.Amount,
			"status":      string(inv.Status),
			"date":        inv.Date,
		}
		filter := bson.M{"_id": inv.ID.String()}
		if _, err := r.invoices.ReplaceOne(ctx, filter, doc, opts); err != nil {
			return err
		}
	}
	return nil
}
