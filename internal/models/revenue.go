package models

// Revenue is a labeled monthly revenue figure. Seeded once and treated
// as static reference data.
type Revenue struct {
	Month   string `json:"month" db:"month"`
	Revenue int64  `json:"revenue" db:"revenue"`
}
