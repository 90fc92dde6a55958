package entities

import "time"

// IgnoredDateRange is an administrator-configured exclusion period. A date is
// exempt from compliance when it falls inside [StartDate, EndDate] of any
// stored range; ranges may overlap.
type IgnoredDateRange struct {
	ID        int64     `db:"id" json:"id"`
	StartDate string    `db:"start_date" json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string    `db:"end_date" json:"end_date"`     // YYYY-MM-DD, inclusive
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	CreatedBy string    `db:"created_by" json:"created_by"`
}
