package models

import "time"

// PriceSnapshot is one recorded price for one holding. Rows are written only by
// the snapshot job and are immutable once stored.
type PriceSnapshot struct {
	ID        int       `db:"id"`
	HoldingID int       `db:"holding_id"`
	Price     float64   `db:"price"`
	Date      time.Time `db:"date"`
}
