package models

import (
	"time"
)

type Holding struct {
	ID            int       `db:"id"`
	Ticker        string    `db:"ticker"`
	Shares        float64   `db:"shares"`
	PurchasePrice float64   `db:"purchase_price"`
	CreatedAt     time.Time `db:"created_at"`
}
