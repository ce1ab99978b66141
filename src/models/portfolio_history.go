package models

import "time"

// PortfolioHistory is one aggregate valuation of the whole portfolio.
// ProfitLoss is always TotalValue - TotalInvested at write time.
type PortfolioHistory struct {
	ID            int       `db:"id"`
	Date          time.Time `db:"date"`
	TotalValue    float64   `db:"total_value"`
	TotalInvested float64   `db:"total_invested"`
	ProfitLoss    float64   `db:"profit_loss"`
}
