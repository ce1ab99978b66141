package schemas

type PortfolioSummary struct {
	TotalInvested     float64 `json:"total_invested"`
	CurrentValue      float64 `json:"current_value"`
	HoldingsCount     int     `json:"holdings_count"`
	ProfitLoss        float64 `json:"profit_loss"`
	ProfitLossPercent float64 `json:"profit_loss_percent"`
}

// PortfolioHistoryPoint is one day of the trend chart.
type PortfolioHistoryPoint struct {
	Date       string  `json:"date"`
	ProfitLoss float64 `json:"profit_loss"`
}
