package services

import (
	"cleartrack/src/models"
	"cleartrack/src/schemas"
)

// HoldingValue is the market value of a position at the given price.
func HoldingValue(shares, currentPrice float64) float64 {
	return shares * currentPrice
}

// HoldingCost is the cost basis of a position.
func HoldingCost(shares, purchasePrice float64) float64 {
	return shares * purchasePrice
}

// Summarize aggregates holdings and their current prices (keyed by holding id)
// into portfolio totals. A holding without a price entry contributes zero value
// but still counts toward the invested total.
func Summarize(holdings []models.Holding, prices map[int]float64) *schemas.PortfolioSummary {
	var totalInvested, currentValue float64
	for _, holding := range holdings {
		totalInvested += HoldingCost(holding.Shares, holding.PurchasePrice)
		currentValue += HoldingValue(holding.Shares, prices[holding.ID])
	}

	profitLoss := currentValue - totalInvested
	profitLossPercent := 0.0
	if totalInvested > 0 {
		profitLossPercent = profitLoss / totalInvested * 100
	}

	return &schemas.PortfolioSummary{
		TotalInvested:     totalInvested,
		CurrentValue:      currentValue,
		HoldingsCount:     len(holdings),
		ProfitLoss:        profitLoss,
		ProfitLossPercent: profitLossPercent,
	}
}
