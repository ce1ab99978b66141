package controllers

import (
	"context"
	"time"

	"cleartrack/src/schemas"
	"cleartrack/src/services"
	"cleartrack/src/utils"
)

// GetPortfolioSummary values every holding at its live price and aggregates.
func (c *Controller) GetPortfolioSummary(ctx context.Context) (*schemas.PortfolioSummary, error) {
	holdings, err := c.HoldingRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	logger := utils.LoggerFromContext(ctx)
	prices := make(map[int]float64, len(holdings))
	for _, holding := range holdings {
		price, err := c.QuoteClient.GetQuote(ctx, holding.Ticker)
		if err != nil {
			logger.WithError(err).WithField("ticker", holding.Ticker).Warn("price lookup failed")
			continue
		}
		prices[holding.ID] = price
	}

	return services.Summarize(holdings, prices), nil
}

// GetPortfolioHistory returns the last 30 days of history rows, oldest first.
func (c *Controller) GetPortfolioHistory(ctx context.Context) ([]*schemas.PortfolioHistoryPoint, error) {
	since := utils.HistoryWindowStart(time.Now().UTC())
	history, err := c.HistoryRepository.GetSince(ctx, since)
	if err != nil {
		return nil, err
	}

	points := make([]*schemas.PortfolioHistoryPoint, 0, len(history))
	for _, entry := range history {
		points = append(points, &schemas.PortfolioHistoryPoint{
			Date:       entry.Date.Format(utils.ShortDashDateLayout),
			ProfitLoss: entry.ProfitLoss,
		})
	}
	return points, nil
}
