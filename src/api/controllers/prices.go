package controllers

import (
	"context"
	"errors"
	"strings"

	"cleartrack/src/clients/marketdata"
	"cleartrack/src/schemas"
	"cleartrack/src/utils"
)

func (c *Controller) GetCurrentPrice(ctx context.Context, ticker string) (*schemas.PriceResponse, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	price, err := c.QuoteClient.GetQuote(ctx, ticker)
	if err != nil {
		if errors.Is(err, marketdata.ErrNoData) {
			return nil, utils.NotFound("Ticker not found")
		}
		return nil, utils.BadGateway("price lookup failed")
	}

	return &schemas.PriceResponse{
		Ticker: ticker,
		Price:  price,
	}, nil
}

// TriggerSnapshot runs the snapshot job on demand, same logic as the daily cron.
func (c *Controller) TriggerSnapshot(ctx context.Context) (*schemas.SnapshotResult, error) {
	result, err := c.SnapshotService.Run(ctx)
	if err != nil {
		utils.LoggerFromContext(ctx).WithError(err).Error("manual snapshot run failed")
		return nil, utils.BadGateway("snapshot run failed")
	}
	return result, nil
}
