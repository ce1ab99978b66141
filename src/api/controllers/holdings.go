package controllers

import (
	"context"
	"errors"
	"strings"

	"cleartrack/src/clients/marketdata"
	"cleartrack/src/models"
	"cleartrack/src/schemas"
	"cleartrack/src/services"
	"cleartrack/src/utils"

	"github.com/jackc/pgx/v5"
)

// GetAllHoldings lists every holding enriched with its live price. A failed
// lookup leaves the price at zero rather than failing the whole listing.
func (c *Controller) GetAllHoldings(ctx context.Context) ([]*schemas.HoldingResponse, error) {
	holdings, err := c.HoldingRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	logger := utils.LoggerFromContext(ctx)
	responses := make([]*schemas.HoldingResponse, 0, len(holdings))
	for _, holding := range holdings {
		currentPrice, err := c.QuoteClient.GetQuote(ctx, holding.Ticker)
		if err != nil {
			logger.WithError(err).WithField("ticker", holding.Ticker).Warn("price lookup failed")
			currentPrice = 0
		}
		responses = append(responses, holdingResponse(&holding, currentPrice))
	}
	return responses, nil
}

func (c *Controller) CreateHolding(ctx context.Context, req *schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return nil, utils.BadRequest("ticker is required")
	}
	if req.Shares < 0 || req.PurchasePrice < 0 {
		return nil, utils.BadRequest("shares and purchase_price must be non-negative")
	}

	// A ticker the provider knows nothing about cannot be held
	currentPrice, err := c.QuoteClient.GetQuote(ctx, ticker)
	if err != nil {
		if errors.Is(err, marketdata.ErrNoData) {
			return nil, utils.BadRequest("invalid ticker symbol")
		}
		return nil, utils.BadGateway("price lookup failed")
	}

	holding := &models.Holding{
		Ticker:        ticker,
		Shares:        req.Shares,
		PurchasePrice: req.PurchasePrice,
	}
	if err := c.HoldingRepository.Create(ctx, holding, nil); err != nil {
		return nil, err
	}

	return holdingResponse(holding, currentPrice), nil
}

func (c *Controller) DeleteHolding(ctx context.Context, id int) error {
	err := c.HoldingRepository.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return utils.NotFound("Holding not found")
	}
	return err
}

func holdingResponse(holding *models.Holding, currentPrice float64) *schemas.HoldingResponse {
	return &schemas.HoldingResponse{
		ID:            holding.ID,
		Ticker:        holding.Ticker,
		Shares:        holding.Shares,
		PurchasePrice: holding.PurchasePrice,
		CurrentPrice:  currentPrice,
		CurrentValue:  services.HoldingValue(holding.Shares, currentPrice),
		TotalCost:     services.HoldingCost(holding.Shares, holding.PurchasePrice),
		CreatedAt:     holding.CreatedAt,
	}
}
