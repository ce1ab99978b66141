package controllers

import (
	"context"

	"cleartrack/src/clients/marketdata"
	"cleartrack/src/repositories"
	"cleartrack/src/schemas"
	"cleartrack/src/services"
)

type HoldingsControllerI interface {
	GetAllHoldings(ctx context.Context) ([]*schemas.HoldingResponse, error)
	CreateHolding(ctx context.Context, req *schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error)
	DeleteHolding(ctx context.Context, id int) error
}

type PortfolioControllerI interface {
	GetPortfolioSummary(ctx context.Context) (*schemas.PortfolioSummary, error)
	GetPortfolioHistory(ctx context.Context) ([]*schemas.PortfolioHistoryPoint, error)
}

type PricesControllerI interface {
	GetCurrentPrice(ctx context.Context, ticker string) (*schemas.PriceResponse, error)
	TriggerSnapshot(ctx context.Context) (*schemas.SnapshotResult, error)
}

type Controller struct {
	HoldingRepository repositories.HoldingRepository
	HistoryRepository repositories.PortfolioHistoryRepository
	QuoteClient       marketdata.QuoteClientI
	SnapshotService   services.SnapshotServiceI
}

func NewController(
	holdingRepository repositories.HoldingRepository,
	historyRepository repositories.PortfolioHistoryRepository,
	quoteClient marketdata.QuoteClientI,
	snapshotService services.SnapshotServiceI,
) *Controller {
	return &Controller{
		HoldingRepository: holdingRepository,
		HistoryRepository: historyRepository,
		QuoteClient:       quoteClient,
		SnapshotService:   snapshotService,
	}
}
