package controllers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cleartrack/src/api/controllers"
	"cleartrack/src/clients/marketdata"
	"cleartrack/src/models"
	"cleartrack/src/schemas"
	"cleartrack/src/utils"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHoldingRepo struct {
	holdings []models.Holding
	nextID   int
}

func (r *fakeHoldingRepo) GetAll(_ context.Context) ([]models.Holding, error) {
	return r.holdings, nil
}

func (r *fakeHoldingRepo) Create(_ context.Context, h *models.Holding, _ pgx.Tx) error {
	r.nextID++
	h.ID = r.nextID
	h.CreatedAt = time.Now()
	r.holdings = append(r.holdings, *h)
	return nil
}

func (r *fakeHoldingRepo) Delete(_ context.Context, id int) error {
	for i := range r.holdings {
		if r.holdings[i].ID == id {
			r.holdings = append(r.holdings[:i], r.holdings[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeHistoryRepo struct {
	history []models.PortfolioHistory
}

func (r *fakeHistoryRepo) Create(_ context.Context, h *models.PortfolioHistory, _ pgx.Tx) error {
	r.history = append(r.history, *h)
	return nil
}

func (r *fakeHistoryRepo) GetSince(_ context.Context, since time.Time) ([]models.PortfolioHistory, error) {
	var out []models.PortfolioHistory
	for _, h := range r.history {
		if !h.Date.Before(since) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeQuoteClient struct {
	prices map[string]float64
	err    error
}

func (c *fakeQuoteClient) GetQuote(_ context.Context, ticker string) (float64, error) {
	if c.err != nil {
		return 0, c.err
	}
	price, ok := c.prices[ticker]
	if !ok {
		return 0, marketdata.ErrNoData
	}
	return price, nil
}

type fakeSnapshotService struct {
	result *schemas.SnapshotResult
	err    error
}

func (s *fakeSnapshotService) Run(_ context.Context) (*schemas.SnapshotResult, error) {
	return s.result, s.err
}

func newController(holdingRepo *fakeHoldingRepo, historyRepo *fakeHistoryRepo, quotes *fakeQuoteClient) *controllers.Controller {
	return controllers.NewController(holdingRepo, historyRepo, quotes, &fakeSnapshotService{})
}

func TestCreateHoldingController(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the holding and returns it priced", func(t *testing.T) {
		repo := &fakeHoldingRepo{}
		controller := newController(repo, &fakeHistoryRepo{}, &fakeQuoteClient{prices: map[string]float64{"AAA": 8}})

		got, err := controller.CreateHolding(ctx, &schemas.CreateHoldingRequest{
			Ticker: "aaa", Shares: 10, PurchasePrice: 5,
		})
		require.NoError(t, err)

		assert.Equal(t, "AAA", got.Ticker)
		assert.Equal(t, 8.0, got.CurrentPrice)
		assert.Equal(t, 80.0, got.CurrentValue)
		assert.Equal(t, 50.0, got.TotalCost)
		require.Len(t, repo.holdings, 1)
		assert.Equal(t, "AAA", repo.holdings[0].Ticker)
	})

	t.Run("rejects a ticker the provider does not know", func(t *testing.T) {
		repo := &fakeHoldingRepo{}
		controller := newController(repo, &fakeHistoryRepo{}, &fakeQuoteClient{prices: map[string]float64{}})

		_, err := controller.CreateHolding(ctx, &schemas.CreateHoldingRequest{
			Ticker: "NOPE", Shares: 1, PurchasePrice: 1,
		})
		require.Error(t, err)

		httpErr, ok := err.(*utils.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
		assert.Empty(t, repo.holdings)
	})

	t.Run("rejects negative shares", func(t *testing.T) {
		controller := newController(&fakeHoldingRepo{}, &fakeHistoryRepo{}, &fakeQuoteClient{})

		_, err := controller.CreateHolding(ctx, &schemas.CreateHoldingRequest{
			Ticker: "AAA", Shares: -1, PurchasePrice: 1,
		})
		require.Error(t, err)

		httpErr, ok := err.(*utils.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("provider outage is not a bad request", func(t *testing.T) {
		controller := newController(&fakeHoldingRepo{}, &fakeHistoryRepo{}, &fakeQuoteClient{err: errors.New("timeout")})

		_, err := controller.CreateHolding(ctx, &schemas.CreateHoldingRequest{
			Ticker: "AAA", Shares: 1, PurchasePrice: 1,
		})
		require.Error(t, err)

		httpErr, ok := err.(*utils.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 502, httpErr.Code)
	})
}

func TestDeleteHoldingController(t *testing.T) {
	ctx := context.Background()

	repo := &fakeHoldingRepo{holdings: []models.Holding{{ID: 1, Ticker: "AAA"}}, nextID: 1}
	controller := newController(repo, &fakeHistoryRepo{}, &fakeQuoteClient{})

	t.Run("missing id maps to 404", func(t *testing.T) {
		err := controller.DeleteHolding(ctx, 99)
		require.Error(t, err)

		httpErr, ok := err.(*utils.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("existing id disappears from listings", func(t *testing.T) {
		require.NoError(t, controller.DeleteHolding(ctx, 1))

		listed, err := controller.GetAllHoldings(ctx)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}

func TestGetAllHoldingsController(t *testing.T) {
	ctx := context.Background()

	t.Run("failed lookup enriches with zero instead of failing", func(t *testing.T) {
		repo := &fakeHoldingRepo{holdings: []models.Holding{
			{ID: 1, Ticker: "AAA", Shares: 10, PurchasePrice: 5},
			{ID: 2, Ticker: "GONE", Shares: 2, PurchasePrice: 3},
		}}
		controller := newController(repo, &fakeHistoryRepo{}, &fakeQuoteClient{prices: map[string]float64{"AAA": 8}})

		listed, err := controller.GetAllHoldings(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 2)

		assert.Equal(t, 8.0, listed[0].CurrentPrice)
		assert.Equal(t, 0.0, listed[1].CurrentPrice)
		assert.Equal(t, 0.0, listed[1].CurrentValue)
		assert.Equal(t, 6.0, listed[1].TotalCost)
	})
}

func TestGetPortfolioSummaryController(t *testing.T) {
	ctx := context.Background()

	repo := &fakeHoldingRepo{holdings: []models.Holding{
		{ID: 1, Ticker: "AAA", Shares: 10, PurchasePrice: 5},
	}}
	controller := newController(repo, &fakeHistoryRepo{}, &fakeQuoteClient{prices: map[string]float64{"AAA": 8}})

	summary, err := controller.GetPortfolioSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 50.0, summary.TotalInvested)
	assert.Equal(t, 80.0, summary.CurrentValue)
	assert.Equal(t, 30.0, summary.ProfitLoss)
	assert.Equal(t, 60.0, summary.ProfitLossPercent)
	assert.Equal(t, 1, summary.HoldingsCount)
}

func TestGetPortfolioHistoryController(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	historyRepo := &fakeHistoryRepo{history: []models.PortfolioHistory{
		{ID: 1, Date: now.AddDate(0, 0, -45), ProfitLoss: 1},
		{ID: 2, Date: now.AddDate(0, 0, -10), ProfitLoss: 10},
		{ID: 3, Date: now.AddDate(0, 0, -1), ProfitLoss: 12.5},
	}}
	controller := newController(&fakeHoldingRepo{}, historyRepo, &fakeQuoteClient{})

	points, err := controller.GetPortfolioHistory(ctx)
	require.NoError(t, err)

	// The 45-day-old row falls outside the 30-day window
	require.Len(t, points, 2)
	assert.Equal(t, now.AddDate(0, 0, -10).Format(utils.ShortDashDateLayout), points[0].Date)
	assert.Equal(t, 10.0, points[0].ProfitLoss)
	assert.Equal(t, 12.5, points[1].ProfitLoss)
}
