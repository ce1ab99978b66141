package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cleartrack/src/clients/marketdata"
	"cleartrack/src/models"
	"cleartrack/src/repositories"
	"cleartrack/src/schemas"
	"cleartrack/src/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// TxBeginner is the slice of the pool the snapshot job needs to open its
// batch transaction. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type SnapshotServiceI interface {
	Run(ctx context.Context) (*schemas.SnapshotResult, error)
}

// SnapshotService records one price snapshot per holding plus one aggregate
// portfolio history row, all inside a single transaction. The run mutex
// serializes the scheduled run against manual API triggers.
type SnapshotService struct {
	db                 TxBeginner
	holdingRepository  repositories.HoldingRepository
	snapshotRepository repositories.PriceSnapshotRepository
	historyRepository  repositories.PortfolioHistoryRepository
	quoteClient        marketdata.QuoteClientI

	runMutex sync.Mutex
}

func NewSnapshotService(
	db TxBeginner,
	holdingRepository repositories.HoldingRepository,
	snapshotRepository repositories.PriceSnapshotRepository,
	historyRepository repositories.PortfolioHistoryRepository,
	quoteClient marketdata.QuoteClientI,
) *SnapshotService {
	return &SnapshotService{
		db:                 db,
		holdingRepository:  holdingRepository,
		snapshotRepository: snapshotRepository,
		historyRepository:  historyRepository,
		quoteClient:        quoteClient,
	}
}

func (s *SnapshotService) Run(ctx context.Context) (*schemas.SnapshotResult, error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	logger := utils.LoggerFromContext(ctx)
	runID := uuid.NewString()

	holdings, err := s.holdingRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading holdings: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	now := time.Now().UTC()
	var portfolioValue, portfolioInvested float64
	for _, holding := range holdings {
		price, err := s.quoteClient.GetQuote(ctx, holding.Ticker)
		if err != nil {
			// One failed lookup aborts the whole batch; the rollback above
			// keeps this run out of the tables entirely.
			return nil, fmt.Errorf("quote lookup for %s: %w", holding.Ticker, err)
		}

		snapshot := &models.PriceSnapshot{
			HoldingID: holding.ID,
			Price:     price,
			Date:      now,
		}
		if err := s.snapshotRepository.Create(ctx, snapshot, tx); err != nil {
			return nil, fmt.Errorf("storing snapshot for %s: %w", holding.Ticker, err)
		}

		portfolioValue += HoldingValue(holding.Shares, price)
		portfolioInvested += HoldingCost(holding.Shares, holding.PurchasePrice)
	}

	history := &models.PortfolioHistory{
		Date:          now,
		TotalValue:    portfolioValue,
		TotalInvested: portfolioInvested,
		ProfitLoss:    portfolioValue - portfolioInvested,
	}
	if err := s.historyRepository.Create(ctx, history, tx); err != nil {
		return nil, fmt.Errorf("storing portfolio history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	logger.WithFields(logrus.Fields{
		"run_id":         runID,
		"snapshots":      len(holdings),
		"total_value":    portfolioValue,
		"total_invested": portfolioInvested,
	}).Info("snapshot run completed")

	return &schemas.SnapshotResult{
		RunID:         runID,
		Snapshots:     len(holdings),
		TotalValue:    portfolioValue,
		TotalInvested: portfolioInvested,
		ProfitLoss:    portfolioValue - portfolioInvested,
	}, nil
}

// RunScheduled is the cron entrypoint. Failures are logged and swallowed; the
// next run fires on its usual schedule.
func (s *SnapshotService) RunScheduled(logger *logrus.Logger) {
	ctx := utils.WithLogger(context.Background(), logger)
	if _, err := s.Run(ctx); err != nil {
		logger.WithError(err).Error("scheduled snapshot run failed")
	}
}
