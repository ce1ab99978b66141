package repositories

import (
	"context"
	"time"

	"cleartrack/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PortfolioHistoryRepository interface {
	Create(ctx context.Context, h *models.PortfolioHistory, tx pgx.Tx) error
	GetSince(ctx context.Context, since time.Time) ([]models.PortfolioHistory, error)
}

type portfolioHistoryRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioHistoryRepository(db *pgxpool.Pool) PortfolioHistoryRepository {
	return &portfolioHistoryRepo{db: db}
}

func (r *portfolioHistoryRepo) Create(ctx context.Context, h *models.PortfolioHistory, tx pgx.Tx) error {
	query := `
		INSERT INTO portfolio_history (date, total_value, total_invested, profit_loss)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if tx == nil {
		return r.db.QueryRow(ctx, query, h.Date, h.TotalValue, h.TotalInvested, h.ProfitLoss).Scan(&h.ID)
	}
	return tx.QueryRow(ctx, query, h.Date, h.TotalValue, h.TotalInvested, h.ProfitLoss).Scan(&h.ID)
}

func (r *portfolioHistoryRepo) GetSince(ctx context.Context, since time.Time) ([]models.PortfolioHistory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, date, total_value, total_invested, profit_loss
		FROM portfolio_history
		WHERE date >= $1
		ORDER BY date`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.PortfolioHistory
	for rows.Next() {
		var h models.PortfolioHistory
		if err := rows.Scan(&h.ID, &h.Date, &h.TotalValue, &h.TotalInvested, &h.ProfitLoss); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
