package repositories

import (
	"context"

	"cleartrack/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PriceSnapshotRepository is write-only: snapshots feed the history trend and
// are never read back individually.
type PriceSnapshotRepository interface {
	Create(ctx context.Context, s *models.PriceSnapshot, tx pgx.Tx) error
}

type priceSnapshotRepo struct {
	db *pgxpool.Pool
}

func NewPriceSnapshotRepository(db *pgxpool.Pool) PriceSnapshotRepository {
	return &priceSnapshotRepo{db: db}
}

func (r *priceSnapshotRepo) Create(ctx context.Context, s *models.PriceSnapshot, tx pgx.Tx) error {
	query := `
		INSERT INTO price_snapshots (holding_id, price, date)
		VALUES ($1, $2, $3)
		RETURNING id`

	if tx == nil {
		return r.db.QueryRow(ctx, query, s.HoldingID, s.Price, s.Date).Scan(&s.ID)
	}
	return tx.QueryRow(ctx, query, s.HoldingID, s.Price, s.Date).Scan(&s.ID)
}
