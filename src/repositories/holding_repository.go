package repositories

import (
	"context"

	"cleartrack/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldingRepository interface {
	GetAll(ctx context.Context) ([]models.Holding, error)
	Create(ctx context.Context, h *models.Holding, tx pgx.Tx) error
	Delete(ctx context.Context, id int) error
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

func (r *holdingRepo) GetAll(ctx context.Context) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, ticker, shares, purchase_price, created_at
		FROM holdings
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.Ticker, &h.Shares, &h.PurchasePrice, &h.CreatedAt); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *holdingRepo) Create(ctx context.Context, h *models.Holding, tx pgx.Tx) error {
	query := `
		INSERT INTO holdings (ticker, shares, purchase_price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	if tx == nil {
		return r.db.QueryRow(ctx, query, h.Ticker, h.Shares, h.PurchasePrice).
			Scan(&h.ID, &h.CreatedAt)
	}
	return tx.QueryRow(ctx, query, h.Ticker, h.Shares, h.PurchasePrice).
		Scan(&h.ID, &h.CreatedAt)
}

// Delete removes a holding; its price snapshots go with it via the FK cascade.
// Returns pgx.ErrNoRows when the id does not exist.
func (r *holdingRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM holdings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
