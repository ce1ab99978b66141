package schemas

import "time"

type CreateHoldingRequest struct {
	Ticker        string  `json:"ticker"`
	Shares        float64 `json:"shares"`
	PurchasePrice float64 `json:"purchase_price"`
}

// HoldingResponse is a holding enriched with its live market price.
type HoldingResponse struct {
	ID            int       `json:"id"`
	Ticker        string    `json:"ticker"`
	Shares        float64   `json:"shares"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentPrice  float64   `json:"current_price"`
	CurrentValue  float64   `json:"current_value"`
	TotalCost     float64   `json:"total_cost"`
	CreatedAt     time.Time `json:"created_at"`
}

type DeleteHoldingResponse struct {
	Message string `json:"message"`
}
