package schemas

type PriceResponse struct {
	Ticker string  `json:"ticker"`
	Price  float64 `json:"price"`
}

// SnapshotResult summarizes one snapshot job run.
type SnapshotResult struct {
	RunID         string  `json:"run_id"`
	Snapshots     int     `json:"snapshots"`
	TotalValue    float64 `json:"total_value"`
	TotalInvested float64 `json:"total_invested"`
	ProfitLoss    float64 `json:"profit_loss"`
}
