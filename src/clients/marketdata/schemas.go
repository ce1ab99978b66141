package marketdata

// ChartResponse mirrors the provider's chart payload for a single ticker.
// Close values are pointers because the provider emits null for missing bars.
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

type Chart struct {
	Result []ChartResult `json:"result"`
	Error  *ChartError   `json:"error"`
}

type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type ChartResult struct {
	Meta       ChartMeta       `json:"meta"`
	Indicators ChartIndicators `json:"indicators"`
}

type ChartMeta struct {
	Symbol             string  `json:"symbol"`
	Currency           string  `json:"currency"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

type ChartIndicators struct {
	Quote []ChartQuote `json:"quote"`
}

type ChartQuote struct {
	Close []*float64 `json:"close"`
}
