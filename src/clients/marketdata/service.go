package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cleartrack/src/config"
	"cleartrack/src/utils"
	"cleartrack/src/utils/requests"
)

// ErrNoData means the provider has no quote for the ticker: unknown symbol or
// an empty price series. Transport and decode failures are returned as-is so
// callers can tell the two apart.
var ErrNoData = errors.New("no market data for ticker")

type QuoteClientI interface {
	GetQuote(ctx context.Context, ticker string) (float64, error)
}

type QuoteClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// NewClient creates a new instance of QuoteClient
func NewClient(cfg *config.Config) (*QuoteClient, error) {
	api := requests.NewExternalAPIService()
	return &QuoteClient{
		API:     api,
		BaseURL: cfg.ExternalClients.MarketData.BaseURL,
	}, nil
}

// GetQuote fetches the most recent closing price for a ticker from the
// provider's one-day chart endpoint.
func (c *QuoteClient) GetQuote(ctx context.Context, ticker string) (float64, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return 0, ErrNoData
	}

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", c.BaseURL, url.PathEscape(ticker))

	params := url.Values{}
	params.Add("range", "1d")
	params.Add("interval", "1d")

	resp, err := c.API.Get(ctx, endpoint, params, map[string]string{
		"User-Agent": "cleartrack/1.0",
	})
	if err != nil {
		// The provider answers unknown tickers with a 404 carrying the same
		// chart error payload, not a 2xx body.
		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound {
			return 0, ErrNoData
		}
		return 0, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var chartResponse ChartResponse
	err = json.Unmarshal(responseBody, &chartResponse)
	if err != nil {
		return 0, err
	}

	if chartResponse.Chart.Error != nil || len(chartResponse.Chart.Result) == 0 {
		return 0, ErrNoData
	}

	result := chartResponse.Chart.Result[0]

	// Latest non-null close wins; the meta price covers tickers whose series
	// came back empty during market hours.
	for _, quote := range result.Indicators.Quote {
		for i := len(quote.Close) - 1; i >= 0; i-- {
			if quote.Close[i] != nil {
				return *quote.Close[i], nil
			}
		}
	}
	if result.Meta.RegularMarketPrice > 0 {
		return result.Meta.RegularMarketPrice, nil
	}
	return 0, ErrNoData
}
