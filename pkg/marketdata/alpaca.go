package marketdata

import (
	"context"
	"fmt"
	"time"

	alpaca "github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

type alpacaClient struct {
	client *alpaca.Client
}

// NewAlpacaClient returns a Client backed by the Alpaca market data API.
func NewAlpacaClient(apiKey, apiSecret string) Client {
	return alpacaClient{
		client: alpaca.NewClient(alpaca.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
	}
}

func (c alpacaClient) Name() string {
	return "alpaca"
}

func (c alpacaClient) GetDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]PricePoint, error) {
	bars, err := c.client.GetBars(symbol, alpaca.GetBarsRequest{
		TimeFrame:  alpaca.OneDay,
		Start:      start,
		End:        end,
		Adjustment: alpaca.All,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, err)
	}

	out := []PricePoint{}
	for _, b := range bars {
		out = append(out, PricePoint{
			Symbol: symbol,
			Date:   b.Timestamp.UTC().Truncate(24 * time.Hour),
			Close:  decimal.NewFromFloat(b.Close),
		})
	}

	return out, nil
}
