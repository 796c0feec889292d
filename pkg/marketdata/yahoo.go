package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type yahooClient struct{}

// NewYahooClient returns a Client backed by Yahoo Finance daily charts.
// Closes are adjusted for splits and dividends.
func NewYahooClient() Client {
	return yahooClient{}
}

func (c yahooClient) Name() string {
	return "yahoo"
}

func (c yahooClient) GetDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]PricePoint, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []PricePoint{}
	for iter.Next() {
		out = append(out, PricePoint{
			Symbol: symbol,
			Date:   time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
			Close:  iter.Bar().AdjClose,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return out, nil
}
