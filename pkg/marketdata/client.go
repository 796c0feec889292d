package marketdata

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one adjusted daily close as returned by an upstream data
// vendor.
type PricePoint struct {
	Symbol string
	Date   time.Time
	Close  decimal.Decimal
}

// Client fetches historical daily closes for a symbol. Implementations wrap
// a single vendor; callers own persistence.
type Client interface {
	GetDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]PricePoint, error)
	Name() string
}
