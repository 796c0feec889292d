package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySnapshot is one materialized end-of-day valuation for a portfolio.
// Exactly one exists per (portfolio, date); edits to history delete and
// recreate the affected range wholesale rather than patching rows.
type DailySnapshot struct {
	PortfolioID    uuid.UUID
	Date           time.Time
	TotalEquity    decimal.Decimal
	CashBalance    decimal.Decimal
	NetCashFlow    decimal.Decimal
	DailyReturnPct decimal.Decimal
}

type BenchmarkPrice struct {
	Symbol string
	Date   time.Time
	Price  decimal.Decimal
}

type AssetPrice struct {
	Symbol string
	Date   time.Time
	Price  decimal.Decimal
}

// ComparisonPoint is one row of the portfolio-vs-benchmark chart. Both
// values are rebased to 100 on the first shared date.
type ComparisonPoint struct {
	Date           time.Time
	PortfolioValue decimal.Decimal
	BenchmarkValue decimal.Decimal
}
