package service

import (
	"sort"
	"time"

	"perfhistory/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BuildNormalizedSeries turns a snapshot series and a benchmark price series
// into one comparison series, both sides rebased to 100 on the first
// snapshot date.
//
// The portfolio side compounds daily returns geometrically:
//
//	cumulative_t = (1 + cumulative_t-1) * (1 + dailyReturn_t) - 1
//
// summing them instead would overstate long-run performance.
//
// The benchmark side resolves each snapshot date to a close, walking up to
// 7 days backward over non-trading days; if nothing resolves it carries the
// previous displayed value forward so the chart stays continuous - never
// interpolated, never null-gapped.
//
// A pure, replayable transform: identical inputs yield identical output.
// Either input empty yields an empty series.
func BuildNormalizedSeries(snapshots []domain.DailySnapshot, benchmarkPrices []domain.BenchmarkPrice) []domain.ComparisonPoint {
	if len(snapshots) == 0 || len(benchmarkPrices) == 0 {
		return []domain.ComparisonPoint{}
	}

	// sort a copy; the caller's slice is left untouched
	snapshots = append([]domain.DailySnapshot(nil), snapshots...)
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Date.Before(snapshots[j].Date)
	})

	priceByDay := map[string]decimal.Decimal{}
	for _, p := range benchmarkPrices {
		priceByDay[p.Date.Format(time.DateOnly)] = p.Price
	}

	var benchmarkBase *decimal.Decimal
	cumulative := decimal.Zero
	lastBenchmarkValue := hundred

	out := make([]domain.ComparisonPoint, 0, len(snapshots))
	for _, s := range snapshots {
		cumulative = decimal.NewFromInt(1).Add(cumulative).
			Mul(decimal.NewFromInt(1).Add(s.DailyReturnPct)).
			Sub(decimal.NewFromInt(1))
		portfolioValue := decimal.NewFromInt(1).Add(cumulative).Mul(hundred)

		benchmarkValue := lastBenchmarkValue
		if price := resolvePrice(priceByDay, s.Date); price != nil {
			if benchmarkBase == nil {
				benchmarkBase = price
			}
			benchmarkValue = price.Div(*benchmarkBase).Mul(hundred)
		}
		lastBenchmarkValue = benchmarkValue

		out = append(out, domain.ComparisonPoint{
			Date:           s.Date,
			PortfolioValue: portfolioValue,
			BenchmarkValue: benchmarkValue,
		})
	}

	return out
}

func resolvePrice(priceByDay map[string]decimal.Decimal, date time.Time) *decimal.Decimal {
	for i := 0; i <= BenchmarkLookbackDays; i++ {
		if price, ok := priceByDay[date.AddDate(0, 0, -i).Format(time.DateOnly)]; ok {
			return &price
		}
	}
	return nil
}

// RescaleToFinalValue proportionally rescales the portfolio side of a
// series so its final point lands on targetFinal. The exclude-cash chart
// view uses this to pin the curve to the cost-basis-correct ending value.
//
// This is a deliberate approximation: intermediate points are scaled
// linearly rather than recomputed day-by-day against invested capital only,
// which would cost a full replay per chart request. Intermediate values can
// therefore be slightly off when large flows occur mid-range.
func RescaleToFinalValue(points []domain.ComparisonPoint, targetFinal decimal.Decimal) []domain.ComparisonPoint {
	if len(points) == 0 {
		return points
	}
	final := points[len(points)-1].PortfolioValue
	if final.IsZero() {
		return points
	}
	factor := targetFinal.Div(final)

	out := make([]domain.ComparisonPoint, len(points))
	for i, p := range points {
		out[i] = domain.ComparisonPoint{
			Date:           p.Date,
			PortfolioValue: p.PortfolioValue.Mul(factor),
			BenchmarkValue: p.BenchmarkValue,
		}
	}
	return out
}
