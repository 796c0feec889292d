package calculator

import (
	"math"
	"sort"

	"perfhistory/internal/domain"

	"github.com/montanaflynn/stats"
)

type CalculateMetricsResult struct {
	AnnualizedReturn float64 `json:"annualizedReturn"`
	AnnualizedStdev  float64 `json:"annualizedStdev"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
}

// CalculateMetrics derives summary statistics from a portfolio's persisted
// daily returns. It assumes snapshots are dense daily rows; fewer than two
// is a legitimate "not enough data" outcome, returned as nil.
func CalculateMetrics(snapshots []domain.DailySnapshot) (*CalculateMetricsResult, error) {
	if len(snapshots) < 2 {
		return nil, nil
	}

	// sort a copy; the caller's slice is left untouched
	snapshots = append([]domain.DailySnapshot(nil), snapshots...)
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Date.Before(snapshots[j].Date)
	})

	returns := make([]float64, 0, len(snapshots))
	for _, s := range snapshots {
		returns = append(returns, s.DailyReturnPct.InexactFloat64())
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, err
	}
	annualizedStdev := stdev * math.Sqrt(252)

	cumulative := 1.0
	peak := 1.0
	maxDrawdown := 0.0
	for _, r := range returns {
		cumulative *= 1 + r
		if cumulative > peak {
			peak = cumulative
		}
		drawdown := (peak - cumulative) / peak
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	numYears := float64(len(returns)) / 252
	annualizedReturn := math.Pow(cumulative, 1/numYears) - 1

	sharpeRatio := 0.0
	if annualizedStdev != 0 {
		sharpeRatio = annualizedReturn / annualizedStdev
	}

	return &CalculateMetricsResult{
		AnnualizedReturn: annualizedReturn,
		AnnualizedStdev:  annualizedStdev,
		SharpeRatio:      sharpeRatio,
		MaxDrawdown:      maxDrawdown,
	}, nil
}
