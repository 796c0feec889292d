package calculator

import (
	"time"

	"perfhistory/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// monetary fields are stored to the cent
	moneyPlaces = 2
	// daily returns keep extra precision so geometric linking over long
	// chains does not accumulate rounding error
	returnPlaces = 6
)

type ComputeDayInput struct {
	PortfolioID uuid.UUID
	Date        time.Time
	// Prev is the prior day's snapshot, or nil on the first day of a series.
	Prev          *domain.DailySnapshot
	Positions     *domain.PositionState
	Prices        map[string]decimal.Decimal
	CashFlowToday decimal.Decimal
}

// ComputeDay produces one daily snapshot from end-of-day position state.
// It is a pure function: no I/O, deterministic for identical inputs, which
// is what makes replay idempotent.
//
// The day's return is the time-weighted component
//
//	(end - start - flow) / (start + flow)
//
// so that deposits and withdrawals do not masquerade as performance. When
// start + flow is zero (first day, or fully liquidated to nothing) the
// return is 0 by convention - there is no baseline to measure against.
func ComputeDay(in ComputeDayInput) (domain.DailySnapshot, error) {
	invested, err := in.Positions.InvestedValue(in.Prices)
	if err != nil {
		return domain.DailySnapshot{}, err
	}

	cashBalance := in.Positions.Cash.Round(moneyPlaces)
	totalEquity := invested.Add(in.Positions.Cash).Round(moneyPlaces)
	netCashFlow := in.CashFlowToday.Round(moneyPlaces)

	startEquity := decimal.Zero
	if in.Prev != nil {
		startEquity = in.Prev.TotalEquity
	}

	dailyReturn := decimal.Zero
	denominator := startEquity.Add(netCashFlow)
	if !denominator.IsZero() {
		dailyReturn = totalEquity.
			Sub(startEquity).
			Sub(netCashFlow).
			Div(denominator).
			Round(returnPlaces)
	}

	return domain.DailySnapshot{
		PortfolioID:    in.PortfolioID,
		Date:           in.Date,
		TotalEquity:    totalEquity,
		CashBalance:    cashBalance,
		NetCashFlow:    netCashFlow,
		DailyReturnPct: dailyReturn,
	}, nil
}
