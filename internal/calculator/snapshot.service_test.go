package calculator

import (
	"testing"

	"perfhistory/internal/domain"
	"perfhistory/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ComputeDay(t *testing.T) {
	portfolioID := uuid.New()

	t.Run("first day return is zero", func(t *testing.T) {
		state := domain.NewPositionState()
		state.Cash = decimal.NewFromInt(10000)

		snapshot, err := ComputeDay(ComputeDayInput{
			PortfolioID:   portfolioID,
			Date:          util.NewDate(2025, 1, 2),
			Prev:          nil,
			Positions:     state,
			Prices:        map[string]decimal.Decimal{},
			CashFlowToday: decimal.NewFromInt(10000),
		})
		require.NoError(t, err)

		require.Equal(t, "10000", snapshot.TotalEquity.String())
		require.Equal(t, "10000", snapshot.CashBalance.String())
		require.Equal(t, "10000", snapshot.NetCashFlow.String())
		require.True(t, snapshot.DailyReturnPct.IsZero())
	})

	t.Run("appreciation with no flow", func(t *testing.T) {
		state := domain.NewPositionState()
		state.Positions["AAPL"] = &domain.Position{
			Symbol:    "AAPL",
			Quantity:  decimal.NewFromInt(100),
			CostBasis: decimal.NewFromInt(10000),
		}

		prev := domain.DailySnapshot{
			TotalEquity: decimal.NewFromInt(10000),
		}
		snapshot, err := ComputeDay(ComputeDayInput{
			PortfolioID: portfolioID,
			Date:        util.NewDate(2025, 1, 3),
			Prev:        &prev,
			Positions:   state,
			Prices: map[string]decimal.Decimal{
				"AAPL": decimal.NewFromInt(110),
			},
			CashFlowToday: decimal.Zero,
		})
		require.NoError(t, err)

		require.Equal(t, "11000", snapshot.TotalEquity.String())
		require.Equal(t, "0.1", snapshot.DailyReturnPct.String())
	})

	t.Run("deposit mid-series does not inflate the return", func(t *testing.T) {
		// start 11000, deposit 5000, end 16500. the gain is 500 measured
		// against a 16000 base, not 5500 against 11000
		state := domain.NewPositionState()
		state.Cash = decimal.NewFromInt(5000)
		state.Positions["AAPL"] = &domain.Position{
			Symbol:    "AAPL",
			Quantity:  decimal.NewFromInt(100),
			CostBasis: decimal.NewFromInt(10000),
		}

		prev := domain.DailySnapshot{
			TotalEquity: decimal.NewFromInt(11000),
		}
		snapshot, err := ComputeDay(ComputeDayInput{
			PortfolioID: portfolioID,
			Date:        util.NewDate(2025, 1, 6),
			Prev:        &prev,
			Positions:   state,
			Prices: map[string]decimal.Decimal{
				"AAPL": decimal.NewFromInt(115),
			},
			CashFlowToday: decimal.NewFromInt(5000),
		})
		require.NoError(t, err)

		require.Equal(t, "16500", snapshot.TotalEquity.String())
		require.Equal(t, "5000", snapshot.NetCashFlow.String())
		require.Equal(t, "0.03125", snapshot.DailyReturnPct.String())
	})

	t.Run("withdrawal flow is negative", func(t *testing.T) {
		state := domain.NewPositionState()
		state.Cash = decimal.NewFromInt(8000)

		prev := domain.DailySnapshot{
			TotalEquity: decimal.NewFromInt(10000),
		}
		snapshot, err := ComputeDay(ComputeDayInput{
			PortfolioID:   portfolioID,
			Date:          util.NewDate(2025, 1, 7),
			Prev:          &prev,
			Positions:     state,
			Prices:        map[string]decimal.Decimal{},
			CashFlowToday: decimal.NewFromInt(-2000),
		})
		require.NoError(t, err)

		// (8000 - 10000 - (-2000)) / (10000 - 2000) = 0
		require.True(t, snapshot.DailyReturnPct.IsZero())
	})

	t.Run("zero denominator yields exactly zero", func(t *testing.T) {
		state := domain.NewPositionState()

		prev := domain.DailySnapshot{
			TotalEquity: decimal.NewFromInt(1000),
		}
		snapshot, err := ComputeDay(ComputeDayInput{
			PortfolioID:   portfolioID,
			Date:          util.NewDate(2025, 1, 8),
			Prev:          &prev,
			Positions:     state,
			Prices:        map[string]decimal.Decimal{},
			CashFlowToday: decimal.NewFromInt(-1000),
		})
		require.NoError(t, err)

		require.True(t, snapshot.TotalEquity.IsZero())
		require.True(t, snapshot.DailyReturnPct.IsZero())
	})

	t.Run("return is rounded to six places", func(t *testing.T) {
		state := domain.NewPositionState()
		state.Cash = decimal.NewFromInt(10001)

		prev := domain.DailySnapshot{
			TotalEquity: decimal.NewFromInt(10000),
		}
		snapshot, err := ComputeDay(ComputeDayInput{
			PortfolioID:   portfolioID,
			Date:          util.NewDate(2025, 1, 9),
			Prev:          &prev,
			Positions:     state,
			Prices:        map[string]decimal.Decimal{},
			CashFlowToday: decimal.Zero,
		})
		require.NoError(t, err)

		// 1/10000 exactly
		require.Equal(t, "0.0001", snapshot.DailyReturnPct.String())
		require.LessOrEqual(t, int(-snapshot.DailyReturnPct.Exponent()), 6)
	})

	t.Run("missing price fails the day", func(t *testing.T) {
		state := domain.NewPositionState()
		state.Positions["MSFT"] = &domain.Position{
			Symbol:   "MSFT",
			Quantity: decimal.NewFromInt(10),
		}

		_, err := ComputeDay(ComputeDayInput{
			PortfolioID:   portfolioID,
			Date:          util.NewDate(2025, 1, 10),
			Positions:     state,
			Prices:        map[string]decimal.Decimal{},
			CashFlowToday: decimal.Zero,
		})
		require.ErrorContains(t, err, "MSFT")
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		state := domain.NewPositionState()
		state.Cash = decimal.NewFromFloat(123.45)
		state.Positions["SPY"] = &domain.Position{
			Symbol:    "SPY",
			Quantity:  decimal.NewFromFloat(3.5),
			CostBasis: decimal.NewFromInt(1500),
		}

		prev := domain.DailySnapshot{
			TotalEquity: decimal.NewFromFloat(1700.12),
		}
		in := ComputeDayInput{
			PortfolioID: portfolioID,
			Date:        util.NewDate(2025, 1, 13),
			Prev:        &prev,
			Positions:   state,
			Prices: map[string]decimal.Decimal{
				"SPY": decimal.NewFromFloat(450.33),
			},
			CashFlowToday: decimal.NewFromInt(50),
		}

		first, err := ComputeDay(in)
		require.NoError(t, err)
		second, err := ComputeDay(in)
		require.NoError(t, err)

		require.True(t, first.TotalEquity.Equal(second.TotalEquity))
		require.True(t, first.DailyReturnPct.Equal(second.DailyReturnPct))
	})
}
