package service

import (
	"context"
	"testing"
	"time"

	"perfhistory/internal/domain"
	"perfhistory/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// stubBenchmarkDataService serves canned price series per symbol. Symbols
// listed in errSymbols fail every call. Same-package tests cannot use the
// generated mock, whose package imports this one.
type stubBenchmarkDataService struct {
	pricesBySymbol map[string][]domain.BenchmarkPrice
	errSymbols     map[string]error
}

func (s *stubBenchmarkDataService) GetPriceAtDate(symbol string, date time.Time) (*domain.BenchmarkPrice, error) {
	return nil, nil
}

func (s *stubBenchmarkDataService) GetPricesForRange(symbol string, start, end time.Time) ([]domain.BenchmarkPrice, error) {
	return s.pricesBySymbol[symbol], nil
}

func (s *stubBenchmarkDataService) GetPricesForRangeWithAutoBackfill(ctx context.Context, symbol string, start, end time.Time) ([]domain.BenchmarkPrice, error) {
	if err, ok := s.errSymbols[symbol]; ok {
		return nil, err
	}
	return s.pricesBySymbol[symbol], nil
}

func (s *stubBenchmarkDataService) CalculateBenchmarkReturn(ctx context.Context, symbol string, start, end time.Time) (*decimal.Decimal, error) {
	return nil, nil
}

func Test_replayPriceCache_forDay(t *testing.T) {
	ctx := context.Background()

	t.Run("exact hit refreshes the stale price", func(t *testing.T) {
		cache := &replayPriceCache{
			bySymbolDay: map[string]map[string]decimal.Decimal{
				"SPY": {
					"2025-01-02": decimal.NewFromInt(400),
					"2025-01-03": decimal.NewFromInt(404),
				},
			},
			lastKnown: map[string]decimal.Decimal{},
		}

		prices, err := cache.forDay(ctx, util.NewDate(2025, 1, 2), []string{"SPY"})
		require.NoError(t, err)
		require.Equal(t, "400", prices["SPY"].String())
		require.Equal(t, "400", cache.lastKnown["SPY"].String())

		prices, err = cache.forDay(ctx, util.NewDate(2025, 1, 3), []string{"SPY"})
		require.NoError(t, err)
		require.Equal(t, "404", cache.lastKnown["SPY"].String())
		require.Equal(t, "404", prices["SPY"].String())
	})

	t.Run("miss falls back to the most recent known close", func(t *testing.T) {
		cache := &replayPriceCache{
			bySymbolDay: map[string]map[string]decimal.Decimal{
				"SPY": {"2025-01-03": decimal.NewFromInt(404)},
			},
			lastKnown: map[string]decimal.Decimal{
				"SPY": decimal.NewFromInt(404),
			},
		}

		prices, err := cache.forDay(ctx, util.NewDate(2025, 1, 6), []string{"SPY"})
		require.NoError(t, err)
		require.Equal(t, "404", prices["SPY"].String())
	})

	t.Run("no usable price at all aborts the day", func(t *testing.T) {
		cache := &replayPriceCache{
			bySymbolDay: map[string]map[string]decimal.Decimal{},
			lastKnown:   map[string]decimal.Decimal{},
		}

		_, err := cache.forDay(ctx, util.NewDate(2025, 1, 6), []string{"SPY"})
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("no held symbols needs no prices", func(t *testing.T) {
		cache := &replayPriceCache{
			bySymbolDay: map[string]map[string]decimal.Decimal{},
			lastKnown:   map[string]decimal.Decimal{},
		}

		prices, err := cache.forDay(ctx, util.NewDate(2025, 1, 6), nil)
		require.NoError(t, err)
		require.Empty(t, prices)
	})
}

func Test_loadPrices(t *testing.T) {
	ctx := context.Background()
	effectiveDate := util.NewDate(2025, 1, 6)
	today := util.NewDate(2025, 1, 10)

	aapl := "AAPL"
	msft := "MSFT"

	t.Run("seeds stale prices from before the effective date", func(t *testing.T) {
		handler := &replayServiceHandler{
			BenchmarkDataService: &stubBenchmarkDataService{
				pricesBySymbol: map[string][]domain.BenchmarkPrice{
					"AAPL": {
						{Symbol: "AAPL", Date: util.NewDate(2025, 1, 3), Price: decimal.NewFromInt(150)},
						{Symbol: "AAPL", Date: util.NewDate(2025, 1, 6), Price: decimal.NewFromInt(152)},
					},
				},
			},
		}

		state := domain.NewPositionState()
		state.Positions["AAPL"] = &domain.Position{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
		}

		cache, err := handler.loadPrices(ctx, state, nil, effectiveDate, today)
		require.NoError(t, err)
		require.Equal(t, "150", cache.lastKnown["AAPL"].String())
		require.Equal(t, "152", cache.bySymbolDay["AAPL"]["2025-01-06"].String())
	})

	t.Run("symbols come from holdings and from range transactions", func(t *testing.T) {
		stub := &stubBenchmarkDataService{
			pricesBySymbol: map[string][]domain.BenchmarkPrice{
				"AAPL": {{Symbol: "AAPL", Date: effectiveDate, Price: decimal.NewFromInt(150)}},
				"MSFT": {{Symbol: "MSFT", Date: effectiveDate, Price: decimal.NewFromInt(300)}},
			},
		}
		handler := &replayServiceHandler{BenchmarkDataService: stub}

		state := domain.NewPositionState()
		state.Positions[aapl] = &domain.Position{
			Symbol:   aapl,
			Quantity: decimal.NewFromInt(10),
		}
		rangeTxns := []domain.Transaction{
			{Type: domain.TransactionType_Buy, Ticker: &msft},
		}

		cache, err := handler.loadPrices(ctx, state, rangeTxns, effectiveDate, today)
		require.NoError(t, err)
		require.Contains(t, cache.bySymbolDay, "AAPL")
		require.Contains(t, cache.bySymbolDay, "MSFT")
	})

	t.Run("one symbol failing is tolerated", func(t *testing.T) {
		stub := &stubBenchmarkDataService{
			pricesBySymbol: map[string][]domain.BenchmarkPrice{
				"AAPL": {{Symbol: "AAPL", Date: effectiveDate, Price: decimal.NewFromInt(150)}},
			},
			errSymbols: map[string]error{
				"MSFT": domain.ErrDataUnavailable,
			},
		}
		handler := &replayServiceHandler{BenchmarkDataService: stub}

		state := domain.NewPositionState()
		state.Positions[aapl] = &domain.Position{Symbol: aapl, Quantity: decimal.NewFromInt(1)}
		state.Positions[msft] = &domain.Position{Symbol: msft, Quantity: decimal.NewFromInt(1)}

		cache, err := handler.loadPrices(ctx, state, nil, effectiveDate, today)
		require.NoError(t, err)
		require.Contains(t, cache.bySymbolDay, "AAPL")
		require.NotContains(t, cache.bySymbolDay, "MSFT")
	})

	t.Run("every symbol failing is an outage", func(t *testing.T) {
		stub := &stubBenchmarkDataService{
			errSymbols: map[string]error{
				"AAPL": domain.ErrDataUnavailable,
				"MSFT": domain.ErrDataUnavailable,
			},
		}
		handler := &replayServiceHandler{BenchmarkDataService: stub}

		state := domain.NewPositionState()
		state.Positions[aapl] = &domain.Position{Symbol: aapl, Quantity: decimal.NewFromInt(1)}
		state.Positions[msft] = &domain.Position{Symbol: msft, Quantity: decimal.NewFromInt(1)}

		_, err := handler.loadPrices(ctx, state, nil, effectiveDate, today)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})
}

func Test_ReplayFrom(t *testing.T) {
	t.Run("future effective date is a no-op", func(t *testing.T) {
		handler := &replayServiceHandler{
			states: map[uuid.UUID]*replayState{},
		}

		tomorrow := util.Midnight(time.Now().UTC()).AddDate(0, 0, 1)
		err := handler.ReplayFrom(context.Background(), uuid.New(), tomorrow)
		require.NoError(t, err)
	})

	t.Run("request during a running pass coalesces to the earliest date", func(t *testing.T) {
		portfolioID := uuid.New()
		handler := &replayServiceHandler{
			states: map[uuid.UUID]*replayState{
				portfolioID: {running: true},
			},
		}

		err := handler.ReplayFrom(context.Background(), portfolioID, util.NewDate(2025, 1, 10))
		require.NoError(t, err)
		require.NotNil(t, handler.states[portfolioID].pending)
		require.Equal(t, util.NewDate(2025, 1, 10), *handler.states[portfolioID].pending)

		// an earlier date wins
		err = handler.ReplayFrom(context.Background(), portfolioID, util.NewDate(2025, 1, 6))
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2025, 1, 6), *handler.states[portfolioID].pending)

		// a later date does not move the pending marker forward
		err = handler.ReplayFrom(context.Background(), portfolioID, util.NewDate(2025, 1, 8))
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2025, 1, 6), *handler.states[portfolioID].pending)
	})
}
