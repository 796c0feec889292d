package service

import (
	"context"
	"fmt"
	"time"

	"perfhistory/internal/db/models/postgres/public/model"
	"perfhistory/internal/domain"
	"perfhistory/internal/logger"
	"perfhistory/internal/repository"

	"github.com/shopspring/decimal"
)

// BenchmarkLookbackDays bounds how far back an exact-date miss may walk
// before giving up. 7 calendar days always spans a weekend plus a holiday
// cluster; anything older is treated as missing, not stale.
const BenchmarkLookbackDays = 7

type BenchmarkDataService interface {
	// GetPriceAtDate resolves the close for a date, walking backward up to
	// BenchmarkLookbackDays. Returns nil (no error) when nothing is inside
	// the window.
	GetPriceAtDate(symbol string, date time.Time) (*domain.BenchmarkPrice, error)
	GetPricesForRange(symbol string, start, end time.Time) ([]domain.BenchmarkPrice, error)
	// GetPricesForRangeWithAutoBackfill is cache-aside: on an empty or
	// partial store result it calls the provider once, re-queries once, and
	// fails with domain.ErrDataUnavailable if the store is still empty.
	GetPricesForRangeWithAutoBackfill(ctx context.Context, symbol string, start, end time.Time) ([]domain.BenchmarkPrice, error)
	// CalculateBenchmarkReturn is the simple return (end-start)/start over
	// the range. Nil (not an error) when fewer than two points exist.
	CalculateBenchmarkReturn(ctx context.Context, symbol string, start, end time.Time) (*decimal.Decimal, error)
}

type benchmarkDataServiceHandler struct {
	BenchmarkPriceRepository repository.BenchmarkPriceRepository
	MarketDataService        MarketDataService
}

func NewBenchmarkDataService(
	benchmarkPriceRepository repository.BenchmarkPriceRepository,
	marketDataService MarketDataService,
) BenchmarkDataService {
	return benchmarkDataServiceHandler{
		BenchmarkPriceRepository: benchmarkPriceRepository,
		MarketDataService:        marketDataService,
	}
}

func (h benchmarkDataServiceHandler) GetPriceAtDate(symbol string, date time.Time) (*domain.BenchmarkPrice, error) {
	price, err := h.BenchmarkPriceRepository.GetWithLookback(symbol, date, BenchmarkLookbackDays)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, nil
	}
	out := priceToDomain(*price)
	return &out, nil
}

func (h benchmarkDataServiceHandler) GetPricesForRange(symbol string, start, end time.Time) ([]domain.BenchmarkPrice, error) {
	prices, err := h.BenchmarkPriceRepository.List(symbol, start, end)
	if err != nil {
		return nil, err
	}
	return pricesToDomain(prices), nil
}

func (h benchmarkDataServiceHandler) GetPricesForRangeWithAutoBackfill(ctx context.Context, symbol string, start, end time.Time) ([]domain.BenchmarkPrice, error) {
	prices, err := h.BenchmarkPriceRepository.List(symbol, start, end)
	if err != nil {
		return nil, err
	}
	if coversRange(prices, start, end) {
		return pricesToDomain(prices), nil
	}

	logger.FromContext(ctx).Infof("benchmark cache miss for %s %s..%s - backfilling", symbol, start.Format(time.DateOnly), end.Format(time.DateOnly))

	_, err = h.MarketDataService.FetchAndStore(ctx, symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to backfill benchmark prices for %s: %w", symbol, err)
	}

	// single re-query, no retry loop - failure modes stay bounded
	prices, err = h.BenchmarkPriceRepository.List(symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("no benchmark prices for %s between %s and %s after backfill: %w",
			symbol, start.Format(time.DateOnly), end.Format(time.DateOnly), domain.ErrDataUnavailable)
	}

	return pricesToDomain(prices), nil
}

func (h benchmarkDataServiceHandler) CalculateBenchmarkReturn(ctx context.Context, symbol string, start, end time.Time) (*decimal.Decimal, error) {
	prices, err := h.GetPricesForRangeWithAutoBackfill(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(prices) < 2 {
		return nil, nil
	}

	startPrice := prices[0].Price
	endPrice := prices[len(prices)-1].Price
	if startPrice.IsZero() {
		return nil, nil
	}

	ret := endPrice.Sub(startPrice).Div(startPrice)
	return &ret, nil
}

// coversRange reports whether stored prices plausibly cover the requested
// range: non-empty, and neither end is more than the lookback window away
// from the first/last stored point.
func coversRange(prices []model.BenchmarkPrice, start, end time.Time) bool {
	if len(prices) == 0 {
		return false
	}
	first := prices[0].Date
	last := prices[len(prices)-1].Date
	if first.After(start.AddDate(0, 0, BenchmarkLookbackDays)) {
		return false
	}
	if last.Before(end.AddDate(0, 0, -BenchmarkLookbackDays)) {
		return false
	}
	return true
}

func priceToDomain(p model.BenchmarkPrice) domain.BenchmarkPrice {
	return domain.BenchmarkPrice{
		Symbol: p.Symbol,
		Date:   p.Date,
		Price:  p.Price,
	}
}

func pricesToDomain(prices []model.BenchmarkPrice) []domain.BenchmarkPrice {
	out := []domain.BenchmarkPrice{}
	for _, p := range prices {
		out = append(out, priceToDomain(p))
	}
	return out
}
