package service

import (
	"context"
	"time"

	"perfhistory/internal/db/models/postgres/public/model"
	"perfhistory/internal/domain"
	"perfhistory/internal/repository"
	"perfhistory/pkg/marketdata"
)

type FetchAndStoreResult struct {
	Inserted int
	Failed   int
}

// MarketDataService is the fetch-and-store face of the upstream price
// vendor: it pulls daily closes and writes them through to the benchmark
// price store idempotently.
type MarketDataService interface {
	FetchAndStore(ctx context.Context, symbol string, start, end time.Time) (*FetchAndStoreResult, error)
}

type marketDataServiceHandler struct {
	Client                   marketdata.Client
	BenchmarkPriceRepository repository.BenchmarkPriceRepository
}

func NewMarketDataService(client marketdata.Client, benchmarkPriceRepository repository.BenchmarkPriceRepository) MarketDataService {
	return marketDataServiceHandler{
		Client:                   client,
		BenchmarkPriceRepository: benchmarkPriceRepository,
	}
}

func (h marketDataServiceHandler) FetchAndStore(ctx context.Context, symbol string, start, end time.Time) (*FetchAndStoreResult, error) {
	points, err := h.Client.GetDailyCloses(ctx, symbol, start, end)
	if err != nil {
		return nil, domain.UpstreamProviderError{
			Provider: h.Client.Name(),
			Symbol:   symbol,
			Err:      err,
		}
	}

	models := make([]model.BenchmarkPrice, 0, len(points))
	for _, p := range points {
		models = append(models, model.BenchmarkPrice{
			Symbol:    p.Symbol,
			Date:      p.Date,
			Price:     p.Close,
			CreatedAt: time.Now().UTC(),
		})
	}

	err = h.BenchmarkPriceRepository.Add(nil, models)
	if err != nil {
		return nil, err
	}

	return &FetchAndStoreResult{Inserted: len(models)}, nil
}
