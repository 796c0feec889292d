package service

import (
	"context"
	"fmt"
	"time"

	"perfhistory/internal/db/models/postgres/public/model"
	"perfhistory/internal/logger"
	"perfhistory/internal/repository"
	"perfhistory/internal/util"

	"go.uber.org/zap"
)

// DefaultBenchmarkSymbols is used when no ticker list is configured.
var DefaultBenchmarkSymbols = []string{"SPY", "QQQ", "VTI", "AGG"}

type IngestionSummary struct {
	ForDate   time.Time
	Succeeded int
	Failed    int
}

// IngestionService keeps the benchmark price store warm. The scheduled path
// pulls the previous trading day's closes; the explicit-date path exists to
// re-cover a missed day.
type IngestionService interface {
	RunDailyFetch(ctx context.Context) (*IngestionSummary, error)
	RunFetchForDate(ctx context.Context, date time.Time) (*IngestionSummary, error)
}

type ingestionServiceHandler struct {
	MarketDataService      MarketDataService
	IngestionRunRepository repository.IngestionRunRepository
	EmailRepository        repository.EmailRepository
	Symbols                []string
	AlertEmail             string
}

func NewIngestionService(
	marketDataService MarketDataService,
	ingestionRunRepository repository.IngestionRunRepository,
	emailRepository repository.EmailRepository,
	symbols []string,
	alertEmail string,
) IngestionService {
	if len(symbols) == 0 {
		symbols = DefaultBenchmarkSymbols
	}
	return ingestionServiceHandler{
		MarketDataService:      marketDataService,
		IngestionRunRepository: ingestionRunRepository,
		EmailRepository:        emailRepository,
		Symbols:                symbols,
		AlertEmail:             alertEmail,
	}
}

func (h ingestionServiceHandler) RunDailyFetch(ctx context.Context) (*IngestionSummary, error) {
	yesterday := util.PreviousBusinessDay(time.Now().UTC())
	return h.RunFetchForDate(ctx, yesterday)
}

func (h ingestionServiceHandler) RunFetchForDate(ctx context.Context, date time.Time) (*IngestionSummary, error) {
	log := logger.FromContext(ctx)
	date = util.Midnight(date)

	summary := &IngestionSummary{ForDate: date}
	errs := []error{}

	// one symbol failing must not starve the rest of the list
	for _, symbol := range h.Symbols {
		// fetch a trailing week so weekend and holiday gaps self-heal;
		// inserts are idempotent so the overlap is free
		_, err := h.MarketDataService.FetchAndStore(ctx, symbol, date.AddDate(0, 0, -7), date)
		if err != nil {
			err = fmt.Errorf("failed to ingest benchmark prices for %s: %w", symbol, err)
			log.Error(err)
			errs = append(errs, err)
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	log.Infof("benchmark ingestion for %s complete: %d succeeded, %d failed",
		date.Format(time.DateOnly), summary.Succeeded, summary.Failed)

	if h.IngestionRunRepository != nil {
		_, err := h.IngestionRunRepository.Add(model.IngestionRun{
			ForDate:   date,
			Succeeded: int32(summary.Succeeded),
			Failed:    int32(summary.Failed),
		})
		if err != nil {
			log.Errorf("failed to record ingestion run: %v", err)
		}
	}

	if summary.Failed > 0 {
		h.sendAlert(log, summary, errs)
		return summary, fmt.Errorf("benchmark ingestion finished with %d/%d failures. first err: %w",
			summary.Failed, len(h.Symbols), errs[0])
	}

	return summary, nil
}

func (h ingestionServiceHandler) sendAlert(log *zap.SugaredLogger, summary *IngestionSummary, errs []error) {
	if h.EmailRepository == nil || h.AlertEmail == "" {
		return
	}
	body := fmt.Sprintf(
		"<p>Benchmark ingestion for %s: %d succeeded, %d failed.</p><p>First error: %v</p>",
		summary.ForDate.Format(time.DateOnly), summary.Succeeded, summary.Failed, errs[0],
	)
	err := h.EmailRepository.SendEmail(h.AlertEmail, "Benchmark ingestion failures", body)
	if err != nil {
		log.Errorf("failed to send ingestion alert email: %v", err)
	}
}
