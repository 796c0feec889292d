package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"perfhistory/internal/calculator"
	"perfhistory/internal/domain"
	"perfhistory/internal/logger"
	"perfhistory/internal/repository"
	"perfhistory/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReplayService recomputes a portfolio's daily snapshot history from an
// effective date through today. An edit to ledger history invalidates every
// snapshot from that date forward, so the whole trailing range is deleted
// and rebuilt.
type ReplayService interface {
	ReplayFrom(ctx context.Context, portfolioID uuid.UUID, effectiveDate time.Time) error
}

type replayState struct {
	running bool
	// earliest effective date requested while a pass was already running;
	// the active pass re-runs from here before releasing the portfolio
	pending *time.Time
}

type replayServiceHandler struct {
	Db                    *sql.DB
	SnapshotRepository    repository.SnapshotRepository
	TransactionRepository repository.TransactionRepository
	BenchmarkDataService  BenchmarkDataService

	mu     sync.Mutex
	states map[uuid.UUID]*replayState
}

func NewReplayService(
	db *sql.DB,
	snapshotRepository repository.SnapshotRepository,
	transactionRepository repository.TransactionRepository,
	benchmarkDataService BenchmarkDataService,
) ReplayService {
	return &replayServiceHandler{
		Db:                    db,
		SnapshotRepository:    snapshotRepository,
		TransactionRepository: transactionRepository,
		BenchmarkDataService:  benchmarkDataService,
		states:                map[uuid.UUID]*replayState{},
	}
}

// ReplayFrom enforces single-writer-per-portfolio. A request arriving while
// a pass is running does not stack a second writer: it records the earliest
// requested date and returns; the running pass picks it up before releasing
// the portfolio.
func (h *replayServiceHandler) ReplayFrom(ctx context.Context, portfolioID uuid.UUID, effectiveDate time.Time) error {
	effectiveDate = util.Midnight(effectiveDate)

	h.mu.Lock()
	st, ok := h.states[portfolioID]
	if !ok {
		st = &replayState{}
		h.states[portfolioID] = st
	}
	if st.running {
		if st.pending == nil || effectiveDate.Before(*st.pending) {
			st.pending = &effectiveDate
		}
		h.mu.Unlock()
		logger.FromContext(ctx).Infof("replay already running for %s - coalesced request from %s", portfolioID, effectiveDate.Format(time.DateOnly))
		return nil
	}
	st.running = true
	h.mu.Unlock()

	runDate := effectiveDate
	for {
		err := h.replayOnce(ctx, portfolioID, runDate)

		h.mu.Lock()
		if st.pending != nil {
			runDate = *st.pending
			st.pending = nil
			h.mu.Unlock()
			if err != nil {
				logger.FromContext(ctx).Errorf("replay pass for %s failed before coalesced re-run: %v", portfolioID, err)
			}
			continue
		}
		st.running = false
		h.mu.Unlock()
		return err
	}
}

func (h *replayServiceHandler) replayOnce(ctx context.Context, portfolioID uuid.UUID, effectiveDate time.Time) error {
	log := logger.FromContext(ctx)
	today := util.Midnight(time.Now().UTC())
	if effectiveDate.After(today) {
		return nil
	}

	dayBefore := effectiveDate.AddDate(0, 0, -1)
	priorTxns, err := h.TransactionRepository.List(portfolioID, repository.TransactionListFilter{
		End: &dayBefore,
	})
	if err != nil {
		return fmt.Errorf("failed to list prior transactions for %s: %w", portfolioID, err)
	}

	state := domain.NewPositionState()
	for _, txn := range priorTxns {
		if err := state.Apply(txn); err != nil {
			return fmt.Errorf("failed to reconstruct positions for %s: %w", portfolioID, err)
		}
	}

	rangeTxns, err := h.TransactionRepository.List(portfolioID, repository.TransactionListFilter{
		Start: &effectiveDate,
		End:   &today,
	})
	if err != nil {
		return fmt.Errorf("failed to list transactions for %s: %w", portfolioID, err)
	}

	prices, err := h.loadPrices(ctx, state, rangeTxns, effectiveDate, today)
	if err != nil {
		return err
	}

	prevModel, err := h.SnapshotRepository.GetLatestBefore(portfolioID, effectiveDate)
	if err != nil {
		return err
	}
	var prev *domain.DailySnapshot
	if prevModel != nil {
		p := SnapshotToDomain(*prevModel)
		prev = &p
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin replay tx: %w", err)
	}
	defer tx.Rollback()

	err = h.SnapshotRepository.DeleteFrom(tx, portfolioID, effectiveDate)
	if err != nil {
		return err
	}

	// days are a strict ascending fold: each day's return is measured
	// against the previous day's freshly computed snapshot
	txnIdx := 0
	for _, day := range util.BusinessDaysBetween(effectiveDate, today) {
		netCashFlow := decimal.Zero
		for txnIdx < len(rangeTxns) && util.DateLte(rangeTxns[txnIdx].Date, day) {
			txn := rangeTxns[txnIdx]
			if err := state.Apply(txn); err != nil {
				return fmt.Errorf("replay of %s halted on %s: %w", portfolioID, day.Format(time.DateOnly), err)
			}
			if txn.IsExternalFlow() && txn.Amount != nil {
				if txn.Type == domain.TransactionType_Deposit {
					netCashFlow = netCashFlow.Add(*txn.Amount)
				} else {
					netCashFlow = netCashFlow.Sub(*txn.Amount)
				}
			}
			txnIdx++
		}

		priceMap, err := prices.forDay(ctx, day, state.HeldSymbols())
		if err != nil {
			return fmt.Errorf("replay of %s aborted on %s: %w", portfolioID, day.Format(time.DateOnly), err)
		}

		snapshot, err := calculator.ComputeDay(calculator.ComputeDayInput{
			PortfolioID:   portfolioID,
			Date:          day,
			Prev:          prev,
			Positions:     state,
			Prices:        priceMap,
			CashFlowToday: netCashFlow,
		})
		if err != nil {
			return fmt.Errorf("failed to compute snapshot for %s on %s: %w", portfolioID, day.Format(time.DateOnly), err)
		}

		_, err = h.SnapshotRepository.Add(tx, snapshotToModel(snapshot))
		if err != nil {
			return err
		}
		prev = &snapshot
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replay for %s: %w", portfolioID, err)
	}

	log.Infof("replayed %s from %s through %s", portfolioID, effectiveDate.Format(time.DateOnly), today.Format(time.DateOnly))
	return nil
}

// replayPriceCache resolves closing prices during a replay pass. An exact
// day hit refreshes the per-symbol stale price; a miss falls back to the
// most recent known close instead of failing the whole pass.
type replayPriceCache struct {
	bySymbolDay map[string]map[string]decimal.Decimal
	lastKnown   map[string]decimal.Decimal
}

func (c *replayPriceCache) forDay(ctx context.Context, day time.Time, symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		if price, ok := c.bySymbolDay[symbol][day.Format(time.DateOnly)]; ok {
			c.lastKnown[symbol] = price
			out[symbol] = price
			continue
		}
		stale, ok := c.lastKnown[symbol]
		if !ok {
			return nil, fmt.Errorf("no close for %s on or before %s: %w", symbol, day.Format(time.DateOnly), domain.ErrDataUnavailable)
		}
		logger.FromContext(ctx).Warnf("no close for %s on %s - using stale price", symbol, day.Format(time.DateOnly))
		out[symbol] = stale
	}
	return out, nil
}

// loadPrices warms a price cache for every symbol the replay can touch.
// Fetches start a lookback window early so the first replay day has a stale
// price to fall back on. A single symbol failing to resolve entirely is
// tolerated here; the day loop aborts only if that symbol is actually held
// on a day with no usable price.
func (h *replayServiceHandler) loadPrices(
	ctx context.Context,
	state *domain.PositionState,
	rangeTxns []domain.Transaction,
	effectiveDate, today time.Time,
) (*replayPriceCache, error) {
	symbolSet := map[string]bool{}
	for _, symbol := range state.HeldSymbols() {
		symbolSet[symbol] = true
	}
	for _, txn := range rangeTxns {
		if txn.Ticker != nil {
			symbolSet[*txn.Ticker] = true
		}
	}

	cache := &replayPriceCache{
		bySymbolDay: map[string]map[string]decimal.Decimal{},
		lastKnown:   map[string]decimal.Decimal{},
	}
	failures := 0
	for symbol := range symbolSet {
		prices, err := h.BenchmarkDataService.GetPricesForRangeWithAutoBackfill(
			ctx, symbol, effectiveDate.AddDate(0, 0, -BenchmarkLookbackDays), today)
		if err != nil {
			logger.FromContext(ctx).Warnf("failed to load prices for %s: %v", symbol, err)
			failures++
			continue
		}
		cache.bySymbolDay[symbol] = map[string]decimal.Decimal{}
		for _, p := range prices {
			cache.bySymbolDay[symbol][p.Date.Format(time.DateOnly)] = p.Price
			if p.Date.Before(effectiveDate) {
				cache.lastKnown[symbol] = p.Price
			}
		}
	}

	if len(symbolSet) > 0 && failures == len(symbolSet) {
		return nil, fmt.Errorf("price data outage: all %d symbol fetches failed: %w", failures, domain.ErrDataUnavailable)
	}

	return cache, nil
}
