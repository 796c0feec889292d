package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"perfhistory/internal/db/models/postgres/public/model"
	. "perfhistory/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type BenchmarkPriceRepository interface {
	// Add writes price points idempotently; a (symbol, date) that already
	// exists is left untouched.
	Add(tx *sql.Tx, prices []model.BenchmarkPrice) error
	Get(symbol string, date time.Time) (*model.BenchmarkPrice, error)
	// GetWithLookback walks backward up to lookbackDays calendar days from
	// date and returns the closest price found, or nil.
	GetWithLookback(symbol string, date time.Time, lookbackDays int) (*model.BenchmarkPrice, error)
	List(symbol string, start, end time.Time) ([]model.BenchmarkPrice, error)
	LatestDate(symbol string) (*time.Time, error)
}

type benchmarkPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewBenchmarkPriceRepository(db *sql.DB) BenchmarkPriceRepository {
	return benchmarkPriceRepositoryHandler{Db: db}
}

func (h benchmarkPriceRepositoryHandler) Add(tx *sql.Tx, prices []model.BenchmarkPrice) error {
	if len(prices) == 0 {
		return nil
	}
	query := BenchmarkPrice.
		INSERT(BenchmarkPrice.AllColumns).
		MODELS(prices).
		ON_CONFLICT(
			BenchmarkPrice.Symbol, BenchmarkPrice.Date,
		).DO_NOTHING()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add benchmark prices to db: %w", err)
	}

	return nil
}

func (h benchmarkPriceRepositoryHandler) Get(symbol string, date time.Time) (*model.BenchmarkPrice, error) {
	query := BenchmarkPrice.
		SELECT(BenchmarkPrice.AllColumns).
		WHERE(
			AND(
				BenchmarkPrice.Symbol.EQ(String(symbol)),
				BenchmarkPrice.Date.EQ(DateT(date)),
			),
		)

	result := model.BenchmarkPrice{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query price for %s on %v: %w", symbol, date, err)
	}

	return &result, nil
}

func (h benchmarkPriceRepositoryHandler) GetWithLookback(symbol string, date time.Time, lookbackDays int) (*model.BenchmarkPrice, error) {
	minDate := DateT(date.AddDate(0, 0, -lookbackDays))
	maxDate := DateT(date)
	// range query so weekends and holidays resolve to the prior close
	query := BenchmarkPrice.
		SELECT(BenchmarkPrice.AllColumns).
		WHERE(
			AND(
				BenchmarkPrice.Symbol.EQ(String(symbol)),
				BenchmarkPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(BenchmarkPrice.Date.DESC()).
		LIMIT(1)

	result := model.BenchmarkPrice{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query price for %s near %v: %w", symbol, date, err)
	}

	return &result, nil
}

func (h benchmarkPriceRepositoryHandler) List(symbol string, start, end time.Time) ([]model.BenchmarkPrice, error) {
	query := BenchmarkPrice.
		SELECT(BenchmarkPrice.AllColumns).
		WHERE(
			AND(
				BenchmarkPrice.Symbol.EQ(String(symbol)),
				BenchmarkPrice.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(BenchmarkPrice.Date.ASC())

	result := []model.BenchmarkPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	return result, nil
}

func (h benchmarkPriceRepositoryHandler) LatestDate(symbol string) (*time.Time, error) {
	query := BenchmarkPrice.
		SELECT(BenchmarkPrice.Date).
		WHERE(BenchmarkPrice.Symbol.EQ(String(symbol))).
		ORDER_BY(BenchmarkPrice.Date.DESC()).
		LIMIT(1)

	result := model.BenchmarkPrice{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price date for %s: %w", symbol, err)
	}

	return &result.Date, nil
}
