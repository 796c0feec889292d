package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"perfhistory/internal/db/models/postgres/public/model"
	"perfhistory/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type SnapshotRepository interface {
	// Add upserts a snapshot on (portfolio_id, date). A replay rewriting a
	// day it already wrote lands on the same row.
	Add(tx *sql.Tx, snapshot model.PortfolioDailySnapshot) (*model.PortfolioDailySnapshot, error)
	Get(portfolioID uuid.UUID, date time.Time) (*model.PortfolioDailySnapshot, error)
	// GetLatestBefore returns the most recent snapshot strictly before date,
	// or nil if the portfolio has no prior history.
	GetLatestBefore(portfolioID uuid.UUID, date time.Time) (*model.PortfolioDailySnapshot, error)
	List(portfolioID uuid.UUID, start, end time.Time) ([]model.PortfolioDailySnapshot, error)
	// DeleteFrom removes every snapshot with date >= the given date.
	DeleteFrom(tx *sql.Tx, portfolioID uuid.UUID, date time.Time) error
}

type snapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return snapshotRepositoryHandler{Db: db}
}

func (h snapshotRepositoryHandler) Add(tx *sql.Tx, snapshot model.PortfolioDailySnapshot) (*model.PortfolioDailySnapshot, error) {
	snapshot.CreatedAt = time.Now().UTC()
	snapshot.ModifiedAt = time.Now().UTC()
	query := table.PortfolioDailySnapshot.
		INSERT(table.PortfolioDailySnapshot.MutableColumns).
		MODEL(snapshot).
		ON_CONFLICT(
			table.PortfolioDailySnapshot.PortfolioID, table.PortfolioDailySnapshot.Date,
		).DO_UPDATE(
		postgres.SET(
			table.PortfolioDailySnapshot.TotalEquity.SET(table.PortfolioDailySnapshot.EXCLUDED.TotalEquity),
			table.PortfolioDailySnapshot.CashBalance.SET(table.PortfolioDailySnapshot.EXCLUDED.CashBalance),
			table.PortfolioDailySnapshot.NetCashFlow.SET(table.PortfolioDailySnapshot.EXCLUDED.NetCashFlow),
			table.PortfolioDailySnapshot.DailyReturnPct.SET(table.PortfolioDailySnapshot.EXCLUDED.DailyReturnPct),
			table.PortfolioDailySnapshot.ModifiedAt.SET(table.PortfolioDailySnapshot.EXCLUDED.ModifiedAt),
		),
	).
		RETURNING(table.PortfolioDailySnapshot.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.PortfolioDailySnapshot{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert snapshot for %s on %v: %w", snapshot.PortfolioID, snapshot.Date, err)
	}

	return &out, nil
}

func (h snapshotRepositoryHandler) Get(portfolioID uuid.UUID, date time.Time) (*model.PortfolioDailySnapshot, error) {
	query := table.PortfolioDailySnapshot.
		SELECT(table.PortfolioDailySnapshot.AllColumns).
		WHERE(postgres.AND(
			table.PortfolioDailySnapshot.PortfolioID.EQ(postgres.UUID(portfolioID)),
			table.PortfolioDailySnapshot.Date.EQ(postgres.DateT(date)),
		))

	result := model.PortfolioDailySnapshot{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot for %s on %v: %w", portfolioID, date, err)
	}

	return &result, nil
}

func (h snapshotRepositoryHandler) GetLatestBefore(portfolioID uuid.UUID, date time.Time) (*model.PortfolioDailySnapshot, error) {
	query := table.PortfolioDailySnapshot.
		SELECT(table.PortfolioDailySnapshot.AllColumns).
		WHERE(postgres.AND(
			table.PortfolioDailySnapshot.PortfolioID.EQ(postgres.UUID(portfolioID)),
			table.PortfolioDailySnapshot.Date.LT(postgres.DateT(date)),
		)).
		ORDER_BY(table.PortfolioDailySnapshot.Date.DESC()).
		LIMIT(1)

	result := model.PortfolioDailySnapshot{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot before %v for %s: %w", date, portfolioID, err)
	}

	return &result, nil
}

func (h snapshotRepositoryHandler) List(portfolioID uuid.UUID, start, end time.Time) ([]model.PortfolioDailySnapshot, error) {
	query := table.PortfolioDailySnapshot.
		SELECT(table.PortfolioDailySnapshot.AllColumns).
		WHERE(postgres.AND(
			table.PortfolioDailySnapshot.PortfolioID.EQ(postgres.UUID(portfolioID)),
			table.PortfolioDailySnapshot.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
		)).
		ORDER_BY(table.PortfolioDailySnapshot.Date.ASC())

	result := []model.PortfolioDailySnapshot{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots for %s: %w", portfolioID, err)
	}

	return result, nil
}

func (h snapshotRepositoryHandler) DeleteFrom(tx *sql.Tx, portfolioID uuid.UUID, date time.Time) error {
	query := table.PortfolioDailySnapshot.
		DELETE().
		WHERE(postgres.AND(
			table.PortfolioDailySnapshot.PortfolioID.EQ(postgres.UUID(portfolioID)),
			table.PortfolioDailySnapshot.Date.GT_EQ(postgres.DateT(date)),
		))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete snapshots for %s from %v: %w", portfolioID, date, err)
	}

	return nil
}
