package repository

import (
	"database/sql"
	"fmt"
	"time"

	"perfhistory/internal/db/models/postgres/public/model"
	"perfhistory/internal/db/models/postgres/public/table"
)

// IngestionRunRepository records one audit row per scheduled ingestion run
// so the job's success/failure tally outlives its logs.
type IngestionRunRepository interface {
	Add(run model.IngestionRun) (*model.IngestionRun, error)
}

type ingestionRunRepositoryHandler struct {
	Db *sql.DB
}

func NewIngestionRunRepository(db *sql.DB) IngestionRunRepository {
	return ingestionRunRepositoryHandler{Db: db}
}

func (h ingestionRunRepositoryHandler) Add(run model.IngestionRun) (*model.IngestionRun, error) {
	run.CreatedAt = time.Now().UTC()
	query := table.IngestionRun.
		INSERT(table.IngestionRun.MutableColumns).
		MODEL(run).
		RETURNING(table.IngestionRun.AllColumns)

	out := model.IngestionRun{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ingestion run: %w", err)
	}

	return &out, nil
}
