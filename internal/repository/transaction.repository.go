package repository

import (
	"database/sql"
	"fmt"
	"time"

	"perfhistory/internal/db/models/postgres/public/model"
	"perfhistory/internal/db/models/postgres/public/table"
	"perfhistory/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// TransactionRepository is the read side of the external ledger. This
// service never writes transactions; it replays them.
type TransactionRepository interface {
	List(portfolioID uuid.UUID, filter TransactionListFilter) ([]domain.Transaction, error)
}

type TransactionListFilter struct {
	Start *time.Time
	End   *time.Time
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) List(portfolioID uuid.UUID, filter TransactionListFilter) ([]domain.Transaction, error) {
	whereClauses := []postgres.BoolExpression{
		table.PortfolioTransaction.PortfolioID.EQ(postgres.UUID(portfolioID)),
	}
	if filter.Start != nil {
		whereClauses = append(whereClauses,
			table.PortfolioTransaction.Date.GT_EQ(postgres.DateT(*filter.Start)),
		)
	}
	if filter.End != nil {
		whereClauses = append(whereClauses,
			table.PortfolioTransaction.Date.LT_EQ(postgres.DateT(*filter.End)),
		)
	}

	query := table.PortfolioTransaction.
		SELECT(table.PortfolioTransaction.AllColumns).
		WHERE(postgres.AND(whereClauses...)).
		ORDER_BY(
			table.PortfolioTransaction.Date.ASC(),
			table.PortfolioTransaction.CreatedAt.ASC(),
		)

	result := []model.PortfolioTransaction{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s: %w", portfolioID, err)
	}

	out := []domain.Transaction{}
	for _, t := range result {
		out = append(out, domain.Transaction{
			TransactionID: t.PortfolioTransactionID,
			PortfolioID:   t.PortfolioID,
			Type:          domain.TransactionType(t.Type),
			Ticker:        t.Ticker,
			Quantity:      t.Quantity,
			Price:         t.Price,
			Amount:        t.Amount,
			Date:          t.Date,
		})
	}

	return out, nil
}
