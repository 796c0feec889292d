package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionType_Buy        TransactionType = "BUY"
	TransactionType_Sell       TransactionType = "SELL"
	TransactionType_Deposit    TransactionType = "DEPOSIT"
	TransactionType_Withdrawal TransactionType = "WITHDRAWAL"
)

// Transaction is one row from the external ledger. Ticker, Quantity and
// Price are set for trades; Amount is set for cash flows.
type Transaction struct {
	TransactionID uuid.UUID
	PortfolioID   uuid.UUID
	Type          TransactionType
	Ticker        *string
	Quantity      *decimal.Decimal
	Price         *decimal.Decimal
	Amount        *decimal.Decimal
	Date          time.Time
}

// IsExternalFlow reports whether the transaction moves money across the
// portfolio boundary. Trades shuffle value between cash and positions and
// are equity-neutral.
func (t Transaction) IsExternalFlow() bool {
	return t.Type == TransactionType_Deposit || t.Type == TransactionType_Withdrawal
}

// TransactionChangedEvent is emitted by the ledger whenever a transaction
// dated on or before today is created, edited or deleted. Every snapshot
// from EffectiveDate forward is stale once this fires.
type TransactionChangedEvent struct {
	PortfolioID   uuid.UUID
	EffectiveDate time.Time
}
