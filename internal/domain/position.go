package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

type Position struct {
	Symbol    string
	Quantity  decimal.Decimal
	CostBasis decimal.Decimal
}

func (p Position) DeepCopy() *Position {
	return &Position{
		Symbol:    p.Symbol,
		Quantity:  p.Quantity,
		CostBasis: p.CostBasis,
	}
}

// PositionState is the ephemeral holdings aggregate rebuilt during a replay
// pass by folding ledger transactions in date order. It is never persisted
// and never shared across portfolios.
type PositionState struct {
	Positions map[string]*Position
	Cash      decimal.Decimal
}

func NewPositionState() *PositionState {
	return &PositionState{
		Positions: map[string]*Position{},
		Cash:      decimal.Zero,
	}
}

func (p PositionState) HeldSymbols() []string {
	symbols := []string{}
	for symbol, position := range p.Positions {
		if position.Quantity.IsPositive() {
			symbols = append(symbols, symbol)
		}
	}
	sort.Strings(symbols)
	return symbols
}

func (p PositionState) DeepCopy() *PositionState {
	out := &PositionState{
		Positions: map[string]*Position{},
		Cash:      p.Cash,
	}
	for symbol, position := range p.Positions {
		out.Positions[symbol] = position.DeepCopy()
	}
	return out
}

// InvestedValue sums quantity x price over held positions. The price map
// must cover every held symbol.
func (p PositionState) InvestedValue(priceMap map[string]decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for symbol, position := range p.Positions {
		if position.Quantity.IsZero() {
			continue
		}
		price, ok := priceMap[symbol]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot compute invested value: price map missing %s", symbol)
		}
		total = total.Add(position.Quantity.Mul(price))
	}
	return total, nil
}

// TotalCostBasis sums the cost basis of all open positions.
func (p PositionState) TotalCostBasis() decimal.Decimal {
	total := decimal.Zero
	for _, position := range p.Positions {
		if position.Quantity.IsPositive() {
			total = total.Add(position.CostBasis)
		}
	}
	return total
}

// Apply folds one ledger transaction into the state. Selling more than is
// held is an InconsistentStateError - the ledger is the source of truth and
// a negative position means it disagrees with itself.
func (p *PositionState) Apply(txn Transaction) error {
	switch txn.Type {
	case TransactionType_Deposit:
		if txn.Amount == nil {
			return fmt.Errorf("deposit %s has no amount", txn.TransactionID)
		}
		p.Cash = p.Cash.Add(*txn.Amount)
	case TransactionType_Withdrawal:
		if txn.Amount == nil {
			return fmt.Errorf("withdrawal %s has no amount", txn.TransactionID)
		}
		p.Cash = p.Cash.Sub(*txn.Amount)
	case TransactionType_Buy:
		if txn.Ticker == nil || txn.Quantity == nil || txn.Price == nil {
			return fmt.Errorf("buy %s is missing ticker, quantity or price", txn.TransactionID)
		}
		cost := txn.Quantity.Mul(*txn.Price)
		position, ok := p.Positions[*txn.Ticker]
		if !ok {
			position = &Position{Symbol: *txn.Ticker}
			p.Positions[*txn.Ticker] = position
		}
		position.Quantity = position.Quantity.Add(*txn.Quantity)
		position.CostBasis = position.CostBasis.Add(cost)
		p.Cash = p.Cash.Sub(cost)
	case TransactionType_Sell:
		if txn.Ticker == nil || txn.Quantity == nil || txn.Price == nil {
			return fmt.Errorf("sell %s is missing ticker, quantity or price", txn.TransactionID)
		}
		position, ok := p.Positions[*txn.Ticker]
		if !ok || position.Quantity.LessThan(*txn.Quantity) {
			held := decimal.Zero
			if ok {
				held = position.Quantity
			}
			return NewInconsistentStateError(fmt.Sprintf(
				"sell of %s %s on %s exceeds held quantity %s",
				txn.Quantity, *txn.Ticker, txn.Date.Format("2006-01-02"), held,
			))
		}
		proceeds := txn.Quantity.Mul(*txn.Price)
		// relieve cost basis proportionally to quantity sold
		if position.Quantity.IsPositive() {
			relieved := position.CostBasis.Mul(txn.Quantity.Div(position.Quantity))
			position.CostBasis = position.CostBasis.Sub(relieved)
		}
		position.Quantity = position.Quantity.Sub(*txn.Quantity)
		p.Cash = p.Cash.Add(proceeds)
	default:
		return fmt.Errorf("unknown transaction type %q", txn.Type)
	}

	return nil
}
