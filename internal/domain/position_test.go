package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTxn(txnType TransactionType) Transaction {
	return Transaction{
		TransactionID: uuid.New(),
		PortfolioID:   uuid.New(),
		Type:          txnType,
	}
}

func Test_PositionState_Apply(t *testing.T) {
	t.Run("deposit and withdrawal move cash", func(t *testing.T) {
		state := NewPositionState()

		deposit := newTxn(TransactionType_Deposit)
		deposit.Amount = decimalPointer(decimal.NewFromInt(10000))
		require.NoError(t, state.Apply(deposit))

		withdrawal := newTxn(TransactionType_Withdrawal)
		withdrawal.Amount = decimalPointer(decimal.NewFromInt(2500))
		require.NoError(t, state.Apply(withdrawal))

		require.Equal(t, "7500", state.Cash.String())
		require.Empty(t, state.HeldSymbols())
	})

	t.Run("buy opens a position and spends cash", func(t *testing.T) {
		state := NewPositionState()
		state.Cash = decimal.NewFromInt(10000)

		buy := newTxn(TransactionType_Buy)
		buy.Ticker = stringPointer("AAPL")
		buy.Quantity = decimalPointer(decimal.NewFromInt(10))
		buy.Price = decimalPointer(decimal.NewFromInt(150))
		require.NoError(t, state.Apply(buy))

		require.Equal(t, "8500", state.Cash.String())
		require.Equal(t, []string{"AAPL"}, state.HeldSymbols())
		require.Equal(t, "10", state.Positions["AAPL"].Quantity.String())
		require.Equal(t, "1500", state.Positions["AAPL"].CostBasis.String())
	})

	t.Run("sell relieves cost basis proportionally", func(t *testing.T) {
		state := NewPositionState()
		state.Cash = decimal.NewFromInt(2000)

		buy := newTxn(TransactionType_Buy)
		buy.Ticker = stringPointer("AAPL")
		buy.Quantity = decimalPointer(decimal.NewFromInt(10))
		buy.Price = decimalPointer(decimal.NewFromInt(150))
		require.NoError(t, state.Apply(buy))

		sell := newTxn(TransactionType_Sell)
		sell.Ticker = stringPointer("AAPL")
		sell.Quantity = decimalPointer(decimal.NewFromInt(4))
		sell.Price = decimalPointer(decimal.NewFromInt(200))
		require.NoError(t, state.Apply(sell))

		require.Equal(t, "6", state.Positions["AAPL"].Quantity.String())
		// 40% of the 1500 basis leaves with the 4 shares sold
		require.Equal(t, "900", state.Positions["AAPL"].CostBasis.String())
		// 2000 - 1500 + 800
		require.Equal(t, "1300", state.Cash.String())
	})

	t.Run("overselling is an inconsistent ledger", func(t *testing.T) {
		state := NewPositionState()

		buy := newTxn(TransactionType_Buy)
		buy.Ticker = stringPointer("MSFT")
		buy.Quantity = decimalPointer(decimal.NewFromInt(5))
		buy.Price = decimalPointer(decimal.NewFromInt(100))
		require.NoError(t, state.Apply(buy))

		sell := newTxn(TransactionType_Sell)
		sell.Ticker = stringPointer("MSFT")
		sell.Quantity = decimalPointer(decimal.NewFromInt(6))
		sell.Price = decimalPointer(decimal.NewFromInt(100))
		err := state.Apply(sell)
		require.Error(t, err)

		var inconsistentErr InconsistentStateError
		require.ErrorAs(t, err, &inconsistentErr)
	})

	t.Run("selling an unheld symbol is an inconsistent ledger", func(t *testing.T) {
		state := NewPositionState()

		sell := newTxn(TransactionType_Sell)
		sell.Ticker = stringPointer("TSLA")
		sell.Quantity = decimalPointer(decimal.NewFromInt(1))
		sell.Price = decimalPointer(decimal.NewFromInt(100))
		err := state.Apply(sell)

		var inconsistentErr InconsistentStateError
		require.ErrorAs(t, err, &inconsistentErr)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		state := NewPositionState()
		txn := newTxn(TransactionType("DIVIDEND"))
		require.Error(t, state.Apply(txn))
	})
}

func Test_PositionState_InvestedValue(t *testing.T) {
	state := NewPositionState()
	state.Positions["SPY"] = &Position{
		Symbol:   "SPY",
		Quantity: decimal.NewFromInt(2),
	}
	state.Positions["AGG"] = &Position{
		Symbol:   "AGG",
		Quantity: decimal.NewFromInt(3),
	}

	value, err := state.InvestedValue(map[string]decimal.Decimal{
		"SPY": decimal.NewFromInt(500),
		"AGG": decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.Equal(t, "1300", value.String())

	_, err = state.InvestedValue(map[string]decimal.Decimal{
		"SPY": decimal.NewFromInt(500),
	})
	require.ErrorContains(t, err, "AGG")
}

func Test_PositionState_DeepCopy(t *testing.T) {
	state := NewPositionState()
	state.Cash = decimal.NewFromInt(100)
	state.Positions["SPY"] = &Position{
		Symbol:   "SPY",
		Quantity: decimal.NewFromInt(1),
	}

	copied := state.DeepCopy()
	copied.Cash = decimal.NewFromInt(999)
	copied.Positions["SPY"].Quantity = decimal.NewFromInt(50)

	require.Equal(t, "100", state.Cash.String())
	require.Equal(t, "1", state.Positions["SPY"].Quantity.String())
}

func decimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func stringPointer(s string) *string {
	return &s
}
