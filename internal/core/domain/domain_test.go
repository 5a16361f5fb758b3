package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWalletSet(t *testing.T) {
	wallets := NewWalletSet()

	require.Len(t, wallets, 4)

	seen := make(map[string]bool)
	for i, w := range wallets {
		assert.Equal(t, WalletSetCurrencies[i], w.Currency)
		assert.True(t, w.Balance.IsZero(), "wallet %s should start at zero", w.Currency)
		assert.Equal(t, DefaultWalletAddress, w.Address)
		assert.NotEqual(t, w.ID.String(), "00000000-0000-0000-0000-000000000000")
		assert.False(t, seen[w.Currency], "currency %s duplicated", w.Currency)
		seen[w.Currency] = true
	}
}

func TestNewWalletSet_IDsUnique(t *testing.T) {
	wallets := NewWalletSet()
	ids := make(map[string]bool)
	for _, w := range wallets {
		assert.False(t, ids[w.ID.String()])
		ids[w.ID.String()] = true
	}
}

func TestTransactionConstructors(t *testing.T) {
	amount := decimal.NewFromInt(100)

	dep := NewDeposit("USD", amount)
	assert.Equal(t, TransactionTypeDeposit, dep.Type)
	assert.Equal(t, "USD", dep.FromCurrency)
	assert.Empty(t, dep.ToCurrency)
	assert.Nil(t, dep.ConvertedAmount)
	assert.False(t, dep.Timestamp.IsZero())

	converted := decimal.NewFromInt(150000)
	swap := NewSwap("USD", "NGN", amount, converted)
	assert.Equal(t, TransactionTypeSwap, swap.Type)
	assert.True(t, swap.IsSwap())
	assert.Equal(t, "USD", swap.FromCurrency)
	assert.Equal(t, "NGN", swap.ToCurrency)
	require.NotNil(t, swap.ConvertedAmount)
	assert.True(t, converted.Equal(*swap.ConvertedAmount))

	send := NewSend("EUR", "0xAddr1", amount)
	assert.Equal(t, TransactionTypeSend, send.Type)
	assert.False(t, send.IsSwap())
	assert.Equal(t, "0xAddr1", send.ToAddress)
	assert.Empty(t, send.ToCurrency)
}

func TestRateTable(t *testing.T) {
	empty := RateTable{}
	assert.True(t, empty.IsEmpty())
	_, ok := empty.Rate("NGN")
	assert.False(t, ok)

	rt := RateTable{
		Base:  "USD",
		Rates: map[string]decimal.Decimal{"NGN": decimal.NewFromInt(1500)},
	}
	assert.False(t, rt.IsEmpty())

	r, ok := rt.Rate("NGN")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(1500).Equal(r))
}

func TestRateTable_Clone(t *testing.T) {
	rt := RateTable{
		Base:  "USD",
		Rates: map[string]decimal.Decimal{"NGN": decimal.NewFromInt(1500)},
	}

	cp := rt.Clone()
	cp.Rates["NGN"] = decimal.NewFromInt(9)
	cp.Rates["EUR"] = decimal.NewFromInt(1)

	r, _ := rt.Rate("NGN")
	assert.True(t, decimal.NewFromInt(1500).Equal(r), "clone mutation leaked into source")
	_, ok := rt.Rate("EUR")
	assert.False(t, ok)
}
