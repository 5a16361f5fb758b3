package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of ledger event.
type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "deposit"
	TransactionTypeSwap    TransactionType = "swap"
	TransactionTypeSend    TransactionType = "send"
)

// Transaction is an immutable, append-only log entry describing one
// ledger-affecting event. Amount is always denominated in the source currency;
// ConvertedAmount is set only for swaps, ToAddress only for sends.
type Transaction struct {
	ID              uuid.UUID        `json:"id"`
	Type            TransactionType  `json:"type"`
	Amount          decimal.Decimal  `json:"amount"`
	FromCurrency    string           `json:"from_currency,omitempty"`
	ToCurrency      string           `json:"to_currency,omitempty"`
	ConvertedAmount *decimal.Decimal `json:"converted_amount,omitempty"`
	ToAddress       string           `json:"to_address,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
}

// IsSwap reports whether the transaction moved value between two currencies.
func (t *Transaction) IsSwap() bool {
	return t.Type == TransactionTypeSwap
}

// NewDeposit builds a deposit transaction for the given currency and amount.
func NewDeposit(currency string, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:           uuid.New(),
		Type:         TransactionTypeDeposit,
		Amount:       amount,
		FromCurrency: currency,
		Timestamp:    time.Now().UTC(),
	}
}

// NewSwap builds a swap transaction recording both currencies and the
// destination-currency amount.
func NewSwap(fromCurrency, toCurrency string, amount, convertedAmount decimal.Decimal) Transaction {
	return Transaction{
		ID:              uuid.New(),
		Type:            TransactionTypeSwap,
		Amount:          amount,
		FromCurrency:    fromCurrency,
		ToCurrency:      toCurrency,
		ConvertedAmount: &convertedAmount,
		Timestamp:       time.Now().UTC(),
	}
}

// NewSend builds a send transaction to an external address.
func NewSend(fromCurrency, toAddress string, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:           uuid.New(),
		Type:         TransactionTypeSend,
		Amount:       amount,
		FromCurrency: fromCurrency,
		ToAddress:    toAddress,
		Timestamp:    time.Now().UTC(),
	}
}
