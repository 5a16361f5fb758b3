package ports

import (
	"context"

	"fx-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

// RateSource fetches the latest exchange-rate mapping for a base currency
// from an external provider. Purely advisory: no caching, no retry.
type RateSource interface {
	Latest(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error)
}

// LedgerSnapshot is a point-in-time copy of the ledger state handed to
// readers. Mutating it has no effect on the ledger.
type LedgerSnapshot struct {
	Wallets        []domain.Wallet
	Transactions   []domain.Transaction
	Rates          domain.RateTable
	IsLoadingRates bool
}

// Ledger is the wallet ledger store: in-memory wallets, an append-only
// transaction log, and the last-fetched rate table. Every mutation
// synchronously mirrors the new state through the SnapshotStore and notifies
// subscribers.
//
// Validation contract: the ledger owns input validation. Unknown currencies,
// non-positive amounts, insufficient debit balances, and same-currency swaps
// are rejected with an error and leave the state untouched.
type Ledger interface {
	// CreateWalletSet replaces the wallet list with the fixed four-currency
	// set, all zero balance. Destructive: prior wallets are discarded.
	CreateWalletSet(ctx context.Context) error

	Deposit(ctx context.Context, currency string, amount decimal.Decimal) (*domain.Transaction, error)
	Swap(ctx context.Context, fromCurrency, toCurrency string, amount decimal.Decimal) (*domain.Transaction, error)
	Send(ctx context.Context, fromCurrency, toAddress string, amount decimal.Decimal) (*domain.Transaction, error)

	// FetchRates asks the RateSource for the mapping based on baseCurrency and
	// replaces the rate table on success. Failures are logged and swallowed;
	// the previous table stays in place. The loading flag is always cleared
	// once the newest in-flight request settles. A stale response (one
	// overtaken by a later call) is discarded.
	FetchRates(ctx context.Context, baseCurrency string)

	// SaveOfflineData / LoadOfflineData explicitly mirror and restore the
	// wallet and transaction lists, independent of the automatic per-mutation
	// persistence.
	SaveOfflineData(ctx context.Context) error
	LoadOfflineData(ctx context.Context) error

	Snapshot() LedgerSnapshot
	RecentTransactions(limit int) []domain.Transaction

	// Subscribe registers fn to run after every state change. The returned
	// function removes the subscription.
	Subscribe(fn func()) (unsubscribe func())
}

// VolumePoint is one day of aggregate transaction volume.
type VolumePoint struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Volume decimal.Decimal `json:"volume"`
}

// TypeCount is the number of transactions of one type.
type TypeCount struct {
	Type  domain.TransactionType `json:"type"`
	Count int                    `json:"count"`
}

// BalancePoint is one wallet's balance for charting.
type BalancePoint struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// SwapPairCount is the number of swaps for one FROM/TO pair.
type SwapPairCount struct {
	Pair  string `json:"pair"`
	Count int    `json:"count"`
}

// Analytics aggregates the transaction history into chart-ready datasets.
type Analytics interface {
	VolumeOverTime(days int) []VolumePoint
	TypeBreakdown() []TypeCount
	Balances() []BalancePoint
	TopSwapPairs(limit int) []SwapPairCount
}

// Profile stores the onboarding contact for the session. In-memory only.
type Profile interface {
	SetEmail(email string)
	Email() (string, bool)
}
