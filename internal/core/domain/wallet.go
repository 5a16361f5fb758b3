package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultWalletAddress is the fixed display address assigned to every wallet
// created by the onboarding wallet set.
const DefaultWalletAddress = "0xE536aF7A65B20d6d4CAfA25e05A7906D0"

// WalletSetCurrencies are the currencies seeded by CreateWalletSet, in display order.
var WalletSetCurrencies = []string{"USD", "NGN", "EUR", "GBP"}

// Wallet represents a per-currency balance with a display address.
// Wallets are created only as part of the wallet set and are never
// individually created or deleted afterwards.
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Address   string          `json:"address"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewWalletSet builds the fixed four-wallet set with zero balances.
func NewWalletSet() []Wallet {
	now := time.Now().UTC()
	wallets := make([]Wallet, 0, len(WalletSetCurrencies))
	for _, currency := range WalletSetCurrencies {
		wallets = append(wallets, Wallet{
			ID:        uuid.New(),
			Currency:  currency,
			Balance:   decimal.Zero,
			Address:   DefaultWalletAddress,
			CreatedAt: now,
		})
	}
	return wallets
}
