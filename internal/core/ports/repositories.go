package ports

import (
	"context"

	"fx-wallet/internal/core/domain"
)

// SnapshotStore mirrors the ledger state to durable storage as two
// independently keyed JSON blobs (wallet list, transaction list), written by
// whole-value overwrite. Loading a key that was never written yields an empty
// slice, not an error.
type SnapshotStore interface {
	SaveWallets(ctx context.Context, wallets []domain.Wallet) error
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error
	LoadWallets(ctx context.Context) ([]domain.Wallet, error)
	LoadTransactions(ctx context.Context) ([]domain.Transaction, error)
}
