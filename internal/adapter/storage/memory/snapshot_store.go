package memory

import (
	"context"
	"sync"

	"fx-wallet/internal/core/domain"
)

// SnapshotStore implements ports.SnapshotStore entirely in process memory.
// It is the fallback backend when neither Redis nor PostgreSQL is configured;
// data does not survive a restart. Stored slices are copied on the way in and
// out so callers can never alias the store's internal state.
type SnapshotStore struct {
	mu           sync.RWMutex
	wallets      []domain.Wallet
	transactions []domain.Transaction
}

// NewSnapshotStore creates an empty in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// SaveWallets replaces the stored wallet list.
func (s *SnapshotStore) SaveWallets(_ context.Context, wallets []domain.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets = copyWallets(wallets)
	return nil
}

// SaveTransactions replaces the stored transaction log.
func (s *SnapshotStore) SaveTransactions(_ context.Context, transactions []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = copyTransactions(transactions)
	return nil
}

// LoadWallets returns a copy of the stored wallet list, nil when empty.
func (s *SnapshotStore) LoadWallets(_ context.Context) ([]domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyWallets(s.wallets), nil
}

// LoadTransactions returns a copy of the stored transaction log, nil when empty.
func (s *SnapshotStore) LoadTransactions(_ context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTransactions(s.transactions), nil
}

func copyWallets(in []domain.Wallet) []domain.Wallet {
	if in == nil {
		return nil
	}
	out := make([]domain.Wallet, len(in))
	copy(out, in)
	return out
}

func copyTransactions(in []domain.Transaction) []domain.Transaction {
	if in == nil {
		return nil
	}
	out := make([]domain.Transaction, len(in))
	copy(out, in)
	return out
}
