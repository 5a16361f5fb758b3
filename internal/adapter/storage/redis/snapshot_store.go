package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"fx-wallet/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const (
	walletsKey      = "wallets"
	transactionsKey = "transactions"
)

// SnapshotStore implements ports.SnapshotStore on Redis: the ledger's two
// JSON blobs live under <namespace>:wallets and <namespace>:transactions and
// are overwritten whole on every save.
type SnapshotStore struct {
	client    *goredis.Client
	namespace string
}

// NewSnapshotStore creates a Redis-backed snapshot store scoped to namespace.
func NewSnapshotStore(client *goredis.Client, namespace string) *SnapshotStore {
	return &SnapshotStore{client: client, namespace: namespace}
}

// SaveWallets overwrites the wallet blob.
func (s *SnapshotStore) SaveWallets(ctx context.Context, wallets []domain.Wallet) error {
	return s.save(ctx, walletsKey, wallets)
}

// SaveTransactions overwrites the transaction blob.
func (s *SnapshotStore) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	return s.save(ctx, transactionsKey, transactions)
}

// LoadWallets reads the wallet blob. A key never written yields nil, nil.
func (s *SnapshotStore) LoadWallets(ctx context.Context) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	if err := s.load(ctx, walletsKey, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// LoadTransactions reads the transaction blob. A key never written yields nil, nil.
func (s *SnapshotStore) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := s.load(ctx, transactionsKey, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *SnapshotStore) save(ctx context.Context, key string, v interface{}) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s blob: %w", key, err)
	}
	if err := s.client.Set(ctx, s.key(key), blob, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) load(ctx context.Context, key string, v interface{}) error {
	blob, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(blob, v); err != nil {
		return fmt.Errorf("unmarshal %s blob: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) key(suffix string) string {
	return s.namespace + ":" + suffix
}
