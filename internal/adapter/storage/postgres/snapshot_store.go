package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fx-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const (
	walletsKey      = "wallets"
	transactionsKey = "transactions"
)

// SnapshotStore implements ports.SnapshotStore on top of a single key/value
// table. Each save replaces the whole snapshot for its key; partial updates
// are never written.
type SnapshotStore struct {
	pool      Pool
	namespace string
}

// NewSnapshotStore creates a PostgreSQL-backed snapshot store. Keys are
// prefixed with namespace so several instances can share one database.
func NewSnapshotStore(pool Pool, namespace string) *SnapshotStore {
	return &SnapshotStore{pool: pool, namespace: namespace}
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS ledger_snapshots (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("create ledger_snapshots table: %w", err)
	}
	return nil
}

// SaveWallets replaces the persisted wallet list.
func (s *SnapshotStore) SaveWallets(ctx context.Context, wallets []domain.Wallet) error {
	return s.save(ctx, walletsKey, wallets)
}

// SaveTransactions replaces the persisted transaction log.
func (s *SnapshotStore) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	return s.save(ctx, transactionsKey, transactions)
}

// LoadWallets returns the persisted wallet list, or nil when none was saved.
func (s *SnapshotStore) LoadWallets(ctx context.Context) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	if err := s.load(ctx, walletsKey, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// LoadTransactions returns the persisted transaction log, or nil when none
// was saved.
func (s *SnapshotStore) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := s.load(ctx, transactionsKey, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *SnapshotStore) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", key, err)
	}

	query := `INSERT INTO ledger_snapshots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := s.pool.Exec(ctx, query, s.key(key), data); err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) load(ctx context.Context, key string, target any) error {
	query := `SELECT value FROM ledger_snapshots WHERE key = $1`

	var data []byte
	err := s.pool.QueryRow(ctx, query, s.key(key)).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("select snapshot %s: %w", key, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshal snapshot %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) key(suffix string) string {
	return s.namespace + ":" + suffix
}
