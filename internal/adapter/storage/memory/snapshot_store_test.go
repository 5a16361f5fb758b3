package memory

import (
	"context"
	"testing"

	"fx-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_EmptyLoads(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	wallets, err := store.LoadWallets(ctx)
	require.NoError(t, err)
	assert.Empty(t, wallets)

	txns, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	wallets := domain.NewWalletSet()
	wallets[2].Balance = decimal.RequireFromString("42.5")
	txns := []domain.Transaction{domain.NewDeposit("EUR", decimal.RequireFromString("42.5"))}

	require.NoError(t, store.SaveWallets(ctx, wallets))
	require.NoError(t, store.SaveTransactions(ctx, txns))

	gotWallets, err := store.LoadWallets(ctx)
	require.NoError(t, err)
	require.Len(t, gotWallets, 4)
	assert.True(t, wallets[2].Balance.Equal(gotWallets[2].Balance))

	gotTxns, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, gotTxns, 1)
	assert.Equal(t, txns[0].ID, gotTxns[0].ID)
}

func TestSnapshotStore_SaveOverwrites(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	require.NoError(t, store.SaveTransactions(ctx, []domain.Transaction{
		domain.NewDeposit("USD", decimal.NewFromInt(1)),
		domain.NewDeposit("USD", decimal.NewFromInt(2)),
	}))
	require.NoError(t, store.SaveTransactions(ctx, []domain.Transaction{
		domain.NewDeposit("GBP", decimal.NewFromInt(3)),
	}))

	got, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "GBP", got[0].FromCurrency)
}

func TestSnapshotStore_LoadedSliceIsIsolated(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	require.NoError(t, store.SaveWallets(ctx, domain.NewWalletSet()))

	first, err := store.LoadWallets(ctx)
	require.NoError(t, err)
	first[0].Balance = decimal.NewFromInt(999)

	second, err := store.LoadWallets(ctx)
	require.NoError(t, err)
	assert.True(t, second[0].Balance.IsZero(), "mutating a loaded slice must not affect the store")
}
