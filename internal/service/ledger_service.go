package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"fx-wallet/internal/core/domain"
	"fx-wallet/internal/core/ports"
	"fx-wallet/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// swapPrecision is the decimal precision of converted swap amounts.
const swapPrecision = 3

// LedgerService implements ports.Ledger. It owns the wallet list, the
// append-only transaction log, and the last-fetched rate table. State is
// replaced wholesale (new slices) on each mutation and mirrored synchronously
// through the injected SnapshotStore. A mirror failure keeps the in-memory
// state and is logged: this is an optimistic-update demo ledger, not a
// transactional one.
type LedgerService struct {
	mu           sync.RWMutex
	wallets      []domain.Wallet
	transactions []domain.Transaction
	rates        domain.RateTable
	loadingRates bool
	fetchSeq     uint64 // last issued rate-fetch token; stale responses are discarded

	store      ports.SnapshotStore
	rateSource ports.RateSource
	log        zerolog.Logger

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewLedgerService creates a ledger with injected persistence and rate-source
// collaborators. The ledger starts empty; call LoadOfflineData to restore a
// previously mirrored state.
func NewLedgerService(store ports.SnapshotStore, rateSource ports.RateSource, log zerolog.Logger) *LedgerService {
	return &LedgerService{
		store:      store,
		rateSource: rateSource,
		log:        log,
		subs:       make(map[int]func()),
	}
}

// CreateWalletSet replaces the wallet list with the fixed four-currency set,
// all zero balance. Destructive: any prior wallets are discarded. The
// transaction log is left untouched.
func (s *LedgerService) CreateWalletSet(ctx context.Context) error {
	s.mu.Lock()
	wallets := domain.NewWalletSet()
	s.wallets = wallets
	transactions := s.transactions
	s.mu.Unlock()

	s.persist(ctx, wallets, transactions)
	s.notify()

	s.log.Info().Int("wallets", len(wallets)).Msg("wallet set created")
	return nil
}

// Deposit credits the wallet matching currency and appends a deposit
// transaction.
func (s *LedgerService) Deposit(ctx context.Context, currency string, amount decimal.Decimal) (*domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	idx := findWallet(s.wallets, currency)
	if idx < 0 {
		s.mu.Unlock()
		return nil, apperror.ErrUnknownCurrency(currency)
	}

	wallets := cloneWallets(s.wallets)
	wallets[idx].Balance = wallets[idx].Balance.Add(amount)

	txn := domain.NewDeposit(currency, amount)
	transactions := appendTransaction(s.transactions, txn)

	s.wallets = wallets
	s.transactions = transactions
	s.mu.Unlock()

	s.persist(ctx, wallets, transactions)
	s.notify()

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("currency", currency).
		Str("amount", amount.String()).
		Msg("deposit recorded")
	return &txn, nil
}

// Swap converts amount from one wallet currency to another using the current
// rate table. The table must be based on fromCurrency and contain a rate for
// toCurrency, otherwise a RATE_001 error is returned and nothing changes.
// Both balance updates are computed from the pre-mutation wallet snapshot in
// a single pass.
func (s *LedgerService) Swap(ctx context.Context, fromCurrency, toCurrency string, amount decimal.Decimal) (*domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if fromCurrency == toCurrency {
		return nil, apperror.ErrSameCurrencySwap()
	}

	s.mu.Lock()
	fromIdx := findWallet(s.wallets, fromCurrency)
	if fromIdx < 0 {
		s.mu.Unlock()
		return nil, apperror.ErrUnknownCurrency(fromCurrency)
	}
	toIdx := findWallet(s.wallets, toCurrency)
	if toIdx < 0 {
		s.mu.Unlock()
		return nil, apperror.ErrUnknownCurrency(toCurrency)
	}

	if s.rates.Base != fromCurrency {
		s.mu.Unlock()
		return nil, apperror.ErrRateUnavailable(toCurrency)
	}
	rate, ok := s.rates.Rate(toCurrency)
	if !ok {
		s.mu.Unlock()
		return nil, apperror.ErrRateUnavailable(toCurrency)
	}

	if s.wallets[fromIdx].Balance.LessThan(amount) {
		s.mu.Unlock()
		return nil, apperror.ErrInsufficientBalance(fromCurrency)
	}

	convertedAmount := amount.Mul(rate).Round(swapPrecision)

	wallets := cloneWallets(s.wallets)
	wallets[fromIdx].Balance = wallets[fromIdx].Balance.Sub(amount)
	wallets[toIdx].Balance = wallets[toIdx].Balance.Add(convertedAmount)

	txn := domain.NewSwap(fromCurrency, toCurrency, amount, convertedAmount)
	transactions := appendTransaction(s.transactions, txn)

	s.wallets = wallets
	s.transactions = transactions
	s.mu.Unlock()

	s.persist(ctx, wallets, transactions)
	s.notify()

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("from", fromCurrency).
		Str("to", toCurrency).
		Str("amount", amount.String()).
		Str("converted_amount", convertedAmount.String()).
		Msg("swap recorded")
	return &txn, nil
}

// Send debits fromCurrency and appends a send transaction with the recipient
// address.
func (s *LedgerService) Send(ctx context.Context, fromCurrency, toAddress string, amount decimal.Decimal) (*domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	idx := findWallet(s.wallets, fromCurrency)
	if idx < 0 {
		s.mu.Unlock()
		return nil, apperror.ErrUnknownCurrency(fromCurrency)
	}
	if s.wallets[idx].Balance.LessThan(amount) {
		s.mu.Unlock()
		return nil, apperror.ErrInsufficientBalance(fromCurrency)
	}

	wallets := cloneWallets(s.wallets)
	wallets[idx].Balance = wallets[idx].Balance.Sub(amount)

	txn := domain.NewSend(fromCurrency, toAddress, amount)
	transactions := appendTransaction(s.transactions, txn)

	s.wallets = wallets
	s.transactions = transactions
	s.mu.Unlock()

	s.persist(ctx, wallets, transactions)
	s.notify()

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("currency", fromCurrency).
		Str("amount", amount.String()).
		Msg("send recorded")
	return &txn, nil
}

// FetchRates asks the rate source for the mapping based on baseCurrency and
// replaces the rate table on success. Failures are swallowed: the previous
// table stays in place and the loading flag clears. Each call is issued a
// token; a response overtaken by a later call is discarded, so overlapping
// fetches cannot leave a stale table.
func (s *LedgerService) FetchRates(ctx context.Context, baseCurrency string) {
	s.mu.Lock()
	s.fetchSeq++
	token := s.fetchSeq
	s.loadingRates = true
	s.mu.Unlock()
	s.notify()

	rates, err := s.rateSource.Latest(ctx, baseCurrency)

	s.mu.Lock()
	latest := token == s.fetchSeq
	if latest {
		s.loadingRates = false
		if err == nil {
			s.rates = domain.RateTable{
				Base:      baseCurrency,
				Rates:     rates,
				FetchedAt: time.Now().UTC(),
			}
		}
	}
	s.mu.Unlock()

	switch {
	case err != nil:
		s.log.Warn().Err(err).
			Str("base_currency", baseCurrency).
			Msg("rate fetch failed, keeping last known rates")
	case !latest:
		s.log.Debug().
			Str("base_currency", baseCurrency).
			Msg("rate fetch response overtaken by a newer request, discarded")
	default:
		s.log.Info().
			Str("base_currency", baseCurrency).
			Int("rates", len(rates)).
			Msg("rate table replaced")
	}

	if latest {
		s.notify()
	}
}

// SaveOfflineData explicitly mirrors the wallet and transaction lists,
// independent of the automatic per-mutation persistence.
func (s *LedgerService) SaveOfflineData(ctx context.Context) error {
	s.mu.RLock()
	wallets := s.wallets
	transactions := s.transactions
	s.mu.RUnlock()

	if err := s.store.SaveWallets(ctx, wallets); err != nil {
		return apperror.ErrStorageFailure(err)
	}
	if err := s.store.SaveTransactions(ctx, transactions); err != nil {
		return apperror.ErrStorageFailure(err)
	}
	return nil
}

// LoadOfflineData restores the wallet and transaction lists from the snapshot
// store. A list that was never mirrored leaves the corresponding in-memory
// state untouched.
func (s *LedgerService) LoadOfflineData(ctx context.Context) error {
	wallets, err := s.store.LoadWallets(ctx)
	if err != nil {
		return apperror.ErrStorageFailure(err)
	}
	transactions, err := s.store.LoadTransactions(ctx)
	if err != nil {
		return apperror.ErrStorageFailure(err)
	}

	s.mu.Lock()
	if len(wallets) > 0 {
		s.wallets = wallets
	}
	if len(transactions) > 0 {
		s.transactions = transactions
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Snapshot returns a point-in-time copy of the full ledger state.
func (s *LedgerService) Snapshot() ports.LedgerSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ports.LedgerSnapshot{
		Wallets:        cloneWallets(s.wallets),
		Transactions:   cloneTransactions(s.transactions),
		Rates:          s.rates.Clone(),
		IsLoadingRates: s.loadingRates,
	}
}

// RecentTransactions returns up to limit transactions, newest first.
// limit <= 0 means all.
func (s *LedgerService) RecentTransactions(limit int) []domain.Transaction {
	s.mu.RLock()
	transactions := cloneTransactions(s.transactions)
	s.mu.RUnlock()

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.After(transactions[j].Timestamp)
	})

	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *LedgerService) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// persist mirrors the given state to the snapshot store. Failures are logged
// and swallowed: the in-memory state is already committed.
func (s *LedgerService) persist(ctx context.Context, wallets []domain.Wallet, transactions []domain.Transaction) {
	if err := s.store.SaveWallets(ctx, wallets); err != nil {
		s.log.Error().Err(err).Msg("wallet mirror write failed")
	}
	if err := s.store.SaveTransactions(ctx, transactions); err != nil {
		s.log.Error().Err(err).Msg("transaction mirror write failed")
	}
}

func (s *LedgerService) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func findWallet(wallets []domain.Wallet, currency string) int {
	for i := range wallets {
		if wallets[i].Currency == currency {
			return i
		}
	}
	return -1
}

func cloneWallets(wallets []domain.Wallet) []domain.Wallet {
	cp := make([]domain.Wallet, len(wallets))
	copy(cp, wallets)
	return cp
}

func cloneTransactions(transactions []domain.Transaction) []domain.Transaction {
	cp := make([]domain.Transaction, len(transactions))
	copy(cp, transactions)
	return cp
}

func appendTransaction(transactions []domain.Transaction, txn domain.Transaction) []domain.Transaction {
	cp := make([]domain.Transaction, len(transactions), len(transactions)+1)
	copy(cp, transactions)
	return append(cp, txn)
}
