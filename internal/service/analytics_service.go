package service

import (
	"fmt"
	"sort"
	"time"

	"fx-wallet/internal/core/domain"
	"fx-wallet/internal/core/ports"

	"github.com/shopspring/decimal"
)

const (
	// DefaultVolumeWindowDays is the trailing window for the volume chart.
	DefaultVolumeWindowDays = 7
	// DefaultTopPairs is how many swap pairs the pair chart shows.
	DefaultTopPairs = 5
)

// analyticsService implements ports.Analytics by aggregating the ledger's
// transaction history into chart-ready datasets.
type analyticsService struct {
	ledger ports.Ledger
}

// NewAnalyticsService creates a new analytics service over the given ledger.
func NewAnalyticsService(ledger ports.Ledger) ports.Analytics {
	return &analyticsService{ledger: ledger}
}

// VolumeOverTime returns per-day aggregate transaction volume for the
// trailing window, oldest day first. Days without transactions are included
// with zero volume. Volumes are rounded to 2 decimal places.
func (s *analyticsService) VolumeOverTime(days int) []ports.VolumePoint {
	if days <= 0 {
		days = DefaultVolumeWindowDays
	}

	transactions := s.ledger.Snapshot().Transactions

	byDay := make(map[string]decimal.Decimal, days)
	for _, t := range transactions {
		day := t.Timestamp.UTC().Format(time.DateOnly)
		byDay[day] = byDay[day].Add(t.Amount)
	}

	points := make([]ports.VolumePoint, 0, days)
	today := time.Now().UTC()
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(time.DateOnly)
		points = append(points, ports.VolumePoint{
			Date:   day,
			Volume: byDay[day].Round(2),
		})
	}
	return points
}

// TypeBreakdown returns the number of transactions per type, in fixed
// deposit/swap/send order, omitting types with no transactions.
func (s *analyticsService) TypeBreakdown() []ports.TypeCount {
	transactions := s.ledger.Snapshot().Transactions

	counts := make(map[domain.TransactionType]int, 3)
	for _, t := range transactions {
		counts[t.Type]++
	}

	order := []domain.TransactionType{
		domain.TransactionTypeDeposit,
		domain.TransactionTypeSwap,
		domain.TransactionTypeSend,
	}
	breakdown := make([]ports.TypeCount, 0, len(counts))
	for _, typ := range order {
		if n := counts[typ]; n > 0 {
			breakdown = append(breakdown, ports.TypeCount{Type: typ, Count: n})
		}
	}
	return breakdown
}

// Balances returns one point per wallet in wallet-set order, rounded to
// 2 decimal places.
func (s *analyticsService) Balances() []ports.BalancePoint {
	wallets := s.ledger.Snapshot().Wallets

	points := make([]ports.BalancePoint, 0, len(wallets))
	for _, w := range wallets {
		points = append(points, ports.BalancePoint{
			Currency: w.Currency,
			Balance:  w.Balance.Round(2),
		})
	}
	return points
}

// TopSwapPairs returns the most frequently swapped FROM/TO pairs, most
// frequent first. Ties break alphabetically for stable output.
func (s *analyticsService) TopSwapPairs(limit int) []ports.SwapPairCount {
	if limit <= 0 {
		limit = DefaultTopPairs
	}

	transactions := s.ledger.Snapshot().Transactions

	counts := make(map[string]int)
	for _, t := range transactions {
		if !t.IsSwap() || t.FromCurrency == "" || t.ToCurrency == "" {
			continue
		}
		counts[fmt.Sprintf("%s/%s", t.FromCurrency, t.ToCurrency)]++
	}

	pairs := make([]ports.SwapPairCount, 0, len(counts))
	for pair, n := range counts {
		pairs = append(pairs, ports.SwapPairCount{Pair: pair, Count: n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Pair < pairs[j].Pair
	})

	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}
