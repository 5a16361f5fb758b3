package integration

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// stubRateSource serves canned conversion tables keyed by base currency.
// Unknown bases yield an error like a provider outage would.
type stubRateSource struct {
	mu     sync.Mutex
	tables map[string]map[string]decimal.Decimal
	err    error
}

func newStubRateSource() *stubRateSource {
	return &stubRateSource{tables: make(map[string]map[string]decimal.Decimal)}
}

func (s *stubRateSource) setTable(base string, rates map[string]decimal.Decimal) {
	s.mu.Lock()
	s.tables[base] = rates
	s.mu.Unlock()
}

func (s *stubRateSource) setError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *stubRateSource) Latest(_ context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	table, ok := s.tables[baseCurrency]
	if !ok {
		return nil, errRateSourceDown
	}
	// hand out a copy, callers must not alias internal state
	out := make(map[string]decimal.Decimal, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out, nil
}

type rateSourceError string

func (e rateSourceError) Error() string { return string(e) }

const errRateSourceDown = rateSourceError("rate source unavailable")
