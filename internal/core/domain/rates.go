package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is the most recently fetched currency-to-rate mapping for one
// base currency. It is replaced wholesale on each successful fetch; no
// historical versions are kept.
type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetched_at"`
}

// Rate returns the rate for the given currency, if present.
func (rt RateTable) Rate(currency string) (decimal.Decimal, bool) {
	r, ok := rt.Rates[currency]
	return r, ok
}

// IsEmpty reports whether no rates have been fetched yet.
func (rt RateTable) IsEmpty() bool {
	return len(rt.Rates) == 0
}

// Clone returns a deep copy so callers cannot mutate the ledger's table.
func (rt RateTable) Clone() RateTable {
	cp := RateTable{Base: rt.Base, FetchedAt: rt.FetchedAt}
	if rt.Rates != nil {
		cp.Rates = make(map[string]decimal.Decimal, len(rt.Rates))
		for k, v := range rt.Rates {
			cp.Rates[k] = v
		}
	}
	return cp
}
