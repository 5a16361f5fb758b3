package dto

// OnboardingRequest is the request body for demo onboarding. The email is
// stored in memory for the session; no account is created.
type OnboardingRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
}

// OnboardingResponse is the response body for successful onboarding.
type OnboardingResponse struct {
	Email   string           `json:"email"`
	Wallets []WalletResponse `json:"wallets"`
}

// DepositRequest is the request body for a wallet deposit. Amounts travel as
// strings so no precision is lost on the wire.
type DepositRequest struct {
	Currency string `json:"currency" binding:"required,currency_code"`
	Amount   string `json:"amount" binding:"required,max=40"`
}

// SwapRequest is the request body for a currency swap.
type SwapRequest struct {
	FromCurrency string `json:"from_currency" binding:"required,currency_code"`
	ToCurrency   string `json:"to_currency" binding:"required,currency_code"`
	Amount       string `json:"amount" binding:"required,max=40"`
}

// SendRequest is the request body for sending funds to an external address.
type SendRequest struct {
	FromCurrency string `json:"from_currency" binding:"required,currency_code"`
	ToAddress    string `json:"to_address" binding:"required,wallet_address"`
	Amount       string `json:"amount" binding:"required,max=40"`
}

// RefreshRatesRequest optionally names the base currency for a rate refresh.
type RefreshRatesRequest struct {
	BaseCurrency string `json:"base_currency" binding:"omitempty,currency_code"`
}

// WalletResponse is the wire representation of one wallet.
type WalletResponse struct {
	ID        string `json:"id"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

// TransactionResponse is the wire representation of one ledger transaction.
type TransactionResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Amount          string  `json:"amount"`
	FromCurrency    string  `json:"from_currency,omitempty"`
	ToCurrency      string  `json:"to_currency,omitempty"`
	ConvertedAmount *string `json:"converted_amount,omitempty"`
	ToAddress       string  `json:"to_address,omitempty"`
	Timestamp       string  `json:"timestamp"`
}

// TransactionListResponse wraps a transaction list.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Count int                   `json:"count"`
}

// RatesResponse is the response for the current exchange-rate table.
type RatesResponse struct {
	Base      string            `json:"base"`
	Rates     map[string]string `json:"rates"`
	FetchedAt string            `json:"fetched_at,omitempty"`
	IsLoading bool              `json:"is_loading"`
}

// VolumePointResponse is one day of aggregate transaction volume.
type VolumePointResponse struct {
	Date   string `json:"date"`
	Volume string `json:"volume"`
}

// TypeCountResponse is the transaction count for one type.
type TypeCountResponse struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// BalancePointResponse is one wallet balance for charting.
type BalancePointResponse struct {
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

// SwapPairCountResponse is the swap count for one FROM/TO pair.
type SwapPairCountResponse struct {
	Pair  string `json:"pair"`
	Count int    `json:"count"`
}

// AnalyticsResponse bundles the chart-ready aggregations.
type AnalyticsResponse struct {
	VolumeOverTime []VolumePointResponse   `json:"volume_over_time"`
	TypeBreakdown  []TypeCountResponse     `json:"type_breakdown"`
	Balances       []BalancePointResponse  `json:"balances"`
	TopSwapPairs   []SwapPairCountResponse `json:"top_swap_pairs"`
}

// MessageResponse carries a simple human-readable acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
