package handler

import (
	"time"

	"fx-wallet/internal/adapter/http/dto"
	"fx-wallet/internal/core/domain"
)

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		ID:        w.ID.String(),
		Currency:  w.Currency,
		Balance:   w.Balance.String(),
		Address:   w.Address,
		CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toWalletResponses(wallets []domain.Wallet) []dto.WalletResponse {
	out := make([]dto.WalletResponse, 0, len(wallets))
	for i := range wallets {
		out = append(out, toWalletResponse(&wallets[i]))
	}
	return out
}

func toTransactionResponse(t *domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:           t.ID.String(),
		Type:         string(t.Type),
		Amount:       t.Amount.String(),
		FromCurrency: t.FromCurrency,
		ToCurrency:   t.ToCurrency,
		ToAddress:    t.ToAddress,
		Timestamp:    t.Timestamp.UTC().Format(time.RFC3339),
	}
	if t.ConvertedAmount != nil {
		s := t.ConvertedAmount.String()
		resp.ConvertedAmount = &s
	}
	return resp
}

func toRatesResponse(rates domain.RateTable, loading bool) dto.RatesResponse {
	resp := dto.RatesResponse{
		Base:      rates.Base,
		Rates:     make(map[string]string, len(rates.Rates)),
		IsLoading: loading,
	}
	for currency, rate := range rates.Rates {
		resp.Rates[currency] = rate.String()
	}
	if !rates.FetchedAt.IsZero() {
		resp.FetchedAt = rates.FetchedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
