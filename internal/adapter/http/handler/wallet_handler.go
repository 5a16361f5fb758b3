package handler

import (
	"strings"

	"fx-wallet/internal/adapter/http/dto"
	"fx-wallet/internal/core/ports"
	"fx-wallet/pkg/apperror"
	"fx-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// WalletHandler handles wallet listing and mutation endpoints.
type WalletHandler struct {
	ledger ports.Ledger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.Ledger) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	snap := h.ledger.Snapshot()
	response.OK(c, toWalletResponses(snap.Wallets))
}

// Deposit handles POST /api/v1/wallets/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, appErr := parseAmount(req.Amount)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}

	txn, err := h.ledger.Deposit(c.Request.Context(), normalizeCurrency(req.Currency), amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// Swap handles POST /api/v1/wallets/swap.
func (h *WalletHandler) Swap(c *gin.Context) {
	var req dto.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, appErr := parseAmount(req.Amount)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}

	txn, err := h.ledger.Swap(c.Request.Context(), normalizeCurrency(req.FromCurrency), normalizeCurrency(req.ToCurrency), amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// Send handles POST /api/v1/wallets/send.
func (h *WalletHandler) Send(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, appErr := parseAmount(req.Amount)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}

	txn, err := h.ledger.Send(c.Request.Context(), normalizeCurrency(req.FromCurrency), req.ToAddress, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// parseAmount converts a wire amount string into a decimal. Sign and range
// checks are the ledger's job; this only rejects unparseable input.
func parseAmount(raw string) (decimal.Decimal, *apperror.AppError) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, apperror.Validation("amount must be a decimal number")
	}
	return amount, nil
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
