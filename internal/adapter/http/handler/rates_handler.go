package handler

import (
	"context"
	"time"

	"fx-wallet/internal/adapter/http/dto"
	"fx-wallet/internal/core/ports"
	"fx-wallet/pkg/apperror"
	"fx-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// DefaultRateBase is the base currency used when the client does not name one.
const DefaultRateBase = "USD"

// refreshTimeout bounds a background rate fetch kicked off by Refresh.
const refreshTimeout = 30 * time.Second

// RatesHandler handles exchange-rate endpoints.
type RatesHandler struct {
	ledger ports.Ledger
}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler(ledger ports.Ledger) *RatesHandler {
	return &RatesHandler{ledger: ledger}
}

// Get handles GET /api/v1/rates. It returns the last-known-good table along
// with the loading flag; it never blocks on the upstream provider.
func (h *RatesHandler) Get(c *gin.Context) {
	snap := h.ledger.Snapshot()
	response.OK(c, toRatesResponse(snap.Rates, snap.IsLoadingRates))
}

// Refresh handles POST /api/v1/rates/refresh. The fetch runs out of band;
// the client polls GET /rates (or subscribes) for the outcome. The body is
// optional; without one the default base currency is refreshed.
func (h *RatesHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRatesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	base := DefaultRateBase
	if req.BaseCurrency != "" {
		base = normalizeCurrency(req.BaseCurrency)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		h.ledger.FetchRates(ctx, base)
	}()

	response.Accepted(c, dto.MessageResponse{Message: "rate refresh started"})
}
