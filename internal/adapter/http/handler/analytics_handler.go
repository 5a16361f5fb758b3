package handler

import (
	"strconv"

	"fx-wallet/internal/adapter/http/dto"
	"fx-wallet/internal/core/ports"
	"fx-wallet/internal/service"
	"fx-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles the dashboard aggregation and transaction list
// endpoints.
type AnalyticsHandler struct {
	analytics ports.Analytics
	ledger    ports.Ledger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics ports.Analytics, ledger ports.Ledger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, ledger: ledger}
}

// Get handles GET /api/v1/analytics.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	if days < 1 || days > 365 {
		days = service.DefaultVolumeWindowDays
	}
	top, _ := strconv.Atoi(c.DefaultQuery("top", "0"))
	if top < 1 || top > 50 {
		top = service.DefaultTopPairs
	}

	volume := h.analytics.VolumeOverTime(days)
	volumePoints := make([]dto.VolumePointResponse, 0, len(volume))
	for _, p := range volume {
		volumePoints = append(volumePoints, dto.VolumePointResponse{Date: p.Date, Volume: p.Volume.String()})
	}

	breakdown := h.analytics.TypeBreakdown()
	typeCounts := make([]dto.TypeCountResponse, 0, len(breakdown))
	for _, tc := range breakdown {
		typeCounts = append(typeCounts, dto.TypeCountResponse{Type: string(tc.Type), Count: tc.Count})
	}

	balances := h.analytics.Balances()
	balancePoints := make([]dto.BalancePointResponse, 0, len(balances))
	for _, b := range balances {
		balancePoints = append(balancePoints, dto.BalancePointResponse{Currency: b.Currency, Balance: b.Balance.String()})
	}

	pairs := h.analytics.TopSwapPairs(top)
	pairCounts := make([]dto.SwapPairCountResponse, 0, len(pairs))
	for _, p := range pairs {
		pairCounts = append(pairCounts, dto.SwapPairCountResponse{Pair: p.Pair, Count: p.Count})
	}

	response.OK(c, dto.AnalyticsResponse{
		VolumeOverTime: volumePoints,
		TypeBreakdown:  typeCounts,
		Balances:       balancePoints,
		TopSwapPairs:   pairCounts,
	})
}

// ListTransactions handles GET /api/v1/transactions, newest first.
func (h *AnalyticsHandler) ListTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	txns := h.ledger.RecentTransactions(limit)
	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}

	response.OK(c, dto.TransactionListResponse{
		Items: items,
		Count: len(items),
	})
}
