package handler

import (
	"fx-wallet/internal/adapter/http/dto"
	"fx-wallet/internal/core/ports"
	"fx-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// OfflineHandler handles explicit snapshot save/restore endpoints. Unlike the
// automatic per-mutation mirroring, failures here surface to the client.
type OfflineHandler struct {
	ledger ports.Ledger
}

// NewOfflineHandler creates a new OfflineHandler.
func NewOfflineHandler(ledger ports.Ledger) *OfflineHandler {
	return &OfflineHandler{ledger: ledger}
}

// Save handles POST /api/v1/offline/save.
func (h *OfflineHandler) Save(c *gin.Context) {
	if err := h.ledger.SaveOfflineData(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.MessageResponse{Message: "ledger snapshot saved"})
}

// Load handles POST /api/v1/offline/load.
func (h *OfflineHandler) Load(c *gin.Context) {
	if err := h.ledger.LoadOfflineData(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	snap := h.ledger.Snapshot()
	response.OK(c, gin.H{
		"wallets":      toWalletResponses(snap.Wallets),
		"transactions": len(snap.Transactions),
	})
}
