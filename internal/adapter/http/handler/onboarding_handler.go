package handler

import (
	"net/http"

	"fx-wallet/internal/adapter/http/dto"
	"fx-wallet/internal/core/ports"
	"fx-wallet/pkg/apperror"
	"fx-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler handles the demo onboarding endpoint.
type OnboardingHandler struct {
	profile ports.Profile
	ledger  ports.Ledger
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(profile ports.Profile, ledger ports.Ledger) *OnboardingHandler {
	return &OnboardingHandler{profile: profile, ledger: ledger}
}

// Onboard handles POST /api/v1/onboarding. It records the contact email and
// provisions a fresh wallet set. Calling it again resets the wallets.
func (h *OnboardingHandler) Onboard(c *gin.Context) {
	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	h.profile.SetEmail(req.Email)

	if err := h.ledger.CreateWalletSet(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	snap := h.ledger.Snapshot()
	response.Created(c, dto.OnboardingResponse{
		Email:   req.Email,
		Wallets: toWalletResponses(snap.Wallets),
	})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
