package handler

import (
	"fx-wallet/internal/adapter/http/middleware"
	"fx-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.Ledger
	Analytics      ports.Analytics
	Profile        ports.Profile
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies the configured snapshot backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	onboardingHandler := NewOnboardingHandler(deps.Profile, deps.Ledger)
	walletHandler := NewWalletHandler(deps.Ledger)
	ratesHandler := NewRatesHandler(deps.Ledger)
	analyticsHandler := NewAnalyticsHandler(deps.Analytics, deps.Ledger)
	offlineHandler := NewOfflineHandler(deps.Ledger)

	// API v1 routes
	v1 := r.Group("/api/v1")

	v1.POST("/onboarding", onboardingHandler.Onboard)

	wallets := v1.Group("/wallets")
	{
		wallets.GET("", walletHandler.List)
		wallets.POST("/deposit", walletHandler.Deposit)
		wallets.POST("/swap", walletHandler.Swap)
		wallets.POST("/send", walletHandler.Send)
	}

	rates := v1.Group("/rates")
	{
		rates.GET("", ratesHandler.Get)
		rates.POST("/refresh", ratesHandler.Refresh)
	}

	v1.GET("/transactions", analyticsHandler.ListTransactions)
	v1.GET("/analytics", analyticsHandler.Get)

	offline := v1.Group("/offline")
	{
		offline.POST("/save", offlineHandler.Save)
		offline.POST("/load", offlineHandler.Load)
	}

	return r
}
