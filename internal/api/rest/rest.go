package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/propchain/propchain-api/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Marketplace endpoints (public read access)
		v1.GET("/assets", handler.ListAssets)
		v1.GET("/assets/:id", handler.GetAsset)

		// Seller endpoints (require authentication)
		v1.POST("/assets", middleware.Auth(authCfg), handler.CreateAsset)
		v1.PUT("/assets/:id", middleware.Auth(authCfg), handler.UpdateAsset)
		v1.GET("/assets/seller/:seller_id", middleware.Auth(authCfg), handler.ListSellerAssets)
		v1.POST("/assets/:id/tokenize", middleware.Auth(authCfg), handler.TokenizeAsset)

		// Chain endpoints (public read access)
		v1.GET("/chain/price/quote", handler.GetPriceQuote)
		v1.GET("/chain/contract/info", handler.GetContractInfo)
		v1.GET("/chain/assets/:on_chain_id", handler.GetOnChainAsset)
		v1.GET("/chain/transactions/:hash", handler.GetTransaction)

		// Gas estimation (requires authentication)
		v1.POST("/chain/estimate/tokenize", middleware.Auth(authCfg), handler.EstimateTokenize)
	}
}
