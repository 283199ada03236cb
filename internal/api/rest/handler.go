package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/propchain/propchain-api/internal/api/middleware"
	"github.com/propchain/propchain-api/internal/api/shared/dto"
	"github.com/propchain/propchain-api/internal/api/shared/executor"
	internalTypes "github.com/propchain/propchain-api/internal/types"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListAssets retrieves asset listings with optional filters
	// GET /api/v1/assets?status=<status>&property_type=<type>&city=<substring>&min_price=<price>&max_price=<price>
	ListAssets(c *gin.Context)

	// GetAsset retrieves a single asset, reconciled against the chain when tokenized
	// GET /api/v1/assets/:id
	GetAsset(c *gin.Context)

	// CreateAsset creates a new asset listing (requires authentication)
	// POST /api/v1/assets (multipart form)
	CreateAsset(c *gin.Context)

	// UpdateAsset applies a partial update, seller only (requires authentication)
	// PUT /api/v1/assets/:id
	UpdateAsset(c *gin.Context)

	// ListSellerAssets retrieves all assets of one seller (requires authentication)
	// GET /api/v1/assets/seller/:seller_id
	ListSellerAssets(c *gin.Context)

	// TokenizeAsset records on-chain linkage after a successful tokenize transaction,
	// seller only (requires authentication)
	// POST /api/v1/assets/:id/tokenize
	TokenizeAsset(c *gin.Context)

	// GetPriceQuote retrieves the current native-currency USD price
	// GET /api/v1/chain/price/quote
	GetPriceQuote(c *gin.Context)

	// GetContractInfo retrieves the deployed contract's network details
	// GET /api/v1/chain/contract/info
	GetContractInfo(c *gin.Context)

	// GetOnChainAsset retrieves the contract record and ownership distribution
	// GET /api/v1/chain/assets/:on_chain_id
	GetOnChainAsset(c *gin.Context)

	// EstimateTokenize estimates the gas cost of tokenizing (requires authentication)
	// POST /api/v1/chain/estimate/tokenize
	EstimateTokenize(c *gin.Context)

	// GetTransaction retrieves the resolved state of a transaction
	// GET /api/v1/chain/transactions/:hash
	GetTransaction(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// ListAssets retrieves asset listings with optional filters
func (h *handler) ListAssets(c *gin.Context) {
	queryParams, err := ParseListAssetsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListAssets(c.Request.Context(), queryParams.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAsset retrieves a single asset by its ID
func (h *handler) GetAsset(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assetDTO, err := h.executor.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get asset")
		return
	}

	if assetDTO == nil {
		respondNotFound(c, "Asset not found")
		return
	}

	c.JSON(http.StatusOK, assetDTO)
}

// CreateAsset creates a new asset listing owned by the authenticated caller
func (h *handler) CreateAsset(c *gin.Context) {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		respondForbidden(c, err.Error())
		return
	}

	var req dto.CreateAssetRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid form data: %v", err))
		return
	}

	response, err := h.executor.CreateAsset(c.Request.Context(), callerID, req)
	if err != nil {
		respondError(c, err, "Failed to create asset")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// UpdateAsset applies a typed partial update to the caller's asset
func (h *handler) UpdateAsset(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, err := middleware.CallerID(c)
	if err != nil {
		respondForbidden(c, err.Error())
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.UpdateAsset(c.Request.Context(), id, callerID, req)
	if err != nil {
		respondError(c, err, "Failed to update asset")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListSellerAssets retrieves all assets of one seller with holder identities
func (h *handler) ListSellerAssets(c *gin.Context) {
	sellerID, ok := parseIDParam(c, "seller_id")
	if !ok {
		return
	}

	response, err := h.executor.ListSellerAssets(c.Request.Context(), sellerID)
	if err != nil {
		respondError(c, err, "Failed to list seller assets")
		return
	}

	c.JSON(http.StatusOK, response)
}

// TokenizeAsset records on-chain tokenization linkage for the caller's asset
func (h *handler) TokenizeAsset(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, err := middleware.CallerID(c)
	if err != nil {
		respondForbidden(c, err.Error())
		return
	}

	var req dto.TokenizeAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.TokenizeAsset(c.Request.Context(), id, callerID, req)
	if err != nil {
		respondError(c, err, "Failed to tokenize asset")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPriceQuote retrieves the current native-currency USD price
func (h *handler) GetPriceQuote(c *gin.Context) {
	response, err := h.executor.GetPriceQuote(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get price quote")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetContractInfo retrieves the deployed contract's network details
func (h *handler) GetContractInfo(c *gin.Context) {
	response, err := h.executor.GetContractInfo(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get contract info")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOnChainAsset retrieves the contract record and distribution for an asset
func (h *handler) GetOnChainAsset(c *gin.Context) {
	onChainID, err := strconv.ParseUint(c.Param("on_chain_id"), 10, 64)
	if err != nil || onChainID == 0 {
		respondBadRequest(c, "Invalid on-chain asset id")
		return
	}

	response, err := h.executor.GetOnChainAsset(c.Request.Context(), onChainID)
	if err != nil {
		respondError(c, err, "Failed to get on-chain asset")
		return
	}

	if response == nil {
		respondNotFound(c, "Asset not found on chain")
		return
	}

	c.JSON(http.StatusOK, response)
}

// EstimateTokenize estimates the gas cost of a prospective tokenize call
func (h *handler) EstimateTokenize(c *gin.Context) {
	var req dto.EstimateTokenizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.EstimateTokenize(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to estimate gas")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetTransaction retrieves the resolved state of an on-chain transaction
func (h *handler) GetTransaction(c *gin.Context) {
	hash := c.Param("hash")
	if !internalTypes.IsTransactionHash(hash) {
		respondBadRequest(c, "Invalid transaction hash")
		return
	}

	response, err := h.executor.GetTransaction(c.Request.Context(), hash)
	if err != nil {
		respondError(c, err, "Failed to get transaction")
		return
	}

	if response == nil {
		respondNotFound(c, "Transaction not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "propchain-api",
	})
}

// parseIDParam parses a positive integer path parameter, responding with a
// bad request when it is malformed
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		respondBadRequest(c, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return id, true
}
