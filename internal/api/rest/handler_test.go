package rest_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propchain/propchain-api/internal/api/middleware"
	"github.com/propchain/propchain-api/internal/api/rest"
	"github.com/propchain/propchain-api/internal/api/shared/dto"
	apierrors "github.com/propchain/propchain-api/internal/api/shared/errors"
	"github.com/propchain/propchain-api/internal/logger"
	"github.com/propchain/propchain-api/internal/mocks"
	"github.com/propchain/propchain-api/internal/store/schema"
)

const testTxHash = "0xab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12"

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newRouter registers the handler's routes; when subject is non-empty every
// request carries an authenticated caller identity
func newRouter(h rest.Handler, subject string) *gin.Engine {
	router := gin.New()
	if subject != "" {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.AUTH_SUBJECT_KEY, subject)
			c.Next()
		})
	}

	router.GET("/assets", h.ListAssets)
	router.GET("/assets/:id", h.GetAsset)
	router.POST("/assets", h.CreateAsset)
	router.PUT("/assets/:id", h.UpdateAsset)
	router.GET("/assets/seller/:seller_id", h.ListSellerAssets)
	router.POST("/assets/:id/tokenize", h.TokenizeAsset)
	router.GET("/chain/price/quote", h.GetPriceQuote)
	router.GET("/chain/contract/info", h.GetContractInfo)
	router.GET("/chain/assets/:on_chain_id", h.GetOnChainAsset)
	router.POST("/chain/estimate/tokenize", h.EstimateTokenize)
	router.GET("/chain/transactions/:hash", h.GetTransaction)
	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	exec.EXPECT().ListAssets(gomock.Any(), gomock.Any()).Return(&dto.AssetListResponse{
		Assets: []dto.AssetResponse{{ID: 1, Title: "Hill Plot"}},
		Total:  1,
	}, nil)

	w := performJSON(router, http.MethodGet, "/assets?status=active&min_price=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AssetListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Hill Plot", resp.Assets[0].Title)
}

func TestListAssetsInvalidFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	tests := []struct {
		name  string
		query string
	}{
		{name: "bad status", query: "status=bogus"},
		{name: "bad property type", query: "property_type=castle"},
		{name: "negative price", query: "min_price=-5"},
		{name: "inverted range", query: "min_price=100&max_price=50"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := performJSON(router, http.MethodGet, "/assets?"+tc.query, nil)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func TestGetAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	exec.EXPECT().GetAsset(gomock.Any(), int64(42)).Return(&dto.AssetResponse{ID: 42, Stale: true}, nil)

	w := performJSON(router, http.MethodGet, "/assets/42", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AssetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.True(t, resp.Stale)
}

func TestGetAssetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	exec.EXPECT().GetAsset(gomock.Any(), int64(42)).Return(nil, nil)

	w := performJSON(router, http.MethodGet, "/assets/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAssetInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	w := performJSON(router, http.MethodGet, "/assets/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "7")

	exec.EXPECT().CreateAsset(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ interface{}, callerID int64, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
			assert.Equal(t, "Hill Plot", req.Title)
			return &dto.AssetResponse{ID: 1, SellerID: callerID, Title: req.Title}, nil
		})

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	_ = form.WriteField("title", "Hill Plot")
	_ = form.WriteField("description", "South-facing land parcel")
	_ = form.WriteField("property_type", "residential")
	_ = form.WriteField("total_tokens", "1000")
	_ = form.WriteField("price_per_token_usd", "50")
	_ = form.WriteField("location", `{"address":"1 Hill Rd","city":"Austin","state":"TX","country":"USA"}`)
	_ = form.WriteField("size", `{"value":2,"unit":"acres"}`)
	_ = form.WriteField("documents", `[{"name":"deed.pdf","hash":"QmDeed"}]`)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/assets", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AssetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.SellerID)
}

func TestCreateAssetWithoutCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	w := performJSON(router, http.MethodPost, "/assets", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateAssetForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "9")

	exec.EXPECT().UpdateAsset(gomock.Any(), int64(3), int64(9), gomock.Any()).
		Return(nil, apierrors.NewForbiddenError("Only the seller may update this asset"))

	title := "New Title"
	w := performJSON(router, http.MethodPut, "/assets/3", dto.UpdateAssetRequest{Title: &title})
	require.Equal(t, http.StatusForbidden, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, apierrors.ErrCodeForbidden, apiErr.Code)
}

func TestListSellerAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "7")

	exec.EXPECT().ListSellerAssets(gomock.Any(), int64(7)).Return(&dto.AssetListResponse{
		Assets: []dto.AssetResponse{{ID: 1, SellerID: 7, Status: schema.AssetStatusActive}},
		Total:  1,
	}, nil)

	w := performJSON(router, http.MethodGet, "/assets/seller/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestTokenizeAssetConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "7")

	exec.EXPECT().TokenizeAsset(gomock.Any(), int64(3), int64(7), gomock.Any()).
		Return(nil, apierrors.NewConflictError("Asset is already tokenized"))

	w := performJSON(router, http.MethodPost, "/assets/3/tokenize", dto.TokenizeAssetRequest{
		OnChainID:       11,
		TransactionHash: testTxHash,
		MetadataHash:    "QmMeta",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
}

func TestGetPriceQuoteUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	exec.EXPECT().GetPriceQuote(gomock.Any()).
		Return(nil, apierrors.NewUpstreamUnavailableError("Price oracle unavailable"))

	w := performJSON(router, http.MethodGet, "/chain/price/quote", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetContractInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	exec.EXPECT().GetContractInfo(gomock.Any()).Return(&dto.ContractInfoResponse{
		Address:  "0x1111111111111111111111111111111111111111",
		Network:  "Avalanche Fuji Testnet",
		ChainID:  43113,
		Deployed: true,
	}, nil)

	w := performJSON(router, http.MethodGet, "/chain/contract/info", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ContractInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Deployed)
	assert.Equal(t, int64(43113), resp.ChainID)
}

func TestGetOnChainAssetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	exec.EXPECT().GetOnChainAsset(gomock.Any(), uint64(99)).Return(nil, nil)

	w := performJSON(router, http.MethodGet, "/chain/assets/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEstimateTokenizeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "7")

	exec.EXPECT().EstimateTokenize(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.NewValidationError("invalid from address: nope"))

	w := performJSON(router, http.MethodPost, "/chain/estimate/tokenize", dto.EstimateTokenizeRequest{
		FromAddress:  "nope",
		MetadataHash: "QmMeta",
		TotalTokens:  100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetTransactionInvalidHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	w := performJSON(router, http.MethodGet, "/chain/transactions/nothex", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := newRouter(rest.NewHandler(true, exec), "")

	exec.EXPECT().GetTransaction(gomock.Any(), testTxHash).Return(&dto.TransactionResponse{
		Hash:   testTxHash,
		Status: "success",
	}, nil)

	w := performJSON(router, http.MethodGet, "/chain/transactions/"+testTxHash, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testTxHash, resp.Hash)
}
