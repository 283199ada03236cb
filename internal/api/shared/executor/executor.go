package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/propchain/propchain-api/internal/adapter"
	"github.com/propchain/propchain-api/internal/api/shared/dto"
	apierrors "github.com/propchain/propchain-api/internal/api/shared/errors"
	"github.com/propchain/propchain-api/internal/domain"
	"github.com/propchain/propchain-api/internal/logger"
	"github.com/propchain/propchain-api/internal/providers/ethereum"
	"github.com/propchain/propchain-api/internal/reconcile"
	"github.com/propchain/propchain-api/internal/store"
	"github.com/propchain/propchain-api/internal/tokenize"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListAssets retrieves assets matching the filter. Storage failures on
	// this public listing degrade to an empty list, never an error.
	ListAssets(ctx context.Context, filter store.AssetFilter) (*dto.AssetListResponse, error)

	// GetAsset retrieves a single asset, reconciled against on-chain truth
	// when tokenized. Returns nil when the asset does not exist.
	GetAsset(ctx context.Context, id int64) (*dto.AssetResponse, error)

	// CreateAsset creates a new asset listing owned by the caller
	CreateAsset(ctx context.Context, callerID int64, req dto.CreateAssetRequest) (*dto.AssetResponse, error)

	// UpdateAsset applies a typed partial update, seller only
	UpdateAsset(ctx context.Context, id int64, callerID int64, req dto.UpdateAssetRequest) (*dto.AssetResponse, error)

	// ListSellerAssets retrieves a seller's assets with holder identities
	ListSellerAssets(ctx context.Context, sellerID int64) (*dto.AssetListResponse, error)

	// TokenizeAsset records on-chain tokenization linkage, seller only
	TokenizeAsset(ctx context.Context, id int64, callerID int64, req dto.TokenizeAssetRequest) (*dto.AssetResponse, error)

	// GetPriceQuote retrieves the native-currency USD price from the oracle,
	// served from a short-lived cache and degrading to a stale cached quote
	// when the oracle is unreachable
	GetPriceQuote(ctx context.Context) (*dto.PriceQuoteResponse, error)

	// GetContractInfo retrieves the deployed contract's network details
	GetContractInfo(ctx context.Context) (*dto.ContractInfoResponse, error)

	// GetOnChainAsset retrieves the contract's record and ownership
	// distribution for a tokenized asset. Returns nil when not found on chain.
	GetOnChainAsset(ctx context.Context, onChainID uint64) (*dto.OnChainAssetResponse, error)

	// EstimateTokenize estimates the gas cost of a prospective tokenize call
	EstimateTokenize(ctx context.Context, req dto.EstimateTokenizeRequest) (*dto.GasEstimateResponse, error)

	// GetTransaction retrieves the resolved state of an on-chain transaction.
	// Returns nil when the transaction is unknown to the chain.
	GetTransaction(ctx context.Context, hash string) (*dto.TransactionResponse, error)
}

type executor struct {
	store       store.Store
	chain       ethereum.ChainReader
	estimator   ethereum.ChainEstimator
	coordinator *tokenize.Coordinator
	syncer      *reconcile.Syncer
	clock       adapter.Clock
	quoteTTL    time.Duration

	quoteMu        sync.Mutex
	cachedQuote    *domain.PriceQuote
	quoteFetchedAt time.Time
}

// NewExecutor creates the shared API executor
func NewExecutor(
	s store.Store,
	chain ethereum.ChainReader,
	estimator ethereum.ChainEstimator,
	coordinator *tokenize.Coordinator,
	syncer *reconcile.Syncer,
	clock adapter.Clock,
	quoteTTL time.Duration,
) Executor {
	return &executor{
		store:       s,
		chain:       chain,
		estimator:   estimator,
		coordinator: coordinator,
		syncer:      syncer,
		clock:       clock,
		quoteTTL:    quoteTTL,
	}
}

func (e *executor) ListAssets(ctx context.Context, filter store.AssetFilter) (*dto.AssetListResponse, error) {
	assets, err := e.store.ListAssets(ctx, filter)
	if err != nil {
		// Public marketplace listing never surfaces a storage failure
		logger.WarnCtx(ctx, "asset listing degraded to empty result", zap.Error(err))
		return &dto.AssetListResponse{Assets: []dto.AssetResponse{}}, nil
	}

	return dto.MapAssetsToDTO(assets), nil
}

func (e *executor) GetAsset(ctx context.Context, id int64) (*dto.AssetResponse, error) {
	asset, err := e.store.GetAssetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			return nil, nil
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get asset: %v", err))
	}

	if !asset.Tokenized() {
		return dto.MapAssetToDTO(asset), nil
	}

	view, err := e.syncer.Reconcile(ctx, asset)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to reconcile asset: %v", err))
	}

	if view.Stale {
		resp := dto.MapAssetToDTO(asset)
		resp.Stale = true
		return resp, nil
	}

	if view.Authoritative {
		if err := e.syncer.Apply(ctx, view); err != nil {
			// The view is still correct; only the cache refresh failed
			logger.ErrorCtx(ctx, fmt.Errorf("failed to persist reconciled holdings: %w", err),
				zap.Int64("assetID", asset.ID))
		} else if refreshed, err := e.store.GetAssetByID(ctx, id); err == nil {
			return dto.MapAssetToDTO(refreshed), nil
		}

		resp := dto.MapAssetToDTO(asset)
		resp.AvailableTokens = view.AvailableTokens
		resp.Status = view.Status
		return resp, nil
	}

	return dto.MapAssetToDTO(asset), nil
}

func (e *executor) CreateAsset(ctx context.Context, callerID int64, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	input, err := req.ToCreateInput(callerID)
	if err != nil {
		return nil, err
	}

	asset, err := e.store.CreateAsset(ctx, *input)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create asset: %v", err))
	}

	logger.InfoCtx(ctx, "asset listing created",
		zap.Int64("assetID", asset.ID),
		zap.Int64("sellerID", callerID),
	)

	return dto.MapAssetToDTO(asset), nil
}

func (e *executor) UpdateAsset(ctx context.Context, id int64, callerID int64, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := e.store.GetAssetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			return nil, apierrors.NewNotFoundError("Asset not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get asset: %v", err))
	}

	if asset.SellerID != callerID {
		return nil, apierrors.NewForbiddenError("Only the seller may update this asset")
	}

	patch, err := req.ToPatch()
	if err != nil {
		return nil, err
	}

	updated, err := e.store.UpdateAsset(ctx, id, *patch)
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			return nil, apierrors.NewNotFoundError("Asset not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update asset: %v", err))
	}

	return dto.MapAssetToDTO(updated), nil
}

func (e *executor) ListSellerAssets(ctx context.Context, sellerID int64) (*dto.AssetListResponse, error) {
	assets, err := e.store.ListAssetsBySeller(ctx, sellerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list seller assets: %v", err))
	}

	return dto.MapAssetsToDTO(assets), nil
}

func (e *executor) TokenizeAsset(ctx context.Context, id int64, callerID int64, req dto.TokenizeAssetRequest) (*dto.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	asset, err := e.coordinator.Tokenize(ctx, id, callerID, tokenize.Input{
		OnChainID:       req.OnChainID,
		TransactionHash: req.TransactionHash,
		MetadataHash:    req.MetadataHash,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAssetNotFound):
			return nil, apierrors.NewNotFoundError("Asset not found")
		case errors.Is(err, domain.ErrNotSeller):
			return nil, apierrors.NewForbiddenError("Only the seller may tokenize this asset")
		case errors.Is(err, domain.ErrAlreadyTokenized):
			return nil, apierrors.NewConflictError("Asset is already tokenized")
		case errors.Is(err, domain.ErrTransactionFailed):
			return nil, apierrors.NewConflictError("Referenced transaction failed on chain")
		default:
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to record tokenization: %v", err))
		}
	}

	return dto.MapAssetToDTO(asset), nil
}

func (e *executor) GetPriceQuote(ctx context.Context) (*dto.PriceQuoteResponse, error) {
	e.quoteMu.Lock()
	defer e.quoteMu.Unlock()

	if e.cachedQuote != nil && e.clock.Since(e.quoteFetchedAt) < e.quoteTTL {
		return dto.MapPriceQuoteToDTO(e.cachedQuote), nil
	}

	quote, err := e.chain.GetUSDQuote(ctx)
	if err != nil {
		if e.cachedQuote != nil {
			logger.WarnCtx(ctx, "price quote degraded to cached value", zap.Error(err))
			resp := dto.MapPriceQuoteToDTO(e.cachedQuote)
			resp.Stale = true
			return resp, nil
		}
		return nil, apierrors.NewUpstreamUnavailableError("Price oracle unavailable")
	}

	e.cachedQuote = quote
	e.quoteFetchedAt = e.clock.Now()

	return dto.MapPriceQuoteToDTO(quote), nil
}

func (e *executor) GetContractInfo(ctx context.Context) (*dto.ContractInfoResponse, error) {
	deployed, err := e.chain.IsContractDeployed(ctx)
	if err != nil {
		return nil, apierrors.NewUpstreamUnavailableError("Chain unavailable")
	}

	return &dto.ContractInfoResponse{
		Address:  e.chain.ContractAddress(),
		Network:  networkName(e.chain.ChainID()),
		ChainID:  e.chain.ChainID(),
		Deployed: deployed,
	}, nil
}

func (e *executor) GetOnChainAsset(ctx context.Context, onChainID uint64) (*dto.OnChainAssetResponse, error) {
	asset, err := e.chain.GetOnChainAsset(ctx, onChainID)
	if err != nil {
		if errors.Is(err, domain.ErrOnChainAssetNotFound) {
			return nil, nil
		}
		return nil, apierrors.NewUpstreamUnavailableError("Chain unavailable")
	}

	distribution, err := e.chain.GetOwnershipDistribution(ctx, onChainID)
	if err != nil {
		return nil, apierrors.NewUpstreamUnavailableError("Chain unavailable")
	}

	return dto.MapOnChainAssetToDTO(asset, distribution), nil
}

func (e *executor) EstimateTokenize(ctx context.Context, req dto.EstimateTokenizeRequest) (*dto.GasEstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	estimate, err := e.estimator.EstimateTokenizeCost(ctx, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrContractNotDeployed):
			return nil, apierrors.NewNotFoundError("Contract not deployed")
		case errors.Is(err, domain.ErrEstimationFailed):
			return nil, apierrors.NewBadRequestError("Gas estimation failed", err.Error())
		default:
			return nil, apierrors.NewUpstreamUnavailableError("Chain unavailable")
		}
	}

	return dto.MapGasEstimateToDTO(estimate), nil
}

func (e *executor) GetTransaction(ctx context.Context, hash string) (*dto.TransactionResponse, error) {
	state, err := e.chain.GetTransactionStatus(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, nil
		}
		return nil, apierrors.NewUpstreamUnavailableError("Chain unavailable")
	}

	return dto.MapTransactionToDTO(state), nil
}

// networkName labels the chains the contract is expected to live on
func networkName(chainID int64) string {
	switch chainID {
	case 43113:
		return "Avalanche Fuji Testnet"
	case 43114:
		return "Avalanche C-Chain"
	default:
		return fmt.Sprintf("chain %d", chainID)
	}
}
