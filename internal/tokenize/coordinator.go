package tokenize

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/propchain/propchain-api/internal/adapter"
	"github.com/propchain/propchain-api/internal/domain"
	"github.com/propchain/propchain-api/internal/logger"
	"github.com/propchain/propchain-api/internal/providers/ethereum"
	"github.com/propchain/propchain-api/internal/store"
	"github.com/propchain/propchain-api/internal/store/schema"
)

// Input is a completed on-chain tokenization to record against an asset.
// The transaction was signed and submitted client-side; this service never
// holds keys.
type Input struct {
	OnChainID       uint64
	TransactionHash string
	MetadataHash    string
}

// AssetStore is the slice of the store the coordinator needs
type AssetStore interface {
	GetAssetByID(ctx context.Context, id int64) (*schema.Asset, error)
	MarkTokenized(ctx context.Context, input store.MarkTokenizedInput) error
}

// Coordinator drives an asset from off-chain-only to on-chain-backed
type Coordinator struct {
	store AssetStore
	chain ethereum.ChainReader
	clock adapter.Clock

	// confirmTx enables the advisory post-flight check that the referenced
	// transaction exists and did not fail before linkage is recorded
	confirmTx bool
}

// NewCoordinator creates a tokenization coordinator. When chain is non-nil
// and confirmTx is set, the referenced transaction is verified before the
// linkage is recorded.
func NewCoordinator(s AssetStore, chain ethereum.ChainReader, clock adapter.Clock, confirmTx bool) *Coordinator {
	return &Coordinator{store: s, chain: chain, clock: clock, confirmTx: confirmTx}
}

// Tokenize records on-chain linkage for an asset. The caller must be the
// asset's seller and the asset must not already be tokenized. The store
// update re-checks the precondition atomically, so a concurrent duplicate
// attempt loses with domain.ErrAlreadyTokenized rather than overwriting.
func (c *Coordinator) Tokenize(ctx context.Context, assetID int64, callerID int64, input Input) (*schema.Asset, error) {
	asset, err := c.store.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if asset.SellerID != callerID {
		return nil, domain.ErrNotSeller
	}
	if asset.Tokenized() {
		return nil, domain.ErrAlreadyTokenized
	}

	if c.confirmTx && c.chain != nil {
		if err := c.verifyTransaction(ctx, input.TransactionHash); err != nil {
			return nil, err
		}
	}

	err = c.store.MarkTokenized(ctx, store.MarkTokenizedInput{
		AssetID:         assetID,
		OnChainID:       input.OnChainID,
		TransactionHash: input.TransactionHash,
		MetadataHash:    input.MetadataHash,
		TokenizedAt:     c.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "asset tokenized",
		zap.Int64("assetID", assetID),
		zap.Uint64("onChainID", input.OnChainID),
		zap.String("txHash", input.TransactionHash),
	)

	return c.store.GetAssetByID(ctx, assetID)
}

// verifyTransaction checks that the referenced transaction is known to the
// chain and has not failed. An unreachable chain does not block recording,
// matching the trust-the-wallet submission flow, but a transaction the chain
// reports as reverted does.
func (c *Coordinator) verifyTransaction(ctx context.Context, hash string) error {
	state, err := c.chain.GetTransactionStatus(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			logger.WarnCtx(ctx, "tokenize transaction unknown to chain, recording anyway",
				zap.String("txHash", hash))
			return nil
		}
		logger.WarnCtx(ctx, "could not verify tokenize transaction",
			zap.String("txHash", hash), zap.Error(err))
		return nil
	}

	if state.Status == domain.TxStatusFailed {
		return domain.ErrTransactionFailed
	}

	return nil
}
