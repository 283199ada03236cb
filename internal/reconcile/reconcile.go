package reconcile

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/propchain/propchain-api/internal/domain"
	"github.com/propchain/propchain-api/internal/logger"
	"github.com/propchain/propchain-api/internal/providers/ethereum"
	"github.com/propchain/propchain-api/internal/store"
	"github.com/propchain/propchain-api/internal/store/schema"
)

// View is the reconciled picture of one asset's holdings. When Authoritative
// is set the values came from the chain in this call; otherwise they are the
// cached record and Stale marks the degrade.
type View struct {
	Asset           *schema.Asset
	AvailableTokens int64
	Status          schema.AssetStatus
	Holders         []store.HolderInput
	Authoritative   bool
	Stale           bool
}

// IdentityResolver maps wallet addresses to known platform users
type IdentityResolver interface {
	GetUsersByWalletAddresses(ctx context.Context, addresses []string) (map[string]*schema.User, error)
}

// ReconciliationStore persists an authoritative view
type ReconciliationStore interface {
	ApplyReconciliation(ctx context.Context, input store.ReconciliationInput) error
}

// Syncer reconciles cached asset holdings against on-chain truth
type Syncer struct {
	chain      ethereum.ChainReader
	identities IdentityResolver
	store      ReconciliationStore
}

// NewSyncer creates an ownership reconciler
func NewSyncer(chain ethereum.ChainReader, identities IdentityResolver, s ReconciliationStore) *Syncer {
	return &Syncer{chain: chain, identities: identities, store: s}
}

// Reconcile builds a view of the asset's holdings. Untokenized assets get
// their cached record back unchanged. For tokenized assets the contract
// record and holder table are read concurrently; any chain failure degrades
// to the cached record flagged Stale, never a partial merge.
func (s *Syncer) Reconcile(ctx context.Context, asset *schema.Asset) (*View, error) {
	if !asset.Tokenized() {
		return cachedView(asset, false), nil
	}

	onChainID := *asset.OnChainID

	var (
		wg           sync.WaitGroup
		onChainAsset *domain.OnChainAsset
		distribution *domain.OwnershipDistribution
		assetErr     error
		distErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		onChainAsset, assetErr = s.chain.GetOnChainAsset(ctx, onChainID)
	}()
	go func() {
		defer wg.Done()
		distribution, distErr = s.chain.GetOwnershipDistribution(ctx, onChainID)
	}()
	wg.Wait()

	if assetErr != nil || distErr != nil {
		logger.WarnCtx(ctx, "ownership reconciliation degraded to cached record",
			zap.Int64("assetID", asset.ID),
			zap.Uint64("onChainID", onChainID),
			zap.NamedError("assetErr", assetErr),
			zap.NamedError("distributionErr", distErr),
		)
		return cachedView(asset, true), nil
	}

	if !distribution.BpsSumValid() {
		logger.WarnCtx(ctx, "on-chain ownership distribution does not sum to a full stake",
			zap.Int64("assetID", asset.ID),
			zap.Uint64("onChainID", onChainID),
			zap.Int64s("bps", distribution.BpsShares),
		)
	}

	// A contract reporting counts outside 0..totalTokens must never reach the
	// cache; serve the cached record instead, same as a failed read.
	if !onChainAsset.TotalTokens.IsInt64() || !onChainAsset.AvailableTokens.IsInt64() ||
		onChainAsset.AvailableTokens.Sign() < 0 ||
		onChainAsset.AvailableTokens.Cmp(onChainAsset.TotalTokens) > 0 {
		logger.WarnCtx(ctx, "on-chain token counts out of range, keeping cached record",
			zap.Int64("assetID", asset.ID),
			zap.Uint64("onChainID", onChainID),
			zap.String("totalTokens", onChainAsset.TotalTokens.String()),
			zap.String("availableTokens", onChainAsset.AvailableTokens.String()),
		)
		return cachedView(asset, true), nil
	}

	holders := s.buildHolders(ctx, onChainAsset, distribution)

	availableTokens := onChainAsset.AvailableTokens.Int64()
	status := schema.AssetStatusActive
	if availableTokens == 0 {
		status = schema.AssetStatusSold
	}

	return &View{
		Asset:           asset,
		AvailableTokens: availableTokens,
		Status:          status,
		Holders:         holders,
		Authoritative:   true,
	}, nil
}

// Apply persists an authoritative view. Applying a degraded view is refused
// so a chain outage can never overwrite the cache with itself.
func (s *Syncer) Apply(ctx context.Context, view *View) error {
	if !view.Authoritative {
		return errors.New("refusing to persist a non-authoritative view")
	}

	return s.store.ApplyReconciliation(ctx, store.ReconciliationInput{
		AssetID:         view.Asset.ID,
		AvailableTokens: view.AvailableTokens,
		Status:          view.Status,
		Holders:         view.Holders,
	})
}

// buildHolders derives holder rows from the on-chain distribution. Token
// amounts come from the bps share of the total supply; wallets that map to
// platform users get their identity attached.
func (s *Syncer) buildHolders(ctx context.Context, onChainAsset *domain.OnChainAsset, distribution *domain.OwnershipDistribution) []store.HolderInput {
	users, err := s.identities.GetUsersByWalletAddresses(ctx, distribution.Holders)
	if err != nil {
		// Identity resolution is best effort; holders stay anonymous
		logger.WarnCtx(ctx, "holder identity resolution failed", zap.Error(err))
		users = map[string]*schema.User{}
	}

	totalTokens := onChainAsset.TotalTokens.Int64()
	holders := make([]store.HolderInput, 0, len(distribution.Holders))
	for i, wallet := range distribution.Holders {
		bps := distribution.BpsShares[i]
		holder := store.HolderInput{
			WalletAddress: wallet,
			TokenAmount:   bps * totalTokens / domain.BpsDenominator,
			OwnershipBps:  bps,
		}
		if user, ok := users[wallet]; ok {
			holder.UserID = &user.ID
		}
		holders = append(holders, holder)
	}

	return holders
}

func cachedView(asset *schema.Asset, stale bool) *View {
	holders := make([]store.HolderInput, 0, len(asset.TokenHolders))
	for _, h := range asset.TokenHolders {
		holders = append(holders, store.HolderInput{
			WalletAddress: h.WalletAddress,
			UserID:        h.UserID,
			TokenAmount:   h.TokenAmount,
			OwnershipBps:  h.OwnershipBps,
		})
	}

	return &View{
		Asset:           asset,
		AvailableTokens: asset.AvailableTokens,
		Status:          asset.Status,
		Holders:         holders,
		Stale:           stale,
	}
}
