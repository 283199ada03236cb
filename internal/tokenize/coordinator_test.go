package tokenize

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propchain/propchain-api/internal/domain"
	"github.com/propchain/propchain-api/internal/logger"
	"github.com/propchain/propchain-api/internal/mocks"
	"github.com/propchain/propchain-api/internal/store"
	"github.com/propchain/propchain-api/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const (
	testAssetID  = int64(42)
	testSellerID = int64(7)
)

func testInput() Input {
	return Input{
		OnChainID:       3,
		TransactionHash: "0xdeadbeef",
		MetadataHash:    "QmMetaHash",
	}
}

func draftAsset() *schema.Asset {
	return &schema.Asset{
		ID:              testAssetID,
		SellerID:        testSellerID,
		Title:           "Test Plot",
		TotalTokens:     1000,
		AvailableTokens: 1000,
		Status:          schema.AssetStatusDraft,
	}
}

func TestTokenize(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	coordinator := NewCoordinator(st, nil, clock, false)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	onChainID := uint64(3)
	txHash := "0xdeadbeef"
	metaHash := "QmMetaHash"
	tokenized := draftAsset()
	tokenized.OnChainID = &onChainID
	tokenized.TransactionHash = &txHash
	tokenized.MetadataHash = &metaHash
	tokenized.TokenizedAt = &now
	tokenized.Status = schema.AssetStatusActive

	gomock.InOrder(
		st.EXPECT().GetAssetByID(gomock.Any(), testAssetID).Return(draftAsset(), nil),
		clock.EXPECT().Now().Return(now),
		st.EXPECT().MarkTokenized(gomock.Any(), store.MarkTokenizedInput{
			AssetID:         testAssetID,
			OnChainID:       onChainID,
			TransactionHash: txHash,
			MetadataHash:    metaHash,
			TokenizedAt:     now,
		}).Return(nil),
		st.EXPECT().GetAssetByID(gomock.Any(), testAssetID).Return(tokenized, nil),
	)

	asset, err := coordinator.Tokenize(context.Background(), testAssetID, testSellerID, testInput())
	require.NoError(t, err)
	assert.Equal(t, schema.AssetStatusActive, asset.Status)
	require.NotNil(t, asset.OnChainID)
	assert.Equal(t, onChainID, *asset.OnChainID)
}

func TestTokenizeNotSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	coordinator := NewCoordinator(st, nil, clock, false)

	st.EXPECT().GetAssetByID(gomock.Any(), testAssetID).Return(draftAsset(), nil)

	_, err := coordinator.Tokenize(context.Background(), testAssetID, testSellerID+1, testInput())
	assert.ErrorIs(t, err, domain.ErrNotSeller)
}

func TestTokenizeAlreadyTokenized(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	coordinator := NewCoordinator(st, nil, clock, false)

	onChainID := uint64(9)
	asset := draftAsset()
	asset.OnChainID = &onChainID

	st.EXPECT().GetAssetByID(gomock.Any(), testAssetID).Return(asset, nil)

	_, err := coordinator.Tokenize(context.Background(), testAssetID, testSellerID, testInput())
	assert.ErrorIs(t, err, domain.ErrAlreadyTokenized)
}

func TestTokenizeAssetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	coordinator := NewCoordinator(st, nil, clock, false)

	st.EXPECT().GetAssetByID(gomock.Any(), testAssetID).Return(nil, domain.ErrAssetNotFound)

	_, err := coordinator.Tokenize(context.Background(), testAssetID, testSellerID, testInput())
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestTokenizeConcurrentLoser(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	coordinator := NewCoordinator(st, nil, clock, false)

	// The load sees an untokenized asset, but a concurrent request wins the
	// conditional update first
	st.EXPECT().GetAssetByID(gomock.Any(), testAssetID).Return(draftAsset(), nil)
	clock.EXPECT().Now().Return(time.Now())
	st.EXPECT().MarkTokenized(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyTokenized)

	_, err := coordinator.Tokenize(context.Background(), testAssetID, testSellerID, testInput())
	assert.ErrorIs(t, err, domain.ErrAlreadyTokenized)
}

func TestTokenizeConfirmsTransaction(t *testing.T) {
	t.Run("failed transaction blocks recording", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockStore(ctrl)
		chain := mocks.NewMockChainReader(ctrl)
		clock := mocks.NewMockClock(ctrl)
		coordinator := NewCoordinator(st, chain, clock, true)

		st.EXPECT().GetAssetByID(gomock.Any(), testAssetID).Return(draftAsset(), nil)
		chain.EXPECT().GetTransactionStatus(gomock.Any(), "0xdeadbeef").
			Return(&domain.TransactionState{Status: domain.TxStatusFailed}, nil)

		_, err := coordinator.Tokenize(context.Background(), testAssetID, testSellerID, testInput())
		assert.ErrorIs(t, err, domain.ErrTransactionFailed)
	})

	t.Run("chain unavailability does not block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockStore(ctrl)
		chain := mocks.NewMockChainReader(ctrl)
		clock := mocks.NewMockClock(ctrl)
		coordinator := NewCoordinator(st, chain, clock, true)

		gomock.InOrder(
			st.EXPECT().GetAssetByID(gomock.Any(), testAssetID).Return(draftAsset(), nil),
			chain.EXPECT().GetTransactionStatus(gomock.Any(), "0xdeadbeef").
				Return(nil, errors.New("chain unavailable: connection refused")),
			clock.EXPECT().Now().Return(time.Now()),
			st.EXPECT().MarkTokenized(gomock.Any(), gomock.Any()).Return(nil),
			st.EXPECT().GetAssetByID(gomock.Any(), testAssetID).Return(draftAsset(), nil),
		)

		_, err := coordinator.Tokenize(context.Background(), testAssetID, testSellerID, testInput())
		assert.NoError(t, err)
	})
}
