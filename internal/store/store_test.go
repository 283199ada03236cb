package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/propchain/propchain-api/internal/domain"
	"github.com/propchain/propchain-api/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// seedTestUser inserts a user directly; registration is out of scope for the
// store interface so tests seed users through the raw handle
func seedTestUser(t *testing.T, db *gorm.DB, name, email string, wallet *string) *schema.User {
	user := schema.User{
		Name:          name,
		Email:         email,
		WalletAddress: wallet,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// buildTestAsset creates a test asset input
func buildTestAsset(sellerID int64, title string, price float64) CreateAssetInput {
	amenities, _ := json.Marshal([]string{"water", "road access"})
	documents, _ := json.Marshal([]map[string]string{
		{"name": "deed.pdf", "hash": "QmXoYpizjW3WknFiJnKLwHCnL72vedxjQkDDP1mXWo6uco"},
	})

	return CreateAssetInput{
		SellerID:         sellerID,
		Title:            title,
		Description:      "A test property listing",
		Address:          "12 Test Lane",
		City:             "Austin",
		State:            "TX",
		Country:          "USA",
		ZipCode:          "78701",
		SizeValue:        2.5,
		SizeUnit:         schema.SizeUnitAcres,
		PropertyType:     schema.PropertyTypeResidential,
		Amenities:        amenities,
		Documents:        documents,
		TotalTokens:      1000,
		PricePerTokenUSD: price,
	}
}

// =============================================================================
// Store Tests
// =============================================================================

// RunStoreTests runs the full store test suite against any Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) (Store, *gorm.DB)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store, *gorm.DB)
	}{
		{"CreateAsset", testCreateAsset},
		{"GetAssetByID", testGetAssetByID},
		{"ListAssetsFilter", testListAssetsFilter},
		{"ListAssetsBySeller", testListAssetsBySeller},
		{"UpdateAsset", testUpdateAsset},
		{"MarkTokenized", testMarkTokenized},
		{"ApplyReconciliation", testApplyReconciliation},
		{"Users", testUsers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, db := initDB(t)
			tt.fn(t, s, db)
		})
	}
}

func testCreateAsset(t *testing.T, s Store, db *gorm.DB) {
	ctx := context.Background()
	seller := seedTestUser(t, db, "Alice", "alice@example.com", nil)

	asset, err := s.CreateAsset(ctx, buildTestAsset(seller.ID, "Lakeside Plot", 50))
	require.NoError(t, err)
	require.NotNil(t, asset)

	assert.NotZero(t, asset.ID)
	assert.Equal(t, seller.ID, asset.SellerID)
	assert.Equal(t, "Lakeside Plot", asset.Title)
	assert.Equal(t, int64(1000), asset.TotalTokens)
	assert.Equal(t, int64(1000), asset.AvailableTokens, "available tokens start equal to total")
	assert.Equal(t, schema.AssetStatusDraft, asset.Status)
	assert.Equal(t, schema.VerificationStatusPending, asset.VerificationStatus)
	assert.Nil(t, asset.OnChainID)
	assert.Nil(t, asset.TransactionHash)
	assert.Nil(t, asset.TokenizedAt)
	assert.Equal(t, float64(50000), asset.TotalValue())
}

func testGetAssetByID(t *testing.T, s Store, db *gorm.DB) {
	ctx := context.Background()
	wallet := "0xAbC1234567890123456789012345678901234567"
	seller := seedTestUser(t, db, "Bob", "bob@example.com", &wallet)

	created, err := s.CreateAsset(ctx, buildTestAsset(seller.ID, "Hillside Farm", 75))
	require.NoError(t, err)

	got, err := s.GetAssetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Seller)
	assert.Equal(t, "Bob", got.Seller.Name)
	assert.Empty(t, got.TokenHolders)

	_, err = s.GetAssetByID(ctx, created.ID+9999)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func testListAssetsFilter(t *testing.T, s Store, db *gorm.DB) {
	ctx := context.Background()
	seller := seedTestUser(t, db, "Carol", "carol@example.com", nil)

	cheap := buildTestAsset(seller.ID, "Cheap Plot", 50)
	mid := buildTestAsset(seller.ID, "Mid Plot", 100)
	mid.City = "San Antonio"
	mid.PropertyType = schema.PropertyTypeCommercial
	expensive := buildTestAsset(seller.ID, "Expensive Plot", 200)

	for _, input := range []CreateAssetInput{cheap, mid, expensive} {
		_, err := s.CreateAsset(ctx, input)
		require.NoError(t, err)
	}

	// Empty filter returns everything
	all, err := s.ListAssets(ctx, AssetFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Price range conjunction
	minPrice, maxPrice := 75.0, 150.0
	ranged, err := s.ListAssets(ctx, AssetFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "Mid Plot", ranged[0].Title)

	// Case-insensitive city substring
	byCity, err := s.ListAssets(ctx, AssetFilter{City: "anton"})
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, "San Antonio", byCity[0].City)

	// Property type
	commercial := schema.PropertyTypeCommercial
	byType, err := s.ListAssets(ctx, AssetFilter{PropertyType: &commercial})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Mid Plot", byType[0].Title)

	// Status filter matches nothing until an asset is activated
	active := schema.AssetStatusActive
	byStatus, err := s.ListAssets(ctx, AssetFilter{Status: &active})
	require.NoError(t, err)
	assert.Empty(t, byStatus)
}

func testListAssetsBySeller(t *testing.T, s Store, db *gorm.DB) {
	ctx := context.Background()
	seller := seedTestUser(t, db, "Dave", "dave@example.com", nil)
	other := seedTestUser(t, db, "Erin", "erin@example.com", nil)

	_, err := s.CreateAsset(ctx, buildTestAsset(seller.ID, "Plot One", 10))
	require.NoError(t, err)
	_, err = s.CreateAsset(ctx, buildTestAsset(seller.ID, "Plot Two", 20))
	require.NoError(t, err)
	_, err = s.CreateAsset(ctx, buildTestAsset(other.ID, "Other Plot", 30))
	require.NoError(t, err)

	assets, err := s.ListAssetsBySeller(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, assets, 2)
	for _, a := range assets {
		assert.Equal(t, seller.ID, a.SellerID)
	}
}

func testUpdateAsset(t *testing.T, s Store, db *gorm.DB) {
	ctx := context.Background()
	seller := seedTestUser(t, db, "Frank", "frank@example.com", nil)

	created, err := s.CreateAsset(ctx, buildTestAsset(seller.ID, "Old Title", 40))
	require.NoError(t, err)

	newTitle := "New Title"
	newPrice := 45.0
	updated, err := s.UpdateAsset(ctx, created.ID, AssetPatch{
		Title:            &newTitle,
		PricePerTokenUSD: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := s.GetAssetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", got.Title)
	assert.Equal(t, 45.0, got.PricePerTokenUSD)
	assert.Equal(t, "A test property listing", got.Description, "unpatched fields unchanged")
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt) || got.UpdatedAt.Equal(created.UpdatedAt))

	_, err = s.UpdateAsset(ctx, created.ID+9999, AssetPatch{Title: &newTitle})
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func testMarkTokenized(t *testing.T, s Store, db *gorm.DB) {
	ctx := context.Background()
	seller := seedTestUser(t, db, "Grace", "grace@example.com", nil)

	created, err := s.CreateAsset(ctx, buildTestAsset(seller.ID, "Tokenize Me", 60))
	require.NoError(t, err)

	input := MarkTokenizedInput{
		AssetID:         created.ID,
		OnChainID:       7,
		TransactionHash: "0xdeadbeef",
		MetadataHash:    "QmMeta",
		TokenizedAt:     time.Now().UTC(),
	}
	require.NoError(t, s.MarkTokenized(ctx, input))

	got, err := s.GetAssetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.OnChainID)
	assert.Equal(t, uint64(7), *got.OnChainID)
	require.NotNil(t, got.TransactionHash)
	assert.Equal(t, "0xdeadbeef", *got.TransactionHash)
	require.NotNil(t, got.MetadataHash)
	assert.Equal(t, "QmMeta", *got.MetadataHash)
	assert.NotNil(t, got.TokenizedAt)
	assert.Equal(t, schema.AssetStatusActive, got.Status)
	assert.True(t, got.Tokenized())

	// Second attempt loses the precondition re-check, linkage untouched
	input.OnChainID = 8
	err = s.MarkTokenized(ctx, input)
	assert.ErrorIs(t, err, domain.ErrAlreadyTokenized)

	got, err = s.GetAssetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), *got.OnChainID)

	err = s.MarkTokenized(ctx, MarkTokenizedInput{AssetID: created.ID + 9999, OnChainID: 9})
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func testApplyReconciliation(t *testing.T, s Store, db *gorm.DB) {
	ctx := context.Background()
	wallet := "0x1111111111111111111111111111111111111111"
	seller := seedTestUser(t, db, "Heidi", "heidi@example.com", nil)
	holder := seedTestUser(t, db, "Ivan", "ivan@example.com", &wallet)

	created, err := s.CreateAsset(ctx, buildTestAsset(seller.ID, "Reconciled Plot", 80))
	require.NoError(t, err)

	err = s.ApplyReconciliation(ctx, ReconciliationInput{
		AssetID:         created.ID,
		AvailableTokens: 400,
		Status:          schema.AssetStatusActive,
		Holders: []HolderInput{
			{WalletAddress: "0x1111111111111111111111111111111111111111", UserID: &holder.ID, TokenAmount: 400, OwnershipBps: 4000},
			{WalletAddress: "0x2222222222222222222222222222222222222222", TokenAmount: 200, OwnershipBps: 2000},
		},
	})
	require.NoError(t, err)

	got, err := s.GetAssetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(400), got.AvailableTokens)
	require.Len(t, got.TokenHolders, 2)

	byWallet := map[string]schema.TokenHolder{}
	for _, h := range got.TokenHolders {
		byWallet[h.WalletAddress] = h
	}
	known := byWallet["0x1111111111111111111111111111111111111111"]
	require.NotNil(t, known.UserID)
	assert.Equal(t, holder.ID, *known.UserID)
	assert.Equal(t, int64(4000), known.OwnershipBps)
	require.NotNil(t, known.User)
	assert.Equal(t, "Ivan", known.User.Name)
	unknown := byWallet["0x2222222222222222222222222222222222222222"]
	assert.Nil(t, unknown.UserID)

	// A later reconciliation replaces the holder set wholesale; sell-out
	// flips status to sold
	err = s.ApplyReconciliation(ctx, ReconciliationInput{
		AssetID:         created.ID,
		AvailableTokens: 0,
		Status:          schema.AssetStatusSold,
		Holders: []HolderInput{
			{WalletAddress: "0x3333333333333333333333333333333333333333", TokenAmount: 1000, OwnershipBps: 10000},
		},
	})
	require.NoError(t, err)

	got, err = s.GetAssetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.AvailableTokens)
	assert.Equal(t, schema.AssetStatusSold, got.Status)
	require.Len(t, got.TokenHolders, 1)
	assert.Equal(t, "0x3333333333333333333333333333333333333333", got.TokenHolders[0].WalletAddress)

	err = s.ApplyReconciliation(ctx, ReconciliationInput{AssetID: created.ID + 9999})
	assert.True(t, errors.Is(err, domain.ErrAssetNotFound))
}

func testUsers(t *testing.T, s Store, db *gorm.DB) {
	ctx := context.Background()
	wallet := "0xAbCdEf1234567890123456789012345678901234"
	user := seedTestUser(t, db, "Judy", "judy@example.com", &wallet)

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Judy", got.Name)

	_, err = s.GetUserByID(ctx, user.ID+9999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// Lookup is case-insensitive on the wallet address
	users, err := s.GetUsersByWalletAddresses(ctx, []string{
		"0xABCDEF1234567890123456789012345678901234",
		"0x9999999999999999999999999999999999999999",
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	found, ok := users["0xabcdef1234567890123456789012345678901234"]
	require.True(t, ok)
	assert.Equal(t, user.ID, found.ID)

	empty, err := s.GetUsersByWalletAddresses(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
