package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/propchain/propchain-api/internal/store/schema"
)

// AssetFilter is a conjunction of optional listing filters. The zero value
// matches all assets.
type AssetFilter struct {
	Status       *schema.AssetStatus
	PropertyType *schema.PropertyType
	// City matches as a case-insensitive substring
	City     string
	MinPrice *float64
	MaxPrice *float64
}

// CreateAssetInput holds the fields required to create a new asset.
// AvailableTokens is always initialized to TotalTokens.
type CreateAssetInput struct {
	SellerID             int64
	Title                string
	Description          string
	Address              string
	City                 string
	State                string
	Country              string
	ZipCode              string
	Latitude             *float64
	Longitude            *float64
	SizeValue            float64
	SizeUnit             schema.SizeUnit
	PropertyType         schema.PropertyType
	Amenities            datatypes.JSON
	Documents            datatypes.JSON
	Images               datatypes.JSON
	TotalTokens          int64
	PricePerTokenUSD     float64
	RentPerTokenPerMonth *float64
}

// AssetPatch is a typed partial update. Identity and tokenization linkage
// fields are not representable here, so they cannot be patched.
type AssetPatch struct {
	Title                *string
	Description          *string
	Address              *string
	City                 *string
	State                *string
	Country              *string
	ZipCode              *string
	Latitude             *float64
	Longitude            *float64
	SizeValue            *float64
	SizeUnit             *schema.SizeUnit
	PropertyType         *schema.PropertyType
	Amenities            datatypes.JSON
	Documents            datatypes.JSON
	Images               datatypes.JSON
	PricePerTokenUSD     *float64
	RentPerTokenPerMonth *float64
	Status               *schema.AssetStatus
}

// MarkTokenizedInput holds the on-chain linkage recorded when an asset is
// tokenized. All fields are written together in a single conditional update.
type MarkTokenizedInput struct {
	AssetID         int64
	OnChainID       uint64
	TransactionHash string
	MetadataHash    string
	TokenizedAt     time.Time
}

// HolderInput is one reconciled token holder row
type HolderInput struct {
	WalletAddress string
	UserID        *int64
	TokenAmount   int64
	OwnershipBps  int64
}

// ReconciliationInput is an authoritative on-chain view to persist: the new
// available token count, the derived status, and the full replacement holder
// set.
type ReconciliationInput struct {
	AssetID         int64
	AvailableTokens int64
	Status          schema.AssetStatus
	Holders         []HolderInput
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateAsset persists a new asset with availableTokens = totalTokens
	CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error)
	// GetAssetByID retrieves an asset with seller and holder identities
	// preloaded. Returns domain.ErrAssetNotFound when no such asset exists.
	GetAssetByID(ctx context.Context, id int64) (*schema.Asset, error)
	// ListAssets retrieves assets matching the filter, newest first
	ListAssets(ctx context.Context, filter AssetFilter) ([]*schema.Asset, error)
	// ListAssetsBySeller retrieves all assets owned by a seller, newest first,
	// with holder identities preloaded
	ListAssetsBySeller(ctx context.Context, sellerID int64) ([]*schema.Asset, error)
	// UpdateAsset applies a partial update under a row lock and refreshes
	// UpdatedAt. Returns domain.ErrAssetNotFound when no such asset exists.
	UpdateAsset(ctx context.Context, id int64, patch AssetPatch) (*schema.Asset, error)
	// MarkTokenized atomically records on-chain linkage and activates the
	// asset. Returns domain.ErrAlreadyTokenized when the asset already carries
	// an on-chain id.
	MarkTokenized(ctx context.Context, input MarkTokenizedInput) error
	// ApplyReconciliation transactionally replaces the cached holder set and
	// updates availableTokens/status from an authoritative on-chain view
	ApplyReconciliation(ctx context.Context, input ReconciliationInput) error
	// GetUserByID retrieves a user. Returns domain.ErrUserNotFound when missing.
	GetUserByID(ctx context.Context, id int64) (*schema.User, error)
	// GetUsersByWalletAddresses maps lowercase wallet addresses to known users.
	// Unknown addresses are simply absent from the result.
	GetUsersByWalletAddresses(ctx context.Context, addresses []string) (map[string]*schema.User, error)
}
