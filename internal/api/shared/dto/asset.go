package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/propchain/propchain-api/internal/store/schema"
)

// UserResponse represents a resolved platform identity (seller or holder)
type UserResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	WalletAddress *string `json:"wallet_address"`
}

// LocationResponse represents an asset's location
type LocationResponse struct {
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	ZipCode   string   `json:"zip_code,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// SizeResponse represents an asset's physical size
type SizeResponse struct {
	Value float64         `json:"value"`
	Unit  schema.SizeUnit `json:"unit"`
}

// TokenHolderResponse represents one cached holder row, with the platform
// identity attached when the wallet maps to a known user
type TokenHolderResponse struct {
	WalletAddress string        `json:"wallet_address"`
	TokenAmount   int64         `json:"token_amount"`
	OwnershipBps  int64         `json:"ownership_bps"`
	User          *UserResponse `json:"user,omitempty"`
}

// AssetResponse represents a land asset listing
type AssetResponse struct {
	ID                   int64                     `json:"id"`
	SellerID             int64                     `json:"seller_id"`
	Title                string                    `json:"title"`
	Description          string                    `json:"description"`
	Location             LocationResponse          `json:"location"`
	Size                 SizeResponse              `json:"size"`
	PropertyType         schema.PropertyType       `json:"property_type"`
	Amenities            datatypes.JSON            `json:"amenities,omitempty"`
	Documents            datatypes.JSON            `json:"documents,omitempty"`
	Images               datatypes.JSON            `json:"images,omitempty"`
	TotalTokens          int64                     `json:"total_tokens"`
	AvailableTokens      int64                     `json:"available_tokens"`
	PricePerTokenUSD     float64                   `json:"price_per_token_usd"`
	RentPerTokenPerMonth *float64                  `json:"rent_per_token_per_month,omitempty"`
	TotalValue           float64                   `json:"total_value"`
	Status               schema.AssetStatus        `json:"status"`
	VerificationStatus   schema.VerificationStatus `json:"verification_status"`
	OnChainID            *uint64                   `json:"on_chain_id,omitempty"`
	TransactionHash      *string                   `json:"transaction_hash,omitempty"`
	MetadataHash         *string                   `json:"metadata_hash,omitempty"`
	TokenizedAt          *time.Time                `json:"tokenized_at,omitempty"`
	// Stale marks a response served from the cached record because the chain
	// could not be reached for reconciliation
	Stale     bool      `json:"stale,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Seller       *UserResponse         `json:"seller,omitempty"`
	TokenHolders []TokenHolderResponse `json:"token_holders,omitempty"`
}

// AssetListResponse represents a list of assets
type AssetListResponse struct {
	Assets []AssetResponse `json:"items"`
	Total  int             `json:"total"`
}

// MapUserToDTO maps a schema.User to UserResponse
func MapUserToDTO(user *schema.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		WalletAddress: user.WalletAddress,
	}
}

// MapTokenHolderToDTO maps a schema.TokenHolder to TokenHolderResponse
func MapTokenHolderToDTO(holder *schema.TokenHolder) TokenHolderResponse {
	return TokenHolderResponse{
		WalletAddress: holder.WalletAddress,
		TokenAmount:   holder.TokenAmount,
		OwnershipBps:  holder.OwnershipBps,
		User:          MapUserToDTO(holder.User),
	}
}

// MapAssetToDTO maps a schema.Asset to AssetResponse
func MapAssetToDTO(asset *schema.Asset) *AssetResponse {
	if asset == nil {
		return nil
	}

	resp := &AssetResponse{
		ID:          asset.ID,
		SellerID:    asset.SellerID,
		Title:       asset.Title,
		Description: asset.Description,
		Location: LocationResponse{
			Address:   asset.Address,
			City:      asset.City,
			State:     asset.State,
			Country:   asset.Country,
			ZipCode:   asset.ZipCode,
			Latitude:  asset.Latitude,
			Longitude: asset.Longitude,
		},
		Size: SizeResponse{
			Value: asset.SizeValue,
			Unit:  asset.SizeUnit,
		},
		PropertyType:         asset.PropertyType,
		Amenities:            asset.Amenities,
		Documents:            asset.Documents,
		Images:               asset.Images,
		TotalTokens:          asset.TotalTokens,
		AvailableTokens:      asset.AvailableTokens,
		PricePerTokenUSD:     asset.PricePerTokenUSD,
		RentPerTokenPerMonth: asset.RentPerTokenPerMonth,
		TotalValue:           asset.TotalValue(),
		Status:               asset.Status,
		VerificationStatus:   asset.VerificationStatus,
		OnChainID:            asset.OnChainID,
		TransactionHash:      asset.TransactionHash,
		MetadataHash:         asset.MetadataHash,
		TokenizedAt:          asset.TokenizedAt,
		CreatedAt:            asset.CreatedAt,
		UpdatedAt:            asset.UpdatedAt,
		Seller:               MapUserToDTO(asset.Seller),
	}

	for i := range asset.TokenHolders {
		resp.TokenHolders = append(resp.TokenHolders, MapTokenHolderToDTO(&asset.TokenHolders[i]))
	}

	return resp
}

// MapAssetsToDTO maps a slice of assets to AssetListResponse
func MapAssetsToDTO(assets []*schema.Asset) *AssetListResponse {
	resp := &AssetListResponse{
		Assets: make([]AssetResponse, 0, len(assets)),
		Total:  len(assets),
	}
	for _, asset := range assets {
		resp.Assets = append(resp.Assets, *MapAssetToDTO(asset))
	}
	return resp
}
