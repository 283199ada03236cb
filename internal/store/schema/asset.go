package schema

import (
	"time"

	"gorm.io/datatypes"
)

// PropertyType categorizes the underlying real-estate asset
type PropertyType string

const (
	// PropertyTypeResidential represents residential property (houses, apartments)
	PropertyTypeResidential PropertyType = "residential"
	// PropertyTypeCommercial represents commercial property (offices, retail)
	PropertyTypeCommercial PropertyType = "commercial"
	// PropertyTypeAgricultural represents agricultural land
	PropertyTypeAgricultural PropertyType = "agricultural"
	// PropertyTypeIndustrial represents industrial property
	PropertyTypeIndustrial PropertyType = "industrial"
	// PropertyTypeMixed represents mixed-use property
	PropertyTypeMixed PropertyType = "mixed"
)

// AssetStatus represents the asset sale lifecycle state
type AssetStatus string

const (
	// AssetStatusDraft is the initial state before tokenization
	AssetStatusDraft AssetStatus = "draft"
	// AssetStatusActive means the asset is tokenized and tokens are on sale
	AssetStatusActive AssetStatus = "active"
	// AssetStatusSold means all tokens have been sold
	AssetStatusSold AssetStatus = "sold"
	// AssetStatusCancelled is a terminal non-deleting state
	AssetStatusCancelled AssetStatus = "cancelled"
)

// VerificationStatus represents the off-chain document verification state
type VerificationStatus string

const (
	// VerificationStatusPending means verification has not completed
	VerificationStatusPending VerificationStatus = "pending"
	// VerificationStatusVerified means documents were verified
	VerificationStatusVerified VerificationStatus = "verified"
	// VerificationStatusRejected means verification failed
	VerificationStatusRejected VerificationStatus = "rejected"
)

// SizeUnit is the measurement unit for the asset's physical size
type SizeUnit string

const (
	SizeUnitSqft     SizeUnit = "sqft"
	SizeUnitSqm      SizeUnit = "sqm"
	SizeUnitAcres    SizeUnit = "acres"
	SizeUnitHectares SizeUnit = "hectares"
)

// Asset represents the assets table - the canonical off-chain record of a
// tokenizable land/property listing. On-chain linkage fields (OnChainID,
// TransactionHash, MetadataHash, TokenizedAt) are all nil until tokenization
// succeeds and are set together in a single update.
type Asset struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// SellerID is the off-chain user who may mutate this asset; immutable after creation
	SellerID int64 `gorm:"column:seller_id;not null;index"`

	// Descriptive fields
	Title       string `gorm:"column:title;not null;type:text"`
	Description string `gorm:"column:description;not null;type:text"`

	// Location hierarchy, flattened to columns
	Address   string   `gorm:"column:address;not null;type:text"`
	City      string   `gorm:"column:city;not null;type:text;index"`
	State     string   `gorm:"column:state;not null;type:text"`
	Country   string   `gorm:"column:country;not null;type:text"`
	ZipCode   string   `gorm:"column:zip_code;type:text"`
	Latitude  *float64 `gorm:"column:latitude"`
	Longitude *float64 `gorm:"column:longitude"`

	// Physical size
	SizeValue float64  `gorm:"column:size_value;not null"`
	SizeUnit  SizeUnit `gorm:"column:size_unit;not null;type:text;default:sqft"`

	PropertyType PropertyType `gorm:"column:property_type;not null;type:text;index"`

	// Amenities is a free-form JSON array of strings
	Amenities datatypes.JSON `gorm:"column:amenities;type:jsonb"`
	// Documents is a JSON array of {name, hash} references populated by the upload collaborator
	Documents datatypes.JSON `gorm:"column:documents;type:jsonb"`
	// Images is a JSON array of {name, hash} references
	Images datatypes.JSON `gorm:"column:images;type:jsonb"`

	// Economics. TotalTokens is fixed at creation; AvailableTokens is a cache
	// of on-chain truth once the asset is tokenized.
	TotalTokens          int64    `gorm:"column:total_tokens;not null"`
	AvailableTokens      int64    `gorm:"column:available_tokens;not null"`
	PricePerTokenUSD     float64  `gorm:"column:price_per_token_usd;not null;index"`
	RentPerTokenPerMonth *float64 `gorm:"column:rent_per_token_per_month"`

	// Lifecycle
	Status             AssetStatus        `gorm:"column:status;not null;type:text;default:draft;index"`
	VerificationStatus VerificationStatus `gorm:"column:verification_status;not null;type:text;default:pending"`
	VerificationNotes  *string            `gorm:"column:verification_notes;type:text"`

	// On-chain linkage, nil until tokenization succeeds
	OnChainID       *uint64    `gorm:"column:on_chain_id;uniqueIndex"`
	TransactionHash *string    `gorm:"column:transaction_hash;type:text"`
	MetadataHash    *string    `gorm:"column:metadata_hash;type:text"`
	TokenizedAt     *time.Time `gorm:"column:tokenized_at"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();index"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Seller       *User         `gorm:"foreignKey:SellerID"`
	TokenHolders []TokenHolder `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}

// Tokenized reports whether the asset has an on-chain backing record
func (a *Asset) Tokenized() bool {
	return a.OnChainID != nil
}

// TotalValue returns the derived total sale value in USD. It is never stored.
func (a *Asset) TotalValue() float64 {
	return float64(a.TotalTokens) * a.PricePerTokenUSD
}
