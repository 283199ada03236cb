package schema

import (
	"time"
)

// TokenHolder represents the token_holders table - a cached snapshot of one
// wallet's holding in an asset's on-chain ownership distribution. Rows are
// replaced wholesale on reconciliation, never edited directly by sellers.
type TokenHolder struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AssetID references the asset this holding belongs to
	AssetID int64 `gorm:"column:asset_id;not null;uniqueIndex:idx_token_holders_asset_wallet,priority:1"`
	// WalletAddress is the holder's on-chain address (lowercase hex)
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;uniqueIndex:idx_token_holders_asset_wallet,priority:2"`
	// UserID is set when the wallet maps to a known platform user
	UserID *int64 `gorm:"column:user_id"`
	// TokenAmount is the number of tokens held, derived from the on-chain share
	TokenAmount int64 `gorm:"column:token_amount;not null"`
	// OwnershipBps is the holder's share in basis points (10000 = 100%)
	OwnershipBps int64 `gorm:"column:ownership_bps;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	User *User `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the TokenHolder model
func (TokenHolder) TableName() string {
	return "token_holders"
}
