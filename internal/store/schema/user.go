package schema

import (
	"time"
)

// User represents the users table. Registration and profile management belong
// to the identity service; this service only reads users to resolve seller and
// holder identities.
type User struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the user's display name
	Name string `gorm:"column:name;not null;type:text"`
	// Email is the user's email address
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// WalletAddress is the user's on-chain address (lowercase hex), if linked
	WalletAddress *string `gorm:"column:wallet_address;uniqueIndex;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
