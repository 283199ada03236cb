package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/propchain/propchain-api/internal/domain"
	"github.com/propchain/propchain-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero settings fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateAsset persists a new asset with availableTokens = totalTokens
func (s *pgStore) CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error) {
	asset := schema.Asset{
		SellerID:             input.SellerID,
		Title:                input.Title,
		Description:          input.Description,
		Address:              input.Address,
		City:                 input.City,
		State:                input.State,
		Country:              input.Country,
		ZipCode:              input.ZipCode,
		Latitude:             input.Latitude,
		Longitude:            input.Longitude,
		SizeValue:            input.SizeValue,
		SizeUnit:             input.SizeUnit,
		PropertyType:         input.PropertyType,
		Amenities:            input.Amenities,
		Documents:            input.Documents,
		Images:               input.Images,
		TotalTokens:          input.TotalTokens,
		AvailableTokens:      input.TotalTokens,
		PricePerTokenUSD:     input.PricePerTokenUSD,
		RentPerTokenPerMonth: input.RentPerTokenPerMonth,
		Status:               schema.AssetStatusDraft,
		VerificationStatus:   schema.VerificationStatusPending,
	}

	if err := s.db.WithContext(ctx).Create(&asset).Error; err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return &asset, nil
}

// GetAssetByID retrieves an asset with seller and holder identities preloaded
func (s *pgStore) GetAssetByID(ctx context.Context, id int64) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).
		Preload("Seller").
		Preload("TokenHolders").
		Preload("TokenHolders.User").
		Where("id = ?", id).
		First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &asset, nil
}

// ListAssets retrieves assets matching the filter, newest first
func (s *pgStore) ListAssets(ctx context.Context, filter AssetFilter) ([]*schema.Asset, error) {
	query := s.db.WithContext(ctx).Model(&schema.Asset{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.PropertyType != nil {
		query = query.Where("property_type = ?", *filter.PropertyType)
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+escapeLike(filter.City)+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price_per_token_usd >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price_per_token_usd <= ?", *filter.MaxPrice)
	}

	var assets []*schema.Asset
	err := query.
		Preload("Seller").
		Order("created_at DESC").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return assets, nil
}

// ListAssetsBySeller retrieves all assets owned by a seller, newest first
func (s *pgStore) ListAssetsBySeller(ctx context.Context, sellerID int64) ([]*schema.Asset, error) {
	var assets []*schema.Asset
	err := s.db.WithContext(ctx).
		Preload("Seller").
		Preload("TokenHolders").
		Preload("TokenHolders.User").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets by seller: %w", err)
	}

	return assets, nil
}

// UpdateAsset applies a partial update under a row lock and refreshes UpdatedAt
func (s *pgStore) UpdateAsset(ctx context.Context, id int64, patch AssetPatch) (*schema.Asset, error) {
	var updated schema.Asset
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset schema.Asset
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&asset).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAssetNotFound
			}
			return fmt.Errorf("failed to lock asset: %w", err)
		}

		updates := patchUpdates(patch)
		if len(updates) == 0 {
			updated = asset
			return nil
		}
		updates["updated_at"] = time.Now()

		if err := tx.Model(&asset).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}

		updated = asset
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// patchUpdates converts a typed patch into a gorm updates map. Only fields
// present in the patch appear in the map.
func patchUpdates(patch AssetPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.City != nil {
		updates["city"] = *patch.City
	}
	if patch.State != nil {
		updates["state"] = *patch.State
	}
	if patch.Country != nil {
		updates["country"] = *patch.Country
	}
	if patch.ZipCode != nil {
		updates["zip_code"] = *patch.ZipCode
	}
	if patch.Latitude != nil {
		updates["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		updates["longitude"] = *patch.Longitude
	}
	if patch.SizeValue != nil {
		updates["size_value"] = *patch.SizeValue
	}
	if patch.SizeUnit != nil {
		updates["size_unit"] = *patch.SizeUnit
	}
	if patch.PropertyType != nil {
		updates["property_type"] = *patch.PropertyType
	}
	if patch.Amenities != nil {
		updates["amenities"] = patch.Amenities
	}
	if patch.Documents != nil {
		updates["documents"] = patch.Documents
	}
	if patch.Images != nil {
		updates["images"] = patch.Images
	}
	if patch.PricePerTokenUSD != nil {
		updates["price_per_token_usd"] = *patch.PricePerTokenUSD
	}
	if patch.RentPerTokenPerMonth != nil {
		updates["rent_per_token_per_month"] = *patch.RentPerTokenPerMonth
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	return updates
}

// MarkTokenized atomically records on-chain linkage and activates the asset.
// The precondition is re-checked in the WHERE clause so a concurrent
// double-tokenize loses cleanly instead of overwriting linkage.
func (s *pgStore) MarkTokenized(ctx context.Context, input MarkTokenizedInput) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Where("id = ? AND on_chain_id IS NULL", input.AssetID).
		Updates(map[string]interface{}{
			"on_chain_id":      input.OnChainID,
			"transaction_hash": input.TransactionHash,
			"metadata_hash":    input.MetadataHash,
			"tokenized_at":     input.TokenizedAt,
			"status":           schema.AssetStatusActive,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark asset tokenized: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Either the asset does not exist or it is already tokenized
		var count int64
		if err := s.db.WithContext(ctx).
			Model(&schema.Asset{}).
			Where("id = ?", input.AssetID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check asset existence: %w", err)
		}
		if count == 0 {
			return domain.ErrAssetNotFound
		}
		return domain.ErrAlreadyTokenized
	}

	return nil
}

// ApplyReconciliation transactionally replaces the cached holder set and
// updates availableTokens/status from an authoritative on-chain view
func (s *pgStore) ApplyReconciliation(ctx context.Context, input ReconciliationInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Asset{}).
			Where("id = ?", input.AssetID).
			Updates(map[string]interface{}{
				"available_tokens": input.AvailableTokens,
				"status":           input.Status,
				"updated_at":       time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update asset: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrAssetNotFound
		}

		if err := tx.Where("asset_id = ?", input.AssetID).
			Delete(&schema.TokenHolder{}).Error; err != nil {
			return fmt.Errorf("failed to clear token holders: %w", err)
		}

		if len(input.Holders) == 0 {
			return nil
		}

		holders := make([]schema.TokenHolder, 0, len(input.Holders))
		for _, h := range input.Holders {
			holders = append(holders, schema.TokenHolder{
				AssetID:       input.AssetID,
				WalletAddress: strings.ToLower(h.WalletAddress),
				UserID:        h.UserID,
				TokenAmount:   h.TokenAmount,
				OwnershipBps:  h.OwnershipBps,
			})
		}

		if err := tx.Create(&holders).Error; err != nil {
			return fmt.Errorf("failed to insert token holders: %w", err)
		}

		return nil
	})
}

// GetUserByID retrieves a user by internal ID
func (s *pgStore) GetUserByID(ctx context.Context, id int64) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUsersByWalletAddresses maps lowercase wallet addresses to known users
func (s *pgStore) GetUsersByWalletAddresses(ctx context.Context, addresses []string) (map[string]*schema.User, error) {
	if len(addresses) == 0 {
		return map[string]*schema.User{}, nil
	}

	lowered := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		lowered = append(lowered, strings.ToLower(addr))
	}

	var users []*schema.User
	err := s.db.WithContext(ctx).
		Where("LOWER(wallet_address) IN ?", lowered).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get users by wallet addresses: %w", err)
	}

	result := make(map[string]*schema.User, len(users))
	for _, user := range users {
		if user.WalletAddress != nil {
			result[strings.ToLower(*user.WalletAddress)] = user
		}
	}

	return result, nil
}

// escapeLike escapes LIKE wildcards in user-supplied substrings
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
