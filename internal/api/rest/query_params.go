package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/propchain/propchain-api/internal/store"
	"github.com/propchain/propchain-api/internal/store/schema"
)

// ListAssetsQueryParams holds query parameters for GET /assets
type ListAssetsQueryParams struct {
	Status       string   `form:"status"`
	PropertyType string   `form:"property_type"`
	City         string   `form:"city"`
	MinPrice     *float64 `form:"min_price"`
	MaxPrice     *float64 `form:"max_price"`
}

// ParseListAssetsQuery parses the listing filter query parameters
func ParseListAssetsQuery(c *gin.Context) (*ListAssetsQueryParams, error) {
	var params ListAssetsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Validate validates the query parameters
func (p *ListAssetsQueryParams) Validate() error {
	if p.Status != "" {
		switch schema.AssetStatus(p.Status) {
		case schema.AssetStatusDraft, schema.AssetStatusActive, schema.AssetStatusSold, schema.AssetStatusCancelled:
		default:
			return fmt.Errorf("invalid status: %s", p.Status)
		}
	}

	if p.PropertyType != "" {
		switch schema.PropertyType(p.PropertyType) {
		case schema.PropertyTypeResidential, schema.PropertyTypeCommercial,
			schema.PropertyTypeAgricultural, schema.PropertyTypeIndustrial,
			schema.PropertyTypeMixed:
		default:
			return fmt.Errorf("invalid property type: %s", p.PropertyType)
		}
	}

	if p.MinPrice != nil && *p.MinPrice < 0 {
		return fmt.Errorf("min_price must not be negative")
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		return fmt.Errorf("max_price must not be negative")
	}
	if p.MinPrice != nil && p.MaxPrice != nil && *p.MinPrice > *p.MaxPrice {
		return fmt.Errorf("min_price must not exceed max_price")
	}

	return nil
}

// ToFilter converts the query parameters to a store filter
func (p *ListAssetsQueryParams) ToFilter() store.AssetFilter {
	filter := store.AssetFilter{
		City:     p.City,
		MinPrice: p.MinPrice,
		MaxPrice: p.MaxPrice,
	}
	if p.Status != "" {
		status := schema.AssetStatus(p.Status)
		filter.Status = &status
	}
	if p.PropertyType != "" {
		propertyType := schema.PropertyType(p.PropertyType)
		filter.PropertyType = &propertyType
	}
	return filter
}
