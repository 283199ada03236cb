package dto

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/propchain/propchain-api/internal/api/shared/constants"
	apierrors "github.com/propchain/propchain-api/internal/api/shared/errors"
	"github.com/propchain/propchain-api/internal/domain"
	"github.com/propchain/propchain-api/internal/store"
	"github.com/propchain/propchain-api/internal/store/schema"
	internalTypes "github.com/propchain/propchain-api/internal/types"
)

// LocationPayload is the JSON-encoded location object of a multipart create
// or an update request body
type LocationPayload struct {
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	ZipCode   string   `json:"zip_code"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Validate validates the location payload
func (p *LocationPayload) Validate() error {
	if strings.TrimSpace(p.Address) == "" {
		return apierrors.NewValidationError("location.address is required")
	}
	if strings.TrimSpace(p.City) == "" {
		return apierrors.NewValidationError("location.city is required")
	}
	if strings.TrimSpace(p.State) == "" {
		return apierrors.NewValidationError("location.state is required")
	}
	if strings.TrimSpace(p.Country) == "" {
		return apierrors.NewValidationError("location.country is required")
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		return apierrors.NewValidationError("location.latitude must be between -90 and 90")
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		return apierrors.NewValidationError("location.longitude must be between -180 and 180")
	}
	return nil
}

// SizePayload is the JSON-encoded size object of a multipart create or an
// update request body
type SizePayload struct {
	Value float64         `json:"value"`
	Unit  schema.SizeUnit `json:"unit"`
}

// Validate validates the size payload. An empty unit defaults to sqft.
func (p *SizePayload) Validate() error {
	if p.Value <= 0 {
		return apierrors.NewValidationError("size.value must be positive")
	}
	if p.Unit == "" {
		p.Unit = schema.SizeUnitSqft
	}
	if !validSizeUnit(p.Unit) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid size unit: %s", p.Unit))
	}
	return nil
}

// DocumentPayload is one uploaded-document reference with an externally
// assigned content hash. ID is assigned server-side when the reference is
// first stored.
type DocumentPayload struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Hash string `json:"hash"`
}

// CreateAssetRequest represents the multipart form for creating an asset
// listing. Structured fields (location, size, amenities, images, documents)
// arrive as JSON-encoded strings alongside the scalar form fields.
type CreateAssetRequest struct {
	Title                string   `form:"title"`
	Description          string   `form:"description"`
	PropertyType         string   `form:"property_type"`
	TotalTokens          int64    `form:"total_tokens"`
	PricePerTokenUSD     float64  `form:"price_per_token_usd"`
	RentPerTokenPerMonth *float64 `form:"rent_per_token_per_month"`
	Location             string   `form:"location"`
	Size                 string   `form:"size"`
	Amenities            string   `form:"amenities"`
	Images               string   `form:"images"`
	Documents            string   `form:"documents"`
}

// ToCreateInput validates the request and converts it to a store input
func (r *CreateAssetRequest) ToCreateInput(sellerID int64) (*store.CreateAssetInput, error) {
	if strings.TrimSpace(r.Title) == "" {
		return nil, apierrors.NewValidationError("title is required")
	}
	if len(r.Title) > constants.MAX_TITLE_LENGTH {
		return nil, apierrors.NewValidationError(fmt.Sprintf("title must be at most %d characters", constants.MAX_TITLE_LENGTH))
	}
	if strings.TrimSpace(r.Description) == "" {
		return nil, apierrors.NewValidationError("description is required")
	}
	if len(r.Description) > constants.MAX_DESCRIPTION_LENGTH {
		return nil, apierrors.NewValidationError(fmt.Sprintf("description must be at most %d characters", constants.MAX_DESCRIPTION_LENGTH))
	}
	if !validPropertyType(schema.PropertyType(r.PropertyType)) {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid property type: %s", r.PropertyType))
	}
	if r.TotalTokens < 1 {
		return nil, apierrors.NewValidationError("total_tokens must be at least 1")
	}
	if r.PricePerTokenUSD < 0 {
		return nil, apierrors.NewValidationError("price_per_token_usd must not be negative")
	}
	if r.RentPerTokenPerMonth != nil && *r.RentPerTokenPerMonth < 0 {
		return nil, apierrors.NewValidationError("rent_per_token_per_month must not be negative")
	}

	var location LocationPayload
	if err := json.Unmarshal([]byte(r.Location), &location); err != nil {
		return nil, apierrors.NewValidationError("location must be a valid JSON object")
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}

	var size SizePayload
	if err := json.Unmarshal([]byte(r.Size), &size); err != nil {
		return nil, apierrors.NewValidationError("size must be a valid JSON object")
	}
	if err := size.Validate(); err != nil {
		return nil, err
	}

	amenities, err := parseAmenities(r.Amenities)
	if err != nil {
		return nil, err
	}

	images, err := parseJSONArray("images", r.Images, constants.MAX_IMAGES_PER_ASSET)
	if err != nil {
		return nil, err
	}

	documents, err := parseDocuments(r.Documents)
	if err != nil {
		return nil, err
	}

	return &store.CreateAssetInput{
		SellerID:             sellerID,
		Title:                r.Title,
		Description:          r.Description,
		Address:              location.Address,
		City:                 location.City,
		State:                location.State,
		Country:              location.Country,
		ZipCode:              location.ZipCode,
		Latitude:             location.Latitude,
		Longitude:            location.Longitude,
		SizeValue:            size.Value,
		SizeUnit:             size.Unit,
		PropertyType:         schema.PropertyType(r.PropertyType),
		Amenities:            amenities,
		Documents:            documents,
		Images:               images,
		TotalTokens:          r.TotalTokens,
		PricePerTokenUSD:     r.PricePerTokenUSD,
		RentPerTokenPerMonth: r.RentPerTokenPerMonth,
	}, nil
}

// UpdateAssetRequest represents a typed partial update. Only present fields
// are applied; identity and tokenization linkage fields are not updatable.
type UpdateAssetRequest struct {
	Title                *string           `json:"title"`
	Description          *string           `json:"description"`
	Location             *LocationPayload  `json:"location"`
	Size                 *SizePayload      `json:"size"`
	PropertyType         *string           `json:"property_type"`
	Amenities            []string          `json:"amenities"`
	Images               json.RawMessage   `json:"images"`
	Documents            []DocumentPayload `json:"documents"`
	PricePerTokenUSD     *float64          `json:"price_per_token_usd"`
	RentPerTokenPerMonth *float64          `json:"rent_per_token_per_month"`
	Status               *string           `json:"status"`
}

// ToPatch validates the request and converts it to a store patch
func (r *UpdateAssetRequest) ToPatch() (*store.AssetPatch, error) {
	patch := &store.AssetPatch{}

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return nil, apierrors.NewValidationError("title must not be empty")
		}
		if len(*r.Title) > constants.MAX_TITLE_LENGTH {
			return nil, apierrors.NewValidationError(fmt.Sprintf("title must be at most %d characters", constants.MAX_TITLE_LENGTH))
		}
		patch.Title = r.Title
	}

	if r.Description != nil {
		if strings.TrimSpace(*r.Description) == "" {
			return nil, apierrors.NewValidationError("description must not be empty")
		}
		if len(*r.Description) > constants.MAX_DESCRIPTION_LENGTH {
			return nil, apierrors.NewValidationError(fmt.Sprintf("description must be at most %d characters", constants.MAX_DESCRIPTION_LENGTH))
		}
		patch.Description = r.Description
	}

	if r.Location != nil {
		if err := r.Location.Validate(); err != nil {
			return nil, err
		}
		patch.Address = &r.Location.Address
		patch.City = &r.Location.City
		patch.State = &r.Location.State
		patch.Country = &r.Location.Country
		patch.ZipCode = &r.Location.ZipCode
		patch.Latitude = r.Location.Latitude
		patch.Longitude = r.Location.Longitude
	}

	if r.Size != nil {
		if err := r.Size.Validate(); err != nil {
			return nil, err
		}
		patch.SizeValue = &r.Size.Value
		patch.SizeUnit = &r.Size.Unit
	}

	if r.PropertyType != nil {
		propertyType := schema.PropertyType(*r.PropertyType)
		if !validPropertyType(propertyType) {
			return nil, apierrors.NewValidationError(fmt.Sprintf("invalid property type: %s", *r.PropertyType))
		}
		patch.PropertyType = &propertyType
	}

	if r.Amenities != nil {
		if len(r.Amenities) > constants.MAX_AMENITIES_PER_ASSET {
			return nil, apierrors.NewValidationError(fmt.Sprintf("maximum %d amenities allowed", constants.MAX_AMENITIES_PER_ASSET))
		}
		encoded, err := json.Marshal(r.Amenities)
		if err != nil {
			return nil, apierrors.NewValidationError("amenities must be a valid array of strings")
		}
		patch.Amenities = datatypes.JSON(encoded)
	}

	if r.Images != nil {
		images, err := parseJSONArray("images", string(r.Images), constants.MAX_IMAGES_PER_ASSET)
		if err != nil {
			return nil, err
		}
		patch.Images = images
	}

	if r.Documents != nil {
		documents, err := encodeDocuments(r.Documents)
		if err != nil {
			return nil, err
		}
		patch.Documents = documents
	}

	if r.PricePerTokenUSD != nil {
		if *r.PricePerTokenUSD < 0 {
			return nil, apierrors.NewValidationError("price_per_token_usd must not be negative")
		}
		patch.PricePerTokenUSD = r.PricePerTokenUSD
	}

	if r.RentPerTokenPerMonth != nil {
		if *r.RentPerTokenPerMonth < 0 {
			return nil, apierrors.NewValidationError("rent_per_token_per_month must not be negative")
		}
		patch.RentPerTokenPerMonth = r.RentPerTokenPerMonth
	}

	if r.Status != nil {
		status := schema.AssetStatus(*r.Status)
		if status != schema.AssetStatusDraft && status != schema.AssetStatusCancelled {
			return nil, apierrors.NewValidationError(fmt.Sprintf("status can only be set to %s or %s", schema.AssetStatusDraft, schema.AssetStatusCancelled))
		}
		patch.Status = &status
	}

	return patch, nil
}

// TokenizeAssetRequest represents the request body for recording on-chain
// tokenization linkage
type TokenizeAssetRequest struct {
	OnChainID       uint64 `json:"on_chain_id"`
	TransactionHash string `json:"transaction_hash"`
	MetadataHash    string `json:"metadata_hash"`
}

// Validate validates the request body
func (r *TokenizeAssetRequest) Validate() error {
	if r.OnChainID == 0 {
		return apierrors.NewValidationError("on_chain_id is required")
	}
	if !internalTypes.IsTransactionHash(r.TransactionHash) {
		return apierrors.NewValidationError("transaction_hash must be a 32-byte hex hash")
	}
	if strings.TrimSpace(r.MetadataHash) == "" {
		return apierrors.NewValidationError("metadata_hash is required")
	}
	return nil
}

// EstimateTokenizeRequest represents the request body for a tokenization gas
// estimate
type EstimateTokenizeRequest struct {
	FromAddress          string `json:"from_address"`
	MetadataHash         string `json:"metadata_hash"`
	TotalTokens          int64  `json:"total_tokens"`
	PricePerTokenUSD     int64  `json:"price_per_token_usd"`
	RentPerTokenPerMonth *int64 `json:"rent_per_token_per_month"`
}

// Validate validates the request body
func (r *EstimateTokenizeRequest) Validate() error {
	if !internalTypes.IsEthereumAddress(r.FromAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid from address: %s", r.FromAddress))
	}
	if strings.TrimSpace(r.MetadataHash) == "" {
		return apierrors.NewValidationError("metadata_hash is required")
	}
	if r.TotalTokens < 1 {
		return apierrors.NewValidationError("total_tokens must be at least 1")
	}
	if r.PricePerTokenUSD < 0 {
		return apierrors.NewValidationError("price_per_token_usd must not be negative")
	}
	if r.RentPerTokenPerMonth != nil && *r.RentPerTokenPerMonth < 0 {
		return apierrors.NewValidationError("rent_per_token_per_month must not be negative")
	}
	return nil
}

// ToParams converts the request to chain call parameters
func (r *EstimateTokenizeRequest) ToParams() domain.TokenizeParams {
	params := domain.TokenizeParams{
		FromAddress:      r.FromAddress,
		MetadataHash:     r.MetadataHash,
		TotalTokens:      big.NewInt(r.TotalTokens),
		PricePerTokenUSD: big.NewInt(r.PricePerTokenUSD),
	}
	if r.RentPerTokenPerMonth != nil {
		params.RentPerTokenPerMonth = big.NewInt(*r.RentPerTokenPerMonth)
	}
	return params
}

func validPropertyType(t schema.PropertyType) bool {
	switch t {
	case schema.PropertyTypeResidential, schema.PropertyTypeCommercial,
		schema.PropertyTypeAgricultural, schema.PropertyTypeIndustrial,
		schema.PropertyTypeMixed:
		return true
	}
	return false
}

func validSizeUnit(u schema.SizeUnit) bool {
	switch u {
	case schema.SizeUnitSqft, schema.SizeUnitSqm, schema.SizeUnitAcres, schema.SizeUnitHectares:
		return true
	}
	return false
}

// parseAmenities decodes a JSON array of strings, defaulting to empty
func parseAmenities(raw string) (datatypes.JSON, error) {
	if strings.TrimSpace(raw) == "" {
		raw = "[]"
	}
	var amenities []string
	if err := json.Unmarshal([]byte(raw), &amenities); err != nil {
		return nil, apierrors.NewValidationError("amenities must be a valid JSON array of strings")
	}
	if len(amenities) > constants.MAX_AMENITIES_PER_ASSET {
		return nil, apierrors.NewValidationError(fmt.Sprintf("maximum %d amenities allowed", constants.MAX_AMENITIES_PER_ASSET))
	}
	encoded, _ := json.Marshal(amenities)
	return datatypes.JSON(encoded), nil
}

// parseJSONArray decodes a free-form JSON array field, defaulting to empty
func parseJSONArray(field, raw string, maxItems int) (datatypes.JSON, error) {
	if strings.TrimSpace(raw) == "" {
		raw = "[]"
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("%s must be a valid JSON array", field))
	}
	if len(items) > maxItems {
		return nil, apierrors.NewValidationError(fmt.Sprintf("maximum %d %s allowed", maxItems, field))
	}
	return datatypes.JSON([]byte(raw)), nil
}

// parseDocuments decodes and validates the uploaded-document references
func parseDocuments(raw string) (datatypes.JSON, error) {
	if strings.TrimSpace(raw) == "" {
		raw = "[]"
	}
	var documents []DocumentPayload
	if err := json.Unmarshal([]byte(raw), &documents); err != nil {
		return nil, apierrors.NewValidationError("documents must be a valid JSON array of {name, hash} objects")
	}
	return encodeDocuments(documents)
}

func encodeDocuments(documents []DocumentPayload) (datatypes.JSON, error) {
	if len(documents) > constants.MAX_DOCUMENTS_PER_ASSET {
		return nil, apierrors.NewValidationError(fmt.Sprintf("maximum %d documents allowed", constants.MAX_DOCUMENTS_PER_ASSET))
	}
	for i := range documents {
		if strings.TrimSpace(documents[i].Name) == "" {
			return nil, apierrors.NewValidationError("every document requires a name")
		}
		if strings.TrimSpace(documents[i].Hash) == "" {
			return nil, apierrors.NewValidationError(fmt.Sprintf("document %s requires a content hash", documents[i].Name))
		}
		if documents[i].ID == "" {
			documents[i].ID = uuid.New().String()
		}
	}
	encoded, err := json.Marshal(documents)
	if err != nil {
		return nil, apierrors.NewValidationError("documents must be serializable")
	}
	return datatypes.JSON(encoded), nil
}
