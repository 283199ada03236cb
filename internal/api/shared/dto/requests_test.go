package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propchain/propchain-api/internal/api/shared/dto"
	apierrors "github.com/propchain/propchain-api/internal/api/shared/errors"
)

func validCreateRequest() dto.CreateAssetRequest {
	return dto.CreateAssetRequest{
		Title:            "Hill Plot",
		Description:      "South-facing land parcel",
		PropertyType:     "residential",
		TotalTokens:      1000,
		PricePerTokenUSD: 50,
		Location:         `{"address":"1 Hill Rd","city":"Austin","state":"TX","country":"USA"}`,
		Size:             `{"value":2,"unit":"acres"}`,
	}
}

func TestCreateAssetRequestZeroPrice(t *testing.T) {
	req := validCreateRequest()
	req.PricePerTokenUSD = 0

	input, err := req.ToCreateInput(7)
	require.NoError(t, err)
	assert.Equal(t, float64(0), input.PricePerTokenUSD)
}

func TestCreateAssetRequestNegativePrice(t *testing.T) {
	req := validCreateRequest()
	req.PricePerTokenUSD = -1

	_, err := req.ToCreateInput(7)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
}

func TestUpdateAssetRequestPriceBounds(t *testing.T) {
	zero := float64(0)
	patch, err := (&dto.UpdateAssetRequest{PricePerTokenUSD: &zero}).ToPatch()
	require.NoError(t, err)
	require.NotNil(t, patch.PricePerTokenUSD)
	assert.Equal(t, float64(0), *patch.PricePerTokenUSD)

	negative := float64(-0.5)
	_, err = (&dto.UpdateAssetRequest{PricePerTokenUSD: &negative}).ToPatch()
	require.Error(t, err)
}
