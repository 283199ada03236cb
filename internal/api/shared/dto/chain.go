package dto

import (
	"math/big"

	"github.com/propchain/propchain-api/internal/domain"
)

// PriceQuoteResponse represents a native-currency USD price quote from the
// on-chain oracle feed
type PriceQuoteResponse struct {
	// Price is the decimal price with two fractional digits, e.g. "25.00"
	Price string `json:"price"`
	// Mantissa is the raw integer feed answer
	Mantissa string `json:"mantissa"`
	Decimals uint8  `json:"decimals"`
	// Timestamp is the feed's update time as a unix timestamp
	Timestamp int64 `json:"timestamp"`
	// Stale marks a quote served from cache because the oracle was unreachable
	Stale bool `json:"stale,omitempty"`
}

// ContractInfoResponse represents the deployed contract's network details
type ContractInfoResponse struct {
	Address  string `json:"address"`
	Network  string `json:"network"`
	ChainID  int64  `json:"chain_id"`
	Deployed bool   `json:"deployed"`
}

// OnChainHolderResponse represents one holder in the contract's ownership
// distribution
type OnChainHolderResponse struct {
	Address      string `json:"address"`
	OwnershipBps int64  `json:"ownership_bps"`
}

// OnChainAssetResponse represents the contract's record for a tokenized asset
// together with its ownership distribution. On-chain integers are rendered as
// decimal strings.
type OnChainAssetResponse struct {
	OnChainID        uint64                  `json:"on_chain_id"`
	Seller           string                  `json:"seller"`
	MetadataHash     string                  `json:"metadata_hash"`
	TotalTokens      string                  `json:"total_tokens"`
	AvailableTokens  string                  `json:"available_tokens"`
	PricePerTokenUSD string                  `json:"price_per_token_usd"`
	Active           bool                    `json:"active"`
	Holders          []OnChainHolderResponse `json:"holders"`
}

// GasEstimateResponse represents an advisory tokenization cost estimate
type GasEstimateResponse struct {
	GasLimit string `json:"gas_limit"`
	// GasPrice is the suggested gas price in wei
	GasPrice string `json:"gas_price"`
	// EstimatedCost is the total cost in native currency units (ether-style
	// 18-decimal formatting)
	EstimatedCost string `json:"estimated_cost"`
}

// TransactionResponse represents the resolved state of an on-chain transaction
type TransactionResponse struct {
	Hash string `json:"hash"`
	From string `json:"from"`
	To   string `json:"to"`
	// Value is the transferred amount in native currency units
	Value       string          `json:"value"`
	Status      domain.TxStatus `json:"status"`
	BlockNumber *uint64         `json:"block_number,omitempty"`
	GasUsed     *uint64         `json:"gas_used,omitempty"`
}

// MapPriceQuoteToDTO maps a domain.PriceQuote to PriceQuoteResponse
func MapPriceQuoteToDTO(quote *domain.PriceQuote) *PriceQuoteResponse {
	if quote == nil {
		return nil
	}

	return &PriceQuoteResponse{
		Price:     quote.Display(),
		Mantissa:  quote.Mantissa.String(),
		Decimals:  quote.Decimals,
		Timestamp: quote.UpdatedAt.Unix(),
	}
}

// MapOnChainAssetToDTO maps the contract's asset record and its ownership
// distribution to OnChainAssetResponse
func MapOnChainAssetToDTO(asset *domain.OnChainAsset, distribution *domain.OwnershipDistribution) *OnChainAssetResponse {
	if asset == nil {
		return nil
	}

	resp := &OnChainAssetResponse{
		OnChainID:        asset.OnChainID,
		Seller:           asset.SellerAddress,
		MetadataHash:     asset.MetadataHash,
		TotalTokens:      bigIntString(asset.TotalTokens),
		AvailableTokens:  bigIntString(asset.AvailableTokens),
		PricePerTokenUSD: bigIntString(asset.PricePerToken),
		Active:           asset.Active,
		Holders:          []OnChainHolderResponse{},
	}

	if distribution != nil {
		for i, address := range distribution.Holders {
			resp.Holders = append(resp.Holders, OnChainHolderResponse{
				Address:      address,
				OwnershipBps: distribution.BpsShares[i],
			})
		}
	}

	return resp
}

// MapGasEstimateToDTO maps a domain.GasEstimate to GasEstimateResponse
func MapGasEstimateToDTO(estimate *domain.GasEstimate) *GasEstimateResponse {
	if estimate == nil {
		return nil
	}

	return &GasEstimateResponse{
		GasLimit:      new(big.Int).SetUint64(estimate.GasLimit).String(),
		GasPrice:      bigIntString(estimate.GasPriceWei),
		EstimatedCost: estimate.CostEther(),
	}
}

// MapTransactionToDTO maps a domain.TransactionState to TransactionResponse
func MapTransactionToDTO(state *domain.TransactionState) *TransactionResponse {
	if state == nil {
		return nil
	}

	return &TransactionResponse{
		Hash:        state.Hash,
		From:        state.From,
		To:          state.To,
		Value:       domain.WeiToEther(state.ValueWei),
		Status:      state.Status,
		BlockNumber: state.BlockNumber,
		GasUsed:     state.GasUsed,
	}
}

func bigIntString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
