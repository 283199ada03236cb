package domain

import (
	"math/big"
	"strings"
	"time"
)

// TxStatus represents the resolution state of an on-chain transaction
type TxStatus string

const (
	TxStatusPending TxStatus = "pending"
	TxStatusSuccess TxStatus = "success"
	TxStatusFailed  TxStatus = "failed"
)

// BpsDenominator is the fixed-point convention for ownership percentages:
// basis points, 1% = 100 bps, a full distribution sums to 10000.
const BpsDenominator int64 = 10000

// PriceQuote is an oracle price reading. Mantissa is the raw integer answer
// from the feed; divide by 10^Decimals for the decimal price.
type PriceQuote struct {
	Mantissa  *big.Int
	Decimals  uint8
	UpdatedAt time.Time
}

// Display renders the quote as a decimal string with two fractional digits,
// e.g. mantissa 2500000000 at 8 decimals renders as "25.00".
func (q PriceQuote) Display() string {
	if q.Mantissa == nil {
		return "0.00"
	}
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(q.Decimals)), nil)
	return new(big.Rat).SetFrac(q.Mantissa, denom).FloatString(2)
}

// OnChainAsset is the contract's record for a tokenized land parcel.
// All quantities are on-chain integers.
type OnChainAsset struct {
	OnChainID       uint64
	SellerAddress   string
	MetadataHash    string
	TotalTokens     *big.Int
	AvailableTokens *big.Int
	PricePerToken   *big.Int
	Active          bool
}

// OwnershipDistribution is the contract's holder table for one asset:
// parallel lists of holder addresses and their stakes in basis points.
type OwnershipDistribution struct {
	OnChainID uint64
	Holders   []string
	BpsShares []int64
}

// BpsSumValid reports whether the shares sum to a full distribution within
// the tolerance left by on-chain integer division (one bps per holder).
func (d OwnershipDistribution) BpsSumValid() bool {
	if len(d.BpsShares) == 0 {
		return true
	}
	var sum int64
	for _, bps := range d.BpsShares {
		sum += bps
	}
	tolerance := int64(len(d.BpsShares))
	return sum >= BpsDenominator-tolerance && sum <= BpsDenominator+tolerance
}

// TransactionState is the resolved view of a submitted transaction.
// BlockNumber and GasUsed are only set once the transaction is mined.
type TransactionState struct {
	Hash        string
	From        string
	To          string
	ValueWei    *big.Int
	Status      TxStatus
	BlockNumber *uint64
	GasUsed     *uint64
}

// TokenizeParams are the arguments a tokenizeLand call takes on chain.
// FromAddress is the prospective sender, used for estimation only.
type TokenizeParams struct {
	FromAddress          string
	MetadataHash         string
	TotalTokens          *big.Int
	PricePerTokenUSD     *big.Int
	RentPerTokenPerMonth *big.Int
}

// GasEstimate is the advisory cost of a prospective tokenize call.
type GasEstimate struct {
	GasLimit    uint64
	GasPriceWei *big.Int
	CostWei     *big.Int
}

// CostEther renders the estimated native cost in ether units, trailing
// zeros trimmed, e.g. 2100000000000000 wei renders as "0.0021".
func (e GasEstimate) CostEther() string {
	return WeiToEther(e.CostWei)
}

// WeiToEther formats a wei amount as a decimal ether string with trailing
// zeros trimmed.
func WeiToEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	ether := new(big.Rat).SetFrac(wei, new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	s := ether.FloatString(18)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
