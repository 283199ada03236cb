package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceQuoteDisplay(t *testing.T) {
	tests := []struct {
		name     string
		mantissa *big.Int
		decimals uint8
		expected string
	}{
		{
			name:     "chainlink avax usd answer",
			mantissa: big.NewInt(2500000000),
			decimals: 8,
			expected: "25.00",
		},
		{
			name:     "sub cent precision rounds",
			mantissa: big.NewInt(2512345678),
			decimals: 8,
			expected: "25.12",
		},
		{
			name:     "zero decimals",
			mantissa: big.NewInt(42),
			decimals: 0,
			expected: "42.00",
		},
		{
			name:     "nil mantissa",
			mantissa: nil,
			decimals: 8,
			expected: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := PriceQuote{Mantissa: tt.mantissa, Decimals: tt.decimals}
			assert.Equal(t, tt.expected, q.Display())
		})
	}
}

func TestOwnershipDistributionBpsSumValid(t *testing.T) {
	tests := []struct {
		name  string
		bps   []int64
		valid bool
	}{
		{name: "empty distribution", bps: nil, valid: true},
		{name: "exact full distribution", bps: []int64{6000, 4000}, valid: true},
		{name: "truncation loss within tolerance", bps: []int64{3333, 3333, 3333}, valid: true},
		{name: "sum far below full", bps: []int64{5000, 2000}, valid: false},
		{name: "sum far above full", bps: []int64{9000, 2000}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := OwnershipDistribution{BpsShares: tt.bps}
			assert.Equal(t, tt.valid, d.BpsSumValid())
		})
	}
}

func TestWeiToEther(t *testing.T) {
	tests := []struct {
		name     string
		wei      *big.Int
		expected string
	}{
		{name: "one ether", wei: new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil), expected: "1"},
		{name: "typical gas cost", wei: big.NewInt(2100000000000000), expected: "0.0021"},
		{name: "zero", wei: big.NewInt(0), expected: "0"},
		{name: "nil", wei: nil, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeiToEther(tt.wei))
		})
	}
}
