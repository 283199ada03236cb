package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propchain/propchain-api/internal/types"
)

func TestStringPtr(t *testing.T) {
	s := "hello"
	p := types.StringPtr(s)
	assert.NotNil(t, p)
	assert.Equal(t, s, *p)
}

func TestStringNilOrEmpty(t *testing.T) {
	empty := ""
	value := "x"
	assert.True(t, types.StringNilOrEmpty(nil))
	assert.True(t, types.StringNilOrEmpty(&empty))
	assert.False(t, types.StringNilOrEmpty(&value))
}

func TestSafeString(t *testing.T) {
	value := "x"
	assert.Equal(t, "", types.SafeString(nil))
	assert.Equal(t, "x", types.SafeString(&value))
}

func TestIsEthereumAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid lowercase", input: "0x742d35cc6634c0532925a3b844bc9e7595f0beb1", expected: true},
		{name: "valid checksummed", input: "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1", expected: true},
		{name: "missing prefix", input: "742d35cc6634c0532925a3b844bc9e7595f0beb1", expected: true},
		{name: "too short", input: "0x742d35cc", expected: false},
		{name: "not hex", input: "0xZZZd35cc6634c0532925a3b844bc9e7595f0beb1", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, types.IsEthereumAddress(tc.input))
		})
	}
}

func TestIsTransactionHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid", input: "0x" + "ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12", expected: true},
		{name: "uppercase hex", input: "0x" + "AB12CD34EF56AB12CD34EF56AB12CD34EF56AB12CD34EF56AB12CD34EF56AB12", expected: true},
		{name: "missing prefix", input: "ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12", expected: false},
		{name: "too short", input: "0xab12cd", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, types.IsTransactionHash(tc.input))
		})
	}
}
