package evm

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressToBytes(t *testing.T) {
	t.Parallel()

	t.Run("valid addresses", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			address string
		}{
			{name: "with 0x prefix", address: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"},
			{name: "without 0x prefix", address: "742d35Cc6634C0532925a3b844Bc454e4438f44e"},
			{name: "zero address", address: "0x0000000000000000000000000000000000000000"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				b, err := AddressToBytes(tt.address)

				require.NoError(t, err)
				assert.Equal(t, common.HexToAddress(tt.address).Bytes(), b)
			})
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			address string
		}{
			{name: "empty", address: ""},
			{name: "too short", address: "0x742d35Cc"},
			{name: "not hex", address: "0xzzzd35Cc6634C0532925a3b844Bc454e4438f44e"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := AddressToBytes(tt.address)

				require.Error(t, err)
			})
		}
	})
}

func TestAddressConverter(t *testing.T) {
	t.Parallel()

	converter := AddressConverter{}

	b, err := converter.ConvertToBytes("0x742d35Cc6634C0532925a3b844Bc454e4438f44e")
	require.NoError(t, err)
	assert.Len(t, b, 20)

	assert.True(t, converter.Supports(Family))
	assert.False(t, converter.Supports("cosmos"))
}
