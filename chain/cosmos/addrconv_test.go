package cosmos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelcastilhoc/hyperlane-monorepo/core"
)

func TestAddressToBytes(t *testing.T) {
	t.Parallel()

	t.Run("contract address", func(t *testing.T) {
		t.Parallel()

		b, err := AddressToBytes(testContractAddr)

		require.NoError(t, err)
		assert.Equal(t, testContractID().Bytes(), b)
	})

	t.Run("account address", func(t *testing.T) {
		t.Parallel()

		b, err := AddressToBytes(testValidatorB)

		require.NoError(t, err)
		assert.Len(t, b, 20)
	})

	t.Run("invalid address", func(t *testing.T) {
		t.Parallel()

		_, err := AddressToBytes("neutron1oops")

		require.ErrorIs(t, err, core.ErrMalformedAddress)
	})
}

func TestAddressConverter(t *testing.T) {
	t.Parallel()

	converter := AddressConverter{}

	b, err := converter.ConvertToBytes(testValidatorB)
	require.NoError(t, err)
	assert.Len(t, b, 20)

	assert.True(t, converter.Supports(Family))
	assert.False(t, converter.Supports("evm"))
}
