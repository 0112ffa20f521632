// Package cosmos provides contract adapters for CosmWasm-based chains:
// address conversion between bech32 native addresses and 32-byte protocol
// identifiers, and bindings for the routing ISM and validator announce
// contracts on top of a WasmProvider capability.
package cosmos

import (
	"fmt"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"

	"github.com/raphaelcastilhoc/hyperlane-monorepo/core"
)

// Family is the chain family identifier for CosmWasm chains.
const Family = "cosmos"

const (
	// accountAddressLen is the byte length of a Cosmos account address.
	accountAddressLen = 20
	// contractAddressLen is the byte length of a CosmWasm contract address.
	contractAddressLen = 32

	// bech32MaxLen is the maximum length of a bech32 string the underlying
	// codec accepts.
	bech32MaxLen = 90
)

// Address is a Cosmos bech32 address: a human-readable prefix plus a 20-byte
// account or 32-byte contract payload. Addresses are immutable once built.
type Address struct {
	prefix string
	bytes  []byte
}

// ParseAddress decodes a native bech32 address string. It fails with
// core.ErrMalformedAddress on bad encoding, bad checksum or a payload that is
// neither 20 nor 32 bytes. Decoding is all-or-nothing.
func ParseAddress(address string) (Address, error) {
	prefix, data, err := bech32.Decode(address)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", core.ErrMalformedAddress, err)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", core.ErrMalformedAddress, err)
	}

	if len(raw) != accountAddressLen && len(raw) != contractAddressLen {
		return Address{}, fmt.Errorf(
			"%w: decoded payload is %d bytes, want %d or %d",
			core.ErrMalformedAddress, len(raw), accountAddressLen, contractAddressLen,
		)
	}

	return Address{prefix: prefix, bytes: raw}, nil
}

// AddressFromBytes32 renders a 32-byte identifier as a native contract
// address under the given prefix. Every identifier is representable as long
// as the prefix keeps the encoded form within the bech32 length limit.
func AddressFromBytes32(prefix string, id common.Hash) (Address, error) {
	if err := checkPrefix(prefix, contractAddressLen); err != nil {
		return Address{}, err
	}

	return Address{prefix: prefix, bytes: id.Bytes()}, nil
}

// AccountAddressFromBytes32 renders a 32-byte identifier as a 20-byte account
// address. Identifiers with a nonzero value in the first 12 bytes cannot be
// represented and fail with core.ErrUnrepresentableIdentifier.
func AccountAddressFromBytes32(prefix string, id common.Hash) (Address, error) {
	if err := checkPrefix(prefix, accountAddressLen); err != nil {
		return Address{}, err
	}

	for _, b := range id[:contractAddressLen-accountAddressLen] {
		if b != 0 {
			return Address{}, fmt.Errorf(
				"%w: %s does not fit a %d-byte account address",
				core.ErrUnrepresentableIdentifier, id, accountAddressLen,
			)
		}
	}

	raw := make([]byte, accountAddressLen)
	copy(raw, id[contractAddressLen-accountAddressLen:])

	return Address{prefix: prefix, bytes: raw}, nil
}

func checkPrefix(prefix string, payloadLen int) error {
	if prefix == "" {
		return fmt.Errorf("%w: empty bech32 prefix", core.ErrUnrepresentableIdentifier)
	}

	// prefix + separator + payload in 5-bit groups + 6 checksum characters
	if encodedLen := len(prefix) + 1 + (payloadLen*8+4)/5 + 6; encodedLen > bech32MaxLen {
		return fmt.Errorf(
			"%w: prefix %q yields a %d character address, limit is %d",
			core.ErrUnrepresentableIdentifier, prefix, encodedLen, bech32MaxLen,
		)
	}

	return nil
}

// Prefix returns the human-readable part of the address.
func (a Address) Prefix() string {
	return a.prefix
}

// Bytes returns a copy of the raw address payload (20 or 32 bytes).
func (a Address) Bytes() []byte {
	out := make([]byte, len(a.bytes))
	copy(out, a.bytes)

	return out
}

// Bytes32 returns the 32-byte protocol identifier of the address. Account
// addresses are left-padded with zeros.
func (a Address) Bytes32() common.Hash {
	var h common.Hash
	copy(h[common.HashLength-len(a.bytes):], a.bytes)

	return h
}

// String returns the bech32 encoding of the address, or "" for a zero-value
// Address.
func (a Address) String() string {
	if a.prefix == "" {
		return ""
	}

	data, err := bech32.ConvertBits(a.bytes, 8, 5, true)
	if err != nil {
		return ""
	}

	encoded, err := bech32.Encode(a.prefix, data)
	if err != nil {
		return ""
	}

	return encoded
}
