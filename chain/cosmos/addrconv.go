package cosmos

// AddressToBytes converts a Cosmos bech32 address string to bytes.
// The result is the raw 20-byte account or 32-byte contract payload.
func AddressToBytes(address string) ([]byte, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}

	return addr.Bytes(), nil
}

// AddressConverter implements address conversion for Cosmos chains.
// This struct implements the AddressConverter strategy interface.
type AddressConverter struct{}

// ConvertToBytes converts a Cosmos address string to bytes.
func (c AddressConverter) ConvertToBytes(address string) ([]byte, error) {
	return AddressToBytes(address)
}

// Supports returns true if this converter supports the given chain family.
func (c AddressConverter) Supports(family string) bool {
	return family == Family
}
