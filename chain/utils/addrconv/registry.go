package addrconv

import (
	"fmt"
	"sync"

	"github.com/raphaelcastilhoc/hyperlane-monorepo/chain/cosmos"
	"github.com/raphaelcastilhoc/hyperlane-monorepo/chain/evm"
)

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *addressConverterRegistry
)

func registry() *addressConverterRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newAddressConverterRegistry()
	})

	return defaultRegistry
}

// ToBytes converts an address string to bytes based on the chain family.
//
// Usage:
//
//	bytes, err := addrconv.ToBytes(cosmos.Family, "neutron1...")
func ToBytes(family, address string) ([]byte, error) {
	return registry().convertAddressByFamily(family, address)
}

// addressConverterRegistry manages address conversion strategies for different chain families.
// It uses the strategy pattern to delegate address conversion to the appropriate implementation.
type addressConverterRegistry struct {
	converters map[string]Converter
}

// newAddressConverterRegistry creates a new registry with all supported chain converters pre-registered.
func newAddressConverterRegistry() *addressConverterRegistry {
	registry := &addressConverterRegistry{
		converters: make(map[string]Converter),
	}

	registry.converters[cosmos.Family] = cosmos.AddressConverter{}
	registry.converters[evm.Family] = evm.AddressConverter{}

	return registry
}

// convertAddressByFamily converts an address string to bytes using the family name.
func (r *addressConverterRegistry) convertAddressByFamily(family, address string) ([]byte, error) {
	converter, exists := r.converters[family]

	if !exists {
		return nil, fmt.Errorf("no address converter registered for family: %s", family)
	}

	return converter.ConvertToBytes(address)
}
