package cosmos

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/raphaelcastilhoc/hyperlane-monorepo/core"
)

var _ core.RoutingISM = (*RoutingISM)(nil)

// RoutingISM is a reference to a routing ISM contract on some Cosmos chain.
// It holds only immutable configuration and is safe for concurrent use.
type RoutingISM struct {
	domain   core.Domain
	address  common.Hash
	contract Address
	provider WasmProvider
}

// NewRoutingISM creates a new RoutingISM bound to the contract named by the
// locator. Construction fails with core.ErrProviderConstruction on invalid
// configuration; per-call errors never originate here.
func NewRoutingISM(conf ConnectionConfig, locator core.ContractLocator, provider WasmProvider) (*RoutingISM, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: wasm provider is required", core.ErrProviderConstruction)
	}
	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrProviderConstruction, err)
	}

	contract, err := AddressFromBytes32(conf.Bech32Prefix, locator.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrProviderConstruction, err)
	}

	return &RoutingISM{
		domain:   locator.Domain,
		address:  locator.Address,
		contract: contract,
		provider: provider,
	}, nil
}

// Domain returns the domain of the chain this contract is deployed on.
func (i *RoutingISM) Domain() core.Domain {
	return i.domain
}

// Address returns the contract's 32-byte on-chain address.
func (i *RoutingISM) Address() common.Hash {
	return i.address
}

// Route asks the routing contract which security module should verify the
// message and returns that module's 32-byte identifier. The query always
// reads the latest committed state; retries belong to the caller.
func (i *RoutingISM) Route(ctx context.Context, message *core.Message) (common.Hash, error) {
	payload, err := json.Marshal(routingISMQuery{
		RoutingISM: routingISMQueryInner{
			Route: routeRequest{Message: hex.EncodeToString(message.Raw())},
		},
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", core.ErrSerialization, err)
	}

	data, err := i.provider.QuerySmart(ctx, i.contract, payload)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %w", core.ErrQueryFailed, err)
	}

	var resp routeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", core.ErrResponseDecode, err)
	}

	ism, err := ParseAddress(resp.ISM)
	if err != nil {
		return common.Hash{}, err
	}

	return ism.Bytes32(), nil
}
