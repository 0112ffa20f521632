package cosmos

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/raphaelcastilhoc/hyperlane-monorepo/core"
)

var _ core.ValidatorAnnounce = (*ValidatorAnnounce)(nil)

// ValidatorAnnounce is a reference to a validator announce contract on some
// Cosmos chain. It holds only immutable configuration and is safe for
// concurrent use.
type ValidatorAnnounce struct {
	domain   core.Domain
	address  common.Hash
	contract Address
	provider WasmProvider
}

// NewValidatorAnnounce creates a new ValidatorAnnounce bound to the contract
// named by the locator.
func NewValidatorAnnounce(conf ConnectionConfig, locator core.ContractLocator, provider WasmProvider) (*ValidatorAnnounce, error) {
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

	return &ValidatorAnnounce{
		domain:   locator.Domain,
		address:  locator.Address,
		contract: contract,
		provider: provider,
	}, nil
}

// Domain returns the domain of the chain this contract is deployed on.
func (v *ValidatorAnnounce) Domain() core.Domain {
	return v.domain
}

// Address returns the contract's 32-byte on-chain address.
func (v *ValidatorAnnounce) Address() common.Hash {
	return v.address
}

// AnnouncedStorageLocations returns the storage locations announced by each
// validator, position-aligned with the input order. The contract response is
// keyed by native address and carries no ordering guarantee, so results are
// re-projected onto the input here. A validator absent from the response
// yields an empty slice, not an error.
func (v *ValidatorAnnounce) AnnouncedStorageLocations(ctx context.Context, validators []common.Hash) ([][]string, error) {
	hexed := make([]string, len(validators))
	for i, validator := range validators {
		hexed[i] = hex.EncodeToString(validator.Bytes())
	}

	payload, err := json.Marshal(storageLocationsQuery{
		GetAnnounceStorageLocations: storageLocationsQueryInner{Validators: hexed},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrSerialization, err)
	}

	data, err := v.provider.QuerySmart(ctx, v.contract, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrQueryFailed, err)
	}

	var resp storageLocationsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrResponseDecode, err)
	}

	byID := make(map[common.Hash][]string, len(resp.StorageLocations))
	for _, entry := range resp.StorageLocations {
		addr, err := ParseAddress(entry.Validator)
		if err != nil {
			return nil, err
		}
		byID[addr.Bytes32()] = entry.Locations
	}

	locations := make([][]string, len(validators))
	for i, validator := range validators {
		if announced, ok := byID[validator]; ok && announced != nil {
			locations[i] = announced
		} else {
			locations[i] = []string{}
		}
	}

	return locations, nil
}

// Announce submits a signed announcement as a single execute transaction and
// reports its outcome. The receipt translation fails loudly with
// core.ErrReceiptDecode rather than synthesize a partial success. There is no
// internal retry or idempotency key; deduplicating resubmissions is the
// caller's responsibility.
func (v *ValidatorAnnounce) Announce(ctx context.Context, announcement core.SignedAnnouncement, gasLimit *big.Int) (core.TxOutcome, error) {
	payload, err := json.Marshal(announceExecute{
		Announce: announceExecuteInner{
			Validator:       hex.EncodeToString(announcement.Value.Validator.Bytes()),
			StorageLocation: announcement.Value.StorageLocation,
			Signature:       hex.EncodeToString(announcement.Signature),
		},
	})
	if err != nil {
		return core.TxOutcome{}, fmt.Errorf("%w: %s", core.ErrSerialization, err)
	}

	receipt, err := v.provider.SubmitExecute(ctx, v.contract, payload, gasLimit)
	if err != nil {
		return core.TxOutcome{}, fmt.Errorf("%w: %w", core.ErrQueryFailed, err)
	}

	return decodeTxOutcome(receipt)
}

// AnnounceTokensNeeded reports the additional tokens the validator needs
// before an announcement can succeed. The balance and fee schedule lookup is
// not implemented; this always reports zero and an underfunded announce is
// left to fail on-chain.
// TODO: query the validator's balance and the contract's fee schedule.
func (v *ValidatorAnnounce) AnnounceTokensNeeded(_ context.Context, _ core.SignedAnnouncement) (*big.Int, error) {
	return big.NewInt(0), nil
}
