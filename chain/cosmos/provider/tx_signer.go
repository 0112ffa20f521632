package provider

import (
	"context"
	"math/big"
)

// TxSigner produces signed transaction bytes for contract execute calls. Key
// management, account sequence handling and fee estimation live behind this
// boundary; the provider only broadcasts what the signer returns.
type TxSigner interface {
	// SignExecute returns signed raw transaction bytes for an execute call
	// against the contract with the given JSON msg. A nil gasLimit leaves
	// the gas budget to the signer.
	SignExecute(ctx context.Context, contract string, msg []byte, gasLimit *big.Int) ([]byte, error)

	// Address returns the signer's bech32 account address.
	Address() string
}
