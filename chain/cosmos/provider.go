package cosmos

import (
	"context"
	"math/big"
)

// WasmProvider is the capability an adapter needs from a CosmWasm chain
// host: read-only smart queries and signed execute submissions. Transport,
// signing, fee estimation and retry policy all live behind this boundary.
type WasmProvider interface {
	// QuerySmart executes a read-only smart query against the contract at
	// the latest committed state and returns the raw response bytes.
	QuerySmart(ctx context.Context, contract Address, payload []byte) ([]byte, error)

	// SubmitExecute signs and broadcasts an execute message against the
	// contract and returns the native transaction receipt as JSON bytes in
	// the TxReceipt shape. A nil gasLimit leaves the gas budget to the
	// provider.
	SubmitExecute(ctx context.Context, contract Address, payload []byte, gasLimit *big.Int) ([]byte, error)
}
