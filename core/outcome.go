package core

import "github.com/ethereum/go-ethereum/common"

// TxOutcome reports the result of a submitted write transaction, translated
// from the chain's native receipt.
type TxOutcome struct {
	// TxHash is the transaction hash assigned by the chain.
	TxHash common.Hash
	// Executed is true when the transaction was included and succeeded.
	Executed bool
	// BlockHeight is the height of the block that included the transaction.
	BlockHeight int64
	// GasWanted and GasUsed report the gas budget and consumption.
	GasWanted int64
	GasUsed   int64
	// RawReceipt preserves the native receipt bytes the outcome was built from.
	RawReceipt []byte
}
