package cosmos

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/raphaelcastilhoc/hyperlane-monorepo/core"
)

// TxReceipt is the native receipt document a WasmProvider returns from
// SubmitExecute. Every field except Log is required; providers normalizing
// from a node response must emit all of them explicitly.
type TxReceipt struct {
	// Hash is the transaction hash as unprefixed hex.
	Hash string `json:"hash"`
	// Height is the inclusion block height.
	Height int64 `json:"height"`
	// Code is the execution result code; zero means success.
	Code uint32 `json:"code"`
	// GasWanted and GasUsed report the gas budget and consumption.
	GasWanted int64 `json:"gas_wanted"`
	GasUsed   int64 `json:"gas_used"`
	// Log carries the node's execution log, if any.
	Log string `json:"log,omitempty"`
}

// txReceiptDoc mirrors TxReceipt with pointer fields so an absent field is
// distinguishable from a zero value.
type txReceiptDoc struct {
	Hash      *string `json:"hash"`
	Height    *int64  `json:"height"`
	Code      *uint32 `json:"code"`
	GasWanted *int64  `json:"gas_wanted"`
	GasUsed   *int64  `json:"gas_used"`
}

// decodeTxOutcome translates raw receipt bytes into a core.TxOutcome. A
// receipt missing any required field fails with core.ErrReceiptDecode; no
// partial outcome is ever synthesized.
func decodeTxOutcome(raw []byte) (core.TxOutcome, error) {
	var doc txReceiptDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return core.TxOutcome{}, fmt.Errorf("%w: %s", core.ErrReceiptDecode, err)
	}

	for field, ok := range map[string]bool{
		"hash":       doc.Hash != nil,
		"height":     doc.Height != nil,
		"code":       doc.Code != nil,
		"gas_wanted": doc.GasWanted != nil,
		"gas_used":   doc.GasUsed != nil,
	} {
		if !ok {
			return core.TxOutcome{}, fmt.Errorf("%w: receipt is missing %q", core.ErrReceiptDecode, field)
		}
	}

	hashBytes := common.FromHex(*doc.Hash)
	if len(hashBytes) != common.HashLength {
		return core.TxOutcome{}, fmt.Errorf(
			"%w: transaction hash %q is not %d bytes", core.ErrReceiptDecode, *doc.Hash, common.HashLength,
		)
	}

	return core.TxOutcome{
		TxHash:      common.BytesToHash(hashBytes),
		Executed:    *doc.Code == 0,
		BlockHeight: *doc.Height,
		GasWanted:   *doc.GasWanted,
		GasUsed:     *doc.GasUsed,
		RawReceipt:  raw,
	}, nil
}
