package cosmos

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/raphaelcastilhoc/hyperlane-monorepo/core"
)

// Fixed vectors: bech32 encodings under the "neutron" prefix of a 32-byte
// contract payload (bytes 0x01..0x20), a 32-byte module payload (bytes
// 0x20..0x3f) and two 20-byte validator payloads (0x11 and 0x42 repeated).
const (
	testContractAddr = "neutron1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5z5tpwxqergd3c8g7rusqpsa9eu"
	testISMAddr      = "neutron1yqsjygeyy5nzw2pf9g4jctfw9ucrzv3nxs6nvdec8yark0pa8cls8h4f79"
	testValidatorA   = "neutron1zyg3zyg3zyg3zyg3zyg3zyg3zyg3zyg39z7qgg"
	testValidatorB   = "neutron1gfpyysjzgfpyysjzgfpyysjzgfpyysjzxwzq77"
)

func testContractID() common.Hash {
	var h common.Hash
	for i := range h {
		h[i] = byte(i + 1)
	}

	return h
}

func testISMID() common.Hash {
	var h common.Hash
	for i := range h {
		h[i] = byte(i + 32)
	}

	return h
}

func testValidatorID(b byte) common.Hash {
	var h common.Hash
	for i := 12; i < len(h); i++ {
		h[i] = b
	}

	return h
}

func testConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		ChainID:      "neutron-1",
		Bech32Prefix: "neutron",
	}
}

func testLocator() core.ContractLocator {
	return core.ContractLocator{
		Domain:  core.Domain{ID: 1853125230, Name: "neutron"},
		Address: testContractID(),
	}
}

// fakeWasmProvider is a WasmProvider with pluggable behavior for tests.
type fakeWasmProvider struct {
	queryFn  func(ctx context.Context, contract Address, payload []byte) ([]byte, error)
	submitFn func(ctx context.Context, contract Address, payload []byte, gasLimit *big.Int) ([]byte, error)
}

func (f *fakeWasmProvider) QuerySmart(ctx context.Context, contract Address, payload []byte) ([]byte, error) {
	return f.queryFn(ctx, contract, payload)
}

func (f *fakeWasmProvider) SubmitExecute(ctx context.Context, contract Address, payload []byte, gasLimit *big.Int) ([]byte, error) {
	return f.submitFn(ctx, contract, payload, gasLimit)
}
