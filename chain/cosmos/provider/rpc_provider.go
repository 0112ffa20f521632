package provider

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/ybbus/jsonrpc/v3"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/raphaelcastilhoc/hyperlane-monorepo/chain/cosmos"
	"github.com/raphaelcastilhoc/hyperlane-monorepo/core"
	"github.com/raphaelcastilhoc/hyperlane-monorepo/pkg/logger"
)

// smartQueryPath is the ABCI query path for CosmWasm smart contract state.
const smartQueryPath = "/cosmwasm.wasm.v1.Query/SmartContractState"

// Config holds the configuration to initialize the RPCWasmProvider.
type Config struct {
	// Required: The connection settings of the target chain. The RPCURL
	// field must be set to the CometBFT JSON-RPC endpoint of a chain node.
	Connection cosmos.ConnectionConfig
	// Optional: A signer for execute submissions. Read-only providers may
	// omit it; SubmitExecute then fails.
	Signer TxSigner
	// Optional: The timeout for RPC calls. Defaults to 30s.
	Timeout time.Duration
	// Optional: The logger to use. Defaults to a no-op logger.
	Logger logger.Logger
}

// validate checks if the Config is valid.
func (c Config) validate() error {
	if c.Connection.RPCURL == "" {
		return errors.New("rpc url is required")
	}
	if c.Connection.ChainID == "" {
		return errors.New("chain id is required")
	}
	if c.Connection.Bech32Prefix == "" {
		return errors.New("bech32 prefix is required")
	}

	return nil
}

var _ cosmos.WasmProvider = (*RPCWasmProvider)(nil)

// RPCWasmProvider is a WasmProvider backed by a chain node's CometBFT
// JSON-RPC endpoint. Queries go through abci_query; submissions are signed by
// the configured TxSigner and broadcast with broadcast_tx_commit.
type RPCWasmProvider struct {
	config Config
	client jsonrpc.RPCClient
	lggr   logger.Logger
}

// NewRPCWasmProvider creates a new RPCWasmProvider from the given config.
func NewRPCWasmProvider(config Config) (*RPCWasmProvider, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrProviderConstruction, err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	lggr := config.Logger
	if lggr == nil {
		lggr = logger.Nop()
	}

	client := jsonrpc.NewClientWithOpts(config.Connection.RPCURL, &jsonrpc.RPCClientOpts{
		HTTPClient: &http.Client{Timeout: timeout},
	})

	return &RPCWasmProvider{
		config: config,
		client: client,
		lggr:   lggr,
	}, nil
}

// QuerySmart executes a read-only smart query against the contract at the
// latest committed state and returns the raw contract response bytes.
func (p *RPCWasmProvider) QuerySmart(ctx context.Context, contract cosmos.Address, payload []byte) ([]byte, error) {
	chainID := p.config.Connection.ChainID

	p.lggr.Debugw("executing smart query",
		"chain_id", chainID,
		"contract", contract.String(),
	)

	resp, err := p.client.Call(ctx, "abci_query", map[string]any{
		"path": smartQueryPath,
		"data": hex.EncodeToString(encodeSmartStateRequest(contract.String(), payload)),
		// Height zero reads the latest committed state.
		"height": "0",
		"prove":  false,
	})
	if err != nil {
		queriesTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("failed to call abci_query: %w", err)
	}
	if resp.Error != nil {
		queriesTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("abci_query returned rpc error: %s", resp.Error.Message)
	}

	var result abciQueryResult
	if err := resp.GetObject(&result); err != nil {
		queriesTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("failed to decode abci_query result: %w", err)
	}
	if result.Response.Code != 0 {
		queriesTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("smart query failed with code %d: %s", result.Response.Code, result.Response.Log)
	}

	data, err := decodeSmartStateResponse(result.Response.Value)
	if err != nil {
		queriesTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("failed to decode smart query response: %w", err)
	}

	queriesTotal.WithLabelValues(chainID, resultOK).Inc()

	return data, nil
}

// SubmitExecute signs and broadcasts an execute message against the contract
// and returns the normalized native receipt as JSON bytes. A transaction
// rejected at mempool admission is an error; a transaction that was included
// but failed execution still yields a receipt.
func (p *RPCWasmProvider) SubmitExecute(ctx context.Context, contract cosmos.Address, payload []byte, gasLimit *big.Int) ([]byte, error) {
	chainID := p.config.Connection.ChainID

	if p.config.Signer == nil {
		submissionsTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, errors.New("tx signer is required for submissions")
	}

	p.lggr.Debugw("submitting execute transaction",
		"chain_id", chainID,
		"contract", contract.String(),
		"signer", p.config.Signer.Address(),
	)

	txBytes, err := p.config.Signer.SignExecute(ctx, contract.String(), payload, gasLimit)
	if err != nil {
		submissionsTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("failed to sign execute transaction: %w", err)
	}

	resp, err := p.client.Call(ctx, "broadcast_tx_commit", map[string]any{
		"tx": txBytes,
	})
	if err != nil {
		submissionsTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("failed to call broadcast_tx_commit: %w", err)
	}
	if resp.Error != nil {
		submissionsTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("broadcast_tx_commit returned rpc error: %s", resp.Error.Message)
	}

	var result broadcastTxResult
	if err := resp.GetObject(&result); err != nil {
		submissionsTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("failed to decode broadcast_tx_commit result: %w", err)
	}
	if result.CheckTx.Code != 0 {
		submissionsTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("transaction rejected at mempool admission with code %d: %s",
			result.CheckTx.Code, result.CheckTx.Log)
	}

	receipt, err := result.receipt()
	if err != nil {
		submissionsTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, err
	}

	raw, err := json.Marshal(receipt)
	if err != nil {
		submissionsTotal.WithLabelValues(chainID, resultError).Inc()
		return nil, fmt.Errorf("failed to marshal receipt: %w", err)
	}

	submissionsTotal.WithLabelValues(chainID, resultOK).Inc()

	p.lggr.Debugw("execute transaction committed",
		"chain_id", chainID,
		"tx_hash", receipt.Hash,
		"height", receipt.Height,
		"code", receipt.Code,
	)

	return raw, nil
}

// abciQueryResult mirrors the CometBFT abci_query result document.
type abciQueryResult struct {
	Response abciQueryResponse `json:"response"`
}

type abciQueryResponse struct {
	Code uint32 `json:"code"`
	Log  string `json:"log"`
	// Value is base64 in the JSON document; encoding/json decodes it.
	Value []byte `json:"value"`
}

// broadcastTxResult mirrors the CometBFT broadcast_tx_commit result document.
// Numeric fields arrive as decimal strings.
type broadcastTxResult struct {
	Hash      string         `json:"hash"`
	Height    string         `json:"height"`
	CheckTx   broadcastTxRes `json:"check_tx"`
	DeliverTx broadcastTxRes `json:"deliver_tx"`
}

type broadcastTxRes struct {
	Code      uint32 `json:"code"`
	GasWanted string `json:"gas_wanted"`
	GasUsed   string `json:"gas_used"`
	Log       string `json:"log"`
}

// receipt normalizes the broadcast result into the TxReceipt shape the
// adapters decode. All required receipt fields are emitted explicitly.
func (r broadcastTxResult) receipt() (cosmos.TxReceipt, error) {
	height, err := parseDecimal(r.Height)
	if err != nil {
		return cosmos.TxReceipt{}, fmt.Errorf("failed to parse receipt height %q: %w", r.Height, err)
	}
	gasWanted, err := parseDecimal(r.DeliverTx.GasWanted)
	if err != nil {
		return cosmos.TxReceipt{}, fmt.Errorf("failed to parse receipt gas_wanted %q: %w", r.DeliverTx.GasWanted, err)
	}
	gasUsed, err := parseDecimal(r.DeliverTx.GasUsed)
	if err != nil {
		return cosmos.TxReceipt{}, fmt.Errorf("failed to parse receipt gas_used %q: %w", r.DeliverTx.GasUsed, err)
	}

	return cosmos.TxReceipt{
		Hash:      r.Hash,
		Height:    height,
		Code:      r.DeliverTx.Code,
		GasWanted: gasWanted,
		GasUsed:   gasUsed,
		Log:       r.DeliverTx.Log,
	}, nil
}

// parseDecimal parses a CometBFT string-encoded integer. The node omits zero
// values, so the empty string reads as zero.
func parseDecimal(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	return strconv.ParseInt(s, 10, 64)
}

// encodeSmartStateRequest builds the protobuf frame for a
// QuerySmartContractStateRequest: field 1 is the contract address, field 2
// the query payload.
func encodeSmartStateRequest(contract string, payload []byte) []byte {
	buf := protowire.AppendTag(nil, 1, protowire.BytesType)
	buf = protowire.AppendString(buf, contract)
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendBytes(buf, payload)

	return buf
}

// decodeSmartStateResponse extracts the data field (field 1) from a
// QuerySmartContractStateResponse protobuf frame. An absent field reads as
// empty, the protobuf zero value.
func decodeSmartStateResponse(frame []byte) ([]byte, error) {
	var data []byte

	for len(frame) > 0 {
		num, typ, n := protowire.ConsumeTag(frame)
		if n < 0 {
			return nil, fmt.Errorf("malformed response frame: %w", protowire.ParseError(n))
		}
		frame = frame[n:]

		if num == 1 && typ == protowire.BytesType {
			value, m := protowire.ConsumeBytes(frame)
			if m < 0 {
				return nil, fmt.Errorf("malformed response frame: %w", protowire.ParseError(m))
			}
			data = value
			frame = frame[m:]

			continue
		}

		m := protowire.ConsumeFieldValue(num, typ, frame)
		if m < 0 {
			return nil, fmt.Errorf("malformed response frame: %w", protowire.ParseError(m))
		}
		frame = frame[m:]
	}

	return data, nil
}
