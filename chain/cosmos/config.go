package cosmos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConnectionConfig holds the chain-level settings the adapters and providers
// need to talk to a CosmWasm chain.
type ConnectionConfig struct {
	// Required: The chain ID of the target chain, e.g. "neutron-1".
	ChainID string `mapstructure:"chain_id"`
	// Required: The bech32 human-readable prefix for addresses on this
	// chain, e.g. "neutron".
	Bech32Prefix string `mapstructure:"bech32_prefix"`
	// Optional: The CometBFT JSON-RPC endpoint of a chain node. Required
	// only by the RPC provider, not by the adapters themselves.
	RPCURL string `mapstructure:"rpc_url"`
	// Optional: The gas price as "<amount><denom>", e.g. "0.025untrn".
	// Interpretation is up to the signing provider.
	GasPrice string `mapstructure:"gas_price"`
}

// validate checks the fields every adapter depends on.
func (c ConnectionConfig) validate() error {
	if c.ChainID == "" {
		return errors.New("chain id is required")
	}
	if c.Bech32Prefix == "" {
		return errors.New("bech32 prefix is required")
	}

	return nil
}

// LoadConnectionConfig reads a ConnectionConfig from the given config file.
// Values may be overridden through COSMOS_* environment variables, e.g.
// COSMOS_RPC_URL.
func LoadConnectionConfig(path string) (ConnectionConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("cosmos")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return ConnectionConfig{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var conf ConnectionConfig
	if err := v.Unmarshal(&conf); err != nil {
		return ConnectionConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return conf, nil
}
