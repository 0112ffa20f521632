package cosmos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		conf    ConnectionConfig
		wantErr string
	}{
		{
			name: "valid",
			conf: ConnectionConfig{ChainID: "neutron-1", Bech32Prefix: "neutron"},
		},
		{
			name:    "missing chain id",
			conf:    ConnectionConfig{Bech32Prefix: "neutron"},
			wantErr: "chain id is required",
		},
		{
			name:    "missing bech32 prefix",
			conf:    ConnectionConfig{ChainID: "neutron-1"},
			wantErr: "bech32 prefix is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.conf.validate()

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadConnectionConfig(t *testing.T) {
	t.Run("reads a config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "neutron.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"chain_id: neutron-1\nbech32_prefix: neutron\nrpc_url: http://localhost:26657\ngas_price: 0.025untrn\n",
		), 0o600))

		conf, err := LoadConnectionConfig(path)

		require.NoError(t, err)
		assert.Equal(t, ConnectionConfig{
			ChainID:      "neutron-1",
			Bech32Prefix: "neutron",
			RPCURL:       "http://localhost:26657",
			GasPrice:     "0.025untrn",
		}, conf)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "neutron.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"chain_id: neutron-1\nbech32_prefix: neutron\nrpc_url: http://localhost:26657\n",
		), 0o600))

		t.Setenv("COSMOS_RPC_URL", "http://node.internal:26657")

		conf, err := LoadConnectionConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "http://node.internal:26657", conf.RPCURL)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConnectionConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})
}
