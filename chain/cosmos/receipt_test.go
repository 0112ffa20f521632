package cosmos

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelcastilhoc/hyperlane-monorepo/core"
)

func TestDecodeTxOutcome(t *testing.T) {
	t.Parallel()

	fullReceipt := func() map[string]any {
		return map[string]any{
			"hash":       strings.Repeat("CD", 32),
			"height":     int64(991),
			"code":       uint32(0),
			"gas_wanted": int64(150000),
			"gas_used":   int64(149001),
			"log":        "",
		}
	}

	marshal := func(t *testing.T, doc map[string]any) []byte {
		t.Helper()
		raw, err := json.Marshal(doc)
		require.NoError(t, err)

		return raw
	}

	t.Run("complete receipt", func(t *testing.T) {
		t.Parallel()

		raw := marshal(t, fullReceipt())

		outcome, err := decodeTxOutcome(raw)

		require.NoError(t, err)
		assert.Equal(t, common.HexToHash(strings.Repeat("CD", 32)), outcome.TxHash)
		assert.True(t, outcome.Executed)
		assert.Equal(t, int64(991), outcome.BlockHeight)
		assert.Equal(t, int64(150000), outcome.GasWanted)
		assert.Equal(t, int64(149001), outcome.GasUsed)
		assert.Equal(t, raw, outcome.RawReceipt)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		for _, field := range []string{"hash", "height", "code", "gas_wanted", "gas_used"} {
			t.Run(field, func(t *testing.T) {
				t.Parallel()

				doc := fullReceipt()
				delete(doc, field)

				_, err := decodeTxOutcome(marshal(t, doc))

				require.ErrorIs(t, err, core.ErrReceiptDecode)
			})
		}
	})

	t.Run("invalid transaction hash", func(t *testing.T) {
		t.Parallel()

		doc := fullReceipt()
		doc["hash"] = "CDCD"

		_, err := decodeTxOutcome(marshal(t, doc))

		require.ErrorIs(t, err, core.ErrReceiptDecode)
	})

	t.Run("not json", func(t *testing.T) {
		t.Parallel()

		_, err := decodeTxOutcome([]byte("garbage"))

		require.ErrorIs(t, err, core.ErrReceiptDecode)
	})

	t.Run("round trips a provider-built receipt", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(TxReceipt{
			Hash:      strings.Repeat("CD", 32),
			Height:    12,
			Code:      11,
			GasWanted: 1,
			GasUsed:   1,
			Log:       "out of gas",
		})
		require.NoError(t, err)

		outcome, err := decodeTxOutcome(raw)

		require.NoError(t, err)
		assert.False(t, outcome.Executed)
		assert.Equal(t, int64(12), outcome.BlockHeight)
	})
}
