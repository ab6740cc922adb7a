package gascost

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGasSource(t *testing.T) {
	hash := "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"

	tests := []struct {
		name  string
		input string
		units uint64
		want  GasSource
	}{
		{"bare number", "21000", 21000, UnitCount(21000)},
		{"padded number", "  21000\n", 21000, UnitCount(21000)},
		{"hex string", `"0x5208"`, 21000, UnitCount(21000)},
		{"receipt number", `{"receipt":{"gasUsed":50000}}`, 50000, nil},
		{"receipt hex", `{"receipt":{"gasUsed":"0xc350","status":"0x1"}}`, 50000, nil},
		{"deployment", `{"transactionHash":"` + hash + `","address":"0x01"}`, 0, Deployment{TxHash: common.HexToHash(hash)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ParseGasSource([]byte(tt.input))
			require.NoError(t, err)

			if r, ok := src.(TxReceipt); ok {
				require.NotNil(t, r.Receipt)
				assert.Equal(t, tt.units, r.Receipt.GasUsed)
				return
			}
			assert.Equal(t, tt.want, src)
		})
	}
}

func TestParseGasSourceReceiptWinsOverHash(t *testing.T) {
	src, err := ParseGasSource([]byte(`{"receipt":{"gasUsed":1},"transactionHash":"0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"}`))
	require.NoError(t, err)
	assert.IsType(t, TxReceipt{}, src)
}

func TestParseGasSourceErrors(t *testing.T) {
	_, err := ParseGasSource([]byte(""))
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = ParseGasSource([]byte("-5"))
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = ParseGasSource([]byte("1.5"))
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = ParseGasSource([]byte(`{"foo":1}`))
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = ParseGasSource([]byte(`{"receipt":{}}`))
	assert.ErrorIs(t, err, ErrMissingReceipt)

	_, err = ParseGasSource([]byte(`{"transactionHash":"0x01"}`))
	assert.Error(t, err)
}
