package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEthService struct {
	receipts map[common.Hash]*types.Receipt
	head     uint64
	clock    int64
}

func (s *testEthService) GetTransactionReceipt(hash common.Hash) (*types.Receipt, error) {
	return s.receipts[hash], nil
}

func (s *testEthService) BlockNumber() (hexutil.Uint64, error) {
	return hexutil.Uint64(s.head), nil
}

type testEvmService struct {
	eth *testEthService
}

func (s *testEvmService) Mine() error {
	s.eth.head++
	return nil
}

func (s *testEvmService) IncreaseTime(seconds int64) (int64, error) {
	s.eth.clock += seconds
	return seconds, nil
}

func newTestNode(t *testing.T) (*testEthService, string) {
	eth := &testEthService{receipts: map[common.Hash]*types.Receipt{}}

	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", eth))
	require.NoError(t, server.RegisterName("evm", &testEvmService{eth: eth}))

	return eth, httptestServer(t, server)
}

func httptestServer(t *testing.T, server *rpc.Server) string {
	httpSrv := httptest.NewServer(server)
	t.Cleanup(func() {
		httpSrv.Close()
		server.Stop()
	})

	return httpSrv.URL
}

func runGasCost(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	c := GasCostCmd()
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)

	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEstimateCmd(t *testing.T) {
	out, err := runGasCost(t, "estimate", "21000")
	require.NoError(t, err)
	assert.Equal(t, "21000 gas (€0.13, 0.3% of limit)\n", out)

	out, err = runGasCost(t, "estimate", `{"receipt":{"gasUsed":"0xc350"}}`)
	require.NoError(t, err)
	assert.Equal(t, "50000 gas (€0.32, 0.7% of limit)\n", out)
}

func TestEstimateCmdJSON(t *testing.T) {
	out, err := runGasCost(t, "estimate", "--json", "6712392")
	require.NoError(t, err)

	report := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, float64(6712392), report["units"])
	assert.Equal(t, "42.29", report["fiat"])
	assert.Equal(t, "100", report["percentOfLimit"])
	assert.Equal(t, "€", report["symbol"])
}

func TestEstimateCmdRejectsGarbage(t *testing.T) {
	_, err := runGasCost(t, "estimate", "lots")
	assert.Error(t, err)
}

func TestEstimateCmdDeployment(t *testing.T) {
	eth, url := newTestNode(t)
	txHash := common.HexToHash("0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060")
	eth.receipts[txHash] = &types.Receipt{
		Status:            types.ReceiptStatusSuccessful,
		CumulativeGasUsed: 6712392,
		Logs:              []*types.Log{},
		TxHash:            txHash,
		GasUsed:           6712392,
	}

	out, err := runGasCost(t, "--endpoint", url, "estimate", `{"transactionHash":"`+txHash.Hex()+`"}`)
	require.NoError(t, err)
	assert.Equal(t, "6712392 gas (€42.29, 100.0% of limit)\n", out)

	out, err = runGasCost(t, "--endpoint", url, "receipt", txHash.Hex())
	require.NoError(t, err)
	assert.Equal(t, "6712392 gas (€42.29, 100.0% of limit)\n", out)
}

func TestReceiptCmdRejectsBadHash(t *testing.T) {
	_, err := runGasCost(t, "receipt", "0x1234")
	assert.Error(t, err)
}

func TestAdvanceCmd(t *testing.T) {
	eth, url := newTestNode(t)

	out, err := runGasCost(t, "--endpoint", url, "advance", "4")
	require.NoError(t, err)
	assert.Equal(t, "4", strings.TrimSpace(out))

	out, err = runGasCost(t, "--endpoint", url, "advance", "--to", "10")
	require.NoError(t, err)
	assert.Equal(t, "10", strings.TrimSpace(out))
	assert.Equal(t, uint64(10), eth.head)

	_, err = runGasCost(t, "--endpoint", url, "advance", "--to", "3")
	assert.Error(t, err)

	_, err = runGasCost(t, "--endpoint", url, "advance")
	assert.Error(t, err)
}

func TestAdvanceCmdSeconds(t *testing.T) {
	eth, url := newTestNode(t)

	out, err := runGasCost(t, "--endpoint", url, "advance", "--seconds", "3600")
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(out))
	assert.Equal(t, int64(3600), eth.clock)

	out, err = runGasCost(t, "--endpoint", url, "advance", "--seconds", "60", "2")
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(out))
	assert.Equal(t, int64(3660), eth.clock)
	assert.Equal(t, uint64(2), eth.head)
}
