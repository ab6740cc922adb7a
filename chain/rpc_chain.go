package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	lru "github.com/hashicorp/golang-lru"

	"github.com/TopiaNetwork/gascost/configuration"
	tplog "github.com/TopiaNetwork/gascost/log"
)

// RPCChain talks JSON-RPC to a development node (ganache, hardhat, anvil).
type RPCChain struct {
	log      tplog.Logger
	rpc      *rpc.Client
	client   *ethclient.Client
	receipts *lru.Cache
}

func DialRPCChain(ctx context.Context, config *configuration.ChainConfiguration, log tplog.Logger) (*RPCChain, error) {
	dialCtx, cancel := context.WithTimeout(ctx, config.DialTimeout)
	defer cancel()

	rpcClient, err := rpc.DialContext(dialCtx, config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", config.Endpoint, err)
	}

	rc, err := NewRPCChain(rpcClient, config.ReceiptCacheSize, log)
	if err != nil {
		rpcClient.Close()
		return nil, err
	}

	return rc, nil
}

func NewRPCChain(rpcClient *rpc.Client, receiptCacheSize int, log tplog.Logger) (*RPCChain, error) {
	receipts, err := lru.New(receiptCacheSize)
	if err != nil {
		return nil, fmt.Errorf("receipt cache: %w", err)
	}

	return &RPCChain{
		log:      tplog.WithField(log, "module", "chain"),
		rpc:      rpcClient,
		client:   ethclient.NewClient(rpcClient),
		receipts: receipts,
	}, nil
}

func (rc *RPCChain) ConsumedUnits(ctx context.Context, txHash common.Hash) (uint64, error) {
	if units, ok := rc.receipts.Get(txHash); ok {
		rc.log.Debugf("receipt cache hit: tx=%s", txHash.Hex())
		return units.(uint64), nil
	}

	receipt, err := rc.client.TransactionReceipt(ctx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		return 0, fmt.Errorf("%w: %s", ErrReceiptNotFound, txHash.Hex())
	}
	if err != nil {
		return 0, fmt.Errorf("get receipt %s: %w", txHash.Hex(), err)
	}

	rc.receipts.Add(txHash, receipt.GasUsed)
	rc.log.Debugf("receipt fetched: tx=%s gasUsed=%d", txHash.Hex(), receipt.GasUsed)

	return receipt.GasUsed, nil
}

func (rc *RPCChain) BlockNumber(ctx context.Context) (uint64, error) {
	return rc.client.BlockNumber(ctx)
}

func (rc *RPCChain) AdvanceBlocks(ctx context.Context, count uint64) error {
	for i := uint64(0); i < count; i++ {
		if err := rc.rpc.CallContext(ctx, nil, "evm_mine"); err != nil {
			rc.log.Errorf("evm_mine failed after %d blocks: %v", i, err)
			return fmt.Errorf("evm_mine %d/%d: %w", i+1, count, err)
		}
	}
	rc.log.Debugf("advanced %d blocks", count)

	return nil
}

func (rc *RPCChain) IncreaseTime(ctx context.Context, d time.Duration) error {
	return rc.rpc.CallContext(ctx, nil, "evm_increaseTime", int64(d/time.Second))
}

// Client exposes the underlying ethclient for contract bindings.
func (rc *RPCChain) Client() *ethclient.Client {
	return rc.client
}

func (rc *RPCChain) Close() {
	rc.rpc.Close()
}
