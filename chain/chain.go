package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrReceiptNotFound = errors.New("transaction receipt not found")
	ErrBlockInPast     = errors.New("advancing to a block in the past")
)

// ReceiptQuerier looks up how much gas a mined transaction consumed.
type ReceiptQuerier interface {
	ConsumedUnits(ctx context.Context, txHash common.Hash) (uint64, error)
}

// BlockAdvancer mines empty blocks on a development chain.
type BlockAdvancer interface {
	BlockNumber(ctx context.Context) (uint64, error)
	AdvanceBlocks(ctx context.Context, count uint64) error
}

// AdvanceToBlock mines until the chain head reaches number.
func AdvanceToBlock(ctx context.Context, advancer BlockAdvancer, number uint64) error {
	current, err := advancer.BlockNumber(ctx)
	if err != nil {
		return err
	}
	if current > number {
		return fmt.Errorf("%w: head %d, target %d", ErrBlockInPast, current, number)
	}

	return advancer.AdvanceBlocks(ctx, number-current)
}
