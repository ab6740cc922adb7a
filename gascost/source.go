package gascost

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/TopiaNetwork/gascost/chain"
)

var (
	ErrUnknownSource  = errors.New("unknown gas source")
	ErrMissingReceipt = errors.New("gas source carries no receipt")
	ErrNoQuerier      = errors.New("deployment lookup needs a receipt querier")
)

// GasSource is a closed union of UnitCount, TxReceipt and Deployment.
type GasSource interface {
	isGasSource()
}

// UnitCount is a raw gas amount.
type UnitCount uint64

// TxReceipt wraps the receipt returned for a submitted transaction.
type TxReceipt struct {
	Receipt *types.Receipt
}

// Deployment identifies a deployed contract by its creation transaction.
type Deployment struct {
	TxHash common.Hash
}

func (UnitCount) isGasSource() {}
func (TxReceipt) isGasSource() {}
func (Deployment) isGasSource() {}

func (u UnitCount) String() string {
	return fmt.Sprintf("%d gas", uint64(u))
}

func (r TxReceipt) String() string {
	if r.Receipt == nil {
		return "receipt(nil)"
	}
	return fmt.Sprintf("receipt(%d gas)", r.Receipt.GasUsed)
}

func (d Deployment) String() string {
	return "deployment(" + d.TxHash.Hex() + ")"
}

func Resolve(ctx context.Context, src GasSource, q chain.ReceiptQuerier) (uint64, error) {
	switch s := src.(type) {
	case UnitCount:
		return uint64(s), nil
	case TxReceipt:
		if s.Receipt == nil {
			return 0, ErrMissingReceipt
		}
		return s.Receipt.GasUsed, nil
	case Deployment:
		if q == nil {
			return 0, ErrNoQuerier
		}
		units, err := q.ConsumedUnits(ctx, s.TxHash)
		if err != nil {
			return 0, fmt.Errorf("resolve %s: %w", s, err)
		}
		return units, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownSource, src)
	}
}
