package gascost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// quantity accepts a gas amount as a JSON number, a decimal string or a 0x-prefixed hex string.
type quantity uint64

func (q *quantity) UnmarshalJSON(input []byte) error {
	if len(input) > 0 && input[0] == '"' {
		var s string
		if err := json.Unmarshal(input, &s); err != nil {
			return err
		}
		v, err := parseUnits(s)
		if err != nil {
			return err
		}
		*q = quantity(v)
		return nil
	}

	v, err := strconv.ParseUint(string(input), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid gas quantity %s: %w", input, err)
	}
	*q = quantity(v)

	return nil
}

func parseUnits(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hexutil.DecodeUint64("0x" + s[2:])
	}
	return strconv.ParseUint(s, 10, 64)
}

type sourceEnvelope struct {
	Receipt *struct {
		GasUsed *quantity `json:"gasUsed"`
	} `json:"receipt"`
	TransactionHash *common.Hash `json:"transactionHash"`
}

// ParseGasSource decodes one of three JSON shapes:
//   21000                                  UnitCount
//   {"receipt":{"gasUsed":50000}}          TxReceipt
//   {"transactionHash":"0x..."}            Deployment
func ParseGasSource(data []byte) (GasSource, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnknownSource)
	}

	if data[0] != '{' {
		var q quantity
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownSource, err)
		}
		return UnitCount(q), nil
	}

	var env sourceEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	switch {
	case env.Receipt != nil:
		if env.Receipt.GasUsed == nil {
			return nil, fmt.Errorf("%w: receipt without gasUsed", ErrMissingReceipt)
		}
		return TxReceipt{Receipt: &types.Receipt{GasUsed: uint64(*env.Receipt.GasUsed)}}, nil
	case env.TransactionHash != nil:
		return Deployment{TxHash: *env.TransactionHash}, nil
	default:
		return nil, fmt.Errorf("%w: object has neither receipt nor transactionHash", ErrUnknownSource)
	}
}
