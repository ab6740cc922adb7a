package chain

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/core/vm"
)

// IsEVMThrow reports whether err is a contract execution failure (invalid opcode or revert),
// either returned in-process or carried back as an RPC error message.
func IsEVMThrow(err error) bool {
	if err == nil {
		return false
	}

	var invalidOpCode *vm.ErrInvalidOpCode
	if errors.As(err, &invalidOpCode) || errors.Is(err, vm.ErrExecutionReverted) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "invalid opcode") || strings.Contains(msg, "revert")
}
