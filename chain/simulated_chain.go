package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"

	"github.com/TopiaNetwork/gascost/currency"
	tplog "github.com/TopiaNetwork/gascost/log"
)

type Account struct {
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// SimulatedChain is an in-process chain; blocks are only mined on AdvanceBlocks.
type SimulatedChain struct {
	log      tplog.Logger
	backend  *backends.SimulatedBackend
	signer   types.Signer
	accounts []*Account
}

// NewSimulatedChain funds accountCount throwaway accounts with balance wei each.
func NewSimulatedChain(accountCount int, balance *big.Int, gasLimit uint64, log tplog.Logger) (*SimulatedChain, error) {
	alloc := make(core.GenesisAlloc, accountCount)
	accounts := make([]*Account, 0, accountCount)
	for i := 0; i < accountCount; i++ {
		key, err := crypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("generate account %d: %w", i, err)
		}
		acc := &Account{Key: key, Address: crypto.PubkeyToAddress(key.PublicKey)}
		alloc[acc.Address] = core.GenesisAccount{Balance: new(big.Int).Set(balance)}
		accounts = append(accounts, acc)
	}

	backend := backends.NewSimulatedBackend(alloc, gasLimit)

	return &SimulatedChain{
		log:      tplog.WithField(log, "module", "simchain"),
		backend:  backend,
		signer:   types.LatestSigner(backend.Blockchain().Config()),
		accounts: accounts,
	}, nil
}

func (sc *SimulatedChain) Accounts() []*Account {
	return sc.accounts
}

func (sc *SimulatedChain) Backend() *backends.SimulatedBackend {
	return sc.backend
}

// TransactOpts returns signing options for the account at index i.
func (sc *SimulatedChain) TransactOpts(i int) (*bind.TransactOpts, error) {
	if i < 0 || i >= len(sc.accounts) {
		return nil, fmt.Errorf("account index %d out of range [0,%d)", i, len(sc.accounts))
	}

	return bind.NewKeyedTransactorWithChainID(sc.accounts[i].Key, sc.backend.Blockchain().Config().ChainID)
}

// Transfer submits a plain value transfer from account i; it is mined on the next AdvanceBlocks.
func (sc *SimulatedChain) Transfer(ctx context.Context, i int, to common.Address, value *big.Int) (common.Hash, error) {
	if i < 0 || i >= len(sc.accounts) {
		return common.Hash{}, fmt.Errorf("account index %d out of range [0,%d)", i, len(sc.accounts))
	}
	from := sc.accounts[i]

	nonce, err := sc.backend.PendingNonceAt(ctx, from.Address)
	if err != nil {
		return common.Hash{}, err
	}
	gasPrice, err := sc.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := types.SignTx(types.NewTransaction(nonce, to, value, params.TxGas, gasPrice, nil), sc.signer, from.Key)
	if err != nil {
		return common.Hash{}, err
	}
	if err = sc.backend.SendTransaction(ctx, tx); err != nil {
		return common.Hash{}, err
	}
	sc.log.Debugf("transfer submitted: tx=%s nonce=%d value=%s ETH", tx.Hash().Hex(), nonce, currency.WeiToEther(value))

	return tx.Hash(), nil
}

func (sc *SimulatedChain) ConsumedUnits(ctx context.Context, txHash common.Hash) (uint64, error) {
	receipt, err := sc.backend.TransactionReceipt(ctx, txHash)
	if err != nil {
		return 0, fmt.Errorf("get receipt %s: %w", txHash.Hex(), err)
	}
	if receipt == nil {
		return 0, fmt.Errorf("%w: %s", ErrReceiptNotFound, txHash.Hex())
	}

	return receipt.GasUsed, nil
}

func (sc *SimulatedChain) BlockNumber(ctx context.Context) (uint64, error) {
	return sc.backend.Blockchain().CurrentBlock().NumberU64(), nil
}

func (sc *SimulatedChain) AdvanceBlocks(ctx context.Context, count uint64) error {
	for i := uint64(0); i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		sc.backend.Commit()
	}

	return nil
}

// IncreaseTime shifts the pending block's timestamp forward and mines it.
func (sc *SimulatedChain) IncreaseTime(ctx context.Context, d time.Duration) error {
	if err := sc.backend.AdjustTime(d); err != nil {
		return err
	}
	sc.backend.Commit()

	return nil
}

func (sc *SimulatedChain) Close() error {
	return sc.backend.Close()
}
