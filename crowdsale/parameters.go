package crowdsale

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-multierror"

	"github.com/TopiaNetwork/gascost/configuration"
	tplog "github.com/TopiaNetwork/gascost/log"
)

var (
	ErrParameterMismatch = errors.New("crowdsale parameter mismatch")
	ErrInvalidAddress    = errors.New("invalid address")
)

// Parameters are the ICO settings fixed at deployment.
type Parameters struct {
	StartDate     *big.Int
	OwnedToken    common.Address
	LockedAccount common.Address
}

func (c *Crowdsale) ReadParameters(ctx context.Context) (*Parameters, error) {
	opts := &bind.CallOpts{Context: ctx}

	startDate, err := c.StartDate(opts)
	if err != nil {
		return nil, fmt.Errorf("read startDate: %w", err)
	}
	ownedToken, err := c.OwnedToken(opts)
	if err != nil {
		return nil, fmt.Errorf("read ownedToken: %w", err)
	}
	lockedAccount, err := c.LockedAccount(opts)
	if err != nil {
		return nil, fmt.Errorf("read lockedAccount: %w", err)
	}

	return &Parameters{
		StartDate:     startDate,
		OwnedToken:    ownedToken,
		LockedAccount: lockedAccount,
	}, nil
}

// Verify reports every field that differs from expected, or nil.
func (p *Parameters) Verify(expected *Parameters) error {
	var result *multierror.Error

	if p.StartDate == nil || expected.StartDate == nil || p.StartDate.Cmp(expected.StartDate) != 0 {
		result = multierror.Append(result, fmt.Errorf("%w: startDate got %v, want %v", ErrParameterMismatch, p.StartDate, expected.StartDate))
	}
	if p.OwnedToken != expected.OwnedToken {
		result = multierror.Append(result, fmt.Errorf("%w: ownedToken got %s, want %s", ErrParameterMismatch, p.OwnedToken.Hex(), expected.OwnedToken.Hex()))
	}
	if p.LockedAccount != expected.LockedAccount {
		result = multierror.Append(result, fmt.Errorf("%w: lockedAccount got %s, want %s", ErrParameterMismatch, p.LockedAccount.Hex(), expected.LockedAccount.Hex()))
	}

	return result.ErrorOrNil()
}

// ExpectedFromConfig returns the contract address and the parameters it should hold.
func ExpectedFromConfig(config *configuration.CrowdsaleConfiguration) (common.Address, *Parameters, error) {
	var result *multierror.Error

	addresses := make([]common.Address, 3)
	for i, s := range []string{config.Address, config.OwnedToken, config.LockedAccount} {
		if !common.IsHexAddress(s) {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidAddress, s))
			continue
		}
		addresses[i] = common.HexToAddress(s)
	}
	if err := result.ErrorOrNil(); err != nil {
		return common.Address{}, nil, err
	}

	return addresses[0], &Parameters{
		StartDate:     new(big.Int).SetUint64(config.StartDate),
		OwnedToken:    addresses[1],
		LockedAccount: addresses[2],
	}, nil
}

// Check reads the deployed crowdsale named in config and verifies its ICO parameters.
func Check(ctx context.Context, caller bind.ContractCaller, config *configuration.CrowdsaleConfiguration, log tplog.Logger) error {
	address, expected, err := ExpectedFromConfig(config)
	if err != nil {
		return err
	}

	cs, err := NewCrowdsale(address, caller)
	if err != nil {
		return err
	}

	actual, err := cs.ReadParameters(ctx)
	if err != nil {
		return err
	}
	log.Infof("crowdsale %s: startDate=%v ownedToken=%s lockedAccount=%s",
		address.Hex(), actual.StartDate, actual.OwnedToken.Hex(), actual.LockedAccount.Hex())

	if err = actual.Verify(expected); err != nil {
		log.Warnf("crowdsale %s parameters differ: %v", address.Hex(), err)
		return err
	}

	return nil
}
