package crowdsale

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// CrowdsaleABI covers the read-only ICO parameters of the deployed contract.
const CrowdsaleABI = `[
	{"constant":true,"inputs":[],"name":"startDate","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"ownedToken","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"lockedAccount","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}
]`

type Crowdsale struct {
	address  common.Address
	contract *bind.BoundContract
}

func NewCrowdsale(address common.Address, caller bind.ContractCaller) (*Crowdsale, error) {
	parsed, err := abi.JSON(strings.NewReader(CrowdsaleABI))
	if err != nil {
		return nil, err
	}

	return &Crowdsale{
		address:  address,
		contract: bind.NewBoundContract(address, parsed, caller, nil, nil),
	}, nil
}

func (c *Crowdsale) Address() common.Address {
	return c.address
}

func (c *Crowdsale) StartDate(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "startDate"); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Crowdsale) OwnedToken(opts *bind.CallOpts) (common.Address, error) {
	return c.callAddress(opts, "ownedToken")
}

func (c *Crowdsale) LockedAccount(opts *bind.CallOpts) (common.Address, error) {
	return c.callAddress(opts, "lockedAccount")
}

func (c *Crowdsale) callAddress(opts *bind.CallOpts, method string) (common.Address, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, method); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}
