package configuration

import (
	"errors"
	"math"

	"github.com/TopiaNetwork/gascost/currency"
)

var (
	ErrZeroUnitLimit    = errors.New("gas unit limit must be greater than zero")
	ErrInvalidUnitPrice = errors.New("gas unit price must be a finite non-negative number")
	ErrInvalidUnitRate  = errors.New("gas unit rate must be a finite non-negative number")
)

type GasCostConfiguration struct {
	UnitPrice      float64             `yaml:"unitPrice"` //fiat cost of one wei
	UnitRate       float64             `yaml:"unitRate"`  //wei charged per gas
	UnitLimit      uint64              `yaml:"unitLimit"` //gas permitted per operation
	CurrencySymbol currency.FiatSymbol `yaml:"currencySymbol"`
}

func DefGasCostConfiguration() *GasCostConfiguration {
	return &GasCostConfiguration{
		UnitPrice:      300e-18,
		UnitRate:       21e9,
		UnitLimit:      6712392,
		CurrencySymbol: currency.FiatSymbol_Euro,
	}
}

func (gc *GasCostConfiguration) Validate() error {
	if gc.UnitLimit == 0 {
		return ErrZeroUnitLimit
	}
	if !isFiniteNonNegative(gc.UnitPrice) {
		return ErrInvalidUnitPrice
	}
	if !isFiniteNonNegative(gc.UnitRate) {
		return ErrInvalidUnitRate
	}

	return nil
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
