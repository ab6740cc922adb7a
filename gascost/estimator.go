package gascost

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/TopiaNetwork/gascost/chain"
	"github.com/TopiaNetwork/gascost/configuration"
	"github.com/TopiaNetwork/gascost/currency"
)

const (
	fiatPlaces    = 2
	percentPlaces = 1
)

var hundred = decimal.NewFromInt(100)

// Estimator turns gas amounts into cost reports. All arithmetic is decimal and
// rounds half away from zero, so 0.025 becomes 0.03 rather than 0.02.
type Estimator struct {
	unitCost  decimal.Decimal //fiat per gas
	unitLimit decimal.Decimal
	symbol    currency.FiatSymbol
}

func NewEstimator(config *configuration.GasCostConfiguration) (*Estimator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rate := decimal.NewFromFloat(config.UnitRate)
	price := decimal.NewFromFloat(config.UnitPrice)

	return &Estimator{
		unitCost:  rate.Mul(price),
		unitLimit: decimal.NewFromBigInt(new(big.Int).SetUint64(config.UnitLimit), 0),
		symbol:    config.CurrencySymbol,
	}, nil
}

func (e *Estimator) EstimateCost(units uint64) CostReport {
	u := decimal.NewFromBigInt(new(big.Int).SetUint64(units), 0)

	return CostReport{
		Units:          units,
		Fiat:           u.Mul(e.unitCost).Round(fiatPlaces),
		PercentOfLimit: u.Mul(hundred).DivRound(e.unitLimit, percentPlaces),
		Symbol:         e.symbol,
	}
}

// EstimateFromReceipt resolves src to a gas amount first; only a Deployment touches q.
func (e *Estimator) EstimateFromReceipt(ctx context.Context, src GasSource, q chain.ReceiptQuerier) (CostReport, error) {
	units, err := Resolve(ctx, src, q)
	if err != nil {
		return CostReport{}, err
	}

	return e.EstimateCost(units), nil
}
