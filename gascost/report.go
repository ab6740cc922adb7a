package gascost

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/TopiaNetwork/gascost/currency"
)

type CostReport struct {
	Units          uint64              `json:"units"`
	Fiat           decimal.Decimal     `json:"fiat"`
	PercentOfLimit decimal.Decimal     `json:"percentOfLimit"`
	Symbol         currency.FiatSymbol `json:"symbol"`
}

// String renders e.g. "21000 gas (€0.13, 0.3% of limit)".
func (r CostReport) String() string {
	return fmt.Sprintf("%d gas (%s%s, %s%% of limit)",
		r.Units, r.Symbol, r.Fiat.StringFixed(fiatPlaces), r.PercentOfLimit.StringFixed(percentPlaces))
}
