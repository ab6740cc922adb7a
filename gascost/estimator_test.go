package gascost

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TopiaNetwork/gascost/configuration"
	"github.com/TopiaNetwork/gascost/currency"
)

func newDefaultEstimator(t *testing.T) *Estimator {
	e, err := NewEstimator(configuration.DefGasCostConfiguration())
	require.NoError(t, err)
	return e
}

func TestEstimateCost(t *testing.T) {
	e := newDefaultEstimator(t)

	tests := []struct {
		units   uint64
		fiat    string
		percent string
		report  string
	}{
		{0, "0", "0", "0 gas (€0.00, 0.0% of limit)"},
		{21000, "0.13", "0.3", "21000 gas (€0.13, 0.3% of limit)"},
		{50000, "0.32", "0.7", "50000 gas (€0.32, 0.7% of limit)"},
		{6712392, "42.29", "100", "6712392 gas (€42.29, 100.0% of limit)"},
		{13424784, "84.58", "200", "13424784 gas (€84.58, 200.0% of limit)"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.units), func(t *testing.T) {
			r := e.EstimateCost(tt.units)
			assert.Equal(t, tt.units, r.Units)
			assert.True(t, r.Fiat.Equal(decimal.RequireFromString(tt.fiat)), "fiat %s", r.Fiat)
			assert.True(t, r.PercentOfLimit.Equal(decimal.RequireFromString(tt.percent)), "percent %s", r.PercentOfLimit)
			assert.Equal(t, tt.report, r.String())
		})
	}
}

func TestEstimateCostFullLimit(t *testing.T) {
	r := newDefaultEstimator(t).EstimateCost(6712392)
	assert.Equal(t, "100.0", r.PercentOfLimit.StringFixed(1))
}

func TestEstimateCostZero(t *testing.T) {
	r := newDefaultEstimator(t).EstimateCost(0)
	assert.True(t, r.Fiat.IsZero())
	assert.Equal(t, "0.0", r.PercentOfLimit.StringFixed(1))
}

func TestEstimateCostMentionsUnits(t *testing.T) {
	e := newDefaultEstimator(t)
	for _, u := range []uint64{0, 1, 999, 21000, 6712391, 6712392, 1 << 40, math.MaxUint64} {
		assert.True(t, strings.Contains(e.EstimateCost(u).String(), fmt.Sprintf("%d gas", u)))
	}
}

func TestEstimateCostIdempotent(t *testing.T) {
	e := newDefaultEstimator(t)
	for _, u := range []uint64{0, 21000, 123456789} {
		assert.Equal(t, e.EstimateCost(u).String(), e.EstimateCost(u).String())
	}
}

func TestEstimateCostRoundsHalfUp(t *testing.T) {
	e, err := NewEstimator(&configuration.GasCostConfiguration{
		UnitPrice:      0.005,
		UnitRate:       1,
		UnitLimit:      400,
		CurrencySymbol: currency.FiatSymbol_Dollar,
	})
	require.NoError(t, err)

	r := e.EstimateCost(5)
	assert.Equal(t, "0.03", r.Fiat.StringFixed(2), "0.025 rounds away from zero")

	r = e.EstimateCost(1)
	assert.Equal(t, "0.3", r.PercentOfLimit.StringFixed(1), "0.25 percent rounds away from zero")
	assert.Equal(t, "1 gas ($0.01, 0.3% of limit)", r.String())
}

func TestEstimateCostHasNoFloatDrift(t *testing.T) {
	e, err := NewEstimator(&configuration.GasCostConfiguration{
		UnitPrice: 0.1,
		UnitRate:  1,
		UnitLimit: 10,
	})
	require.NoError(t, err)

	// 3 * 0.1 is 0.30000000000000004 in binary floating point.
	r := e.EstimateCost(3)
	assert.True(t, r.Fiat.Equal(decimal.RequireFromString("0.3")))
}

func TestNewEstimatorRejectsBadConfig(t *testing.T) {
	config := configuration.DefGasCostConfiguration()
	config.UnitLimit = 0
	_, err := NewEstimator(config)
	assert.ErrorIs(t, err, configuration.ErrZeroUnitLimit)

	config = configuration.DefGasCostConfiguration()
	config.UnitRate = math.Inf(1)
	_, err = NewEstimator(config)
	assert.ErrorIs(t, err, configuration.ErrInvalidUnitRate)
}
