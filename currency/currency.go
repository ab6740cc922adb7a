package currency

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const etherExp = 18

type FiatSymbol string

const (
	FiatSymbol_Euro   FiatSymbol = "€"
	FiatSymbol_Dollar FiatSymbol = "$"
)

// Ether converts an ether amount to wei, truncating anything below one wei.
func Ether(n float64) *big.Int {
	return decimal.NewFromFloat(n).Shift(etherExp).BigInt()
}

func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -etherExp)
}
