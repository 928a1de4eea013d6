package networth

import "github.com/shopspring/decimal"

// round rounds f to places decimal places, half away from zero, on its
// shortest decimal representation, so 0.05 rounds to 0.1 as displayed.
func round(f float64, places int32) float64 {
	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}
