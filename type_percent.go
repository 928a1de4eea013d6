package networth

import (
	"fmt"
	"math"
)

// Percent is a percentage value: 7 means 7%.
type Percent float64

// Ratio converts a ratio (0.07) into a Percent (7).
func Ratio(r float64) Percent { return Percent(r * 100) }

// Equal compares percents to a ten-thousandth of a point.
func (p Percent) Equal(q Percent) bool {
	return math.Abs(float64(p-q)) < 1e-4
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// SignedString returns the percent with an explicit sign, "-" when it rounds
// to zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.1f%%", float64(p))
	if res == "+0.0%" || res == "-0.0%" {
		return "-"
	}
	return res
}
