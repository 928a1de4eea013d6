package networth

import "math"

// NeverPaidOff is the month count returned by MonthsToPayoff when a debt is
// never repaid: the payment does not cover the accruing interest. It is a
// valid financial answer, effectively infinite, and not an error.
const NeverPaidOff = 9999

// MonthsToPayoff returns the number of whole monthly payments required to
// repay principal at the nominal annualRate, compounded monthly.
//
// A non-positive principal is already paid off (0). A non-positive payment, or
// one that never reduces the principal, returns NeverPaidOff. A single payment
// clears the debt only if it also covers the first month of interest,
// principal*(1+annualRate/12); a payment between principal and that amount
// takes 2.
func MonthsToPayoff(principal, annualRate, monthlyPayment float64) int {
	if principal <= 0 {
		return 0
	}
	if monthlyPayment <= 0 {
		return NeverPaidOff
	}
	r := annualRate / 12

	// Solve 0 = P(1+r)^n - pmt((1+r)^n - 1)/r for n.
	var n float64
	if r == 0 {
		n = principal / monthlyPayment
	} else {
		n = math.Log(monthlyPayment/(monthlyPayment-r*principal)) / math.Log1p(r)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return NeverPaidOff
	}
	// a partial month still requires a payment.
	months := math.Ceil(n)
	if months >= NeverPaidOff {
		return NeverPaidOff
	}
	return int(months)
}

// FutureValue returns the value after years of monthly compounding at
// annualReturn of a lump sum pv plus an ordinary annuity (end of month) of
// monthlyContribution.
//
// With years == 0 it returns pv unchanged. Negative years are rejected.
func FutureValue(pv, monthlyContribution, annualReturn float64, years int) (float64, error) {
	if years < 0 {
		return 0, invalidf("years must not be negative, got %d", years)
	}
	if math.IsNaN(annualReturn) || math.IsInf(annualReturn, 0) {
		return 0, invalidf("annual return is not a number: %v", annualReturn)
	}
	return futureValue(pv, monthlyContribution, annualReturn, years), nil
}

// futureValue is FutureValue without input validation.
func futureValue(pv, c, annualReturn float64, years int) float64 {
	if years == 0 {
		return pv
	}
	r := annualReturn / 12
	n := float64(years * 12)
	if r == 0 {
		return pv + c*n
	}
	growth := math.Pow(1+r, n)
	return pv*growth + c*(growth-1)/r
}
