package renderer

import (
	"time"

	"github.com/etnz/networth/fred"
)

// RatesMarkdown renders reference economic rates.
func RatesMarkdown(rates fred.Rates) string {
	r := newReport("")
	if rates.Live() {
		r.H1("Market Data (FRED)").LF()
	} else {
		r.H1("Market Data (defaults)").LF()
	}
	r.table([]string{"Rate", "Value"}, [][]string{
		{"CPI Inflation (YoY)", rates.Inflation.String()},
		{"10Y Treasury", rates.Treasury10Y.String()},
		{"Fed Funds", rates.FedFunds.String()},
		{"High-Yield Savings", rates.SavingsAPY.String()},
	})
	if !rates.Fetched.IsZero() {
		r.PlainTextf("Fetched %s.", rates.Fetched.Format(time.DateTime)).LF()
	}
	if rates.Err != "" {
		r.PlainTextf("Live data unavailable: %s", rates.Err).LF()
	} else if !rates.Live() {
		r.PlainText("Set FRED_API_KEY for live data.").LF()
	}
	return r.String()
}
