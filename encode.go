package networth

import (
	"encoding/json"
	"io"
)

// EncodeCouncil writes the analyses and their consensus report to w as one
// JSON document. Amounts are expressed in currency.
func EncodeCouncil(w io.Writer, currency string, results []AnalysisResult, rep ConsensusReport) error {
	analyses := make([]json.RawMessage, 0, len(results))
	for _, r := range results {
		b, err := encodeAnalysis(currency, r).MarshalJSON()
		if err != nil {
			return err
		}
		analyses = append(analyses, b)
	}
	consensus, err := encodeConsensus(currency, rep).MarshalJSON()
	if err != nil {
		return err
	}

	var doc jsonObjectWriter
	doc.Optional("currency", currency)
	doc.Append("analyses", analyses)
	doc.Append("consensus", json.RawMessage(consensus))
	b, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func encodeAnalysis(cur string, r AnalysisResult) *jsonObjectWriter {
	w := new(jsonObjectWriter)
	w.Append("advisor", r.Advisor)
	w.Append("synthetic", r.Synthetic)
	w.Append("assumptions", r.Assumptions)
	w.Append("strategy", r.Strategy)
	w.Append("retirement_reachable", r.Retirement.Reachable)
	if r.Retirement.Reachable {
		w.Append("retirement_age", r.Retirement.Age)
	}
	if r.DebtPayoffMonths != NeverPaidOff {
		w.Append("debt_payoff_months", r.DebtPayoffMonths)
	}
	w.Amount("net_worth_10yr", r.NetWorth10, cur)
	w.Amount("net_worth_30yr", r.NetWorth30, cur)
	w.Amount("monthly_investment", r.MonthlyInvestment, cur)
	w.Amount("monthly_debt_payment", r.MonthlyDebtPayment, cur)

	points := make([]json.RawMessage, 0, len(r.Trajectory))
	for _, pt := range r.Trajectory {
		var pw jsonObjectWriter
		pw.Append("year", pt.Year)
		pw.Append("age", pt.Age)
		pw.Rounded("savings", pt.Savings, 0)
		pw.Rounded("debt", pt.Debt, 0)
		pw.Rounded("net_worth", pt.NetWorth, 0)
		pw.Rounded("real_net_worth", pt.RealNetWorth, 0)
		b, err := pw.MarshalJSON()
		if err != nil {
			w.err = err
			return w
		}
		points = append(points, b)
	}
	w.Append("trajectory", points)
	return w
}

func encodeConsensus(cur string, rep ConsensusReport) *jsonObjectWriter {
	w := new(jsonObjectWriter)
	if rep.RetirementAge.Defined() {
		w.Append("retirement_age", rep.RetirementAge)
	}
	w.Append("net_worth_10yr", encodeMoneyMetric(cur, rep.NetWorth10))
	w.Append("net_worth_30yr", encodeMoneyMetric(cur, rep.NetWorth30))
	w.Append("divergence_score", rep.DivergenceScore)
	w.Append("divergence_level", rep.DivergenceLevel)
	w.Append("return_range", rep.ReturnRange)
	w.Append("inflation_range", rep.InflationRange)
	w.Append("analyses", rep.Analyses)
	w.Optional("synthetic", rep.Synthetic)
	w.Optional("unreachable", rep.Unreachable)
	return w
}

func encodeMoneyMetric(cur string, m Metric) *jsonObjectWriter {
	w := new(jsonObjectWriter)
	w.Amount("consensus", m.Consensus, cur)
	w.Amount("min", m.Min, cur)
	w.Amount("max", m.Max, cur)
	w.Rounded("cv", m.CV, 2)
	w.Append("samples", m.Samples)
	return w
}
