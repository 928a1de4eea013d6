package networth

import (
	"math"
	"slices"
)

// DivergenceLevel qualifies how much analyses disagree.
type DivergenceLevel int

const (
	Low DivergenceLevel = iota
	Medium
	High
)

// Divergence thresholds, exclusive: a score equal to a threshold stays in the
// lower level.
const (
	mediumDivergence = 10
	highDivergence   = 25
)

func (l DivergenceLevel) String() string {
	switch l {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l DivergenceLevel) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// Level returns the divergence level of a divergence score.
func Level(score float64) DivergenceLevel {
	switch {
	case score > highDivergence:
		return High
	case score > mediumDivergence:
		return Medium
	default:
		return Low
	}
}

// Metric is the agreement of several analyses on one value.
type Metric struct {
	Consensus float64 `json:"consensus"` // arithmetic mean
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	CV        float64 `json:"cv"`      // coefficient of variation, in percent
	Samples   int     `json:"samples"` // number of values folded
}

// Defined reports whether at least one value was folded.
func (m Metric) Defined() bool { return m.Samples > 0 }

// Spread is Max - Min.
func (m Metric) Spread() float64 { return m.Max - m.Min }

// Range is the [min, max] span of an input across analyses.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ConsensusReport reconciles several analyses of the same profile.
type ConsensusReport struct {
	// RetirementAge only folds reachable retirements.
	RetirementAge   Metric          `json:"retirement_age"`
	NetWorth10      Metric          `json:"net_worth_10yr"`
	NetWorth30      Metric          `json:"net_worth_30yr"`
	DivergenceScore float64         `json:"divergence_score"` // mean CV, one decimal
	DivergenceLevel DivergenceLevel `json:"divergence_level"`

	ReturnRange    Range `json:"return_range"`
	InflationRange Range `json:"inflation_range"`

	Analyses    int `json:"analyses"`    // number of results folded
	Synthetic   int `json:"synthetic"`   // how many of them were synthetic
	Unreachable int `json:"unreachable"` // how many never reach retirement
}

// Synthesize folds one or more analyses into a consensus report.
//
// For every metric the consensus is the mean across results and the
// divergence its coefficient of variation (sample standard deviation over the
// absolute mean, in percent), 0 with fewer than two values or a zero mean.
// Unreachable retirements are excluded from the retirement metric instead of
// weighing in with their sentinel age.
func Synthesize(results ...AnalysisResult) (ConsensusReport, error) {
	if len(results) == 0 {
		return ConsensusReport{}, ErrNoResults
	}
	var (
		ages, nw10, nw30     []float64
		returns, inflations  []float64
		synthetic, unreached int
	)
	for _, r := range results {
		if r.Retirement.Reachable {
			ages = append(ages, float64(r.Retirement.Age))
		} else {
			unreached++
		}
		if r.Synthetic {
			synthetic++
		}
		nw10 = append(nw10, r.NetWorth10)
		nw30 = append(nw30, r.NetWorth30)
		returns = append(returns, r.Assumptions.AnnualReturn)
		inflations = append(inflations, r.Assumptions.AnnualInflation)
	}

	rep := ConsensusReport{
		RetirementAge:  newMetric(ages),
		NetWorth10:     newMetric(nw10),
		NetWorth30:     newMetric(nw30),
		ReturnRange:    newRange(returns),
		InflationRange: newRange(inflations),
		Analyses:       len(results),
		Synthetic:      synthetic,
		Unreachable:    unreached,
	}
	rep.DivergenceScore = round((rep.RetirementAge.CV+rep.NetWorth10.CV+rep.NetWorth30.CV)/3, 1)
	rep.DivergenceLevel = Level(rep.DivergenceScore)
	return rep, nil
}

func newMetric(values []float64) Metric {
	if len(values) == 0 {
		return Metric{}
	}
	return Metric{
		Consensus: mean(values),
		Min:       slices.Min(values),
		Max:       slices.Max(values),
		CV:        coefficientOfVariation(values),
		Samples:   len(values),
	}
}

func newRange(values []float64) Range {
	return Range{Min: slices.Min(values), Max: slices.Max(values)}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// coefficientOfVariation uses the sample standard deviation.
func coefficientOfVariation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	if m == 0 {
		return 0
	}
	var ss float64
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	stdev := math.Sqrt(ss / float64(len(values)-1))
	return stdev / math.Abs(m) * 100
}
