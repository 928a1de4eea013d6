package networth

// RiskTolerance is the household's declared appetite for market risk.
type RiskTolerance int

const (
	// Moderate is the default tolerance.
	Moderate RiskTolerance = iota
	// Conservative prefers capital preservation over growth.
	Conservative
	// Aggressive accepts drawdowns for higher expected returns.
	Aggressive
)

func (r RiskTolerance) String() string {
	switch r {
	case Conservative:
		return "conservative"
	case Moderate:
		return "moderate"
	case Aggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// ParseRiskTolerance parses a string into a RiskTolerance. An empty string is
// Moderate.
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	switch s {
	case "conservative":
		return Conservative, nil
	case "moderate", "":
		return Moderate, nil
	case "aggressive":
		return Aggressive, nil
	default:
		return 0, invalidf("unknown risk tolerance: %q", s)
	}
}
