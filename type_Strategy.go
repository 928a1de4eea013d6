package networth

import "fmt"

// Strategy defines how the monthly surplus is split between investments and
// debt repayment during a projection.
type Strategy int

const (
	// Balanced invests 60% of the surplus and pays debt with 40%.
	Balanced Strategy = iota
	// DebtFirst pays debt with the whole surplus until it is cleared, then
	// invests all of it.
	DebtFirst
	// InvestFirst invests 85% of the surplus and pays debt with 15%.
	InvestFirst
)

// Strategies lists every strategy in report order.
var Strategies = []Strategy{DebtFirst, InvestFirst, Balanced}

func (s Strategy) String() string {
	switch s {
	case DebtFirst:
		return "debt_first"
	case InvestFirst:
		return "invest_first"
	case Balanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// Title returns a human readable name.
func (s Strategy) Title() string {
	switch s {
	case DebtFirst:
		return "Debt First"
	case InvestFirst:
		return "Invest First"
	case Balanced:
		return "Balanced"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy tag.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "debt_first":
		return DebtFirst, nil
	case "invest_first":
		return InvestFirst, nil
	case "balanced":
		return Balanced, nil
	default:
		return 0, invalidf("unknown strategy: %q", s)
	}
}

func (s Strategy) valid() bool { return s >= Balanced && s <= InvestFirst }

// split returns the monthly investment and debt shares of surplus given the
// current debt balance.
func (s Strategy) split(surplus, debt float64) (invest, repay float64) {
	switch s {
	case DebtFirst:
		if debt > 0 {
			return 0, surplus
		}
		return surplus, 0
	case InvestFirst:
		return surplus * 0.85, surplus * 0.15
	default:
		return surplus * 0.60, surplus * 0.40
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, invalidf("unknown strategy: %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
