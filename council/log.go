package council

import (
	"fmt"
	"time"
)

// Kind is the type of an audit log entry.
type Kind int

const (
	Start    Kind = iota // the council was convened
	Analysis             // an advisor returned a valid analysis
	Failure              // an advisor failed or timed out
	DemoMode             // synthetic results replaced failed advisors
	Complete             // the consensus report was produced
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "council_start"
	case Analysis:
		return "analysis"
	case Failure:
		return "failure"
	case DemoMode:
		return "demo_mode"
	case Complete:
		return "council_complete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Entry is one audit log record.
type Entry struct {
	Time    time.Time `json:"timestamp"`
	Kind    Kind      `json:"type"`
	Advisor string    `json:"advisor,omitempty"` // empty for council wide entries
	Detail  string    `json:"detail"`
}

// Log is the append-only audit trail of a council session, in the order
// events were observed by the coordinator.
type Log []Entry

func (l *Log) add(at time.Time, k Kind, advisor, format string, args ...any) {
	*l = append(*l, Entry{Time: at, Kind: k, Advisor: advisor, Detail: fmt.Sprintf(format, args...)})
}

// Filter returns the entries of kind k.
func (l Log) Filter(k Kind) Log {
	var res Log
	for _, e := range l {
		if e.Kind == k {
			res = append(res, e)
		}
	}
	return res
}
