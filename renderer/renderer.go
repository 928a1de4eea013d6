// Package renderer formats networth reports as markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// report is a markdown document in a reporting currency.
type report struct {
	*md.Markdown
	cur string
}

func newReport(cur string) *report {
	return &report{Markdown: md.NewMarkdown(new(bytes.Buffer)), cur: cur}
}

// money formats v with cents.
func (r *report) money(v float64) string { return networth.M(v, r.cur).String() }

// whole formats v in whole currency units.
func (r *report) whole(v float64) string { return networth.M(v, r.cur).Whole() }

func (r *report) table(header []string, rows [][]string) {
	align := make([]md.TableAlignment, len(header))
	for i := 1; i < len(align); i++ {
		align[i] = md.AlignRight
	}
	r.Table(md.TableSet{Header: header, Rows: rows, Alignment: align}).LF()
}

func (r *report) String() string { return r.Markdown.String() + "\n" }

func months(n int) string {
	switch {
	case n == networth.NeverPaidOff:
		return "never"
	case n == 0:
		return "none"
	case n < 12:
		return fmt.Sprintf("%d months", n)
	default:
		return fmt.Sprintf("%d months (%.1f years)", n, float64(n)/12)
	}
}

func retirement(r networth.Retirement) string {
	if !r.Reachable {
		return "not within 50 years"
	}
	return fmt.Sprintf("%d", r.Age)
}
