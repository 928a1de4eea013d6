package renderer

import (
	"fmt"

	"github.com/etnz/networth"
)

// HealthMarkdown renders the health score of a profile.
func HealthMarkdown(h networth.HealthScore) string {
	r := newReport("")
	r.H1f("Financial Health: %.1f / 100 (%s)", h.Overall, rating(h.Overall)).LF()

	var rows [][]string
	for _, d := range h.Dimensions {
		rows = append(rows, []string{
			d.Name,
			fmt.Sprintf("%.1f", d.Score),
			networth.Ratio(d.Weight).String(),
			rating(d.Score),
		})
	}
	r.table([]string{"Dimension", "Score", "Weight", "Rating"}, rows)
	return r.String()
}

func rating(score float64) string {
	switch {
	case score >= 80:
		return "Strong"
	case score >= 50:
		return "Fair"
	default:
		return "Weak"
	}
}
