package renderer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/council"
	"github.com/etnz/networth/fred"
)

func scenarioProfile(t *testing.T) networth.Profile {
	t.Helper()
	p, err := networth.NewProfile(networth.ProfileInput{
		Age:              28,
		MonthlyIncome:    6500,
		MonthlyExpenses:  4200,
		TotalDebt:        18000,
		DebtInterestRate: 0.055,
		CurrentSavings:   12000,
	})
	if err != nil {
		t.Fatalf("NewProfile() failed: %v", err)
	}
	return p
}

var reference = networth.AssumptionSet{AnnualReturn: 0.065, AnnualInflation: 0.03}

// assertContains checks that got contains every wanted fragment.
func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}

func assertNotContains(t *testing.T, got string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(got, w) {
			t.Errorf("output contains %q:\n%s", w, got)
		}
	}
}

func TestBaselineMarkdown(t *testing.T) {
	p := scenarioProfile(t)
	got := BaselineMarkdown(p, networth.NewBaseline(p), "USD")
	assertContains(t, got,
		"# Financial Baseline at 28",
		"$2,300.00",
		"35.4%",
		"-$6,000.00",
		"2.9 months",
		"0.23",
		"$1,260,000",
		"## Suggested Split",
		"$1,150.00",
		"17 months (1.4 years)",
	)
}

func TestBaselineMarkdown_NoDebt(t *testing.T) {
	p, err := networth.NewProfile(networth.ProfileInput{Age: 40, MonthlyIncome: 5000, MonthlyExpenses: 3000, CurrentSavings: 50000})
	if err != nil {
		t.Fatal(err)
	}
	got := BaselineMarkdown(p, networth.NewBaseline(p), "USD")
	assertNotContains(t, got, "Suggested Split", "exceed income")
}

func TestBaselineMarkdown_Overspending(t *testing.T) {
	p, err := networth.NewProfile(networth.ProfileInput{Age: 35, MonthlyIncome: 3000, MonthlyExpenses: 3500, CurrentSavings: 1000})
	if err != nil {
		t.Fatal(err)
	}
	got := BaselineMarkdown(p, networth.NewBaseline(p), "USD")
	assertContains(t, got, "Expenses exceed income by $500.00 a month")
}

func TestHealthMarkdown(t *testing.T) {
	got := HealthMarkdown(networth.Score(scenarioProfile(t)))
	assertContains(t, got, "# Financial Health: 75.9 / 100 (Fair)", "Savings Rate", "Strong", "Weak")
}

func TestRating(t *testing.T) {
	testCases := []struct {
		score float64
		want  string
	}{
		{100, "Strong"},
		{80, "Strong"},
		{79.9, "Fair"},
		{50, "Fair"},
		{49.9, "Weak"},
		{0, "Weak"},
	}
	for _, tc := range testCases {
		if got := rating(tc.score); got != tc.want {
			t.Errorf("rating(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestProjectionMarkdown(t *testing.T) {
	p := scenarioProfile(t)
	scenarios, err := networth.Scenarios(p, reference, 30)
	if err != nil {
		t.Fatalf("Scenarios() failed: %v", err)
	}
	got := ProjectionMarkdown(p, reference, scenarios, "USD")
	assertContains(t, got, "# Net Worth Projection", "Debt First", "Invest First", "Balanced", "ends highest", "after 30 years", ", +$")
	assertNotContains(t, got, "| 40 ")
}

func TestYears(t *testing.T) {
	testCases := []struct {
		horizon int
		want    []int
	}{
		{1, []int{0, 1}},
		{3, []int{0, 1, 3}},
		{30, []int{0, 1, 5, 10, 15, 20, 25, 30}},
		{35, []int{0, 1, 5, 10, 15, 20, 25, 30, 35}},
		{50, []int{0, 1, 5, 10, 15, 20, 25, 30, 40, 50}},
	}
	for _, tc := range testCases {
		got := years(tc.horizon)
		if len(got) != len(tc.want) {
			t.Errorf("years(%d) = %v, want %v", tc.horizon, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("years(%d) = %v, want %v", tc.horizon, got, tc.want)
				break
			}
		}
	}
}

func TestRetirementMarkdown(t *testing.T) {
	p := scenarioProfile(t)
	ret, err := networth.EstimateRetirementAge(p, reference)
	if err != nil {
		t.Fatal(err)
	}
	got := RetirementMarkdown(p, reference, ret, "USD")
	assertContains(t, got, "# Retirement Estimate", "55", "Financial independence in 27 years.")

	got = RetirementMarkdown(p, reference, networth.Retirement{Age: networth.UnreachableAge}, "USD")
	assertContains(t, got, "not within 50 years", "never reach")
}

func TestPayoffMarkdown(t *testing.T) {
	testCases := []struct {
		name                     string
		principal, rate, payment float64
		want, unwanted           []string
	}{
		{
			name:      "repaid",
			principal: 18000, rate: 0.055, payment: 1150,
			want:     []string{"# Debt Payoff", "17 months (1.4 years)", "Total Paid"},
			unwanted: []string{"does not cover"},
		},
		{
			name:      "interest not covered",
			principal: 10000, rate: 0.12, payment: 50,
			want:     []string{"never", "does not cover the $100.00 monthly interest"},
			unwanted: []string{"Total Paid"},
		},
		{
			name:      "no debt",
			principal: 0, rate: 0.05, payment: 100,
			want:     []string{"none"},
			unwanted: []string{"Total Paid"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PayoffMarkdown(tc.principal, tc.rate, tc.payment, "USD")
			assertContains(t, got, tc.want...)
			assertNotContains(t, got, tc.unwanted...)
		})
	}
}

func TestMonths(t *testing.T) {
	testCases := []struct {
		n    int
		want string
	}{
		{networth.NeverPaidOff, "never"},
		{0, "none"},
		{7, "7 months"},
		{18, "18 months (1.5 years)"},
	}
	for _, tc := range testCases {
		if got := months(tc.n); got != tc.want {
			t.Errorf("months(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestCouncilMarkdown(t *testing.T) {
	c := council.New()
	c.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	s, err := c.Run(context.Background(), scenarioProfile(t))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	checks := fred.Compare(fred.Defaults, s.Results)

	got := CouncilMarkdown(s, checks, "USD")
	assertContains(t, got,
		"# Advisor Council",
		"Alex Chen (Growth Optimizer)",
		"Morgan Wells",
		"Jordan Rivera",
		"Invest First",
		"## Consensus: ",
		"divergence (",
		"Retirement Age",
		"54 to 59",
		"## Assumptions vs Market Data",
		"-0.6%",
		"+2.5%",
		"## Audit Log",
		"12:00:00",
		"council_start",
		"council_complete",
	)
	assertNotContains(t, got, "(demo)", "synthetic demo results")
}

func TestCouncilMarkdown_Synthetic(t *testing.T) {
	p := scenarioProfile(t)
	r, err := council.Demo(p, council.Planner, 30)
	if err != nil {
		t.Fatal(err)
	}
	rep, err := networth.Synthesize(r)
	if err != nil {
		t.Fatal(err)
	}
	s := &council.Session{Results: []networth.AnalysisResult{r}, Report: rep}

	got := CouncilMarkdown(s, nil, "USD")
	assertContains(t, got, "*(demo)*", "1 of 1 analyses are synthetic demo results.")
	assertNotContains(t, got, "Assumptions vs Market Data")
}

func TestLogMarkdown(t *testing.T) {
	log := council.Log{
		{Time: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), Kind: council.Failure, Advisor: "safety", Detail: "bad | value\nsecond line"},
	}
	got := LogMarkdown(log)
	assertContains(t, got, "| 09:30:00 | failure | safety | bad \\| value second line |")
}

func TestRatesMarkdown(t *testing.T) {
	got := RatesMarkdown(fred.Defaults)
	assertContains(t, got, "# Market Data (defaults)", "3.1%", "4.5%", "Set FRED_API_KEY")

	live := fred.Rates{
		Inflation:   4.33,
		Treasury10Y: 4.21,
		FedFunds:    4,
		SavingsAPY:  3.8,
		Source:      fred.SourceFRED,
		Fetched:     time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	got = RatesMarkdown(live)
	assertContains(t, got, "# Market Data (FRED)", "4.3%", "4.2%", "3.8%", "Fetched 2025-06-01 08:00:00.")
	assertNotContains(t, got, "FRED_API_KEY")

	failed := fred.Defaults
	failed.Err = "connection refused"
	assertContains(t, RatesMarkdown(failed), "Live data unavailable: connection refused")
}
