// Package council runs several advisors over the same profile in parallel and
// reconciles their analyses into a consensus report.
package council

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/networth"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a council session.
const DefaultTimeout = 120 * time.Second

// Council convenes analysts. Its zero value has no analyst; use New.
type Council struct {
	Analysts []Analyst
	Years    int           // projection horizon, networth.LongCheckpoint if zero
	Timeout  time.Duration // DefaultTimeout if zero
	Currency string        // of the profile amounts, "USD" if empty
	Now      func() time.Time
}

// New returns a council of engine analysts for personas, or the default
// personas if none is given.
func New(personas ...Persona) *Council {
	if len(personas) == 0 {
		personas = Personas()
	}
	c := &Council{}
	for _, p := range personas {
		c.Analysts = append(c.Analysts, Engine(p))
	}
	return c
}

// Session is the outcome of a council run.
type Session struct {
	Results []networth.AnalysisResult // one per analyst, in analyst order
	Report  networth.ConsensusReport
	Log     Log
}

// outcome is the message an analyst goroutine sends to the coordinator.
type outcome struct {
	index   int
	result  networth.AnalysisResult
	err     error
	elapsed time.Duration
}

// Run asks every analyst for an analysis of p concurrently, then folds them
// into a consensus report.
//
// An analyst that fails, returns an invalid result or does not answer before
// the timeout is replaced by a synthetic Demo result, and the session log
// records why. Only the coordinating goroutine writes to the log.
func (c *Council) Run(ctx context.Context, p networth.Profile) (*Session, error) {
	years, err := c.validate()
	if err != nil {
		return nil, err
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}
	log := zap.L().With(zap.String("component", "council"))

	s := &Session{Results: make([]networth.AnalysisResult, len(c.Analysts))}
	s.Log.add(now(), Start, "", "%d advisors on: age %d, income %s/month, expenses %s/month, debt %s, savings %s",
		len(c.Analysts), p.Age(),
		c.money(p.MonthlyIncome()), c.money(p.MonthlyExpenses()), c.money(p.TotalDebt()), c.money(p.CurrentSavings()),
	)
	log.Info("council started", zap.Int("advisors", len(c.Analysts)), zap.Int("years", years))

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	out := make(chan outcome, len(c.Analysts))
	var g errgroup.Group
	for i, a := range c.Analysts {
		g.Go(func() error {
			start := time.Now()
			r, err := a.Analyze(ctx, p, years)
			if err == nil {
				err = r.Validate()
			}
			out <- outcome{index: i, result: r, err: err, elapsed: time.Since(start)}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(out)
	}()

	answered := make([]bool, len(c.Analysts))
	valid := make([]bool, len(c.Analysts))
collect:
	for {
		select {
		case o, ok := <-out:
			if !ok {
				break collect
			}
			key := c.Analysts[o.index].Persona().Key
			answered[o.index] = true
			if o.err != nil {
				log.Warn("advisor failed", zap.String("advisor", key), zap.Error(o.err))
				s.Log.add(now(), Failure, key, "%v", o.err)
				continue
			}
			valid[o.index] = true
			s.Results[o.index] = o.result
			log.Info("advisor answered", zap.String("advisor", key), zap.Duration("elapsed", o.elapsed))
			s.Log.add(now(), Analysis, key, "%s, retirement %s, net worth %s at %d years, %s at %d years",
				o.result.Strategy.Title(), retirement(o.result.Retirement),
				c.whole(o.result.NetWorth10), networth.ShortCheckpoint,
				c.whole(o.result.NetWorth30), networth.LongCheckpoint,
			)
		case <-ctx.Done():
			log.Warn("council timed out", zap.Duration("timeout", c.timeout()))
			break collect
		}
	}
	for i, a := range c.Analysts {
		if !answered[i] {
			s.Log.add(now(), Failure, a.Persona().Key, "no answer: %v", ctx.Err())
		}
	}

	var demo []string
	for i, a := range c.Analysts {
		if valid[i] {
			continue
		}
		r, err := Demo(p, a.Persona(), years)
		if err != nil {
			return nil, err
		}
		s.Results[i] = r
		demo = append(demo, a.Persona().Key)
	}
	if len(demo) > 0 {
		log.Warn("using synthetic results", zap.Strings("advisors", demo))
		s.Log.add(now(), DemoMode, "", "synthetic results for %s", strings.Join(demo, ", "))
	}

	s.Report, err = networth.Synthesize(s.Results...)
	if err != nil {
		return nil, eris.Wrap(err, "council: synthesize")
	}
	s.Log.add(now(), Complete, "", "%d analyses, divergence %.1f (%s)",
		s.Report.Analyses, s.Report.DivergenceScore, s.Report.DivergenceLevel)
	log.Info("council complete",
		zap.Float64("divergence", s.Report.DivergenceScore),
		zap.Stringer("level", s.Report.DivergenceLevel),
		zap.Int("synthetic", s.Report.Synthetic),
	)
	return s, nil
}

func (c *Council) validate() (int, error) {
	if len(c.Analysts) == 0 {
		return 0, eris.Wrap(networth.ErrInvalidInput, "council: no advisors")
	}
	years := c.Years
	if years == 0 {
		years = networth.LongCheckpoint
	}
	if years < networth.LongCheckpoint || years > networth.MaxHorizon {
		return 0, eris.Wrapf(networth.ErrInvalidInput, "council: horizon of %d years out of [%d, %d]",
			years, networth.LongCheckpoint, networth.MaxHorizon)
	}
	seen := make(map[string]bool)
	for _, a := range c.Analysts {
		p := a.Persona()
		if err := p.Validate(); err != nil {
			return 0, err
		}
		if seen[p.Key] {
			return 0, eris.Wrapf(networth.ErrInvalidInput, "council: duplicate advisor %q", p.Key)
		}
		seen[p.Key] = true
	}
	return years, nil
}

func (c *Council) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c *Council) currency() string {
	if c.Currency == "" {
		return "USD"
	}
	return c.Currency
}

func (c *Council) money(v float64) string { return networth.M(v, c.currency()).String() }
func (c *Council) whole(v float64) string { return networth.M(v, c.currency()).Whole() }

func retirement(r networth.Retirement) string {
	if !r.Reachable {
		return "unreachable"
	}
	return fmt.Sprintf("at %d", r.Age)
}
