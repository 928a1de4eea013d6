// Package fred reads reference economic rates from the Federal Reserve
// Economic Data API (api.stlouisfed.org).
//
// The rates are context for a projection, never an input to it: they are
// used to check advisors' assumptions against current market data.
package fred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/networth"
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultBaseURL is the FRED API root.
const DefaultBaseURL = "https://api.stlouisfed.org"

// Series read from FRED.
const (
	CPI      = "CPIAUCSL" // consumer price index, monthly
	Treasury = "DGS10"    // 10-year treasury constant maturity, daily
	FedFunds = "DFF"      // effective federal funds rate, daily
)

// savingsShare is the share of the fed funds rate a high-yield savings
// account typically pays.
const savingsShare = 0.95

// Source values of Rates.
const (
	SourceFRED     = "FRED"
	SourceDefaults = "defaults"
)

// Rates are reference economic rates, in percent.
type Rates struct {
	Inflation   networth.Percent `json:"inflation_rate"` // CPI year over year
	Treasury10Y networth.Percent `json:"treasury_10y"`
	FedFunds    networth.Percent `json:"fed_funds_rate"`
	SavingsAPY  networth.Percent `json:"savings_rate"`
	Source      string           `json:"source"`
	Fetched     time.Time        `json:"timestamp"`
	Err         string           `json:"error,omitempty"` // why the defaults were used
}

// Live reports whether the rates were read from FRED.
func (r Rates) Live() bool { return r.Source == SourceFRED }

// Defaults are the rates used when FRED cannot be reached.
var Defaults = Rates{
	Inflation:   3.1,
	Treasury10Y: 4.5,
	FedFunds:    5.25,
	SavingsAPY:  4.75,
	Source:      SourceDefaults,
}

// Config configures a Client.
type Config struct {
	APIKey   string
	BaseURL  string        // DefaultBaseURL if empty
	Timeout  time.Duration // per request, none if zero
	CacheDir string        // daily response cache, disabled if empty
}

// Client reads Rates from FRED.
type Client struct {
	cfg  Config
	http *http.Client
	now  func() time.Time
}

// New returns a Client for cfg.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	c := &Client{cfg: cfg, now: time.Now}
	c.http = &http.Client{Timeout: cfg.Timeout}
	if cfg.CacheDir != "" {
		c.http.Transport = &diskCache{base: http.DefaultTransport, dir: cfg.CacheDir, now: c.now}
	}
	return c
}

// Rates returns the current reference rates.
//
// It never fails: without an API key, or if any series cannot be read, it
// returns Defaults with Err explaining why.
func (c *Client) Rates(ctx context.Context) Rates {
	log := zap.L().With(zap.String("component", "fred"))
	if c.cfg.APIKey == "" {
		log.Info("no FRED API key, using default rates")
		return c.defaults(nil)
	}
	r, err := c.fetch(ctx)
	if err != nil {
		log.Warn("FRED unavailable, using default rates", zap.Error(err))
		return c.defaults(err)
	}
	log.Info("fetched FRED rates",
		zap.Float64("inflation", float64(r.Inflation)),
		zap.Float64("treasury_10y", float64(r.Treasury10Y)),
		zap.Float64("fed_funds", float64(r.FedFunds)),
	)
	return r
}

func (c *Client) defaults(err error) Rates {
	r := Defaults
	r.Fetched = c.now()
	if err != nil {
		r.Err = err.Error()
	}
	return r
}

func (c *Client) fetch(ctx context.Context) (Rates, error) {
	var errs error

	// year over year needs the latest value and the one 12 months before.
	// Two years of history leave room for missing months.
	var inflation float64
	cpi, err := c.series(ctx, CPI, 24)
	if err == nil {
		inflation, err = yearOverYear(cpi)
	}
	errs = errors.Join(errs, err)

	// daily series have holes on bank holidays.
	t10, err := c.latest(ctx, Treasury)
	errs = errors.Join(errs, err)
	dff, err := c.latest(ctx, FedFunds)
	errs = errors.Join(errs, err)

	if errs != nil {
		return Rates{}, errs
	}
	return Rates{
		Inflation:   percent(inflation),
		Treasury10Y: percent(t10),
		FedFunds:    percent(dff),
		SavingsAPY:  percent(dff * savingsShare),
		Source:      SourceFRED,
		Fetched:     c.now(),
	}, nil
}

// yearOverYear returns the percent change between the latest observation and
// the one dated a year before it.
func yearOverYear(obs []observation) (float64, error) {
	if len(obs) == 0 {
		return 0, eris.Errorf("fred: %s: no observations", CPI)
	}
	last := obs[0]
	ago := last.date.AddDate(-1, 0, 0)
	for _, o := range obs[1:] {
		if o.date.Equal(ago) && o.value != 0 {
			return (last.value/o.value - 1) * 100, nil
		}
	}
	return 0, eris.Errorf("fred: %s: no observation on %s", CPI, ago.Format(time.DateOnly))
}

func (c *Client) latest(ctx context.Context, id string) (float64, error) {
	obs, err := c.series(ctx, id, 10)
	if err != nil {
		return 0, err
	}
	if len(obs) == 0 {
		return 0, eris.Errorf("fred: %s: no observations", id)
	}
	return obs[0].value, nil
}

type observation struct {
	date  time.Time
	value float64
}

// series returns the numeric observations of a series, most recent first.
// Missing observations are skipped, so fewer than limit values may be
// returned.
func (c *Client) series(ctx context.Context, id string, limit int) ([]observation, error) {
	q := url.Values{}
	q.Set("series_id", id)
	q.Set("api_key", c.cfg.APIKey)
	q.Set("file_type", "json")
	q.Set("sort_order", "desc")
	q.Set("limit", strconv.Itoa(limit))
	addr := c.cfg.BaseURL + "/fred/series/observations?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, eris.Wrapf(err, "fred: %s", id)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "fred: %s", id)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("fred: %s: %s", id, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return nil, eris.Wrapf(err, "fred: %s: decode", id)
	}
	jval, err := jsonpath.Get("$.observations[*]", jobj)
	if err != nil {
		return nil, eris.Wrapf(err, "fred: %s: no observations", id)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, eris.Errorf("fred: %s: unexpected observations %v", id, jval)
	}

	obs := make([]observation, 0, len(jlist))
	for _, v := range jlist {
		o, ok := v.(map[string]any)
		if !ok {
			continue
		}
		s, ok := o["value"].(string)
		if !ok || s == "." {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, eris.Wrapf(err, "fred: %s: observation %q", id, s)
		}
		d, _ := o["date"].(string)
		date, err := time.Parse(time.DateOnly, d)
		if err != nil {
			return nil, eris.Wrapf(err, "fred: %s: observation date %q", id, d)
		}
		obs = append(obs, observation{date: date, value: f})
	}
	return obs, nil
}

// percent rounds to the two decimals FRED publishes.
func percent(f float64) networth.Percent {
	return networth.Percent(decimal.NewFromFloat(f).Round(2).InexactFloat64())
}

func (r Rates) String() string {
	return fmt.Sprintf("inflation %v, 10Y treasury %v, fed funds %v (%s)", r.Inflation, r.Treasury10Y, r.FedFunds, r.Source)
}
