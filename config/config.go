// Package config loads the nwc configuration from an optional YAML file, the
// environment and a .env file, and sets up logging.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/council"
	"github.com/etnz/networth/fred"
	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Currency   string           `yaml:"currency" mapstructure:"currency"`
	Projection ProjectionConfig `yaml:"projection" mapstructure:"projection"`
	Fred       FredConfig       `yaml:"fred" mapstructure:"fred"`
	Council    CouncilConfig    `yaml:"council" mapstructure:"council"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "console" or "json"
}

// ProjectionConfig holds the defaults of single projection commands.
type ProjectionConfig struct {
	Years     int     `yaml:"years" mapstructure:"years"`
	Strategy  string  `yaml:"strategy" mapstructure:"strategy"`
	Return    float64 `yaml:"return" mapstructure:"return"`
	Inflation float64 `yaml:"inflation" mapstructure:"inflation"`
}

// Assumptions returns the configured assumption set.
func (p ProjectionConfig) Assumptions() networth.AssumptionSet {
	return networth.AssumptionSet{AnnualReturn: p.Return, AnnualInflation: p.Inflation}
}

// FredConfig configures the FRED reference rates client.
type FredConfig struct {
	APIKey      string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	CacheDir    string `yaml:"cache_dir" mapstructure:"cache_dir"`
}

// Client returns the fred client configuration.
func (f FredConfig) Client() fred.Config {
	return fred.Config{
		APIKey:   f.APIKey,
		BaseURL:  f.BaseURL,
		Timeout:  time.Duration(f.TimeoutSecs) * time.Second,
		CacheDir: f.CacheDir,
	}
}

// CouncilConfig configures the advisor council.
type CouncilConfig struct {
	Years       int             `yaml:"years" mapstructure:"years"`
	TimeoutSecs int             `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	Advisors    []AdvisorConfig `yaml:"advisors" mapstructure:"advisors"`
}

// AdvisorConfig describes one council persona.
type AdvisorConfig struct {
	Key             string  `yaml:"key" mapstructure:"key"`
	Name            string  `yaml:"name" mapstructure:"name"`
	Title           string  `yaml:"title" mapstructure:"title"`
	Return          float64 `yaml:"return" mapstructure:"return"`
	Inflation       float64 `yaml:"inflation" mapstructure:"inflation"`
	Strategy        string  `yaml:"strategy" mapstructure:"strategy"`
	DemoInvestShare float64 `yaml:"demo_invest_share" mapstructure:"demo_invest_share"`
}

// Persona converts the advisor configuration.
func (a AdvisorConfig) Persona() (council.Persona, error) {
	s, err := networth.ParseStrategy(a.Strategy)
	if err != nil {
		return council.Persona{}, eris.Wrapf(err, "config: advisor %q", a.Key)
	}
	p := council.Persona{
		Key:             a.Key,
		Name:            a.Name,
		Title:           a.Title,
		Assumptions:     networth.AssumptionSet{AnnualReturn: a.Return, AnnualInflation: a.Inflation},
		Strategy:        s,
		DemoInvestShare: a.DemoInvestShare,
	}
	if err := p.Validate(); err != nil {
		return council.Persona{}, err
	}
	return p, nil
}

// Council returns the configured council, made of the default personas when
// no advisor is configured.
func (c CouncilConfig) Council() (*council.Council, error) {
	var personas []council.Persona
	for _, a := range c.Advisors {
		p, err := a.Persona()
		if err != nil {
			return nil, err
		}
		personas = append(personas, p)
	}
	cl := council.New(personas...)
	cl.Years = c.Years
	cl.Timeout = time.Duration(c.TimeoutSecs) * time.Second
	return cl, nil
}

// Load reads configuration from file and environment.
//
// A .env file in the working directory is loaded first, without overriding
// variables already set. The configuration file is path if not empty,
// otherwise an optional nwc.yaml in the working directory. Every key can be
// overridden by an NWC_ prefixed variable, e.g. NWC_FRED_API_KEY; FRED_API_KEY
// is accepted too.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("nwc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("NWC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("fred.api_key", "NWC_FRED_API_KEY", "FRED_API_KEY"); err != nil {
		return nil, eris.Wrap(err, "config: bind env")
	}

	// Defaults
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("currency", "USD")
	v.SetDefault("projection.years", networth.LongCheckpoint)
	v.SetDefault("projection.strategy", networth.Balanced.String())
	v.SetDefault("projection.return", 0.065)
	v.SetDefault("projection.inflation", 0.03)
	v.SetDefault("fred.api_key", "")
	v.SetDefault("fred.base_url", fred.DefaultBaseURL)
	v.SetDefault("fred.timeout_secs", 30)
	v.SetDefault("fred.cache_dir", filepath.Join(os.TempDir(), "nwc-fred"))
	v.SetDefault("council.years", networth.LongCheckpoint)
	v.SetDefault("council.timeout_secs", int(council.DefaultTimeout/time.Second))

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values the commands rely on.
func (c *Config) Validate() error {
	if c.Currency == "" {
		return eris.New("config: currency is required")
	}
	if c.Projection.Years < 0 || c.Projection.Years > networth.MaxHorizon {
		return eris.Errorf("config: projection.years must be within [0, %d], got %d", networth.MaxHorizon, c.Projection.Years)
	}
	if _, err := networth.ParseStrategy(c.Projection.Strategy); err != nil {
		return eris.Wrap(err, "config: projection.strategy")
	}
	if err := c.Projection.Assumptions().Validate(); err != nil {
		return eris.Wrap(err, "config: projection")
	}
	for _, a := range c.Council.Advisors {
		if _, err := a.Persona(); err != nil {
			return err
		}
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
