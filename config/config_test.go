package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/council"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// inTempDir runs the test in an empty working directory, so no nwc.yaml or
// .env file is found, and clears the FRED key variables.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	for _, k := range []string{"FRED_API_KEY", "NWC_FRED_API_KEY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, 30, cfg.Projection.Years)
	assert.Equal(t, "balanced", cfg.Projection.Strategy)
	assert.Equal(t, networth.AssumptionSet{AnnualReturn: 0.065, AnnualInflation: 0.03}, cfg.Projection.Assumptions())
	assert.Empty(t, cfg.Fred.APIKey)
	assert.Equal(t, "https://api.stlouisfed.org", cfg.Fred.BaseURL)
	assert.Equal(t, 30, cfg.Fred.TimeoutSecs)
	assert.NotEmpty(t, cfg.Fred.CacheDir)
	assert.Equal(t, 30, cfg.Council.Years)
	assert.Equal(t, 120, cfg.Council.TimeoutSecs)
	assert.Empty(t, cfg.Council.Advisors)
}

func TestLoadFromYAML(t *testing.T) {
	dir := inTempDir(t)

	yaml := `
log:
  level: debug
currency: EUR
projection:
  years: 40
  strategy: debt_first
council:
  timeout_secs: 10
  advisors:
    - key: bull
      name: Sam Bull
      title: Optimist
      return: 0.09
      inflation: 0.02
      strategy: invest_first
      demo_invest_share: 0.8
    - key: bear
      name: Pat Bear
      return: 0.03
      inflation: 0.04
      strategy: debt_first
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nwc.yaml"), []byte(yaml), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 40, cfg.Projection.Years)
	assert.Equal(t, "debt_first", cfg.Projection.Strategy)
	// Defaults still apply for unset values
	assert.Equal(t, "console", cfg.Log.Format)
	assert.InDelta(t, 0.065, cfg.Projection.Return, 1e-9)

	c, err := cfg.Council.Council()
	require.NoError(t, err)
	require.Len(t, c.Analysts, 2)
	bull := c.Analysts[0].Persona()
	assert.Equal(t, "bull", bull.Key)
	assert.Equal(t, networth.InvestFirst, bull.Strategy)
	assert.Equal(t, networth.AssumptionSet{AnnualReturn: 0.09, AnnualInflation: 0.02}, bull.Assumptions)
	assert.InDelta(t, 0.8, bull.DemoInvestShare, 1e-9)
	assert.Equal(t, networth.DebtFirst, c.Analysts[1].Persona().Strategy)
	assert.Equal(t, 10*time.Second, c.Timeout)
	assert.Equal(t, 30, c.Years)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: GBP\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "GBP", cfg.Currency)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nwc.yaml"), []byte("currency: EUR\n"), 0644))
	t.Setenv("NWC_CURRENCY", "CHF")
	t.Setenv("NWC_FRED_API_KEY", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "CHF", cfg.Currency)
	assert.Equal(t, "from-env", cfg.Fred.APIKey)
}

func TestLoadFredKeyAlias(t *testing.T) {
	inTempDir(t)
	t.Setenv("FRED_API_KEY", "plain")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Fred.APIKey)
	assert.Equal(t, "plain", cfg.Fred.Client().APIKey)
}

func TestLoadDotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FRED_API_KEY=from-dotenv\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Fred.APIKey)
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{"unknown strategy", "projection:\n  strategy: yolo\n"},
		{"horizon too long", "projection:\n  years: 80\n"},
		{"empty currency", "currency: \"\"\n"},
		{"bad advisor strategy", "council:\n  advisors:\n    - key: x\n      strategy: yolo\n"},
		{"advisor without key", "council:\n  advisors:\n    - name: x\n      strategy: balanced\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := inTempDir(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "nwc.yaml"), []byte(tc.yaml), 0644))
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestCouncilDefaults(t *testing.T) {
	c, err := CouncilConfig{}.Council()
	require.NoError(t, err)
	require.Len(t, c.Analysts, 3)
	assert.Equal(t, council.Growth, c.Analysts[0].Persona())
	assert.Zero(t, c.Timeout)
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.True(t, zap.L().Core().Enabled(zap.InfoLevel))
	assert.False(t, zap.L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
}
