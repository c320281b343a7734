package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel1mor3055/real-estate-investing/internal/simulation"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mortgage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleConfig = `
mortgage:
  tracks:
    - name: Fixed
      principal: 600000
      annualRate: 3.5
      termMonths: 300
      method: annuity
      grace:
        type: interest_only
        durationMonths: 24
      rateChanges:
        - month: 61
          delta: 1.5
    - name: Prime
      principal: 200000
      bankRate: 4.5
      termMonths: 240
      method: equal_principal
      prepayments:
        - month: 60
          amount: 20000
          effect: shorten_term
logging:
  level: debug
  format: console
output:
  format: csv
  startDate: 2026-01
  perTrack: true
`

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	require.Len(t, conf.Mortgage.Tracks, 2)
	assert.Equal(t, "Fixed", conf.Mortgage.Tracks[0].Name)
	assert.Equal(t, 600000.0, conf.Mortgage.Tracks[0].Principal)
	assert.Equal(t, 300, conf.Mortgage.Tracks[0].TermMonths)
	require.NotNil(t, conf.Mortgage.Tracks[0].Grace)
	assert.Equal(t, 24, conf.Mortgage.Tracks[0].Grace.DurationMonths)

	require.NotNil(t, conf.Mortgage.Tracks[1].BankRate)
	assert.Equal(t, 4.5, *conf.Mortgage.Tracks[1].BankRate)

	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "csv", conf.Output.Format)
	assert.Equal(t, "2026-01", conf.Output.StartDate)
	assert.True(t, conf.Output.PerTrack)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestToMortgage(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	mortgage, err := conf.ToMortgage()
	require.NoError(t, err)
	require.Len(t, mortgage.Tracks, 2)

	fixed := mortgage.Tracks[0]
	assert.Equal(t, "Fixed", fixed.Name)
	assert.NotEmpty(t, fixed.ID)
	assert.Equal(t, simulation.Annuity, fixed.Method)
	assert.True(t, fixed.Principal.Equal(dec("600000")))
	require.NotNil(t, fixed.Grace)
	assert.Equal(t, simulation.GraceInterestOnly, fixed.Grace.Type)
	require.Len(t, fixed.RateChanges, 1)
	assert.Equal(t, 61, fixed.RateChanges[0].Month)

	prime := mortgage.Tracks[1]
	assert.Equal(t, simulation.EqualPrincipal, prime.Method)
	assert.InDelta(t, 6.0, prime.BaseRatePercent(), 1e-9)
	require.Len(t, prime.Prepayments, 1)
	assert.Equal(t, simulation.ShortenTerm, prime.Prepayments[0].Effect)

	// Generated IDs are unique per track.
	assert.NotEqual(t, fixed.ID, prime.ID)
}

func TestToMortgageUnrecognizedMethod(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, `
mortgage:
  tracks:
    - name: Odd
      principal: 100000
      annualRate: 3.0
      termMonths: 120
      method: balloon
`))
	require.NoError(t, err)

	_, err = conf.ToMortgage()
	var confErr *simulation.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "Odd", confErr.TrackID)
}

func TestToMortgageInvalidTrackFailsFast(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, `
mortgage:
  tracks:
    - name: Broken
      principal: 100000
      annualRate: 3.0
      termMonths: 120
      method: annuity
      grace:
        type: interest_only
        durationMonths: 120
`))
	require.NoError(t, err)

	_, err = conf.ToMortgage()
	var confErr *simulation.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "Broken", confErr.TrackID)
}
