// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config and converting it
// into the simulation domain model.
package config

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/daniel1mor3055/real-estate-investing/internal/simulation"
)

// Configuration holds all configuration for the mortgage simulator.
type Configuration struct {
	Mortgage MortgageConfig
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv

	// StartDate optionally anchors month 1 to a calendar month (YYYY-MM) so
	// output rows carry dates instead of bare month indices.
	StartDate string `yaml:"startDate,omitempty"`

	// PerTrack includes the per-track breakdown in the output.
	PerTrack bool `yaml:"perTrack,omitempty"`

	// Annual includes the annual roll-up in the output.
	Annual bool `yaml:"annual,omitempty"`
}

// MortgageConfig holds the track definitions of the mortgage.
type MortgageConfig struct {
	Tracks []TrackConfig
}

// TrackConfig is the YAML shape of one mortgage track.
type TrackConfig struct {
	Name       string
	Principal  float64
	AnnualRate float64 // percent

	// BankRate marks a prime-linked track; the effective base rate is this
	// central-bank rate plus the prime margin.
	BankRate *float64 `yaml:"bankRate,omitempty"`

	TermMonths int
	Method     string // annuity | equal_principal | bullet

	// IndexRate is the expected annual inflation index in percent for linked
	// tracks; zero means no indexation.
	IndexRate float64 `yaml:"indexRate,omitempty"`

	Grace       *GraceConfig       `yaml:"grace,omitempty"`
	RateChanges []RateChangeConfig `yaml:"rateChanges,omitempty"`
	Prepayments []PrepaymentConfig `yaml:"prepayments,omitempty"`
}

// GraceConfig is the YAML shape of a grace period.
type GraceConfig struct {
	Type           string // interest_only | full_deferral
	DurationMonths int
}

// RateChangeConfig is the YAML shape of a scheduled rate change.
type RateChangeConfig struct {
	Month int
	Delta float64 // percentage points
}

// PrepaymentConfig is the YAML shape of a scheduled prepayment.
type PrepaymentConfig struct {
	Month      int
	Amount     float64
	FullPayoff bool   `yaml:"fullPayoff,omitempty"`
	Effect     string `yaml:"effect,omitempty"` // reduce_payment | shorten_term
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ToMortgage converts the loaded configuration into the simulation domain
// model. Enum spellings are resolved here so unrecognized values surface as
// configuration errors before any simulation begins; track IDs default to
// generated UUIDs.
func (conf *Configuration) ToMortgage() (simulation.Mortgage, error) {
	var mortgage simulation.Mortgage
	var errs error

	for i := range conf.Mortgage.Tracks {
		tc := &conf.Mortgage.Tracks[i]
		track := simulation.Track{
			ID:                 uuid.NewString(),
			Name:               tc.Name,
			Principal:          decimal.NewFromFloat(tc.Principal),
			AnnualRatePercent:  tc.AnnualRate,
			BankRatePercent:    tc.BankRate,
			TermMonths:         tc.TermMonths,
			AnnualIndexPercent: tc.IndexRate,
		}

		method, err := simulation.ParseRepaymentMethod(tc.Method)
		if err != nil {
			errs = multierr.Append(errs, &simulation.ConfigurationError{TrackID: track.Key(), Reason: err.Error()})
		}
		track.Method = method

		if tc.Grace != nil {
			graceType, graceErr := simulation.ParseGraceType(tc.Grace.Type)
			if graceErr != nil {
				errs = multierr.Append(errs, &simulation.ConfigurationError{TrackID: track.Key(), Reason: graceErr.Error()})
			}
			track.Grace = &simulation.Grace{Type: graceType, DurationMonths: tc.Grace.DurationMonths}
		}

		for _, rc := range tc.RateChanges {
			track.RateChanges = append(track.RateChanges, simulation.RateChange{
				Month:        rc.Month,
				DeltaPercent: rc.Delta,
			})
		}

		for _, pp := range tc.Prepayments {
			effect, effectErr := simulation.ParsePrepaymentEffect(pp.Effect)
			if effectErr != nil {
				errs = multierr.Append(errs, &simulation.ConfigurationError{TrackID: track.Key(), Month: pp.Month, Reason: effectErr.Error()})
			}
			track.Prepayments = append(track.Prepayments, simulation.Prepayment{
				Month:      pp.Month,
				Amount:     decimal.NewFromFloat(pp.Amount),
				FullPayoff: pp.FullPayoff,
				Effect:     effect,
			})
		}

		mortgage.Tracks = append(mortgage.Tracks, track)
	}

	if errs != nil {
		return simulation.Mortgage{}, errs
	}
	if err := mortgage.Validate(); err != nil {
		return simulation.Mortgage{}, err
	}
	return mortgage, nil
}
