// Package constants provides shared constants for the mortgage simulation engine.
package constants

// DateTimeLayout is the format expected for the optional calendar start month
// in config files and is also the output date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier converts between percentages and fractions
	PercentageMultiplier = 100

	// CentPrecision is the number of decimal places used for currency rounding
	CentPrecision = 2

	// PrimeMarginPercent is the spread over the central-bank rate for
	// prime-linked tracks, in percentage points.
	PrimeMarginPercent = 1.5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "mortgage.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "mortgage.yaml.example"
)
