package woe

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	DefaultMaxDistinctValues = 100
	DefaultMaxBins           = 10
	DefaultMinBinFraction    = 0.05
	DefaultMinBinsFloor      = 5
	DefaultEpsilon           = 1e-10
	DefaultPrecision         = 5
	DefaultSeparator         = ","
)

// Config holds the binning and encoding constants for one run.
type Config struct {
	// MaxDistinctValues is the cap above which a feature is skipped
	MaxDistinctValues int `yaml:"max_distinct_values"`

	// MaxBins is the bin count the first merge phase reduces below
	MaxBins int `yaml:"max_bins"`

	// MinBinFraction is the smallest share of the population a bin may hold
	MinBinFraction float64 `yaml:"min_bin_fraction"`

	// MinBinsFloor stops population merging once this many bins remain
	MinBinsFloor int `yaml:"min_bins_floor"`

	Epsilon   float64 `yaml:"epsilon"`
	Precision int     `yaml:"precision"`
	Separator string  `yaml:"separator"`

	// SmoothZeroCounts replaces an empty class count by 1 when computing shares
	SmoothZeroCounts bool `yaml:"smooth_zero_counts"`
}

func DefaultConfig() Config {
	return Config{
		MaxDistinctValues: DefaultMaxDistinctValues,
		MaxBins:           DefaultMaxBins,
		MinBinFraction:    DefaultMinBinFraction,
		MinBinsFloor:      DefaultMinBinsFloor,
		Epsilon:           DefaultEpsilon,
		Precision:         DefaultPrecision,
		Separator:         DefaultSeparator,
	}
}

func (c Config) Validate() error {
	switch {
	case c.MaxDistinctValues < 1:
		return fmt.Errorf("max distinct values must be positive, got %d", c.MaxDistinctValues)
	case c.MaxBins < 2:
		return fmt.Errorf("max bins must be at least 2, got %d", c.MaxBins)
	case c.MinBinFraction < 0 || c.MinBinFraction >= 1:
		return fmt.Errorf("min bin fraction must be in [0, 1), got %v", c.MinBinFraction)
	case c.MinBinsFloor < 1:
		return fmt.Errorf("min bins floor must be positive, got %d", c.MinBinsFloor)
	case c.Precision < 0:
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	case c.Separator == "":
		return fmt.Errorf("separator must not be empty")
	}
	return nil
}

// round keeps Precision decimals, halves go to the even neighbour.
func (c Config) round(v float64) float64 {
	return scalar.RoundEven(v, c.Precision)
}
