package woe

import (
	"math"
)

// WoeEntry is the final statistics of one bin.
type WoeEntry struct {
	Key       string
	Lineage   []string
	Good      int
	Bad       int
	Total     int
	BadRate   float64
	GoodShare float64
	BadShare  float64
	WOE       float64
	IV        float64
}

// FeatureEncoding is the finished binning of one feature.
type FeatureEncoding struct {
	Feature string
	Bins    []WoeEntry
	IV      float64
}

// Lookup finds the bin a raw value was merged into.
func (f *FeatureEncoding) Lookup(value string) (WoeEntry, bool) {
	for _, bin := range f.Bins {
		for _, v := range bin.Lineage {
			if v == value {
				return bin, true
			}
		}
	}
	return WoeEntry{}, false
}

// Calculator derives WOE and IV from finished bin tables. The totals are over the whole label column and
// are shared by all features.
type Calculator struct {
	cfg       Config
	GoodTotal float64
	BadTotal  float64
}

func NewCalculator(good, bad int, cfg Config) (*Calculator, error) {
	goodTotal := float64(good) + cfg.Epsilon
	badTotal := float64(bad) + cfg.Epsilon
	if goodTotal <= 0 || badTotal <= 0 {
		return nil, &DegenerateDistributionError{Good: goodTotal, Bad: badTotal}
	}
	return &Calculator{cfg: cfg, GoodTotal: goodTotal, BadTotal: badTotal}, nil
}

func (c *Calculator) Calculate(feature string, t *BinTable) *FeatureEncoding {
	encoding := &FeatureEncoding{Feature: feature}
	for _, b := range t.Bins() {
		good, bad := float64(b.Good), float64(b.Bad)
		if c.cfg.SmoothZeroCounts {
			if b.Good == 0 {
				good = 1
			}
			if b.Bad == 0 {
				bad = 1
			}
		}
		goodShare := good/c.GoodTotal + c.cfg.Epsilon
		badShare := bad/c.BadTotal + c.cfg.Epsilon
		woe := c.cfg.round(math.Log(badShare / goodShare))
		entry := WoeEntry{
			Key:       t.Key(b),
			Lineage:   append([]string(nil), b.Lineage...),
			Good:      b.Good,
			Bad:       b.Bad,
			Total:     b.Total,
			BadRate:   b.BadRate,
			GoodShare: goodShare,
			BadShare:  badShare,
			WOE:       woe,
			IV:        (badShare - goodShare) * woe,
		}
		encoding.Bins = append(encoding.Bins, entry)
		encoding.IV += entry.IV
	}
	return encoding
}
