package woe

import (
	"github.com/rs/zerolog/log"
)

// Merger reduces a BinTable in two phases: first below MaxBins bins by merging the adjacent pair with the
// closest bad rates, then until every bin holds MinBinFraction of the population or only MinBinsFloor bins
// are left.
type Merger struct {
	cfg Config
}

func NewMerger(cfg Config) *Merger {
	return &Merger{cfg: cfg}
}

func (m *Merger) Run(t *BinTable) error {
	if err := m.BoundBinCount(t); err != nil {
		return err
	}
	return m.EnforceMinPopulation(t)
}

func (m *Merger) BoundBinCount(t *BinTable) error {
	for t.Size() >= m.cfg.MaxBins {
		sorted := t.SortedByBadRate()
		minIndex := 0
		minGap := sorted[1].BadRate - sorted[0].BadRate
		for i := 1; i < len(sorted)-1; i++ {
			if gap := sorted[i+1].BadRate - sorted[i].BadRate; gap < minGap {
				minGap = gap
				minIndex = i
			}
		}
		if err := m.merge(t, "bin-count", sorted[minIndex], sorted[minIndex+1]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Merger) EnforceMinPopulation(t *BinTable) error {
	threshold := m.cfg.MinBinFraction * float64(t.Population())
	for {
		smallest := t.MinPopulation()
		if smallest == nil || float64(smallest.Total) >= threshold || t.Size() <= m.cfg.MinBinsFloor {
			return nil
		}

		sorted := t.SortedByBadRate()
		p := -1
		for i, b := range sorted {
			if b == smallest {
				p = i
				break
			}
		}
		if p < 0 {
			return &InvalidMergeError{Key: t.Key(smallest), Reason: "smallest bin missing from the bad rate order"}
		}

		var left, right *Bin
		switch {
		case p == 0:
			left, right = sorted[0], sorted[1]
		case p == len(sorted)-1:
			left, right = sorted[p-1], sorted[p]
		default:
			before := sorted[p].BadRate - sorted[p-1].BadRate
			after := sorted[p+1].BadRate - sorted[p].BadRate
			if before < after {
				left, right = sorted[p-1], sorted[p]
			} else {
				left, right = sorted[p], sorted[p+1]
			}
		}
		if err := m.merge(t, "min-population", left, right); err != nil {
			return err
		}
	}
}

func (m *Merger) merge(t *BinTable, phase string, left, right *Bin) error {
	merged, err := t.Merge(left, right)
	if err != nil {
		return err
	}
	log.Debug().Str("phase", phase).Str("left", t.Key(left)).Str("right", t.Key(right)).
		Str("merged", t.Key(merged)).Int("bins", t.Size()).Msg("merged bins")
	return nil
}
