package woe

import (
	"sort"
	"strings"
)

// Bin groups one or more raw values. Lineage lists the raw values in merge order.
type Bin struct {
	Lineage []string
	Good    int
	Bad     int
	Total   int
	BadRate float64

	id int
}

// Key joins the lineage for display. Raw values may contain the separator, so two bins can share a key.
func (b *Bin) Key(separator string) string {
	return strings.Join(b.Lineage, separator)
}

// BinTable is the mutable set of bins of one feature. Bins keep their insertion order, a merged bin is
// appended at the end.
type BinTable struct {
	cfg    Config
	bins   []*Bin
	index  map[int]int
	nextID int
}

func NewBinTable(stats []RawValueStat, cfg Config) (*BinTable, error) {
	t := &BinTable{
		cfg:   cfg,
		bins:  make([]*Bin, 0, len(stats)),
		index: make(map[int]int, len(stats)),
	}
	seen := make(map[string]bool, len(stats))
	for _, stat := range stats {
		if seen[stat.Value] {
			return nil, &InvalidMergeError{Key: stat.Value, Reason: "value already present"}
		}
		seen[stat.Value] = true
		b := &Bin{
			Lineage: []string{stat.Value},
			Good:    stat.Good,
			Bad:     stat.Bad,
			Total:   stat.Good + stat.Bad,
		}
		b.BadRate = cfg.round(float64(b.Bad) / float64(b.Total))
		t.add(b)
	}
	return t, nil
}

func (t *BinTable) add(b *Bin) {
	b.id = t.nextID
	t.nextID++
	t.index[b.id] = len(t.bins)
	t.bins = append(t.bins, b)
}

func (t *BinTable) position(b *Bin) (int, bool) {
	if b == nil {
		return 0, false
	}
	i, ok := t.index[b.id]
	if !ok || t.bins[i] != b {
		return 0, false
	}
	return i, true
}

// Merge replaces b1 and b2 by a single bin holding both and returns it.
func (t *BinTable) Merge(b1, b2 *Bin) (*Bin, error) {
	i, ok := t.position(b1)
	if !ok {
		return nil, t.missing(b1)
	}
	j, ok := t.position(b2)
	if !ok {
		return nil, t.missing(b2)
	}
	if i == j {
		return nil, &InvalidMergeError{Key: t.Key(b1), Reason: "cannot merge a bin with itself"}
	}

	lineage := make([]string, 0, len(b1.Lineage)+len(b2.Lineage))
	lineage = append(lineage, b1.Lineage...)
	lineage = append(lineage, b2.Lineage...)
	merged := &Bin{
		Lineage: lineage,
		Good:    b1.Good + b2.Good,
		Bad:     b1.Bad + b2.Bad,
		Total:   b1.Total + b2.Total,
	}
	merged.BadRate = t.cfg.round(float64(merged.Bad) / float64(merged.Total))

	remaining := make([]*Bin, 0, len(t.bins)-1)
	for k, b := range t.bins {
		if k != i && k != j {
			remaining = append(remaining, b)
		}
	}
	t.bins = remaining
	t.reindex()
	t.add(merged)
	return merged, nil
}

func (t *BinTable) missing(b *Bin) error {
	if b == nil {
		return &InvalidMergeError{Reason: "no such bin"}
	}
	return &InvalidMergeError{Key: t.Key(b), Reason: "no such bin"}
}

func (t *BinTable) reindex() {
	t.index = make(map[int]int, len(t.bins)+1)
	for i, b := range t.bins {
		t.index[b.id] = i
	}
}

func (t *BinTable) Size() int {
	return len(t.bins)
}

// MinPopulation returns the first bin, in insertion order, with the smallest total.
func (t *BinTable) MinPopulation() *Bin {
	if len(t.bins) == 0 {
		return nil
	}
	min := t.bins[0]
	for _, b := range t.bins[1:] {
		if b.Total < min.Total {
			min = b
		}
	}
	return min
}

// Population is the number of rows over all bins.
func (t *BinTable) Population() int {
	total := 0
	for _, b := range t.bins {
		total += b.Total
	}
	return total
}

// SortedByBadRate returns the bins ordered by ascending bad rate, ties kept in insertion order.
func (t *BinTable) SortedByBadRate() []*Bin {
	sorted := t.Bins()
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].BadRate < sorted[j].BadRate })
	return sorted
}

// Bins returns the bins in insertion order. The slice is a copy, the bins are not.
func (t *BinTable) Bins() []*Bin {
	bins := make([]*Bin, len(t.bins))
	copy(bins, t.bins)
	return bins
}

func (t *BinTable) Key(b *Bin) string {
	return b.Key(t.cfg.Separator)
}
