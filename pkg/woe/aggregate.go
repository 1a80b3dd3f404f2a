package woe

import (
	"fmt"
	"sort"
	"strconv"
)

// RawValueStat holds the label counts of one distinct feature value.
type RawValueStat struct {
	Value   string
	Good    int
	Bad     int
	Total   int
	BadRate float64
}

// Aggregate groups the parallel values and labels by value. Empty values are treated as missing and
// ignored. The result is ordered by value, numerically when every value is a number.
func Aggregate(values []string, labels []int, cfg Config) ([]RawValueStat, error) {
	if len(values) != len(labels) {
		return nil, fmt.Errorf("got %d values but %d labels", len(values), len(labels))
	}

	counts := map[string]*RawValueStat{}
	for i, value := range values {
		if value == "" {
			continue
		}
		stat, ok := counts[value]
		if !ok {
			stat = &RawValueStat{Value: value}
			counts[value] = stat
		}
		switch labels[i] {
		case 0:
			stat.Good++
		case 1:
			stat.Bad++
		default:
			return nil, fmt.Errorf("row %d: label must be 0 or 1, got %d", i, labels[i])
		}
	}

	if len(counts) > cfg.MaxDistinctValues {
		return nil, &TooManyValuesError{Distinct: len(counts), Cap: cfg.MaxDistinctValues}
	}

	result := make([]RawValueStat, 0, len(counts))
	for _, stat := range counts {
		stat.Total = stat.Good + stat.Bad
		stat.BadRate = cfg.round(float64(stat.Bad) / float64(stat.Total))
		result = append(result, *stat)
	}
	sortValues(result)
	return result, nil
}

func sortValues(stats []RawValueStat) {
	numbers := make([]float64, len(stats))
	for i, stat := range stats {
		n, err := strconv.ParseFloat(stat.Value, 64)
		if err != nil {
			sort.Slice(stats, func(a, b int) bool { return stats[a].Value < stats[b].Value })
			return
		}
		numbers[i] = n
	}
	sort.Sort(byNumber{stats: stats, numbers: numbers})
}

// byNumber orders values by their numeric value, equal numbers by their text.
type byNumber struct {
	stats   []RawValueStat
	numbers []float64
}

func (s byNumber) Len() int { return len(s.stats) }

func (s byNumber) Less(i, j int) bool {
	if s.numbers[i] != s.numbers[j] {
		return s.numbers[i] < s.numbers[j]
	}
	return s.stats[i].Value < s.stats[j].Value
}

func (s byNumber) Swap(i, j int) {
	s.stats[i], s.stats[j] = s.stats[j], s.stats[i]
	s.numbers[i], s.numbers[j] = s.numbers[j], s.numbers[i]
}
