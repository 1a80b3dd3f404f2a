package chart

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distribution is the normalised score histogram of the positive and negative class.
type Distribution struct {
	Dividers []float64
	Positive []float64
	Negative []float64
}

// ScoreDistribution bins the scores of both classes over a shared range padded by 100 points on each side.
func ScoreDistribution(labels []int, scores []float64, bins int) Distribution {
	var positive, negative []float64
	for i, s := range scores {
		if labels[i] == 1 {
			positive = append(positive, s)
		} else {
			negative = append(negative, s)
		}
	}

	start, end := 0.0, 100.0
	if len(scores) > 0 {
		lo, hi := floats.Min(scores), floats.Max(scores)
		start = math.Max(0, lo-100)
		if start > lo {
			start = lo
		}
		end = hi + 100
	}
	dividers := floats.Span(make([]float64, bins+1), start, end)

	return Distribution{
		Dividers: dividers,
		Positive: proportions(dividers, positive),
		Negative: proportions(dividers, negative),
	}
}

func proportions(dividers, x []float64) []float64 {
	if len(x) == 0 {
		return make([]float64, len(dividers)-1)
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	counts := stat.Histogram(nil, dividers, sorted, nil)
	floats.Scale(1/float64(len(x)), counts)
	return counts
}

// Centers returns the midpoint of every histogram bin
func (d Distribution) Centers() []float64 {
	centers := make([]float64, len(d.Dividers)-1)
	for i := range centers {
		centers[i] = (d.Dividers[i] + d.Dividers[i+1]) / 2
	}
	return centers
}
