package woe

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculator_Calculate(t *testing.T) {
	cfg := DefaultConfig()
	table, err := NewBinTable(scenarioStats(), cfg)
	require.NoError(t, err)
	calc, err := NewCalculator(19, 21, cfg)
	require.NoError(t, err)

	encoding := calc.Calculate("grade", table)
	require.Equal(t, "grade", encoding.Feature)
	require.Len(t, encoding.Bins, 4)

	expected := []struct {
		key string
		woe float64
		iv  float64
	}{
		{"A", -22.384, 11.78105},
		{"B", -1.48638, 0.48428},
		{"C", 2.09714, 0.78840},
		{"D", 22.28391, 10.61139},
	}
	sum := 0.0
	for i, e := range expected {
		bin := encoding.Bins[i]
		require.Equal(t, e.key, bin.Key)
		require.Equal(t, e.woe, bin.WOE)
		require.InDelta(t, e.iv, bin.IV, 1e-5)
		require.InDelta(t, math.Log(bin.BadShare/bin.GoodShare), bin.WOE, 1e-5)
		require.Equal(t, (bin.BadShare-bin.GoodShare)*bin.WOE, bin.IV)
		sum += bin.IV
	}
	require.InDelta(t, 23.66512, encoding.IV, 1e-5)
	require.Equal(t, sum, encoding.IV)
}

func TestCalculator_SmoothZeroCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SmoothZeroCounts = true
	table, err := NewBinTable(scenarioStats(), cfg)
	require.NoError(t, err)
	calc, err := NewCalculator(19, 21, cfg)
	require.NoError(t, err)

	encoding := calc.Calculate("grade", table)
	require.Equal(t, -2.40267, encoding.Bins[0].WOE)
	require.Equal(t, 0, encoding.Bins[0].Bad)
}

func TestNewCalculator_Degenerate(t *testing.T) {
	_, err := NewCalculator(0, 10, DefaultConfig())
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Epsilon = 0
	_, err = NewCalculator(0, 10, cfg)
	var degenerate *DegenerateDistributionError
	require.True(t, errors.As(err, &degenerate))
}

func TestFeatureEncoding_Lookup(t *testing.T) {
	encoding := &FeatureEncoding{
		Feature: "grade",
		Bins: []WoeEntry{
			{Key: "A,B", Lineage: []string{"A", "B"}, WOE: -1},
			{Key: "C", Lineage: []string{"C"}, WOE: 2},
		},
	}
	entry, ok := encoding.Lookup("B")
	require.True(t, ok)
	require.Equal(t, "A,B", entry.Key)

	_, ok = encoding.Lookup("A,B")
	require.False(t, ok)
}

func TestEncodeFeature(t *testing.T) {
	var values []string
	var labels []int
	for _, s := range scenarioStats() {
		for i := 0; i < s.Good; i++ {
			values = append(values, s.Value)
			labels = append(labels, 0)
		}
		for i := 0; i < s.Bad; i++ {
			values = append(values, s.Value)
			labels = append(labels, 1)
		}
	}
	values = append(values, "")
	labels = append(labels, 0)

	cfg := DefaultConfig()
	calc, err := NewCalculator(20, 21, cfg)
	require.NoError(t, err)

	encoding, err := EncodeFeature("grade", values, labels, calc, cfg)
	require.NoError(t, err)
	require.Len(t, encoding.Bins, 4)
	require.False(t, math.IsInf(encoding.IV, 0) || math.IsNaN(encoding.IV))
	require.Greater(t, encoding.IV, 0.0)

	again, err := EncodeFeature("grade", values, labels, calc, cfg)
	require.NoError(t, err)
	require.Equal(t, encoding, again)
}

func TestEncodeFeature_TooManyValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDistinctValues = 2
	calc, err := NewCalculator(1, 2, cfg)
	require.NoError(t, err)

	encoding, err := EncodeFeature("id", []string{"1", "2", "3"}, []int{0, 1, 1}, calc, cfg)
	require.Nil(t, encoding)
	var tooMany *TooManyValuesError
	require.True(t, errors.As(err, &tooMany))
	require.Equal(t, "id", tooMany.Feature)
}

func TestEncodeFeature_SeparatorInValue(t *testing.T) {
	counts := []RawValueStat{
		{Value: "a", Good: 5, Bad: 5},
		{Value: "b", Good: 5, Bad: 5},
		{Value: "a,b", Good: 10, Bad: 0},
	}
	for i := 0; i < 7; i++ {
		counts = append(counts, RawValueStat{Value: fmt.Sprintf("z%d", i), Good: 9 - i, Bad: i + 1})
	}

	var values []string
	var labels []int
	good, bad := 0, 0
	for _, c := range counts {
		for i := 0; i < c.Good; i++ {
			values = append(values, c.Value)
			labels = append(labels, 0)
		}
		for i := 0; i < c.Bad; i++ {
			values = append(values, c.Value)
			labels = append(labels, 1)
		}
		good += c.Good
		bad += c.Bad
	}

	cfg := DefaultConfig()
	calc, err := NewCalculator(good, bad, cfg)
	require.NoError(t, err)

	encoding, err := EncodeFeature("purpose", values, labels, calc, cfg)
	require.NoError(t, err)
	require.Less(t, len(encoding.Bins), cfg.MaxBins)

	lineage := 0
	for _, bin := range encoding.Bins {
		lineage += len(bin.Lineage)
	}
	require.Equal(t, len(counts), lineage)
	for _, c := range counts {
		_, ok := encoding.Lookup(c.Value)
		require.True(t, ok, c.Value)
	}
}
