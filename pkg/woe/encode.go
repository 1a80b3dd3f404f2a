package woe

import (
	"errors"
)

// EncodeFeature bins one feature column and computes its encoding.
func EncodeFeature(feature string, values []string, labels []int, calc *Calculator, cfg Config) (*FeatureEncoding, error) {
	stats, err := Aggregate(values, labels, cfg)
	if err != nil {
		var tooMany *TooManyValuesError
		if errors.As(err, &tooMany) {
			tooMany.Feature = feature
		}
		return nil, err
	}
	table, err := NewBinTable(stats, cfg)
	if err != nil {
		return nil, err
	}
	if err := NewMerger(cfg).Run(table); err != nil {
		return nil, err
	}
	return calc.Calculate(feature, table), nil
}
