package io

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// Prediction is one scored row of a dataset split.
type Prediction struct {
	Split       string  `csv:"split"`
	Label       int     `csv:"label"`
	Probability float64 `csv:"probability"`
}

func LoadPredictions(fileName string) ([]*Prediction, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("error opening predictions file: %w", err)
	}
	defer f.Close()
	return ReadPredictions(f)
}

func ReadPredictions(input io.Reader) ([]*Prediction, error) {
	var predictions []*Prediction
	if err := gocsv.Unmarshal(input, &predictions); err != nil {
		return nil, fmt.Errorf("error reading predictions: %w", err)
	}
	for i, p := range predictions {
		if p.Label != 0 && p.Label != 1 {
			return nil, fmt.Errorf("prediction %d: label must be 0 or 1, got %d", i+1, p.Label)
		}
		if p.Split == "" {
			p.Split = "all"
		}
	}
	return predictions, nil
}

// GroupBySplit groups predictions by split, keeping the order in which splits first appear.
func GroupBySplit(predictions []*Prediction) ([]string, map[string][]*Prediction) {
	var splits []string
	groups := map[string][]*Prediction{}
	for _, p := range predictions {
		if _, ok := groups[p.Split]; !ok {
			splits = append(splits, p.Split)
		}
		groups[p.Split] = append(groups[p.Split], p)
	}
	return splits, groups
}
