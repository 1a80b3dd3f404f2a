package model

import "scorecard/pkg/woe"

type SkippedFeature struct {
	Feature  string
	Distinct int
}

type FailedFeature struct {
	Feature string
	Error   string
}

// Model is the result of an encoding run.
type Model struct {
	MetaData  *Metadata
	Config    woe.Config
	Encodings []*woe.FeatureEncoding
	Skipped   []SkippedFeature
	Failed    []FailedFeature

	// GoodCount and BadCount are the label totals of the encoded data
	GoodCount int
	BadCount  int
}

func (m *Model) Encoding(feature string) (*woe.FeatureEncoding, bool) {
	for _, e := range m.Encodings {
		if e.Feature == feature {
			return e, true
		}
	}
	return nil, false
}
