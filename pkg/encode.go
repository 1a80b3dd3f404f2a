package pkg

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"scorecard/pkg/io"
	"scorecard/pkg/model"
	"scorecard/pkg/report"
	"scorecard/pkg/woe"
)

type EncodingParameters struct {
	DataFile       string
	LabelColumn    string
	WeightColumn   string
	FeatureColumns []string
	Workers        int
	Binning        woe.Config
}

type OutputParameters struct {
	ModelFile string
	CSVFile   string
	YAMLFile  string
	ShowBins  bool
}

// Encode bins every feature of the data file. Features are encoded concurrently and independently: a
// feature that fails or has too many values is recorded in the model and does not stop the others.
func Encode(p EncodingParameters) (*model.Model, error) {
	if err := p.Binning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid binning parameters: %w", err)
	}

	metaData, data, dataErrors, err := io.LoadData(io.DataParameters{
		DataFile:       p.DataFile,
		LabelColumn:    p.LabelColumn,
		WeightColumn:   p.WeightColumn,
		FeatureColumns: p.FeatureColumns,
	})
	if err != nil {
		return nil, fmt.Errorf("error reading data: %w", err)
	}
	printDataErrors(dataErrors)
	if data.Size() == 0 {
		return nil, fmt.Errorf("no data to encode")
	}

	good, bad := data.LabelCounts()
	log.Info().Int("rows", data.Size()).Int("good", good).Int("bad", bad).
		Int("features", metaData.FeatureCount()).Msg("Loaded data")

	calc, err := woe.NewCalculator(good, bad, p.Binning)
	if err != nil {
		return nil, err
	}

	labels := data.Labels()
	names := metaData.Features.Names()
	encodings := make([]*woe.FeatureEncoding, len(names))
	errs := make([]error, len(names))

	var g errgroup.Group
	g.SetLimit(workers(p.Workers))
	for i, feature := range names {
		i, feature := i, feature
		g.Go(func() error {
			encodings[i], errs[i] = woe.EncodeFeature(feature, data.Column(i), labels, calc, p.Binning)
			return nil
		})
	}
	_ = g.Wait()

	m := &model.Model{
		MetaData:  metaData,
		Config:    p.Binning,
		GoodCount: good,
		BadCount:  bad,
	}
	for i, feature := range names {
		var tooMany *woe.TooManyValuesError
		switch {
		case errs[i] == nil:
			m.Encodings = append(m.Encodings, encodings[i])
			log.Debug().Str("feature", feature).Int("bins", len(encodings[i].Bins)).
				Float64("iv", encodings[i].IV).Msg("Encoded feature")
		case errors.As(errs[i], &tooMany):
			m.Skipped = append(m.Skipped, model.SkippedFeature{Feature: feature, Distinct: tooMany.Distinct})
			log.Warn().Str("feature", feature).Int("distinct", tooMany.Distinct).
				Int("cap", tooMany.Cap).Msg("Too many different values, feature skipped")
		default:
			m.Failed = append(m.Failed, model.FailedFeature{Feature: feature, Error: errs[i].Error()})
			log.Error().Str("feature", feature).Err(errs[i]).Msg("Error encoding feature")
		}
	}
	return m, nil
}

// EncodeAndSave runs Encode and writes the requested outputs.
func EncodeAndSave(p EncodingParameters, out OutputParameters) error {
	m, err := Encode(p)
	if err != nil {
		return err
	}

	report.WriteSummary(os.Stdout, m)
	if out.ShowBins {
		report.WriteBins(os.Stdout, m)
	}

	if out.ModelFile != "" {
		outputFile, err := os.Create(out.ModelFile)
		if err != nil {
			return fmt.Errorf("error creating output file %s: %w", out.ModelFile, err)
		}
		defer outputFile.Close()
		if err := io.SaveModel(m, outputFile); err != nil {
			return fmt.Errorf("error saving model to %s: %w", out.ModelFile, err)
		}
	}
	if out.CSVFile != "" {
		if err := report.SaveFile(out.CSVFile, m, report.WriteCSV); err != nil {
			return err
		}
	}
	if out.YAMLFile != "" {
		if err := report.SaveFile(out.YAMLFile, m, report.WriteYAML); err != nil {
			return err
		}
	}
	log.Info().Int("encoded", len(m.Encodings)).Int("skipped", len(m.Skipped)).
		Int("failed", len(m.Failed)).Msg("Encoding done")
	return nil
}

func workers(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
