package pkg

import (
	"encoding/csv"
	"fmt"
	gio "io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"scorecard/pkg/io"
	"scorecard/pkg/model"
	"scorecard/pkg/woe"
)

// Apply replaces the raw values of the encoded features by the WOE of their bin. All encoded features are
// transformed when features is empty. Values never seen while encoding, and missing values, are written as 0.
func Apply(modelFileName, inputFileName, outputFileName string, features []string) error {
	modelFile, err := os.Open(modelFileName)
	if err != nil {
		return fmt.Errorf("error opening model file %s: %w", modelFileName, err)
	}
	defer modelFile.Close()

	m, err := io.LoadModel(modelFile)
	if err != nil {
		return fmt.Errorf("error loading model from file %s: %w", modelFileName, err)
	}
	if len(m.Encodings) == 0 {
		return fmt.Errorf("model %s holds no encoded features", modelFileName)
	}

	encodings, err := selectEncodings(m, features)
	if err != nil {
		return err
	}
	columns := make([]string, len(encodings))
	for i, e := range encodings {
		columns[i] = e.Feature
	}
	labelColumn := ""
	if m.MetaData != nil && m.MetaData.HasLabel() {
		labelColumn = m.MetaData.Columns[m.MetaData.LabelColumn]
	}

	metaData, data, dataErrors, err := io.LoadData(io.DataParameters{
		DataFile:       inputFileName,
		LabelColumn:    labelColumn,
		FeatureColumns: columns,
		LabelOptional:  true,
	})
	if err != nil {
		return fmt.Errorf("error loading data from %s: %w", inputFileName, err)
	}
	printDataErrors(dataErrors)
	if data.Size() == 0 {
		return fmt.Errorf("no data to transform")
	}

	var outputWriter gio.Writer = os.Stdout
	if outputFileName != "" {
		outputFile, err := os.Create(outputFileName)
		if err != nil {
			return fmt.Errorf("error opening output file %s: %w", outputFileName, err)
		}
		defer outputFile.Close()
		outputWriter = outputFile
	}

	return transform(encodings, metaData, data, outputWriter)
}

func selectEncodings(m *model.Model, features []string) ([]*woe.FeatureEncoding, error) {
	if len(features) == 0 {
		return m.Encodings, nil
	}
	encodings := make([]*woe.FeatureEncoding, 0, len(features))
	for _, feature := range features {
		e, ok := m.Encoding(feature)
		if !ok {
			return nil, fmt.Errorf("feature %s is not encoded in the model", feature)
		}
		encodings = append(encodings, e)
	}
	return encodings, nil
}

type featureTransformer struct {
	encoding *woe.FeatureEncoding
	index    int
	unseen   int
	missing  int
}

func (t *featureTransformer) transform(record *io.DataRecord) float64 {
	value := record.Values[t.index]
	if value == "" {
		t.missing++
		return 0
	}
	bin, ok := t.encoding.Lookup(value)
	if !ok {
		t.unseen++
		return 0
	}
	return bin.WOE
}

func transform(encodings []*woe.FeatureEncoding, metaData *model.Metadata, data *io.DataSet, w gio.Writer) error {
	transformers := make([]*featureTransformer, len(encodings))
	header := make([]string, 0, len(encodings)+1)
	if metaData.HasLabel() {
		header = append(header, metaData.Columns[metaData.LabelColumn])
	}
	for i, e := range encodings {
		index, ok := metaData.Features.ContainsName(e.Feature)
		if !ok {
			return fmt.Errorf("feature %s missing from data", e.Feature)
		}
		transformers[i] = &featureTransformer{encoding: e, index: index}
		header = append(header, e.Feature+"_woe")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	row := make([]string, len(header))
	for _, record := range data.Data {
		row = row[:0]
		if metaData.HasLabel() {
			row = append(row, strconv.Itoa(record.Label))
		}
		for _, t := range transformers {
			row = append(row, strconv.FormatFloat(t.transform(record), 'f', -1, 64))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	for _, t := range transformers {
		if t.unseen > 0 || t.missing > 0 {
			log.Warn().Str("feature", t.encoding.Feature).Int("unseen", t.unseen).
				Int("missing", t.missing).Msg("Values encoded as 0")
		}
	}
	log.Info().Int("rows", data.Size()).Int("features", len(transformers)).Msg("Transformed data")
	return nil
}
