package pkg

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"scorecard/pkg/io"
	"scorecard/pkg/woe"
)

func TestApply(t *testing.T) {
	dir := t.TempDir()
	modelFile := filepath.Join(dir, "model.gob")
	outputFile := filepath.Join(dir, "woe.csv")
	require.NoError(t, EncodeAndSave(encodingParameters(2), OutputParameters{ModelFile: modelFile}))

	require.NoError(t, Apply(modelFile, creditData, outputFile, nil))

	f, err := os.Open(outputFile)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 301)
	require.Equal(t, []string{"label", "housing_woe", "purpose_woe", "grade_woe"}, rows[0])

	mf, err := os.Open(modelFile)
	require.NoError(t, err)
	defer mf.Close()
	m, err := io.LoadModel(mf)
	require.NoError(t, err)

	_, data, _, err := io.LoadData(io.DataParameters{
		DataFile:       creditData,
		LabelColumn:    "label",
		FeatureColumns: []string{"housing", "purpose", "grade"},
	})
	require.NoError(t, err)
	for i, record := range data.Data {
		require.Equal(t, strconv.Itoa(record.Label), rows[i+1][0])
		for j, e := range m.Encodings {
			expected := 0.0
			if bin, ok := e.Lookup(record.Values[j]); ok {
				expected = bin.WOE
			}
			got, err := strconv.ParseFloat(rows[i+1][j+1], 64)
			require.NoError(t, err)
			require.Equal(t, expected, got)
		}
	}
}

func TestApply_Errors(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, Apply(filepath.Join(dir, "missing.gob"), creditData, "", nil))

	modelFile := filepath.Join(dir, "model.gob")
	require.NoError(t, os.WriteFile(modelFile, []byte("not a model"), 0600))
	require.Error(t, Apply(modelFile, creditData, "", nil))
}

func TestTransform_UnseenValues(t *testing.T) {
	encodings := []*woe.FeatureEncoding{{
		Feature: "housing",
		Bins: []woe.WoeEntry{
			{Key: "own,free", Lineage: []string{"own", "free"}, WOE: -0.5},
			{Key: "rent", Lineage: []string{"rent"}, WOE: 0.75},
		},
	}}
	input := "housing\nown\nrent\nboat\n\"\"\nfree\n"
	metaData, data, dataErrors, err := io.ReadData(strings.NewReader(input), io.DataParameters{
		FeatureColumns: []string{"housing"},
		LabelOptional:  true,
	})
	require.NoError(t, err)
	require.Empty(t, dataErrors)

	var b bytes.Buffer
	require.NoError(t, transform(encodings, metaData, data, &b))
	require.Equal(t, "housing_woe\n-0.5\n0.75\n0\n0\n-0.5\n", b.String())
}

func TestApply_SelectedFeatures(t *testing.T) {
	dir := t.TempDir()
	modelFile := filepath.Join(dir, "model.gob")
	outputFile := filepath.Join(dir, "woe.csv")
	require.NoError(t, EncodeAndSave(encodingParameters(2), OutputParameters{ModelFile: modelFile}))

	require.NoError(t, Apply(modelFile, creditData, outputFile, []string{"grade", "housing"}))
	f, err := os.Open(outputFile)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 301)
	require.Equal(t, []string{"label", "grade_woe", "housing_woe"}, rows[0])

	require.Error(t, Apply(modelFile, creditData, outputFile, []string{"id"}))
}
