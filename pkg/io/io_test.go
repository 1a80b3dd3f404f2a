package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"scorecard/pkg/model"
	"scorecard/pkg/woe"
)

const testData = `id,housing,purpose,weight,label
1,own,car,1.0,0
2,rent,car,2.0,1
3,own,NA,1.0,0
4,free,tv,0.5,2
5,,tv,1.0,1
6,own,car,1.0,x
`

func TestReadData(t *testing.T) {
	params := DataParameters{
		LabelColumn:    "label",
		WeightColumn:   "weight",
		FeatureColumns: []string{"housing", "purpose"},
	}

	metaData, data, dataErrors, err := ReadData(strings.NewReader(testData), params)
	require.NoError(t, err)
	require.NotNil(t, metaData)
	require.Equal(t, 4, metaData.LabelColumn)
	require.Equal(t, 3, metaData.WeightColumn)
	require.Equal(t, []string{"housing", "purpose"}, metaData.Features.Names())

	require.Equal(t, 2, len(dataErrors))
	require.Equal(t, 5, dataErrors[0].Line)
	require.Equal(t, 7, dataErrors[1].Line)

	require.Equal(t, 4, data.Size())
	require.Equal(t, []string{"own", "rent", "own", ""}, data.Column(0))
	require.Equal(t, []string{"car", "car", "", "tv"}, data.Column(1))
	require.Equal(t, []int{0, 1, 0, 1}, data.Labels())
	require.Equal(t, []float64{1, 2, 1, 1}, data.Weights())

	good, bad := data.LabelCounts()
	require.Equal(t, 2, good)
	require.Equal(t, 2, bad)
}

func TestReadData_AllColumns(t *testing.T) {
	metaData, _, _, err := ReadData(strings.NewReader(testData), DataParameters{LabelColumn: "label"})
	require.NoError(t, err)
	require.Equal(t, []string{"id", "housing", "purpose", "weight"}, metaData.Features.Names())
}

func TestReadData_HeaderErrors(t *testing.T) {
	tests := []DataParameters{
		{LabelColumn: "target"},
		{LabelColumn: "label", WeightColumn: "w"},
		{LabelColumn: "label", FeatureColumns: []string{"colour"}},
		{LabelColumn: "label", FeatureColumns: []string{"label"}},
		{LabelColumn: "label", FeatureColumns: []string{"housing", "housing"}},
	}
	for _, params := range tests {
		_, _, _, err := ReadData(strings.NewReader(testData), params)
		require.Error(t, err)
	}

	_, _, _, err := ReadData(strings.NewReader(""), DataParameters{LabelColumn: "label"})
	require.Error(t, err)
}

func TestReadData_LabelOptional(t *testing.T) {
	data := "housing,purpose\nown,car\nrent,tv\n"
	metaData, ds, dataErrors, err := ReadData(strings.NewReader(data), DataParameters{
		LabelColumn:   "label",
		LabelOptional: true,
	})
	require.NoError(t, err)
	require.False(t, metaData.HasLabel())
	require.Empty(t, dataErrors)
	require.Equal(t, 2, ds.Size())
}

func TestSaveLoadModel(t *testing.T) {
	metaData := model.NewMetadata()
	metaData.Columns = []string{"housing", "label"}
	metaData.LabelColumn = 1
	metaData.AddFeature(0)

	m := &model.Model{
		MetaData: metaData,
		Config:   woe.DefaultConfig(),
		Encodings: []*woe.FeatureEncoding{{
			Feature: "housing",
			Bins:    []woe.WoeEntry{{Key: "own,free", Lineage: []string{"own", "free"}, Good: 3, Bad: 1, Total: 4, WOE: -0.5}},
			IV:      0.25,
		}},
		Skipped:   []model.SkippedFeature{{Feature: "id", Distinct: 500}},
		GoodCount: 3,
		BadCount:  1,
	}

	var b bytes.Buffer
	require.NoError(t, SaveModel(m, &b))
	loaded, err := LoadModel(&b)
	require.NoError(t, err)
	require.Equal(t, m, loaded)
}

func TestReadPredictions(t *testing.T) {
	input := "split,label,probability\ntrain,1,0.9\ntrain,0,0.2\nvalid,0,0.1\n"
	predictions, err := ReadPredictions(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, predictions, 3)
	require.Equal(t, 0.9, predictions[0].Probability)

	splits, groups := GroupBySplit(predictions)
	require.Equal(t, []string{"train", "valid"}, splits)
	require.Len(t, groups["train"], 2)

	_, err = ReadPredictions(strings.NewReader("split,label,probability\ntrain,3,0.5\n"))
	require.Error(t, err)
}
