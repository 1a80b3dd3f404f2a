package io

import (
	"encoding/csv"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"scorecard/pkg/model"
)

type void struct{}

var Void = void{}

type Set map[string]void

func NewSet(values ...string) Set {
	set := Set{}
	for _, val := range values {
		set[val] = Void
	}
	return set
}

// DefaultMissingValues are the cell values read as a missing feature value
var DefaultMissingValues = NewSet("", "NA", "NaN", "nan", "null", "NULL")

type DataParameters struct {
	DataFile     string
	LabelColumn  string
	WeightColumn string

	// FeatureColumns lists the columns to read, all remaining columns when empty
	FeatureColumns []string

	// LabelOptional allows data without a label column
	LabelOptional bool

	MissingValues Set
}

type DataError struct {
	Line  int
	Error string
}

// LoadData reads the data file, or stdin when no file is given.
func LoadData(p DataParameters) (*model.Metadata, *DataSet, []DataError, error) {
	if p.DataFile == "" {
		return ReadData(os.Stdin, p)
	}
	inputFile, err := os.Open(p.DataFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error opening file: %w", err)
	}
	defer inputFile.Close()
	return ReadData(inputFile, p)
}

func ReadData(input io.Reader, p DataParameters) (*model.Metadata, *DataSet, []DataError, error) {
	var errors []DataError
	if p.MissingValues == nil {
		p.MissingValues = DefaultMissingValues
	}

	reader := csv.NewReader(input)
	reader.Comma = ','

	//First line is expected to be a header
	record, err := reader.Read()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error reading data header: %w", err)
	}

	metaData := model.NewMetadata()
	metaData.Columns = record
	if err := setLabelColumn(p, metaData); err != nil {
		return nil, nil, nil, err
	}
	if err := setWeightColumn(p, metaData); err != nil {
		return nil, nil, nil, err
	}
	if err := buildFeatureIndex(p, metaData); err != nil {
		return nil, nil, nil, err
	}

	var data []*DataRecord
	// header is line 1
	currentLine := 1
	for {
		record, err = reader.Read()
		currentLine++
		if err == io.EOF {
			break
		}
		if err != nil {
			errors = append(errors, DataError{
				Line:  currentLine,
				Error: err.Error(),
			})
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			return nil, nil, nil, fmt.Errorf("error reading data: %w", err)
		}

		dataRecord, err := parseRecord(p, metaData, record)
		if err != nil {
			errors = append(errors, DataError{
				Line:  currentLine,
				Error: err.Error(),
			})
			continue
		}
		data = append(data, dataRecord)
	}

	return metaData, NewDataSet(data), errors, nil
}

func parseRecord(p DataParameters, metaData *model.Metadata, record []string) (*DataRecord, error) {
	dataRecord := &DataRecord{
		Values: make([]string, metaData.FeatureCount()),
		Weight: 1.0,
	}

	if metaData.HasLabel() {
		label, err := parseLabel(record[metaData.LabelColumn])
		if err != nil {
			return nil, err
		}
		dataRecord.Label = label
	}

	if metaData.WeightColumn != model.NoColumn {
		weight, err := strconv.ParseFloat(strings.TrimSpace(record[metaData.WeightColumn]), 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing weight %s: %w", metaData.Columns[metaData.WeightColumn], err)
		}
		dataRecord.Weight = weight
	}

	for index := range dataRecord.Values {
		column, ok := metaData.FeatureColumns.GetColumn(index)
		if !ok {
			return nil, fmt.Errorf("no column for feature %d", index)
		}
		value := strings.TrimSpace(record[column])
		if _, missing := p.MissingValues[value]; missing {
			value = ""
		}
		dataRecord.Values[index] = value
	}
	return dataRecord, nil
}

func parseLabel(value string) (int, error) {
	label, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing label %q: %w", value, err)
	}
	switch label {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	}
	return 0, fmt.Errorf("label must be 0 or 1, got %q", value)
}

func buildFeatureIndex(p DataParameters, metaData *model.Metadata) error {
	if len(p.FeatureColumns) == 0 {
		for i := range metaData.Columns {
			if i != metaData.LabelColumn && i != metaData.WeightColumn {
				metaData.AddFeature(i)
			}
		}
		return nil
	}
	for _, feature := range p.FeatureColumns {
		column := findColumn(metaData, feature)
		if column == model.NoColumn {
			return fmt.Errorf("feature column %s not found in data header", feature)
		}
		if column == metaData.LabelColumn || column == metaData.WeightColumn {
			return fmt.Errorf("column %s cannot be used as a feature", feature)
		}
		if _, ok := metaData.FeatureColumns.ColumnToIndex[column]; ok {
			return fmt.Errorf("feature column %s listed twice", feature)
		}
		metaData.AddFeature(column)
	}
	return nil
}

func setLabelColumn(p DataParameters, metaData *model.Metadata) error {
	metaData.LabelColumn = findColumn(metaData, p.LabelColumn)
	if metaData.LabelColumn == model.NoColumn && !p.LabelOptional {
		return fmt.Errorf("label column %s not found in data header", p.LabelColumn)
	}
	return nil
}

func setWeightColumn(p DataParameters, metaData *model.Metadata) error {
	if p.WeightColumn == "" {
		return nil
	}
	metaData.WeightColumn = findColumn(metaData, p.WeightColumn)
	if metaData.WeightColumn == model.NoColumn {
		return fmt.Errorf("weight column %s not found in data header", p.WeightColumn)
	}
	return nil
}

func findColumn(metaData *model.Metadata, name string) int {
	if name == "" {
		return model.NoColumn
	}
	for i, col := range metaData.Columns {
		if col == name {
			return i
		}
	}
	return model.NoColumn
}

func SaveModel(model *model.Model, writer io.Writer) error {
	encoder := gob.NewEncoder(writer)
	err := encoder.Encode(model)
	if err != nil {
		return fmt.Errorf("error encoding model: %w", err)
	}
	return nil
}

func LoadModel(input io.Reader) (*model.Model, error) {
	decoder := gob.NewDecoder(input)
	model := model.Model{}
	err := decoder.Decode(&model)
	if err != nil {
		return nil, fmt.Errorf("error decoding model: %w", err)
	}
	return &model, nil
}
