package io

// DataRecord is one parsed data row. Values holds the raw value of every feature, "" when missing.
type DataRecord struct {
	Values []string
	Label  int
	Weight float64
}

type DataSet struct {
	Data []*DataRecord
}

func NewDataSet(data []*DataRecord) *DataSet {
	return &DataSet{Data: data}
}

func (d *DataSet) Size() int {
	return len(d.Data)
}

// Column returns the values of one feature in row order
func (d *DataSet) Column(feature int) []string {
	values := make([]string, len(d.Data))
	for i, record := range d.Data {
		values[i] = record.Values[feature]
	}
	return values
}

func (d *DataSet) Labels() []int {
	labels := make([]int, len(d.Data))
	for i, record := range d.Data {
		labels[i] = record.Label
	}
	return labels
}

func (d *DataSet) Weights() []float64 {
	weights := make([]float64, len(d.Data))
	for i, record := range d.Data {
		weights[i] = record.Weight
	}
	return weights
}

// LabelCounts counts the rows labelled 0 (good) and 1 (bad)
func (d *DataSet) LabelCounts() (good int, bad int) {
	for _, record := range d.Data {
		if record.Label == 1 {
			bad++
		} else {
			good++
		}
	}
	return good, bad
}
