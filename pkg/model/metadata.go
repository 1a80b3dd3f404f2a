package model

// NameMap implements a bidirectional mapping between a name and an index
type NameMap struct {
	NameToIndex map[string]int
	IndexToName map[int]string
}

func (f NameMap) Set(name string, index int) {
	f.NameToIndex[name] = index
	f.IndexToName[index] = name
}

func (f NameMap) Size() int {
	return len(f.IndexToName)
}

func (f NameMap) ContainsName(name string) (int, bool) {
	index, ok := f.NameToIndex[name]
	return index, ok
}

// Names returns the names ordered by index
func (f NameMap) Names() []string {
	names := make([]string, 0, f.Size())
	for i := 0; i < f.Size(); i++ {
		names = append(names, f.IndexToName[i])
	}
	return names
}

func NewNameMap() NameMap {
	return NameMap{
		NameToIndex: map[string]int{},
		IndexToName: map[int]string{},
	}
}

// ColumnMap is a bidirectional mapping between a column index and a feature index
type ColumnMap struct {
	ColumnToIndex map[int]int
	IndexToColumn map[int]int
}

func (f ColumnMap) Set(column int, index int) {
	f.ColumnToIndex[column] = index
	f.IndexToColumn[index] = column
}

func (f ColumnMap) GetColumn(index int) (int, bool) {
	column, ok := f.IndexToColumn[index]
	return column, ok
}

func NewColumnMap() ColumnMap {
	return ColumnMap{
		ColumnToIndex: map[int]int{},
		IndexToColumn: map[int]int{},
	}
}

const NoColumn = -1

type Metadata struct {
	Columns []string

	// FeatureColumns maps a data row column index to the index of the feature in a DataRecord
	FeatureColumns ColumnMap

	// Features maps feature names to their index in a DataRecord
	Features NameMap

	// LabelColumn points to the column in the data row that contains the 0/1 label, or NoColumn
	LabelColumn int

	// WeightColumn points to the optional sample weight column, or NoColumn
	WeightColumn int
}

func NewMetadata() *Metadata {
	return &Metadata{
		Columns:        nil,
		FeatureColumns: NewColumnMap(),
		Features:       NewNameMap(),
		LabelColumn:    NoColumn,
		WeightColumn:   NoColumn,
	}
}

func (d *Metadata) FeatureCount() int {
	return d.Features.Size()
}

func (d *Metadata) HasLabel() bool {
	return d.LabelColumn != NoColumn
}

func (d *Metadata) AddFeature(column int) {
	index := d.Features.Size()
	d.FeatureColumns.Set(column, index)
	d.Features.Set(d.Columns[column], index)
}
