package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"scorecard/pkg/model"
)

// BinRow is the flat form of one encoded bin.
type BinRow struct {
	Feature string  `csv:"feature" yaml:"feature"`
	Bin     string  `csv:"bin" yaml:"bin"`
	Good    int     `csv:"good" yaml:"good"`
	Bad     int     `csv:"bad" yaml:"bad"`
	Total   int     `csv:"total" yaml:"total"`
	BadRate float64 `csv:"bad_rate" yaml:"bad_rate"`
	WOE     float64 `csv:"woe" yaml:"woe"`
	IV      float64 `csv:"iv" yaml:"iv"`
}

func Rows(m *model.Model) []*BinRow {
	var rows []*BinRow
	for _, e := range m.Encodings {
		for _, b := range e.Bins {
			rows = append(rows, &BinRow{
				Feature: e.Feature,
				Bin:     b.Key,
				Good:    b.Good,
				Bad:     b.Bad,
				Total:   b.Total,
				BadRate: b.BadRate,
				WOE:     b.WOE,
				IV:      b.IV,
			})
		}
	}
	return rows
}

// WriteSummary renders the features ranked by IV followed by the skipped and failed features.
func WriteSummary(w io.Writer, m *model.Model) {
	encodings := append(m.Encodings[:0:0], m.Encodings...)
	sort.SliceStable(encodings, func(i, j int) bool { return encodings[i].IV > encodings[j].IV })

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("INFORMATION VALUE")
	t.AppendHeader(table.Row{"Feature", "Bins", "IV"})
	t.SetColumnConfigs([]table.ColumnConfig{{Name: "IV", Align: text.AlignRight}})
	for _, e := range encodings {
		t.AppendRow(table.Row{e.Feature, len(e.Bins), fmt.Sprintf("%.5f", e.IV)})
	}
	if len(m.Skipped) > 0 || len(m.Failed) > 0 {
		t.AppendSeparator()
	}
	for _, s := range m.Skipped {
		t.AppendRow(table.Row{s.Feature, "-", fmt.Sprintf("skipped: %d distinct values", s.Distinct)})
	}
	for _, f := range m.Failed {
		t.AppendRow(table.Row{f.Feature, "-", "failed: " + f.Error})
	}
	t.Render()
}

// WriteBins renders one table per encoded feature.
func WriteBins(w io.Writer, m *model.Model) {
	for _, e := range m.Encodings {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetTitle(fmt.Sprintf("%s (IV=%.5f)", e.Feature, e.IV))
		t.AppendHeader(table.Row{"Bin", "Good", "Bad", "Total", "Bad rate", "WOE", "IV"})
		for _, b := range e.Bins {
			t.AppendRow(table.Row{b.Key, b.Good, b.Bad, b.Total,
				fmt.Sprintf("%.5f", b.BadRate), fmt.Sprintf("%.5f", b.WOE), fmt.Sprintf("%.5f", b.IV)})
		}
		t.Render()
	}
}

func WriteCSV(w io.Writer, m *model.Model) error {
	rows := Rows(m)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("error writing bins csv: %w", err)
	}
	return nil
}

func WriteYAML(w io.Writer, m *model.Model) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	if err := encoder.Encode(Rows(m)); err != nil {
		return fmt.Errorf("error writing bins yaml: %w", err)
	}
	return nil
}

// SaveFile creates fileName and writes the report into it with write.
func SaveFile(fileName string, m *model.Model, write func(io.Writer, *model.Model) error) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", fileName, err)
	}
	defer f.Close()
	return write(f, m)
}
