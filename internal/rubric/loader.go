package rubric

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// overallRowName marks the tabular row that carries the total-score bands.
const overallRowName = "overall"

// LoadFile loads a rubric from a .csv, .xlsx or .yaml/.yml file. Tabular
// sources score with params; YAML files may override individual params.
func LoadFile(path string, params Params) (*Rubric, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrConfiguration, path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(f, params)
	case ".xlsx", ".xlsm":
		return ParseXLSX(f, params)
	case ".yaml", ".yml":
		return ParseYAML(f, params)
	default:
		return nil, fmt.Errorf("%w: unsupported rubric file type %q", ErrConfiguration, filepath.Ext(path))
	}
}

// ParseCSV reads a comma-separated rubric table.
func ParseCSV(r io.Reader, params Params) (*Rubric, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %v", ErrConfiguration, err)
	}
	return ParseTable(rows, params)
}

// ParseXLSX reads the first sheet of a spreadsheet rubric.
func ParseXLSX(r io.Reader, params Params) (*Rubric, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %v", ErrConfiguration, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: xlsx has no sheets", ErrConfiguration)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrConfiguration, sheet, err)
	}
	return ParseTable(rows, params)
}

type tableColumns struct {
	criterion  int
	weight     int
	strategy   int
	thresholds int
	labels     int
	percent    bool
}

func locateColumns(header []string) (tableColumns, error) {
	cols := tableColumns{criterion: -1, weight: -1, strategy: -1, thresholds: -1, labels: -1}
	for i, h := range header {
		raw := strings.ToLower(strings.TrimSpace(h))
		switch key := normalizeKey(raw); key {
		case "criterion", "criteria", "creteria", "criterion_name":
			cols.criterion = i
		case "weight", "weightage", "weight_percent":
			cols.weight = i
			cols.percent = strings.Contains(raw, "%") || key == "weight_percent"
		case "strategy", "scoring_strategy":
			cols.strategy = i
		case "thresholds", "band_thresholds", "bands":
			cols.thresholds = i
		case "labels", "band_labels":
			cols.labels = i
		}
	}
	if cols.criterion < 0 {
		return cols, errors.New("missing criterion column")
	}
	if cols.weight < 0 {
		return cols, errors.New("missing weight column")
	}
	if (cols.thresholds < 0) != (cols.labels < 0) {
		return cols, errors.New("thresholds and labels columns must appear together")
	}
	return cols, nil
}

// ParseTable builds a rubric from header + data rows. Columns are located by
// header name: criterion, weight (or "weight (%)"), optional strategy, and
// optional thresholds/labels holding ';'-separated band lists. A row named
// "overall" supplies the total-score bands. Any malformed row rejects the
// whole table. Weights summing to 100 are read as percentages.
func ParseTable(rows [][]string, params Params) (*Rubric, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: table needs a header and at least one row", ErrConfiguration)
	}
	cols, err := locateColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrConfiguration, err)
	}

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var (
		criteria []Criterion
		overall  []Band
	)
	for n, row := range rows[1:] {
		line := n + 2
		if isBlank(row) {
			continue
		}
		name := cell(row, cols.criterion)
		if name == "" {
			return nil, fmt.Errorf("%w: row %d: empty criterion name", ErrConfiguration, line)
		}

		bands := DefaultBands()
		if cols.thresholds >= 0 {
			bands, err = parseBands(cell(row, cols.thresholds), cell(row, cols.labels))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d (%s): %v", ErrConfiguration, line, name, err)
			}
		}

		if strings.EqualFold(name, overallRowName) {
			overall = bands
			continue
		}

		weight, err := parseWeight(cell(row, cols.weight))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d (%s): %v", ErrConfiguration, line, name, err)
		}
		criteria = append(criteria, Criterion{
			Name:     name,
			Weight:   weight,
			Strategy: Strategy(cell(row, cols.strategy)),
			Bands:    bands,
		})
	}
	if overall == nil {
		overall = DefaultBands()
	}
	if cols.percent || sumsToPercent(criteria) {
		for i := range criteria {
			criteria[i].Weight /= 100
		}
	}
	return New(criteria, overall, params)
}

// sumsToPercent reports whether weights were written as percentages
// without saying so in the header.
func sumsToPercent(criteria []Criterion) bool {
	var sum float64
	for _, c := range criteria {
		sum += c.Weight
	}
	return math.Abs(sum-100) <= weightTolerance*100
}

func parseWeight(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, errors.New("missing weight")
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("weight %q is not a number", s)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("weight %q is not finite", s)
	}
	return w, nil
}

func parseBands(thresholds, labels string) ([]Band, error) {
	ts := splitList(thresholds)
	ls := splitList(labels)
	if len(ts) == 0 {
		return nil, errors.New("no band thresholds")
	}
	if len(ts) != len(ls) {
		return nil, fmt.Errorf("%d thresholds but %d labels", len(ts), len(ls))
	}
	bands := make([]Band, len(ts))
	for i, t := range ts {
		lower, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, fmt.Errorf("threshold %q is not a number", t)
		}
		bands[i] = Band{Lower: lower, Label: ls[i]}
	}
	return bands, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

type yamlRubric struct {
	Criteria     []Criterion `yaml:"criteria"`
	OverallBands []Band      `yaml:"overall_bands"`
	Params       Params      `yaml:"params"`
}

// ParseYAML reads a rubric document. Params present in the document override
// the supplied ones field by field.
func ParseYAML(r io.Reader, params Params) (*Rubric, error) {
	doc := yamlRubric{Params: params.withDefaults()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrConfiguration, err)
	}
	if doc.OverallBands == nil {
		doc.OverallBands = DefaultBands()
	}
	for i := range doc.Criteria {
		if doc.Criteria[i].Bands == nil {
			doc.Criteria[i].Bands = DefaultBands()
		}
	}
	return New(doc.Criteria, doc.OverallBands, doc.Params)
}
