// Package resorts loads the ski resort catalog from a CSV file.
package resorts

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ski-stay/ski-stay-search/internal/domain"
)

// Canonical column names after header normalization. Headers are lowercased
// and a few legacy names are renamed so older catalog exports keep loading.
const (
	colResort         = "resort"
	colRegion         = "region"
	colState          = "state"
	colLatitude       = "latitude"
	colLongitude      = "longitude"
	colSkiableAcres   = "skiable_acres"
	colVerticalDrop   = "vertical_drop"
	colAnnualSnowfall = "annual_snowfall"
)

// headerRenames maps legacy catalog column names to their canonical names.
var headerRenames = map[string]string{
	"resortregion":    colRegion,
	"stateorprovince": colState,
	"skiableacres":    colSkiableAcres,
	"verticaldrop":    colVerticalDrop,
	"annualsnowfall":  colAnnualSnowfall,
}

// LoadFile reads the resort catalog from the CSV file at path.
func LoadFile(path string) (*domain.ResortTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resort catalog: %w", err)
	}
	defer f.Close()

	table, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load resort catalog %s: %w", path, err)
	}
	return table, nil
}

// Load parses a resort catalog CSV. The first row is the header; resort,
// latitude and longitude are required columns, everything else is optional
// and left nil when the cell is empty or the column is absent.
func Load(r io.Reader) (*domain.ResortTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := indexColumns(header)

	for _, required := range []string{colResort, colLatitude, colLongitude} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var list []domain.Resort
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		line++

		resort, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		list = append(list, resort)
	}

	return domain.NewResortTable(list), nil
}

// indexColumns maps canonical column names to their positions. Matching is
// case-insensitive and legacy names are renamed.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := headerRenames[key]; ok {
			key = canonical
		}
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	return columns
}

func parseRecord(record []string, columns map[string]int) (domain.Resort, error) {
	name := cell(record, columns, colResort)
	if name == "" {
		return domain.Resort{}, fmt.Errorf("empty resort name")
	}

	lat, err := parseFloat(cell(record, columns, colLatitude))
	if err != nil || lat == nil {
		return domain.Resort{}, fmt.Errorf("resort %q: invalid latitude", name)
	}
	lon, err := parseFloat(cell(record, columns, colLongitude))
	if err != nil || lon == nil {
		return domain.Resort{}, fmt.Errorf("resort %q: invalid longitude", name)
	}

	resort := domain.Resort{
		Name:      name,
		Region:    cell(record, columns, colRegion),
		Latitude:  *lat,
		Longitude: *lon,
	}

	if state := cell(record, columns, colState); state != "" {
		resort.State = &state
	}

	// Stat columns are best effort; an unparsable value loads as unknown.
	resort.SkiableAcres, _ = parseFloat(cell(record, columns, colSkiableAcres))
	resort.VerticalDrop, _ = parseFloat(cell(record, columns, colVerticalDrop))
	resort.AnnualSnowfall, _ = parseFloat(cell(record, columns, colAnnualSnowfall))

	return resort, nil
}

// cell returns the trimmed value for a canonical column, or "" when the
// column is absent or the record is short.
func cell(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
