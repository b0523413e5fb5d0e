// Package emissions parses regional CO2 emission facts out of the statistics
// office spreadsheet export.
package emissions

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"ecoscan/internal/domain/entity"
	"ecoscan/internal/errors"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Loader reads a semicolon-separated CSV export and extracts the yearly
// totals for a single region.
//
// The export is not a clean table: the first rows hold titles and blank
// lines, the header row lists years as columns, and numbers use dots as
// thousands separators and commas as decimal marks.
type Loader struct {
	skipRows int
}

// New creates a Loader that skips the given number of leading rows before
// the header row.
func New(skipRows int) *Loader {
	if skipRows < 0 {
		skipRows = 0
	}

	return &Loader{skipRows: skipRows}
}

// LoadFile opens the CSV file at path and extracts the facts for region.
func (l *Loader) LoadFile(path, region string) ([]*entity.RegionalCO2Emission, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open emissions CSV")
	}
	defer file.Close()

	return l.Load(file, region)
}

// Load extracts the facts for region from the CSV stream.
// It returns an error when the header row or the region row is missing.
//
// The export is ISO 8859-1 encoded; the stream is decoded to UTF-8 so
// accented region names compare equal to the region argument.
func (l *Loader) Load(r io.Reader, region string) ([]*entity.RegionalCO2Emission, error) {
	reader := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	// Rows in the export have ragged lengths, so disable the field count check.
	reader.FieldsPerRecord = -1

	for skipped := 0; skipped < l.skipRows; skipped++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "failed to skip leading rows")
		}
	}

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header row")
	}

	// Columns whose header is a year carry the totals. Anything else
	// (labels, footnote columns) is ignored.
	years := make(map[int]int, len(header))
	for col, cell := range header {
		year, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			continue
		}
		years[col] = year
	}
	if len(years) == 0 {
		return nil, errors.New("no year columns found in header row")
	}

	row, err := l.findRegionRow(reader, region)
	if err != nil {
		return nil, err
	}

	facts := make([]*entity.RegionalCO2Emission, 0, len(years))
	for col, year := range years {
		if col >= len(row) {
			continue
		}

		total, err := parseTotal(row[col])
		if err != nil {
			// Empty or non-numeric cells mean the year has no figure yet.
			continue
		}

		facts = append(facts, &entity.RegionalCO2Emission{
			RegionName:     region,
			Year:           year,
			TotalCO2Tonnes: total,
		})
	}

	sort.Slice(facts, func(i, j int) bool {
		return facts[i].Year < facts[j].Year
	})

	return facts, nil
}

func (l *Loader) findRegionRow(reader *csv.Reader, region string) ([]string, error) {
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.Errorf("region %q not found in emissions CSV", region)
			}

			return nil, errors.Wrap(err, "failed to read emissions CSV row")
		}

		if len(row) > 0 && strings.TrimSpace(row[0]) == region {
			return row, nil
		}
	}
}

// parseTotal converts a cell like "1.234.567,8" to 1234567.8.
func parseTotal(cell string) (float64, error) {
	cleaned := strings.TrimSpace(cell)
	if cleaned == "" {
		return 0, errors.New("empty cell")
	}

	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	return strconv.ParseFloat(cleaned, 64)
}
