package sources

import (
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/de-tools/sku-atlas/pkg/models/store"
	"github.com/de-tools/sku-atlas/pkg/services/config"
)

// ReadCSV parses delimited text into a raw table. The first record is the
// header; every following record becomes one data row. Records may have
// uneven lengths, the ingestor reports those per row with their position.
func ReadCSV(r io.Reader, comma rune) (*store.RawTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", len(rows)+2, err)
		}
		rows = append(rows, record)
	}

	return &store.RawTable{Columns: header, Rows: rows}, nil
}

// Delimiter resolves a profile's optional delimiter key, defaulting to a comma.
func Delimiter(profile config.Profile) (rune, error) {
	d := profile.Key("delimiter")
	if d == "" {
		return ',', nil
	}
	if utf8.RuneCountInString(d) != 1 {
		return 0, fmt.Errorf("profile %q has invalid delimiter %q", profile.Name, d)
	}
	comma, _ := utf8.DecodeRuneInString(d)
	return comma, nil
}
