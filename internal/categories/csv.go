package categories

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

const (
	numFields      = 4
	colCategory    = 0
	colDisplayName = 1
	colColor       = 2
	colIcon        = 3
)

// Details is the display metadata for one category. The classifier never
// looks at this; only rendering paths do.
type Details struct {
	Category    model.Category
	DisplayName string
	Color       string // hex color for charts
	Icon        string // static icon identifier
}

// ReadDetails reads categories.csv.
func ReadDetails(r io.Reader) ([]Details, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var details []Details
	for i, rec := range records[1:] {
		d, err := UnmarshalDetails(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		details = append(details, d)
	}
	return details, nil
}

// WriteDetails writes categories.csv.
func WriteDetails(w io.Writer, details []Details) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"category", "display_name", "color", "icon"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, d := range details {
		if err := cw.Write(MarshalDetails(d)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalDetails converts Details to a CSV row.
func MarshalDetails(d Details) []string {
	row := make([]string, numFields)
	row[colCategory] = string(d.Category)
	row[colDisplayName] = d.DisplayName
	row[colColor] = d.Color
	row[colIcon] = d.Icon
	return row
}

// UnmarshalDetails converts a CSV row to Details.
func UnmarshalDetails(record []string) (Details, error) {
	if len(record) != numFields {
		return Details{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	cat, ok := model.ParseCategory(record[colCategory])
	if !ok {
		return Details{}, fmt.Errorf("unknown category %q", record[colCategory])
	}

	return Details{
		Category:    cat,
		DisplayName: record[colDisplayName],
		Color:       record[colColor],
		Icon:        record[colIcon],
	}, nil
}
