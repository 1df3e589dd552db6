package properties

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/rentbooks-dev/rentbooks/internal/model"
)

const (
	numFields = 3
	colID     = 0
	colName   = 1
	colValue  = 2
)

// ReadProperties reads a properties.csv.
func ReadProperties(r io.Reader) ([]model.Property, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading properties CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var props []model.Property
	for i, rec := range records[1:] {
		p, err := UnmarshalProperty(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		props = append(props, p)
	}
	return props, nil
}

// WriteProperties writes a properties.csv.
func WriteProperties(w io.Writer, props []model.Property) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"property_id", "property_name", "property_value"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range props {
		if err := cw.Write(MarshalProperty(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalProperty converts a Property to a CSV row.
func MarshalProperty(p model.Property) []string {
	row := make([]string, numFields)
	row[colID] = p.ID
	row[colName] = p.Name
	row[colValue] = p.Value.StringFixed(0)
	return row
}

// UnmarshalProperty converts a CSV row to a Property.
func UnmarshalProperty(record []string) (model.Property, error) {
	if len(record) != numFields {
		return model.Property{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	value, err := decimal.NewFromString(record[colValue])
	if err != nil {
		return model.Property{}, fmt.Errorf("parsing property_value %q: %w", record[colValue], err)
	}

	return model.Property{
		ID:    record[colID],
		Name:  record[colName],
		Value: value,
	}, nil
}
