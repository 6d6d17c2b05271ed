// Package store persists tabular records as flat CSV files. The only
// write primitive is a whole-file rewrite; there is no locking and no
// partial write, which is acceptable for the single-user scale this
// service targets. An interrupted write leaves the file in an undefined
// state.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Table is an in-memory copy of one CSV file: a header row plus data rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty table with the given header.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// Load reads the table at path. A missing file is not an error: it yields
// an empty table carrying the expected columns. A present file's own
// header wins over the expected columns.
func Load(path string, columns []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(columns), nil
		}
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate short rows from hand edits

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return New(columns), nil
	}

	return &Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

// Save rewrites the whole table at path, header first, replacing any
// previous content.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: creating %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("store: writing header to %s: %w", path, err)
	}
	for i, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("store: writing row %d to %s: %w", i+1, path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("store: flushing %s: %w", path, err)
	}
	return nil
}

// Append adds a row to a table.
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, row)
}

// Append loads the table at path, appends one row after the existing
// rows, and rewrites the file.
func Append(path string, columns []string, row []string) error {
	table, err := Load(path, columns)
	if err != nil {
		return err
	}
	table.Append(row)
	return table.Save(path)
}

// Replace rewrites the file at path with the caller-provided table
// wholesale. The editable-grid workflow uses this to persist arbitrary
// add/edit/delete operations; the store trusts the table as given.
func Replace(path string, table *Table) error {
	return table.Save(path)
}
