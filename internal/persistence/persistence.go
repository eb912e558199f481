package persistence

import (
	"cmp"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/felixbrock/matchadmin/internal/app"
)

// MemoryTable holds seed tables in memory. Each table is loaded from CSV
// whose header row names the columns.
type MemoryTable struct {
	tables map[string]memTable
}

type memTable struct {
	columns []string
	rows    []map[string]string
}

// LoadCSVFile loads the file at path as table.
func LoadCSVFile(table string, path string) (*MemoryTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		err = file.Close()
		if err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	m := &MemoryTable{}
	if err := m.LoadCSV(table, file); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return m, nil
}

// LoadCSV reads a CSV stream into table, replacing any previous content.
func (m *MemoryTable) LoadCSV(table string, r io.Reader) error {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("missing header row")
		}
		return err
	}

	t := memTable{columns: make([]string, len(header))}
	for i, col := range header {
		t.columns[i] = strings.TrimSpace(col)
	}

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}

		row := make(map[string]string, len(t.columns))
		for i, col := range t.columns {
			row[col] = record[i]
		}
		t.rows = append(t.rows, row)
	}

	if m.tables == nil {
		m.tables = map[string]memTable{}
	}
	m.tables[table] = t

	return nil
}

func (m *MemoryTable) Select(ctx context.Context, q app.Query) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, ok := m.tables[q.Table]
	if !ok {
		return nil, &BackendError{Code: "42P01", Message: fmt.Sprintf("relation %q does not exist", q.Table)}
	}

	columns := q.Columns
	if len(columns) == 0 {
		columns = t.columns
	}
	for _, col := range append(slices.Clone(columns), q.OrderBy) {
		if col != "" && !slices.Contains(t.columns, col) {
			return nil, &BackendError{Code: "42703", Message: fmt.Sprintf("column %s.%s does not exist", q.Table, col)}
		}
	}

	source := slices.Clone(t.rows)
	if q.OrderBy != "" {
		slices.SortStableFunc(source, func(a, b map[string]string) int {
			c := cmp.Compare(a[q.OrderBy], b[q.OrderBy])
			if q.Descending {
				return -c
			}
			return c
		})
	}

	rows := make([]map[string]string, 0, len(source))
	for _, row := range source {
		projected := make(map[string]string, len(columns))
		for _, col := range columns {
			projected[col] = row[col]
		}
		rows = append(rows, projected)
	}

	return json.Marshal(rows)
}
