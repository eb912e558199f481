package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/felixbrock/matchadmin/internal/app"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteTable reads tables from a local SQLite database.
type SQLiteTable struct {
	db *sql.DB
}

// OpenSQLite opens the database at path. Use ":memory:" for a scratch database.
func OpenSQLite(path string) (*SQLiteTable, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if path == ":memory:" {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return NewSQLiteTable(db), nil
}

func NewSQLiteTable(db *sql.DB) *SQLiteTable {
	return &SQLiteTable{db: db}
}

func (s *SQLiteTable) Close() error {
	return s.db.Close()
}

func quoteIdent(name string) (string, error) {
	if !identPattern.MatchString(name) {
		return "", &BackendError{Code: "42602", Message: fmt.Sprintf("invalid identifier %q", name)}
	}
	return `"` + name + `"`, nil
}

func (s *SQLiteTable) buildSelect(q app.Query) (string, error) {
	table, err := quoteIdent(q.Table)
	if err != nil {
		return "", err
	}

	columns := "*"
	if len(q.Columns) > 0 {
		quoted := make([]string, len(q.Columns))
		for i, col := range q.Columns {
			if quoted[i], err = quoteIdent(col); err != nil {
				return "", err
			}
		}
		columns = strings.Join(quoted, ", ")
	}

	stmt := fmt.Sprintf("SELECT %s FROM %s", columns, table)

	if q.OrderBy != "" {
		order, err := quoteIdent(q.OrderBy)
		if err != nil {
			return "", err
		}
		direction := "ASC"
		if q.Descending {
			direction = "DESC"
		}
		stmt = fmt.Sprintf("%s ORDER BY %s %s", stmt, order, direction)
	}

	return stmt, nil
}

func (s *SQLiteTable) Select(ctx context.Context, q app.Query) ([]byte, error) {
	stmt, err := s.buildSelect(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, &BackendError{Message: err.Error()}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
				continue
			}
			record[col] = values[i]
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return json.Marshal(records)
}
