// query.go runs read-only SQL against the seeded database and returns
// results in the same table shape the assistant produces, so both can be
// rendered side by side.
package db

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/DachengChen/paiBI/dataset"
)

// TableInfo is one base table with its estimated row count.
type TableInfo struct {
	Schema   string
	Name     string
	RowCount int64 // estimated, from pg_class.reltuples
}

// ListTables lists base tables in a schema with estimated row counts.
func (d *DB) ListTables(ctx context.Context, schema string) ([]TableInfo, error) {
	if schema == "" {
		schema = "public"
	}
	query := `
		SELECT t.table_schema, t.table_name,
		       GREATEST(COALESCE(c.reltuples, 0), 0)::bigint
		FROM information_schema.tables t
		LEFT JOIN pg_class c
		  ON c.relname = t.table_name
		  AND c.relnamespace = (SELECT oid FROM pg_namespace WHERE nspname = t.table_schema)
		WHERE t.table_schema = $1 AND t.table_type = 'BASE TABLE'
		ORDER BY t.table_name`
	rows, err := d.Pool.Query(ctx, query, schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TableInfo
	for rows.Next() {
		var t TableInfo
		if err := rows.Scan(&t.Schema, &t.Name, &t.RowCount); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountRows returns the exact row count of a fixture table.
func (d *DB) CountRows(ctx context.Context, table string) (int64, error) {
	if _, ok := dataset.Lookup(table); !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int64
	err := d.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	return n, err
}

// Execute runs one statement and collects its result set. Only SELECT
// statements are accepted.
func (d *DB) Execute(ctx context.Context, sql string) (dataset.Table, error) {
	sql = stripComments(sql)
	if sql == "" {
		return dataset.Table{}, fmt.Errorf("empty query")
	}
	if !strings.HasPrefix(strings.ToUpper(sql), "SELECT") {
		return dataset.Table{}, fmt.Errorf("only SELECT statements can be executed")
	}

	rows, err := d.Pool.Query(ctx, sql)
	if err != nil {
		return dataset.Table{}, err
	}
	defer rows.Close()

	t := dataset.Table{Name: "result", Columns: []string{}, Rows: []dataset.Row{}}
	for _, fd := range rows.FieldDescriptions() {
		t.Columns = append(t.Columns, fd.Name)
	}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return dataset.Table{}, err
		}
		row := make(dataset.Row, len(values))
		for i, v := range values {
			row[t.Columns[i]] = toValue(v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, rows.Err()
}

// toValue converts a pgx-decoded value into a dataset cell.
func toValue(v any) dataset.Value {
	switch x := v.(type) {
	case nil:
		return dataset.Text("")
	case int16:
		return dataset.Int(int(x))
	case int32:
		return dataset.Int(int(x))
	case int64:
		return dataset.Int(int(x))
	case float32:
		return dataset.Number(float64(x))
	case float64:
		return dataset.Number(x)
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return dataset.Text("")
		}
		return dataset.Number(f.Float64)
	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return dataset.Number(f)
	case time.Time:
		return dataset.Text(x.Format(time.DateOnly))
	case string:
		return dataset.Text(x)
	default:
		return dataset.Text(fmt.Sprintf("%v", x))
	}
}

// stripComments drops "--" comments and surrounding whitespace, leaving
// one statement without its terminator. "--" inside a quoted literal is
// kept.
func stripComments(sql string) string {
	var lines []string
	for _, line := range strings.Split(sql, "\n") {
		line = line[:commentStart(line)]
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return strings.TrimSuffix(strings.TrimSpace(strings.Join(lines, "\n")), ";")
}

// commentStart returns the offset of the first "--" outside single
// quotes, or len(line).
func commentStart(line string) int {
	quoted := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\'':
			quoted = !quoted
		case !quoted && strings.HasPrefix(line[i:], "--"):
			return i
		}
	}
	return len(line)
}

// FormatRowCount formats a row count for compact display:
//   - under 1000: exact number (e.g. "42", "999")
//   - 1000..999499: Xk (e.g. "1k", "999k")
//   - 999500+: XM (e.g. "1M", "10M")
func FormatRowCount(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 999500 {
		return fmt.Sprintf("%dk", (n+500)/1000)
	}
	return fmt.Sprintf("%dM", (n+500000)/1000000)
}
