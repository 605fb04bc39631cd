package db

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DachengChen/paiBI/config"
	"github.com/DachengChen/paiBI/dataset"
)

func TestCopyRowsMatchColumns(t *testing.T) {
	for _, name := range seedOrder {
		t.Run(name, func(t *testing.T) {
			tbl, ok := dataset.Lookup(name)
			require.True(t, ok)

			rows, err := CopyRows(name)
			require.NoError(t, err)
			require.Len(t, rows, tbl.Len())
			for _, r := range rows {
				assert.Len(t, r, len(tbl.Columns))
			}
		})
	}
}

func TestCopyRowsSales(t *testing.T) {
	rows, err := CopyRows(dataset.TableSales)
	require.NoError(t, err)

	first := rows[0]
	assert.Equal(t, 1, first[0])
	assert.Equal(t, 1636.05, first[10])
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), first[11])
}

func TestCopyRowsUnknown(t *testing.T) {
	_, err := CopyRows("inventory")
	assert.ErrorContains(t, err, `unknown table "inventory"`)
}

func TestSeedOrderCoversEveryTable(t *testing.T) {
	assert.ElementsMatch(t, dataset.Tables(), seedOrder)
	assert.Equal(t, `TRUNCATE "products", "employees", "customers", "users", "sales" CASCADE`, truncateSQL())
}

func TestToValue(t *testing.T) {
	var num pgtype.Numeric
	require.NoError(t, num.Scan("1636.05"))

	tests := []struct {
		name string
		in   any
		want dataset.Value
	}{
		{"nil", nil, dataset.Text("")},
		{"int4", int32(7), dataset.Int(7)},
		{"int8", int64(11), dataset.Int(11)},
		{"float8", 2.5, dataset.Number(2.5)},
		{"numeric", num, dataset.Number(1636.05)},
		{"bigint", big.NewInt(42), dataset.Number(42)},
		{"date", time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC), dataset.Text("2024-11-02")},
		{"text", "Centro", dataset.Text("Centro")},
		{"bool", true, dataset.Text("true")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toValue(tt.in))
		})
	}
}

func TestStripComments(t *testing.T) {
	assert.Equal(t, "SELECT *\nFROM employees\nLIMIT 5", stripComments("SELECT *\nFROM employees\nLIMIT 5; -- Fallback"))
	assert.Equal(t, "SELECT 1", stripComments("-- header\n\nSELECT 1;\n"))
	assert.Equal(t, "", stripComments("-- Filesystem Operation Triggered"))
	assert.Equal(t, "SELECT * FROM products WHERE product_name = 'a--b'",
		stripComments("SELECT * FROM products WHERE product_name = 'a--b';"))
	assert.Equal(t, "SELECT 'it''s -- fine'", stripComments("SELECT 'it''s -- fine' -- note"))
}

func TestFormatRowCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1k"},
		{999499, "999k"},
		{999500, "1M"},
		{12_400_000, "12M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRowCount(tt.n))
	}
}

func TestPoolConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Database = "paibi"

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(maxConns), pc.MaxConns)
	assert.Equal(t, connectTimeout, pc.ConnConfig.ConnectTimeout)
	assert.Equal(t, "paibi", pc.ConnConfig.Database)
	assert.Equal(t, applicationName, pc.ConnConfig.RuntimeParams["application_name"])
}

func TestCloseUnconnected(t *testing.T) {
	d := &DB{}
	d.Close()
	d.Close()
}
