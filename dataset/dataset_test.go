package dataset

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

func TestSaleTotalsMatchSubtotalMinusDiscount(t *testing.T) {
	for _, s := range Sales() {
		sub := decimal.NewFromFloat(s.Subtotal)
		disc := decimal.NewFromFloat(s.DiscountAmount)
		assert.True(t, sub.Sub(disc).Equal(decimal.NewFromFloat(s.Total)),
			"sale %d: %v - %v != %v", s.ID, s.Subtotal, s.DiscountAmount, s.Total)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	es := Employees()
	es[0].Salary = 0
	assert.Equal(t, 1299.12, Employees()[0].Salary)
}

func TestLookupKnownTables(t *testing.T) {
	want := map[string]int{
		TableProducts:  9,
		TableEmployees: 6,
		TableCustomers: 6,
		TableSales:     5,
		TableUsers:     5,
	}
	for _, name := range Tables() {
		tbl, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want[name], tbl.Len(), name)
		for _, r := range tbl.Rows {
			assert.Len(t, r, len(tbl.Columns), "%s row keys must match columns", name)
			for _, c := range tbl.Columns {
				assert.Contains(t, r, c)
			}
		}
	}
}

func TestLookupUnknownTableIsEmpty(t *testing.T) {
	tbl, ok := Lookup("bogus")
	assert.False(t, ok)
	assert.NotNil(t, tbl.Rows)
	assert.Empty(t, tbl.Rows)

	b, err := json.Marshal(Get("bogus").Rows)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestFilter(t *testing.T) {
	tbl := Get(TableCustomers)

	centro := tbl.Filter("centro")
	assert.Equal(t, 3, centro.Len())

	// numeric cells are searchable too
	assert.Equal(t, 1, tbl.Filter("436").Len())

	assert.Equal(t, tbl.Len(), tbl.Filter("  ").Len())
	assert.Equal(t, 0, tbl.Filter("nowhere").Len())
}

func TestUnresolvedSales(t *testing.T) {
	got := UnresolvedSales()
	require.Len(t, got, 5, "every sample sale has a dangling employee id")

	var unresolvedProducts []int
	for _, u := range got {
		assert.NotZero(t, u.EmployeeID)
		assert.Zero(t, u.CustomerID, "customers always resolve")
		if u.ProductID != 0 {
			unresolvedProducts = append(unresolvedProducts, u.ProductID)
		}
	}
	assert.Equal(t, []int{157, 47, 68, 76}, unresolvedProducts)
}

func TestValueJSON(t *testing.T) {
	row := Row{"name": Text("Ana"), "salary": Number(3223.8), "id": Int(2)}
	b, err := json.Marshal(row)
	require.NoError(t, err)

	assert.Equal(t, gjson.String, gjson.GetBytes(b, "name").Type)
	assert.Equal(t, gjson.Number, gjson.GetBytes(b, "salary").Type)
	assert.Equal(t, 3223.8, gjson.GetBytes(b, "salary").Float())
	assert.Equal(t, int64(2), gjson.GetBytes(b, "id").Int())

	var back Row
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back["salary"].IsNumber())
	assert.False(t, back["name"].IsNumber())
}

func TestValueYAML(t *testing.T) {
	b, err := yaml.Marshal(Row{"total": Number(350.23), "date": Text("2024-11-02")})
	require.NoError(t, err)
	assert.Contains(t, string(b), "total: 350.23")
	assert.Contains(t, string(b), "2024-11-02")
}

func TestRowValuesFillsMissingColumns(t *testing.T) {
	vals := Row{"a": Int(1)}.Values([]string{"a", "b"})
	require.Len(t, vals, 2)
	assert.Equal(t, "1", vals[0].String())
	assert.Equal(t, "", vals[1].String())
}

func TestDDL(t *testing.T) {
	ddl := DDL()
	for _, name := range Tables() {
		assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+name+" (")
	}
	assert.Contains(t, ddl, "ON sales (customer_id)")
	assert.Contains(t, ddl, "ON sales (date)")
	assert.Len(t, DDLStatements(), 7)
}
