package ai

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/DachengChen/paiBI/dataset"
	"github.com/DachengChen/paiBI/intent"
)

func synth(prompt string, lang Language) *QueryResult {
	return NewSynthesizer(WithRand(rand.New(rand.NewPCG(1, 2)))).
		Synthesize(intent.Classify(prompt), prompt, lang)
}

var samplePrompts = []string{
	"Show me a map of sales by region (Google Maps MCP)",
	"Convert total revenue to EUR and MXN (Forex MCP)",
	"Check Stripe status for recent sales",
	"Compare my sales trend with Bitcoin price",
	"Compare my sales with global market trends (Brave Search)",
	"Export current sales report to CSV on local disk",
	"Diseña un esquema de base de datos optimizado en PostgreSQL y graficalo",
	"Show me the top 5 employees by salary (Descending)",
	"Show me the bottom 5 employees by salary (Ascending)",
	"list employees",
	"Show me all products in Juguetes category with prices",
	"List the top 5 most expensive products",
	"cheapest products",
	"show products",
	"Calculate total revenue statistics and distribution",
	"Show top 5 sales transactions by total value",
	"lowest sales",
	"recent sales",
	"show customers",
	"tell me something",
}

func TestEveryRowMatchesColumns(t *testing.T) {
	for _, p := range samplePrompts {
		for _, lang := range []Language{English, Spanish} {
			r := synth(p, lang)
			require.NotNil(t, r.Columns, p)
			require.NotNil(t, r.Rows, p)
			for _, row := range r.Rows {
				assert.Len(t, row, len(r.Columns), "%q: row keys vs columns", p)
				for _, c := range r.Columns {
					assert.Contains(t, row, c, p)
				}
			}
			if intent.Classify(p).Order.Ranked() {
				assert.LessOrEqual(t, len(r.Rows), 5, p)
			}
		}
	}
}

func TestTopEmployeesBySalary(t *testing.T) {
	r := synth("Show me the top 5 employees by salary (Descending)", English)

	assert.Equal(t, intent.Employee, r.Topic)
	assert.Equal(t, []string{"first_name", "last_name", "position", "salary"}, r.Columns)
	require.Len(t, r.Rows, 5)

	var names []string
	for _, row := range r.Rows {
		names = append(names, row["first_name"].Text)
	}
	assert.Equal(t, []string{"Ana", "Raúl", "Raúl", "Daniela", "Fernando"}, names)
	assert.Equal(t, "Suárez", r.Rows[0]["last_name"].Text)

	assert.Contains(t, r.Analysis, "Ana")
	assert.Contains(t, r.Analysis, "1.5x")
	assert.Contains(t, r.SQL, "ORDER BY salary DESC")
	assert.Contains(t, r.SQL, "LIMIT 5")
}

func TestRankedOrdering(t *testing.T) {
	tests := []struct {
		prompt string
		field  string
		order  intent.Order
	}{
		{"top employees by salary", "salary", intent.Descending},
		{"bottom employees by salary", "salary", intent.Ascending},
		{"most expensive products", "unit_price", intent.Descending},
		{"cheapest products", "unit_price", intent.Ascending},
		{"top toy products", "unit_price", intent.Descending},
		{"top sales", "total", intent.Descending},
		{"lowest sales", "total", intent.Ascending},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			r := synth(tt.prompt, English)
			require.NotEmpty(t, r.Rows)
			for i := 1; i < len(r.Rows); i++ {
				prev, cur := r.Rows[i-1][tt.field].Num, r.Rows[i][tt.field].Num
				if tt.order == intent.Descending {
					assert.GreaterOrEqual(t, prev, cur)
				} else {
					assert.LessOrEqual(t, prev, cur)
				}
			}
		})
	}
}

func TestUnorderedListLimits(t *testing.T) {
	assert.Len(t, synth("list employees", English).Rows, 5)
	assert.Len(t, synth("show products", English).Rows, 9, "all nine products fit the default list")
	assert.Len(t, synth("recent sales", English).Rows, 5)
	assert.Contains(t, synth("show products", English).SQL, "LIMIT 10")
}

func TestSaleTotal(t *testing.T) {
	r := synth("Calculate total revenue statistics and distribution", English)
	assert.Equal(t, intent.SaleTotal, r.Topic)
	require.Len(t, r.Rows, 1)

	want := decimal.Zero
	for _, s := range dataset.Sales() {
		want = want.Add(decimal.NewFromFloat(s.Total))
	}
	assert.Equal(t, want.InexactFloat64(), r.Rows[0]["total_revenue"].Num)
	assert.Equal(t, 11754.26, r.Rows[0]["total_revenue"].Num)
	assert.Equal(t, float64(len(dataset.Sales())), r.Rows[0]["count"].Num)

	require.NotNil(t, r.Chart)
	require.Len(t, r.Chart.Data, 1)
	pie := r.Chart.Data[0]
	assert.Equal(t, "pie", pie.Type)
	assert.Equal(t, []string{"Revenue", "Est. Cost", "Profit"}, pie.Labels)
	require.Len(t, pie.Values, 3)
	assert.Equal(t, 11754.26, pie.Values[0])
	assert.Nil(t, pie.X)
}

func TestGeoSumsResolvedRegions(t *testing.T) {
	r := synth("Show me a map of sales by region", English)
	assert.Equal(t, intent.Geo, r.Topic)

	want := decimal.Zero
	for _, s := range dataset.Sales() {
		if _, ok := dataset.CustomerByID(s.CustomerID); ok {
			want = want.Add(decimal.NewFromFloat(s.Total))
		}
	}
	got := decimal.Zero
	var regions []string
	for _, row := range r.Rows {
		got = got.Add(decimal.NewFromFloat(row["total_sales"].Num))
		regions = append(regions, row["region"].Text)
	}
	assert.True(t, want.Equal(got), "want %s got %s", want, got)
	assert.Equal(t, []string{"Centro", "Oeste", "Sur"}, regions)
	assert.Equal(t, 10957.31, r.Rows[0]["total_sales"].Num)

	require.NotNil(t, r.Chart)
	m := r.Chart.Data[0].Marker
	assert.Equal(t, []float64{50, 20, 20}, m.Size)
	assert.Equal(t, 400, r.Chart.Layout.Height)
	assert.Contains(t, r.Analysis, "Centro")
	require.NotNil(t, r.External)
	assert.Equal(t, "Google Maps / OpenStreetMap MCP", r.External.Source)
}

func TestUnknownRegionFallsBackToMapCenter(t *testing.T) {
	c := DefaultIllustrative()
	p := c.Place("Atlantis")
	assert.Equal(t, "Atlantis", p.Name)
	assert.Equal(t, c.MapCenter.Lat, p.Lat)
	assert.Equal(t, c.MapCenter.Lon, p.Lon)
}

func TestCurrency(t *testing.T) {
	r := synth("Convert total revenue to EUR and MXN", English)
	require.Len(t, r.Rows, 4)
	assert.Equal(t, "USD (Base)", r.Rows[0]["currency"].Text)
	assert.Equal(t, 1.0, r.Rows[0]["rate"].Num)
	assert.Equal(t, 11754.26, r.Rows[0]["total_value"].Num)
	assert.Equal(t, "EUR (€)", r.Rows[1]["currency"].Text)
	assert.Equal(t, 10813.92, r.Rows[1]["total_value"].Num)
	assert.Contains(t, r.External.Content, "0.92")
	assert.Contains(t, r.Analysis, "17.05")
}

func TestCurrencyRatesOverride(t *testing.T) {
	c := DefaultIllustrative().WithRates(map[string]float64{"EUR": 1, "XXX": 3, "GBP": -1})
	r := NewSynthesizer(WithIllustrative(c)).Synthesize(intent.Classify("currency"), "currency", English)
	assert.Equal(t, r.Rows[0]["total_value"].Num, r.Rows[1]["total_value"].Num)
	assert.Equal(t, 0.79, r.Rows[3]["rate"].Num)
	assert.Equal(t, 0.92, DefaultIllustrative().Rates[0].Value, "defaults are not mutated")
}

func TestPaymentIsDeterministicWithSeededSource(t *testing.T) {
	a := synth("Check Stripe status", English)
	b := synth("Check Stripe status", English)
	assert.Empty(t, cmp.Diff(a, b))

	require.Len(t, a.Rows, 5)
	pending := 0
	for i, row := range a.Rows {
		status := row["stripe_status"].Text
		if dataset.Sales()[i].PaymentMethod == dataset.PaymentCash {
			assert.Equal(t, "N/A (Cash)", status)
		} else {
			assert.Contains(t, []string{"succeeded", "pending"}, status)
		}
		if status == "pending" {
			pending++
		}
		score := row["risk_score"].Num
		assert.GreaterOrEqual(t, score, 0.0)
		assert.Less(t, score, 100.0)
	}
	assert.Contains(t, a.Analysis, fmt.Sprintf("**Pending Transactions**: %d ", pending))
	assert.Nil(t, a.Chart)
}

type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return 42 }

func TestPaymentStatusSplit(t *testing.T) {
	prompt := "payment status"
	low := NewSynthesizer(WithRand(fixedRand{0.1})).Synthesize(intent.Classify(prompt), prompt, English)
	high := NewSynthesizer(WithRand(fixedRand{0.9})).Synthesize(intent.Classify(prompt), prompt, English)

	// sales 3 (Paypal) and 5 (Tarjeta) are not cash
	assert.Equal(t, "pending", low.Rows[2]["stripe_status"].Text)
	assert.Equal(t, "succeeded", high.Rows[4]["stripe_status"].Text)
	assert.Contains(t, low.Analysis, "**Pending Transactions**: 2")
	assert.Equal(t, 42.0, low.Rows[0]["risk_score"].Num)
}

func TestIdempotentOutsidePayment(t *testing.T) {
	s := NewSynthesizer()
	for _, p := range samplePrompts {
		cls := intent.Classify(p)
		if cls.Topic == intent.Payment {
			continue
		}
		a := s.Synthesize(cls, p, English)
		b := s.Synthesize(cls, p, English)
		assert.Empty(t, cmp.Diff(a, b), p)
	}
}

func TestLocalization(t *testing.T) {
	for _, p := range samplePrompts {
		cls := intent.Classify(p)
		if cls.Topic == intent.Payment {
			continue
		}
		en := synth(p, English)
		es := synth(p, Spanish)
		assert.Equal(t, en.Columns, es.Columns, p)
		assert.Empty(t, cmp.Diff(en.Rows, es.Rows), p)
		assert.NotEqual(t, en.Explanation, es.Explanation, p)
		assert.NotEqual(t, en.Analysis, es.Analysis, p)
	}
}

func TestToys(t *testing.T) {
	r := synth("Show me all products in Juguetes category with prices", English)
	require.Len(t, r.Rows, 3)
	for _, row := range r.Rows {
		assert.Equal(t, "Juguetes", row["category"].Text)
	}
	assert.Contains(t, r.Analysis, "3 items")
	assert.Contains(t, r.Analysis, "$385.58")
	assert.Contains(t, r.SQL, "WHERE category = 'Juguetes'")
}

func TestCustomers(t *testing.T) {
	r := synth("show customers", English)
	assert.Len(t, r.Rows, 6)
	assert.Equal(t, dataset.CustomerColumns, r.Columns)
	assert.Contains(t, r.Analysis, "4 distinct regions")
	assert.Nil(t, r.Chart)
}

func TestFallback(t *testing.T) {
	r := synth("tell me something", Spanish)
	assert.Equal(t, intent.Fallback, r.Topic)
	assert.Len(t, r.Rows, 5)
	assert.Equal(t, dataset.EmployeeColumns, r.Columns)
	assert.Contains(t, r.SQL, "-- Fallback")
	assert.Contains(t, r.Explanation, "No estaba seguro")
}

func TestSchemaDesign(t *testing.T) {
	r := synth("Diseña un esquema de base de datos optimizado en PostgreSQL", English)
	assert.Equal(t, intent.Schema, r.Topic)
	assert.Empty(t, r.Columns)
	assert.Empty(t, r.Rows)
	assert.Contains(t, r.SQL, "CREATE TABLE IF NOT EXISTS sales")

	// only sale 1 resolves to a known product
	require.NotNil(t, r.Chart)
	assert.Equal(t, []string{"Juguetes"}, r.Chart.Data[0].X)
	assert.Equal(t, []float64{1636.05}, r.Chart.Data[0].Y)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "[]", gjson.GetBytes(b, "rows").Raw)
	assert.Equal(t, "[]", gjson.GetBytes(b, "columns").Raw)
}

func TestExportAndTrendAndCorrelation(t *testing.T) {
	ex := synth("export to csv", English)
	require.Len(t, ex.Rows, 1)
	assert.Equal(t, "/users/docs/reports/sales_report_2025.csv", ex.Rows[0]["file_path"].Text)
	assert.Equal(t, "Local Filesystem", ex.External.Source)

	tr := synth("market trend", English)
	assert.Len(t, tr.Rows, 5)
	assert.Equal(t, "line", tr.Chart.Data[0].Type)
	assert.Equal(t, "https://search.brave.com/search?q=retail+market+trends+2025", tr.External.URL)
	assert.Contains(t, tr.Analysis, "4.5%")

	co := synth("bitcoin", English)
	require.Len(t, co.Rows, 3)
	assert.Equal(t, "Q3", co.Rows[2]["period"].Text)
	require.Len(t, co.Chart.Data, 2)
	assert.Equal(t, "y2", co.Chart.Data[1].YAxis)
	assert.Equal(t, "y", co.Chart.Layout.YAxis2.Overlaying)
	assert.Contains(t, co.Analysis, "+0.65")
}

func TestResultJSON(t *testing.T) {
	b, err := json.Marshal(synth("top employees", English))
	require.NoError(t, err)

	assert.Equal(t, "employee", gjson.GetBytes(b, "topic").String())
	assert.Equal(t, "#10b981", gjson.GetBytes(b, "chartConfig.data.0.marker.color").String())
	assert.Equal(t, int64(300), gjson.GetBytes(b, "chartConfig.layout.height").Int())
	assert.False(t, gjson.GetBytes(b, "externalContext").Exists())
	assert.Equal(t, gjson.Number, gjson.GetBytes(b, "rows.0.salary").Type)

	geo, err := json.Marshal(synth("map", English))
	require.NoError(t, err)
	assert.True(t, gjson.GetBytes(geo, "chartConfig.data.0.marker.color").IsArray())
	assert.Equal(t, "open-street-map", gjson.GetBytes(geo, "chartConfig.layout.mapbox.style").String())

	cur, err := json.Marshal(synth("currency", English))
	require.NoError(t, err)
	assert.Equal(t, int64(4), gjson.GetBytes(cur, "chartConfig.data.0.marker.color.#").Int())
}

func TestSeriesByTraceType(t *testing.T) {
	labels, values := synth("total revenue", English).Chart.Data[0].Series()
	assert.Len(t, labels, 3)
	assert.Len(t, values, 3)

	labels, values = synth("map", English).Chart.Data[0].Series()
	assert.Len(t, labels, 3)
	assert.Equal(t, 10957.31, values[0])
}
