// synth_integrations.go builds the answers that pretend to consult an
// outside service: maps, forex, payments, markets, search, filesystem
// and schema design.
package ai

import (
	"math"
	"path"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/DachengChen/paiBI/dataset"
	"github.com/DachengChen/paiBI/intent"
)

const (
	paymentNotApplicable = "N/A (Cash)"
	paymentSucceeded     = "succeeded"
	paymentPending       = "pending"
	pendingThreshold     = 0.2 // draws at or below are pending
)

// regionTotal is one region's summed sales.
type regionTotal struct {
	Region string
	Total  decimal.Decimal
}

// salesByRegion sums sale totals per customer region, in order of first
// appearance. Sales whose customer does not resolve are skipped.
func salesByRegion(sales []dataset.Sale) []regionTotal {
	var out []regionTotal
	idx := map[string]int{}
	for _, s := range sales {
		c, ok := dataset.CustomerByID(s.CustomerID)
		if !ok || c.Region == "" {
			continue
		}
		i, seen := idx[c.Region]
		if !seen {
			i = len(out)
			idx[c.Region] = i
			out = append(out, regionTotal{Region: c.Region, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(decimal.NewFromFloat(s.Total))
	}
	return out
}

func (s *Synthesizer) geo(lang Language) *QueryResult {
	regions := salesByRegion(dataset.Sales())
	plan := SelectPlan{
		From:    "sales s",
		Joins:   []PlanJoin{{Table: "customers c", On: "s.customer_id = c.customer_id"}},
		Select:  []string{"c.region", "SUM(s.total) AS total_sales"},
		GroupBy: []string{"c.region"},
	}
	r := &QueryResult{
		Columns:     []string{"region", "latitude", "longitude", "total_sales"},
		SQL:         plan.SQL(),
		Explanation: geoExplanation.in(lang),
		Analysis:    geoAnalysisEmpty.in(lang),
		External: &ExternalContext{
			Source:  "Google Maps / OpenStreetMap MCP",
			Content: geoContext.in(lang),
		},
	}

	top := -1
	for i, rt := range regions {
		if top < 0 || rt.Total.GreaterThan(regions[top].Total) {
			top = i
		}
	}

	var lats, lons, sizes, values []float64
	var text []string
	for _, rt := range regions {
		p := s.consts.Place(rt.Region)
		v := money(rt.Total)
		scaled := s.consts.MaxMarker
		if !regions[top].Total.IsZero() {
			scaled = rt.Total.Div(regions[top].Total).InexactFloat64() * s.consts.MaxMarker
		}
		lats = append(lats, p.Lat)
		lons = append(lons, p.Lon)
		values = append(values, v)
		sizes = append(sizes, math.Max(s.consts.MinMarker, scaled))
		text = append(text, geoLabel.f(lang, p.Name, v))
		r.Rows = append(r.Rows, dataset.Row{
			"region":      dataset.Text(rt.Region),
			"latitude":    dataset.Number(p.Lat),
			"longitude":   dataset.Number(p.Lon),
			"total_sales": dataset.Number(v),
		})
	}
	if top >= 0 {
		r.Analysis = geoAnalysis.f(lang, regions[top].Region, money(regions[top].Total))
	}

	r.Chart = &ChartConfig{
		Data: []Trace{{
			Type: "scattermapbox",
			Lat:  lats,
			Lon:  lons,
			Text: text,
			Mode: "markers",
			Marker: &Marker{
				Size:       sizes,
				Color:      Scaled(values),
				Colorscale: "Portland",
				Opacity:    0.8,
				ShowScale:  true,
			},
		}},
		Layout: Layout{
			Title:     geoTitle.in(lang),
			Autosize:  true,
			HoverMode: "closest",
			Mapbox: &Mapbox{
				Style:  "open-street-map",
				Center: LatLon{Lat: s.consts.MapCenter.Lat, Lon: s.consts.MapCenter.Lon},
				Zoom:   s.consts.MapZoom,
			},
			Height:  400,
			Margin:  Margin{T: 40},
			PaperBG: transparent,
		},
	}
	return r
}

func (s *Synthesizer) currency(lang Language) *QueryResult {
	total := sumTotals(dataset.Sales())
	plan := SelectPlan{
		From:    dataset.TableSales,
		Select:  []string{"SUM(total) AS total_revenue"},
		Comment: "Converted via Forex API",
	}

	rows := []dataset.Row{{
		"currency":    dataset.Text(currencyBase.in(lang)),
		"rate":        dataset.Number(1),
		"total_value": dataset.Number(money(total)),
	}}
	x := []string{"USD"}
	y := []float64{money(total)}
	colors := []string{s.consts.BaseColor}

	eur, mxn := 0.0, 0.0
	for _, rate := range s.consts.Rates {
		converted := money(total.Mul(decimal.NewFromFloat(rate.Value)))
		rows = append(rows, dataset.Row{
			"currency":    dataset.Text(rate.Label),
			"rate":        dataset.Number(rate.Value),
			"total_value": dataset.Number(converted),
		})
		x = append(x, rate.Code)
		y = append(y, converted)
		colors = append(colors, rate.Color)
		switch rate.Code {
		case "EUR":
			eur = rate.Value
		case "MXN":
			mxn = rate.Value
		}
	}

	return &QueryResult{
		Columns:     []string{"currency", "rate", "total_value"},
		Rows:        rows,
		SQL:         plan.SQL(),
		Explanation: currencyExplanation.in(lang),
		Analysis:    currencyAnalysis.f(lang, money(total), mxn),
		Chart:       newChart(currencyTitle.in(lang), x, y, "bar", Palette(colors...)),
		External: &ExternalContext{
			Source:  "Open Exchange Rates API (MCP)",
			Content: currencyContext.f(lang, eur),
		},
	}
}

// payment attaches a simulated settlement status and risk score to the
// most recent sales. Cash sales never reach the processor.
func (s *Synthesizer) payment(lang Language) *QueryResult {
	sales := head(dataset.Sales(), recentSalesSampled)
	plan := SelectPlan{
		From:   dataset.TableSales,
		Select: []string{"sale_id", "total", "payment_method"},
		Limit:  recentSalesSampled,
	}

	pending := 0
	rows := make([]dataset.Row, 0, len(sales))
	for _, sale := range sales {
		status := paymentNotApplicable
		if sale.PaymentMethod != dataset.PaymentCash {
			status = paymentPending
			if s.rnd.Float64() > pendingThreshold {
				status = paymentSucceeded
			}
		}
		if status == paymentPending {
			pending++
		}
		rows = append(rows, dataset.Row{
			"sale_id":       dataset.Int(sale.ID),
			"amount":        dataset.Number(sale.Total),
			"stripe_status": dataset.Text(status),
			"risk_score":    dataset.Int(s.rnd.IntN(100)),
		})
	}

	return &QueryResult{
		Columns:     []string{"sale_id", "amount", "stripe_status", "risk_score"},
		Rows:        rows,
		SQL:         plan.SQL(),
		Explanation: paymentExplanation.in(lang),
		Analysis:    paymentAnalysis.f(lang, pending),
		External: &ExternalContext{
			Source:  "Stripe API (MCP)",
			Content: paymentContext.in(lang),
		},
	}
}

func (s *Synthesizer) correlation(lang Language) *QueryResult {
	c := s.consts
	plan := SelectPlan{From: dataset.TableSales, Select: []string{"date", "SUM(total)"}, GroupBy: []string{"date"}}

	n := min(c.CorrelationPoints, len(c.SalesTrend), len(c.AssetTrend))
	rows := make([]dataset.Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, dataset.Row{
			"period":     dataset.Text("Q" + strconv.Itoa(i+1)),
			"your_sales": dataset.Number(c.SalesTrend[i]),
			"btc_price":  dataset.Number(c.AssetTrend[i]),
		})
	}

	return &QueryResult{
		Columns:     []string{"period", "your_sales", "btc_price"},
		Rows:        rows,
		SQL:         plan.SQL(),
		Explanation: correlationExplanation.in(lang),
		Analysis:    correlationAnalysis.f(lang, c.Correlation),
		Chart: &ChartConfig{
			Data: []Trace{
				{Type: "bar", Name: correlationSeries.in(lang), X: c.Months, Y: c.SalesTrend, Marker: &Marker{Color: Color(c.BaseColor)}},
				{Type: "scatter", Mode: "lines", Name: "Bitcoin (BTC)", X: c.Months, Y: c.AssetTrend, YAxis: "y2", Line: &Line{Color: colorToys}},
			},
			Layout: Layout{
				Title:      correlationTitle.in(lang),
				YAxis:      &Axis{Title: correlationAxis.in(lang)},
				YAxis2:     &Axis{Title: correlationAxis2.in(lang), Overlaying: "y", Side: "right"},
				Height:     300,
				Margin:     Margin{L: 50, R: 50, T: 40, B: 40},
				ShowLegend: true,
				PaperBG:    transparent,
				PlotBG:     transparent,
			},
		},
		External: &ExternalContext{
			Source:  "CoinGecko / Alpha Vantage MCP",
			Content: correlationCtx.in(lang),
		},
	}
}

func (s *Synthesizer) trend(lang Language) *QueryResult {
	sales := head(dataset.Sales(), recentSalesSampled)
	plan := SelectPlan{
		From:    dataset.TableSales,
		Select:  []string{"date", "SUM(total) AS total_sales"},
		GroupBy: []string{"date"},
		Sort:    SortBy("date", intent.Descending),
		Limit:   recentSalesSampled,
	}

	rows := make([]dataset.Row, 0, len(sales))
	x := make([]string, 0, len(sales))
	y := make([]float64, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, dataset.Row{
			"date":        dataset.Text(sale.Date),
			"total_sales": dataset.Number(sale.Total),
		})
		x = append(x, sale.Date)
		y = append(y, sale.Total)
	}

	return &QueryResult{
		Columns:     []string{"date", "total_sales"},
		Rows:        rows,
		SQL:         plan.SQL(),
		Explanation: trendExplanation.in(lang),
		Analysis:    trendAnalysis.f(lang, s.consts.IndustryGrowth, s.consts.Outperformance),
		Chart:       newChart(trendTitle.in(lang), x, y, "line", Color(colorPremium)),
		External: &ExternalContext{
			Source:  "Brave Search API",
			Content: trendContext.in(lang),
			URL:     s.consts.TrendURL,
		},
	}
}

// export reports a fictitious saved file. Nothing is written.
func (s *Synthesizer) export(lang Language) *QueryResult {
	c := s.consts
	return &QueryResult{
		Columns: []string{"status", "file_path", "size"},
		Rows: []dataset.Row{{
			"status":    dataset.Text("Success"),
			"file_path": dataset.Text(path.Join(c.ExportPath, c.ExportFile)),
			"size":      dataset.Text(c.ExportSize),
		}},
		SQL:         "-- Filesystem Operation Triggered",
		Explanation: exportExplanation.in(lang),
		Analysis:    exportAnalysis.f(lang, c.ExportPath),
		External: &ExternalContext{
			Source:  "Local Filesystem",
			Content: exportContext.in(lang),
		},
	}
}

// salesByCategory sums sale totals per product category, in order of
// first appearance. Sales whose product does not resolve are skipped.
func salesByCategory(sales []dataset.Sale) ([]string, []decimal.Decimal) {
	var cats []string
	var totals []decimal.Decimal
	idx := map[string]int{}
	for _, s := range sales {
		p, ok := dataset.ProductByID(s.ProductID)
		if !ok {
			continue
		}
		i, seen := idx[p.Category]
		if !seen {
			i = len(cats)
			idx[p.Category] = i
			cats = append(cats, p.Category)
			totals = append(totals, decimal.Zero)
		}
		totals[i] = totals[i].Add(decimal.NewFromFloat(s.Total))
	}
	return cats, totals
}

func (s *Synthesizer) schema(lang Language) *QueryResult {
	cats, totals := salesByCategory(dataset.Sales())
	y := make([]float64, len(totals))
	for i, t := range totals {
		y[i] = money(t)
	}
	return &QueryResult{
		SQL:         "-- SQL Schema Generation Script\n\n" + dataset.DDL(),
		Explanation: schemaExplanation.in(lang),
		Analysis:    schemaAnalysis.in(lang),
		Chart: newChart(schemaTitle.in(lang), cats, y, "bar",
			Palette(s.consts.BaseColor, colorPremium, colorUp, colorToys)),
	}
}
