// synth_tables.go builds the answers that list rows of one table:
// employees, products, sales, customers and the fallback.
package ai

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/DachengChen/paiBI/dataset"
	"github.com/DachengChen/paiBI/intent"
)

const (
	colorUp      = "#10b981"
	colorDown    = "#f43f5e"
	colorPremium = "#8b5cf6"
	colorToys    = "#f59e0b"
)

// rank stable-sorts items by key according to o; unordered input is
// returned as is.
func rank[T any](items []T, o intent.Order, key func(T) float64) []T {
	switch o {
	case intent.Descending:
		slices.SortStableFunc(items, func(a, b T) int { return cmp.Compare(key(b), key(a)) })
	case intent.Ascending:
		slices.SortStableFunc(items, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	}
	return items
}

// project keeps only the given columns of each row.
func project(rows []dataset.Row, cols []string) []dataset.Row {
	out := make([]dataset.Row, len(rows))
	for i, r := range rows {
		p := make(dataset.Row, len(cols))
		for _, c := range cols {
			p[c] = r[c]
		}
		out[i] = p
	}
	return out
}

func listLimit(o intent.Order, unordered int) int {
	if o.Ranked() {
		return rankedLimit
	}
	return unordered
}

func (s *Synthesizer) employees(o intent.Order, lang Language) *QueryResult {
	limit := listLimit(o, employeeListLimit)
	es := head(rank(dataset.Employees(), o, func(e dataset.Employee) float64 { return e.Salary }), limit)
	cols := []string{"first_name", "last_name", "position", "salary"}

	plan := SelectPlan{From: dataset.TableEmployees, Limit: limit}
	r := &QueryResult{Columns: cols, Rows: project(dataset.EmployeeRows(es), cols)}
	title, color := employeeTitle.in(lang), colorDown

	first, last := es[0], es[len(es)-1]
	switch o {
	case intent.Descending:
		plan.Select, plan.Sort = cols, SortBy("salary", o)
		r.Explanation = employeeExplanationDesc.in(lang)
		r.Analysis = employeeAnalysisDesc.f(lang, first.FirstName, first.Salary, first.Salary/last.Salary)
		title, color = employeeTitleDesc.f(lang, len(es)), colorUp
	case intent.Ascending:
		plan.Select, plan.Sort = cols, SortBy("salary", o)
		r.Explanation = employeeExplanationAsc.in(lang)
		r.Analysis = employeeAnalysisAsc.f(lang, first.FirstName, first.Salary, last.Salary/first.Salary)
		title = employeeTitleAsc.f(lang, len(es))
	default:
		r.Explanation = employeeExplanation.in(lang)
		r.Analysis = employeeAnalysis.in(lang)
	}
	r.SQL = plan.SQL()

	x := make([]string, len(es))
	y := make([]float64, len(es))
	for i, e := range es {
		x[i], y[i] = e.FullName(), e.Salary
	}
	r.Chart = newChart(title, x, y, "bar", Color(color))
	return r
}

func (s *Synthesizer) products(o intent.Order, lang Language) *QueryResult {
	limit := listLimit(o, defaultListLimit)
	ps := head(rank(dataset.Products(), o, unitPrice), limit)

	plan := SelectPlan{From: dataset.TableProducts, Sort: SortBy("unit_price", o), Limit: limit}
	r := &QueryResult{Columns: slices.Clone(dataset.ProductColumns), Rows: dataset.ProductRows(ps), SQL: plan.SQL()}
	title, color := productTitle.in(lang), s.consts.BaseColor

	first, last := ps[0], ps[len(ps)-1]
	gap := decimal.NewFromFloat(first.UnitPrice).Sub(decimal.NewFromFloat(last.UnitPrice)).Abs()
	switch o {
	case intent.Descending:
		r.Explanation = productExplanationDesc.in(lang)
		r.Analysis = productAnalysisDesc.f(lang, first.Name, first.UnitPrice, money(gap), last.Name)
		title, color = productTitleDesc.f(lang, len(ps)), colorPremium
	case intent.Ascending:
		r.Explanation = productExplanationAsc.in(lang)
		r.Analysis = productAnalysisAsc.f(lang, first.Name, first.UnitPrice, money(gap), last.Name)
		title = productTitleAsc.f(lang, len(ps))
	default:
		r.Explanation = productExplanation.in(lang)
		r.Analysis = productAnalysis.in(lang)
	}
	r.Chart = productChart(title, ps, color)
	return r
}

func (s *Synthesizer) toys(o intent.Order, lang Language) *QueryResult {
	var toys []dataset.Product
	for _, p := range dataset.Products() {
		if p.Category == dataset.CategoryToys {
			toys = append(toys, p)
		}
	}
	toys = rank(toys, o, unitPrice)

	plan := SelectPlan{
		From:    dataset.TableProducts,
		Filters: []string{"category = '" + dataset.CategoryToys + "'"},
		Sort:    SortBy("unit_price", o),
	}

	sum := decimal.Zero
	for _, p := range toys {
		sum = sum.Add(decimal.NewFromFloat(p.UnitPrice))
	}
	avg := decimal.Zero
	if len(toys) > 0 {
		avg = sum.Div(decimal.NewFromInt(int64(len(toys))))
	}

	return &QueryResult{
		Columns:     slices.Clone(dataset.ProductColumns),
		Rows:        dataset.ProductRows(toys),
		SQL:         plan.SQL(),
		Explanation: toyExplanation.f(lang, dataset.CategoryToys),
		Analysis:    toyAnalysis.f(lang, len(toys), money(avg)),
		Chart:       productChart(toyTitle.in(lang), toys, colorToys),
	}
}

func unitPrice(p dataset.Product) float64 { return p.UnitPrice }

func productChart(title string, ps []dataset.Product, color string) *ChartConfig {
	x := make([]string, len(ps))
	y := make([]float64, len(ps))
	for i, p := range ps {
		x[i], y[i] = p.Name, p.UnitPrice
	}
	return newChart(title, x, y, "bar", Color(color))
}

func (s *Synthesizer) saleTotal(lang Language) *QueryResult {
	sales := dataset.Sales()
	total := sumTotals(sales)
	count := len(sales)
	avg := decimal.Zero
	if count > 0 {
		avg = total.Div(decimal.NewFromInt(int64(count)))
	}

	plan := SelectPlan{
		From:   dataset.TableSales,
		Select: []string{"SUM(total) AS total_revenue", "COUNT(*) AS count"},
	}
	cost := total.Mul(decimal.NewFromFloat(s.consts.CostShare))
	profit := total.Mul(decimal.NewFromFloat(s.consts.ProfitShare))

	return &QueryResult{
		Columns: []string{"total_revenue", "count"},
		Rows: []dataset.Row{{
			"total_revenue": dataset.Number(money(total)),
			"count":         dataset.Int(count),
		}},
		SQL:         plan.SQL(),
		Explanation: saleTotalExplanation.in(lang),
		Analysis:    saleTotalAnalysis.f(lang, money(total), count, money(avg)),
		Chart: newChart(
			saleTotalTitle.in(lang),
			[]string{saleTotalRevenue.in(lang), saleTotalCost.in(lang), saleTotalProfit.in(lang)},
			[]float64{money(total), money(cost), money(profit)},
			"pie",
			Colors{},
		),
	}
}

func (s *Synthesizer) sales(o intent.Order, lang Language) *QueryResult {
	limit := listLimit(o, defaultListLimit)
	ss := head(rank(dataset.Sales(), o, func(s dataset.Sale) float64 { return s.Total }), limit)

	plan := SelectPlan{From: dataset.TableSales, Sort: SortBy("total", o), Limit: limit}
	r := &QueryResult{Columns: slices.Clone(dataset.SaleColumns), Rows: dataset.SaleRows(ss), SQL: plan.SQL()}
	title, color := saleTitle.in(lang), colorDown

	first, last := ss[0], ss[len(ss)-1]
	switch o {
	case intent.Descending:
		r.Explanation = saleExplanationDesc.in(lang)
		r.Analysis = saleAnalysisDesc.f(lang, first.ID, first.Total, first.Total/last.Total)
		title, color = saleTitleDesc.f(lang, len(ss)), colorUp
	case intent.Ascending:
		r.Explanation = saleExplanationAsc.in(lang)
		r.Analysis = saleAnalysisAsc.f(lang, first.ID, first.Total, last.Total/first.Total)
		title = saleTitleAsc.f(lang, len(ss))
	default:
		r.Explanation = saleExplanation.in(lang)
		r.Analysis = saleAnalysis.in(lang)
	}

	x := make([]string, len(ss))
	y := make([]float64, len(ss))
	for i, sale := range ss {
		x[i], y[i] = saleLabel.f(lang, sale.ID, sale.Channel), sale.Total
	}
	r.Chart = newChart(title, x, y, "bar", Color(color))
	return r
}

func (s *Synthesizer) customers(lang Language) *QueryResult {
	cs := dataset.Customers()
	regions := map[string]struct{}{}
	for _, c := range cs {
		regions[c.Region] = struct{}{}
	}
	plan := SelectPlan{From: dataset.TableCustomers}
	return &QueryResult{
		Columns:     slices.Clone(dataset.CustomerColumns),
		Rows:        dataset.CustomerRows(cs),
		SQL:         plan.SQL(),
		Explanation: customerExplanation.in(lang),
		Analysis:    customerAnalysis.f(lang, len(cs), len(regions)),
	}
}

func (s *Synthesizer) fallback(lang Language) *QueryResult {
	es := head(dataset.Employees(), employeeListLimit)
	plan := SelectPlan{From: dataset.TableEmployees, Limit: employeeListLimit, Comment: "Fallback"}
	return &QueryResult{
		Columns:     slices.Clone(dataset.EmployeeColumns),
		Rows:        dataset.EmployeeRows(es),
		SQL:         plan.SQL(),
		Explanation: fallbackExplanation.in(lang),
		Analysis:    fallbackAnalysis.in(lang),
	}
}
