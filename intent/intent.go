// Package intent classifies a free-text business question into a topic
// and an ordering directive.
//
// Design decisions:
//   - Classification is keyword substring matching over the lowercased
//     prompt, not a model. Keyword sets mix English and Spanish, so the
//     prompt language plays no part.
//   - Topics are checked through an ordered rule table; the first rule
//     that matches wins and later rules are never consulted.
//   - The ordering directive is derived independently of the topic.
//     When both descending and ascending cues appear, descending wins.
package intent

import "strings"

// Topic is the closed set of intents the assistant can answer.
type Topic int

const (
	Fallback Topic = iota
	Geo
	Currency
	Payment
	Correlation
	Trend
	Export
	Schema
	Employee
	Product
	ProductToy
	Sale
	SaleTotal
	Customer
)

var topicNames = map[Topic]string{
	Fallback:    "fallback",
	Geo:         "geo",
	Currency:    "currency",
	Payment:     "payment",
	Correlation: "correlation",
	Trend:       "trend",
	Export:      "export",
	Schema:      "schema",
	Employee:    "employee",
	Product:     "product",
	ProductToy:  "product_toy",
	Sale:        "sale",
	SaleTotal:   "sale_total",
	Customer:    "customer",
}

func (t Topic) String() string {
	if n, ok := topicNames[t]; ok {
		return n
	}
	return "unknown"
}

// MarshalText lets topics appear by name in JSON and YAML output.
func (t Topic) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Topics returns every topic, fallback first.
func Topics() []Topic {
	return []Topic{Fallback, Geo, Currency, Payment, Correlation, Trend, Export, Schema,
		Employee, Product, ProductToy, Sale, SaleTotal, Customer}
}

// Order is the sort directive requested by the prompt.
type Order int

const (
	Unordered Order = iota
	Descending
	Ascending
)

func (o Order) String() string {
	switch o {
	case Descending:
		return "desc"
	case Ascending:
		return "asc"
	default:
		return "none"
	}
}

// Ranked reports whether the directive asks for a sort.
func (o Order) Ranked() bool { return o != Unordered }

// Classification is the result of Classify.
type Classification struct {
	Topic Topic
	Order Order
}

var (
	descendingCues = []string{"desc", "top", "high", "most", "mayor"}
	ascendingCues  = []string{"asc", "bottom", "low", "least", "menor", "cheap"}
)

type rule struct {
	topic Topic
	match func(p string, o Order) bool
}

// rules is evaluated top to bottom; sub-topics precede their parent.
var rules = []rule{
	{Geo, anyOf("map", "region", "ubicacion", "donde", "location", "madrid")},
	{Currency, anyOf("euro", "mxn", "currency", "divisa", "convert")},
	{Payment, anyOf("stripe", "payment", "pago", "banco")},
	{Correlation, anyOf("bitcoin", "crypto", "stock", "aapl")},
	{Trend, anyOf("trend", "tendencia", "market", "mercado")},
	{Export, anyOf("export", "guardar", "save", "pdf", "csv")},
	{Schema, func(p string, _ Order) bool {
		return containsAny(p, "esquema", "schema") && containsAny(p, "postgres", "base de datos")
	}},
	{Employee, anyOf("employee", "staff", "salary", "empleado")},
	{ProductToy, func(p string, _ Order) bool {
		return isProduct(p) && containsAny(p, "toy", "juguetes")
	}},
	{Product, func(p string, _ Order) bool { return isProduct(p) }},
	{SaleTotal, func(p string, o Order) bool {
		return isSale(p) && strings.Contains(p, "total") && !o.Ranked()
	}},
	{Sale, func(p string, _ Order) bool { return isSale(p) }},
	{Customer, anyOf("customer", "client", "cliente")},
}

func isProduct(p string) bool { return containsAny(p, "product", "item", "price", "producto") }

func isSale(p string) bool {
	return containsAny(p, "sale", "revenue", "sold", "transaction", "venta")
}

func anyOf(keywords ...string) func(string, Order) bool {
	return func(p string, _ Order) bool { return containsAny(p, keywords...) }
}

func containsAny(p string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(p, kw) {
			return true
		}
	}
	return false
}

// OrderOf derives the ordering directive from a prompt.
func OrderOf(prompt string) Order {
	p := strings.ToLower(prompt)
	switch {
	case containsAny(p, descendingCues...):
		return Descending
	case containsAny(p, ascendingCues...):
		return Ascending
	default:
		return Unordered
	}
}

// Classify maps a prompt to exactly one topic and one ordering directive.
func Classify(prompt string) Classification {
	p := strings.ToLower(prompt)
	o := OrderOf(p)
	for _, r := range rules {
		if r.match(p, o) {
			return Classification{Topic: r.topic, Order: o}
		}
	}
	return Classification{Topic: Fallback, Order: o}
}
