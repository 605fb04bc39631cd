// synthesizer.go turns a classification into an answer.
//
// Every topic has one builder. Builders only read the dataset; the
// payment builder is the single place that draws random numbers, and it
// draws them from an injectable source.
package ai

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/DachengChen/paiBI/dataset"
	"github.com/DachengChen/paiBI/intent"
)

// Row limits.
const (
	rankedLimit        = 5  // any sorted listing
	employeeListLimit  = 5  // unordered employee listing and fallback
	defaultListLimit   = 10 // unordered product and sale listings
	recentSalesSampled = 5  // payment and trend answers
)

// RandSource supplies the payment answer's randomness. *rand.Rand from
// math/rand/v2 satisfies it.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Synthesizer builds answers. It is safe for concurrent use when its
// RandSource is.
type Synthesizer struct {
	rnd    RandSource
	consts Illustrative
}

// SynthOption configures a Synthesizer.
type SynthOption func(*Synthesizer)

// WithRand sets the randomness source for the payment answer.
func WithRand(r RandSource) SynthOption {
	return func(s *Synthesizer) { s.rnd = r }
}

// WithIllustrative replaces the stated constants.
func WithIllustrative(c Illustrative) SynthOption {
	return func(s *Synthesizer) { s.consts = c }
}

// NewSynthesizer returns a Synthesizer with default constants and the
// process-wide random source.
func NewSynthesizer(opts ...SynthOption) *Synthesizer {
	s := &Synthesizer{rnd: globalRand{}, consts: DefaultIllustrative()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Synthesize builds the answer for a classified prompt. It always
// returns a complete result.
func (s *Synthesizer) Synthesize(c intent.Classification, prompt string, lang Language) *QueryResult {
	var r *QueryResult
	switch c.Topic {
	case intent.Geo:
		r = s.geo(lang)
	case intent.Currency:
		r = s.currency(lang)
	case intent.Payment:
		r = s.payment(lang)
	case intent.Correlation:
		r = s.correlation(lang)
	case intent.Trend:
		r = s.trend(lang)
	case intent.Export:
		r = s.export(lang)
	case intent.Schema:
		r = s.schema(lang)
	case intent.Employee:
		r = s.employees(c.Order, lang)
	case intent.ProductToy:
		r = s.toys(c.Order, lang)
	case intent.Product:
		r = s.products(c.Order, lang)
	case intent.SaleTotal:
		r = s.saleTotal(lang)
	case intent.Sale:
		r = s.sales(c.Order, lang)
	case intent.Customer:
		r = s.customers(lang)
	default:
		r = s.fallback(lang)
	}
	r.Topic = c.Topic
	r.Prompt = prompt
	if r.Columns == nil {
		r.Columns = []string{}
	}
	if r.Rows == nil {
		r.Rows = []dataset.Row{}
	}
	return r
}

// sumTotals adds sale totals exactly.
func sumTotals(sales []dataset.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(decimal.NewFromFloat(s.Total))
	}
	return sum
}

// money rounds to cents and returns a float for rows and charts.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
