package ai

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DachengChen/paiBI/dataset"
	"github.com/DachengChen/paiBI/intent"
	"github.com/DachengChen/paiBI/metrics"
)

// Default artificial latencies; long enough for a "thinking" indicator
// to be visible.
const (
	DefaultQueryLatency = 1200 * time.Millisecond
	DefaultTableLatency = 300 * time.Millisecond
)

// Simulated is the keyword-rule assistant backend.
type Simulated struct {
	synth        *Synthesizer
	queryLatency time.Duration
	tableLatency time.Duration
}

var _ Provider = (*Simulated)(nil)

// Option configures a Simulated provider.
type Option func(*Simulated)

// WithLatency sets the artificial delays.
func WithLatency(query, table time.Duration) Option {
	return func(s *Simulated) {
		s.queryLatency, s.tableLatency = query, table
	}
}

// WithSynthesizer replaces the answer builder.
func WithSynthesizer(syn *Synthesizer) Option {
	return func(s *Simulated) { s.synth = syn }
}

func NewSimulated(opts ...Option) *Simulated {
	s := &Simulated{
		synth:        NewSynthesizer(),
		queryLatency: DefaultQueryLatency,
		tableLatency: DefaultTableLatency,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Simulated) Name() string {
	return "simulated"
}

// Query classifies the prompt and builds its answer after the simulated
// inference delay. The only error is the context's, when it ends first.
func (s *Simulated) Query(ctx context.Context, prompt string, lang Language) (*QueryResult, error) {
	id := uuid.NewString()
	start := time.Now()
	LogQueryRequest(id, s.Name(), prompt, lang)

	// Simulate network/inference latency
	select {
	case <-time.After(s.queryLatency):
	case <-ctx.Done():
		metrics.IncCancelled("query")
		LogQueryCancelled(id, ctx.Err())
		return nil, ctx.Err()
	}

	cls := intent.Classify(prompt)
	res := s.synth.Synthesize(cls, prompt, lang)

	metrics.ObserveQuery(cls.Topic.String(), string(lang), start, len(res.Rows))
	LogQueryResponse(id, cls, res, time.Since(start))
	return res, nil
}

// TableData returns a raw table after a short delay. Unknown names give
// an empty table.
func (s *Simulated) TableData(ctx context.Context, name string) (dataset.Table, error) {
	select {
	case <-time.After(s.tableLatency):
	case <-ctx.Done():
		metrics.IncCancelled("table")
		return dataset.Table{}, ctx.Err()
	}

	t, known := dataset.Lookup(name)
	metrics.IncTable(name, known)
	LogTableLookup(name, known, t.Len())
	return t, nil
}
