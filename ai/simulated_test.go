package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DachengChen/paiBI/config"
	"github.com/DachengChen/paiBI/dataset"
	"github.com/DachengChen/paiBI/intent"
)

func instant() *Simulated {
	return NewSimulated(WithLatency(0, 0))
}

func TestSimulatedQuery(t *testing.T) {
	r, err := instant().Query(context.Background(), "Show me the top 5 employees by salary", English)
	require.NoError(t, err)
	assert.Equal(t, intent.Employee, r.Topic)
	assert.Equal(t, "Show me the top 5 employees by salary", r.Prompt)
	assert.Len(t, r.Rows, 5)
}

func TestSimulatedQueryAlwaysAnswers(t *testing.T) {
	for _, p := range []string{"", "???", "asdf qwerty", "¿Qué tal?"} {
		r, err := instant().Query(context.Background(), p, Spanish)
		require.NoError(t, err, p)
		assert.Equal(t, intent.Fallback, r.Topic, p)
		assert.NotEmpty(t, r.Explanation, p)
	}
}

func TestSimulatedQueryWaits(t *testing.T) {
	s := NewSimulated(WithLatency(30*time.Millisecond, 0))
	start := time.Now()
	_, err := s.Query(context.Background(), "show customers", English)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSimulatedQueryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSimulated(WithLatency(time.Hour, time.Hour))
	r, err := s.Query(ctx, "show customers", English)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, r)

	_, err = s.TableData(ctx, dataset.TableSales)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedTableData(t *testing.T) {
	tbl, err := instant().TableData(context.Background(), dataset.TableCustomers)
	require.NoError(t, err)
	assert.Equal(t, dataset.CustomerColumns, tbl.Columns)
	assert.Equal(t, 6, tbl.Len())

	unknown, err := instant().TableData(context.Background(), "inventory")
	require.NoError(t, err)
	assert.Empty(t, unknown.Columns)
	assert.Empty(t, unknown.Rows)
	assert.NotNil(t, unknown.Rows)
}

func TestNewProvider(t *testing.T) {
	cfg := config.DefaultAppConfig()
	cfg.Simulation.QueryLatencyMS = 0
	cfg.Forex = map[string]float64{"EUR": 0.5}

	p, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "simulated", p.Name())

	r, err := p.Query(context.Background(), "convert to euro", English)
	require.NoError(t, err)
	assert.Equal(t, 0.5, r.Rows[1]["rate"].Num)

	cfg.Assistant.Backend = "gpt"
	_, err = NewProvider(cfg)
	assert.ErrorContains(t, err, `unknown assistant backend "gpt"`)
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Spanish, ParseLanguage("ES"))
	assert.Equal(t, Spanish, ParseLanguage(" español "))
	assert.Equal(t, English, ParseLanguage("fr"))
	assert.Equal(t, English, ParseLanguage(""))
	assert.Equal(t, Spanish, English.Other())
	assert.Equal(t, English, Spanish.Other())
}

func TestReply(t *testing.T) {
	assert.Equal(t, "Here are the results:", Reply(&QueryResult{}, English))
	assert.Equal(t, "Aquí están los resultados:", Reply(nil, Spanish))
	assert.Equal(t, "x", Reply(&QueryResult{Explanation: "x"}, English))
	assert.NotEqual(t, Intro(English), Intro(Spanish))
	assert.NotEmpty(t, ErrorReply(Spanish))
}
