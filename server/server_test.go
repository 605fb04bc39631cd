package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/config"
	"github.com/DachengChen/paiBI/dataset"
)

func newTestServer(p ai.Provider) http.Handler {
	if p == nil {
		p = ai.NewSimulated(ai.WithLatency(0, 0))
	}
	return New(NewHandler(p, config.DefaultPrompts(), ai.English))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestQuery(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodPost, "/api/query",
		`{"prompt": "Show me the top 5 employees by salary", "lang": "es"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Equal(t, "employee", gjson.Get(body, "topic").String())
	assert.Equal(t, int64(5), gjson.Get(body, "rows.#").Int())
	assert.Equal(t, "Ana", gjson.Get(body, "rows.0.first_name").String())
	assert.Equal(t, 3223.8, gjson.Get(body, "rows.0.salary").Float())
	assert.Equal(t, "bar", gjson.Get(body, "chartConfig.data.0.type").String())
	assert.Contains(t, gjson.Get(body, "explanation").String(), "Mostrando")
}

func TestQueryDefaultsLanguage(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodPost, "/api/query", `{"prompt": "show customers"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Fetching customer database.", gjson.Get(rec.Body.String(), "explanation").String())
}

func TestQueryBadBody(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodPost, "/api/query", `{"prompt":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failing struct{ ai.Provider }

func (failing) Query(context.Context, string, ai.Language) (*ai.QueryResult, error) {
	return nil, context.Canceled
}

func (failing) TableData(context.Context, string) (dataset.Table, error) {
	return dataset.Table{}, errors.New("gone")
}

func TestProviderErrors(t *testing.T) {
	h := newTestServer(failing{})
	assert.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodPost, "/api/query", `{"prompt":"x"}`).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodGet, "/api/tables/sales", "").Code)
}

func TestTables(t *testing.T) {
	h := newTestServer(nil)

	rec := do(t, h, http.MethodGet, "/api/tables", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), gjson.Get(rec.Body.String(), "#").Int())
	assert.Equal(t, int64(6), gjson.Get(rec.Body.String(), `#(name=="customers").rows`).Int())

	rec = do(t, h, http.MethodGet, "/api/tables/customers?filter=centro", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gjson.Get(rec.Body.String(), "rows.#").Int())

	rec = do(t, h, http.MethodGet, "/api/tables/inventory", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", gjson.Get(rec.Body.String(), "rows").Raw)
	assert.Equal(t, "[]", gjson.Get(rec.Body.String(), "columns").Raw)
}

func TestPrompts(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodGet, "/api/prompts?lang=es", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, int64(len(config.DefaultPrompts())), gjson.Get(body, "#").Int())
	assert.Equal(t, config.DefaultPrompts()[0].TitleES, gjson.Get(body, "0.title").String())
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(nil)

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
	assert.Equal(t, "simulated", gjson.Get(rec.Body.String(), "provider").String())
	_, err := time.Parse(time.RFC3339, gjson.Get(rec.Body.String(), "time").String())
	assert.NoError(t, err)

	do(t, h, http.MethodPost, "/api/query", `{"prompt":"list employees"}`)
	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "paibi_queries_total")
}
