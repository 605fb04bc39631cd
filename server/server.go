// Package server exposes the assistant over HTTP for web front ends.
//
// Routes:
//
//	POST /api/query          {"prompt": "...", "lang": "es"} -> answer
//	GET  /api/tables         table names with row counts
//	GET  /api/tables/:name   raw table, optional ?filter=
//	GET  /api/prompts        prompt library, titles in ?lang=
//	GET  /health
//	GET  /metrics            Prometheus exposition
package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/applog"
	"github.com/DachengChen/paiBI/config"
	"github.com/DachengChen/paiBI/dataset"
	"github.com/DachengChen/paiBI/metrics"
)

// Handler serves the API on top of a Provider.
type Handler struct {
	provider ai.Provider
	prompts  []config.Prompt
	lang     ai.Language
}

// NewHandler creates a handler. lang is used when a request names none.
func NewHandler(p ai.Provider, prompts []config.Prompt, lang ai.Language) *Handler {
	return &Handler{provider: p, prompts: prompts, lang: lang}
}

// New returns an Echo instance with middleware and routes installed.
func New(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			applog.L().Info("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))
	h.RegisterRoutes(e)
	return e
}

// RegisterRoutes installs the API routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/query", h.Query)
	api.GET("/tables", h.ListTables)
	api.GET("/tables/:name", h.GetTable)
	api.GET("/prompts", h.ListPrompts)

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

// QueryRequest is the body of POST /api/query.
type QueryRequest struct {
	Prompt string `json:"prompt"`
	Lang   string `json:"lang"`
}

func (h *Handler) language(tag string) ai.Language {
	if tag == "" {
		return h.lang
	}
	return ai.ParseLanguage(tag)
}

// Query answers a natural-language prompt.
func (h *Handler) Query(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	res, err := h.provider.Query(c.Request().Context(), req.Prompt, h.language(req.Lang))
	if err != nil {
		// The only failure is the client going away mid-wait.
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

// TableSummary is one entry of GET /api/tables.
type TableSummary struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
}

// ListTables lists the browsable tables.
func (h *Handler) ListTables(c echo.Context) error {
	names := dataset.Tables()
	out := make([]TableSummary, 0, len(names))
	for _, n := range names {
		t, _ := dataset.Lookup(n)
		out = append(out, TableSummary{Name: n, Columns: t.Columns, Rows: t.Len()})
	}
	return c.JSON(http.StatusOK, out)
}

// GetTable returns one raw table. Unknown names give an empty table.
func (h *Handler) GetTable(c echo.Context) error {
	t, err := h.provider.TableData(c.Request().Context(), c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	if f := c.QueryParam("filter"); f != "" {
		t = t.Filter(f)
	}
	return c.JSON(http.StatusOK, t)
}

// PromptView is a prompt with its title resolved for one language.
type PromptView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Prompt   string `json:"prompt"`
}

// ListPrompts returns the prompt library.
func (h *Handler) ListPrompts(c echo.Context) error {
	lang := h.language(c.QueryParam("lang"))
	out := make([]PromptView, 0, len(h.prompts))
	for _, p := range h.prompts {
		out = append(out, PromptView{Name: p.Name, Category: p.Category, Title: p.Title(string(lang)), Prompt: p.Text})
	}
	return c.JSON(http.StatusOK, out)
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"provider": h.provider.Name(),
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
