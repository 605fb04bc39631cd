// logger.go records every assistant call in the application log.
//
// Each query gets a request id so its request, response and
// cancellation entries can be correlated.
package ai

import (
	"time"

	"go.uber.org/zap"

	"github.com/DachengChen/paiBI/applog"
	"github.com/DachengChen/paiBI/intent"
)

// LogQueryRequest logs an incoming question.
func LogQueryRequest(id, provider, prompt string, lang Language) {
	applog.L().Info("query request",
		zap.String("category", "query"),
		zap.String("request_id", id),
		zap.String("provider", provider),
		zap.String("lang", string(lang)),
		zap.String("prompt", prompt),
	)
}

// LogQueryResponse logs the classification and the shape of the answer.
func LogQueryResponse(id string, cls intent.Classification, res *QueryResult, elapsed time.Duration) {
	fields := []zap.Field{
		zap.String("category", "query"),
		zap.String("request_id", id),
		zap.Stringer("topic", cls.Topic),
		zap.Stringer("order", cls.Order),
		zap.Int("rows", len(res.Rows)),
		zap.Bool("chart", res.Chart != nil),
		zap.Duration("elapsed", elapsed),
	}
	if res.External != nil {
		fields = append(fields, zap.String("source", res.External.Source))
	}
	applog.L().Info("query response", fields...)
}

// LogQueryCancelled logs a query abandoned by its caller.
func LogQueryCancelled(id string, err error) {
	applog.L().Warn("query cancelled",
		zap.String("category", "query"),
		zap.String("request_id", id),
		zap.Error(err),
	)
}

// LogTableLookup logs a raw table access.
func LogTableLookup(name string, known bool, rows int) {
	applog.L().Info("table lookup",
		zap.String("category", "table"),
		zap.String("table", name),
		zap.Bool("known", known),
		zap.Int("rows", rows),
	)
}
