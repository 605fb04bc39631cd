package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(queriesTotal.WithLabelValues("employee", "en"))
	ObserveQuery("employee", "en", time.Now(), 5)
	ObserveQuery("employee", "en", time.Now(), 5)
	assert.Equal(t, before+2, testutil.ToFloat64(queriesTotal.WithLabelValues("employee", "en")))
}

func TestIncTableBucketsUnknownNames(t *testing.T) {
	before := testutil.ToFloat64(tableLookups.WithLabelValues("unknown", "false"))
	IncTable("bogus", false)
	IncTable("also-bogus", false)
	assert.Equal(t, before+2, testutil.ToFloat64(tableLookups.WithLabelValues("unknown", "false")))

	IncTable("sales", true)
	assert.GreaterOrEqual(t, testutil.ToFloat64(tableLookups.WithLabelValues("sales", "true")), 1.0)
}

func TestIncCancelled(t *testing.T) {
	before := testutil.ToFloat64(cancelled.WithLabelValues("query"))
	IncCancelled("query")
	assert.Equal(t, before+1, testutil.ToFloat64(cancelled.WithLabelValues("query")))
}

func TestCollectors(t *testing.T) {
	assert.Len(t, Collectors(), 5)
}
