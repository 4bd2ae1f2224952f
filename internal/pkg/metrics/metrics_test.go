//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"booking-scheduler/internal/pkg/errs"
	"booking-scheduler/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_ObserveOperation(t *testing.T) {
	c := metrics.NewCollectorWith(prometheus.NewRegistry())

	c.ObserveOperation("create", time.Now(), nil)
	c.ObserveOperation("create", time.Now(), errs.ErrResourceNotAvailable)
	c.ObserveOperation("create", time.Now(), errs.ErrResourceNotAvailable)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.OperationsTotal.WithLabelValues("create", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.OperationsTotal.WithLabelValues("create", "resource_not_available")))
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() {
		c.ObserveOperation("create", time.Now(), nil)
		c.ObserveTransition("confirmed")
		c.ObserveRequest("GET", "/", 200, time.Millisecond)
	})
}
