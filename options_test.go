package submet

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptionsDefaults(t *testing.T) {
	o := applyOptions(nil)

	assert.Equal(t, runtime.GOMAXPROCS(0), o.concurrency)
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)
}

func TestApplyOptions(t *testing.T) {
	mc := &BasicMetricsCollector{}
	logger := NoopLogger()

	o := applyOptions([]Option{
		WithConcurrency(3),
		WithMetricsCollector(mc),
		WithLogger(logger),
		nil,
	})

	assert.Equal(t, 3, o.concurrency)
	assert.Same(t, mc, o.metricsCollector)
	assert.Same(t, logger, o.logger)
}

func TestApplyOptionsNilFallbacks(t *testing.T) {
	o := applyOptions([]Option{
		WithConcurrency(-1),
		WithMetricsCollector(nil),
		WithLogger(nil),
	})

	assert.Equal(t, runtime.GOMAXPROCS(0), o.concurrency)
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)
}
