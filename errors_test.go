package submet

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/submet/internal/linalg"
	"github.com/hupe1980/submet/metric"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	t.Run("UnknownMetric", func(t *testing.T) {
		err := translateError(&metric.ErrUnknownMetric{Name: "foo"})
		var ce *ErrConfiguration
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "foo", ce.Metric)
	})

	t.Run("Wide", func(t *testing.T) {
		err := translateError(&linalg.ErrWide{Rows: 2, Cols: 3})
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
		assert.Contains(t, dm.Error(), "subspace dimension exceeds ambient dimension")
	})

	t.Run("Empty", func(t *testing.T) {
		err := translateError(linalg.ErrEmpty)
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.ErrorIs(t, err, linalg.ErrEmpty)
	})

	t.Run("CosineRange", func(t *testing.T) {
		err := translateError(&linalg.ErrCosineRange{Value: 1.5})
		var nd *ErrNumericDomain
		require.ErrorAs(t, err, &nd)
		assert.Equal(t, 1.5, nd.Value)
	})

	t.Run("MetricDomain", func(t *testing.T) {
		err := translateError(&metric.ErrNumericDomain{Metric: metric.Martin, Value: math.Inf(1)})
		var nd *ErrNumericDomain
		require.ErrorAs(t, err, &nd)
		assert.Contains(t, nd.Error(), "Martin")
	})

	t.Run("Decomposition", func(t *testing.T) {
		for _, cause := range []error{linalg.ErrNonFinite, linalg.ErrSVDFailed} {
			err := translateError(fmt.Errorf("wrapped: %w", cause))
			var de *ErrDecomposition
			require.ErrorAs(t, err, &de)
			assert.ErrorIs(t, err, cause)
		}
	})

	t.Run("Passthrough", func(t *testing.T) {
		other := errors.New("other")
		assert.Same(t, other, translateError(other))
	})
}
