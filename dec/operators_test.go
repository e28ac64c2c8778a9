// SPDX-License-Identifier: MIT
package dec_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvdec/dec"
	"github.com/katalvlaran/lvdec/sparse"
)

// sequential builds the bundle one operator at a time.
func sequential(t *testing.T, m dec.Mesh, opts ...dec.Option) *dec.Operators {
	t.Helper()
	var (
		ops dec.Operators
		err error
	)
	ops.Star0, err = dec.Hodge0(m)
	require.NoError(t, err)
	ops.Star1, err = dec.Hodge1(m, opts...)
	require.NoError(t, err)
	ops.Star2, err = dec.Hodge2(m)
	require.NoError(t, err)
	ops.D0, err = dec.ExteriorDerivative0(m)
	require.NoError(t, err)
	ops.D1, err = dec.ExteriorDerivative1(m)
	require.NoError(t, err)

	return &ops
}

func TestBuildAll_MatchesSequential(t *testing.T) {
	t.Parallel()

	byBits := cmp.Comparer(sparse.Equal)
	for _, fx := range fixtures(t, false) {
		got, err := dec.BuildAll(context.Background(), fx.m, dec.WithRegularization(1e-6))
		require.NoError(t, err, fx.name)
		want := sequential(t, fx.m, dec.WithRegularization(1e-6))
		if diff := cmp.Diff(want, got, byBits); diff != "" {
			t.Errorf("%s: BuildAll mismatch (-want +got):\n%s", fx.name, diff)
		}
		require.NoError(t, dec.CheckExactness(got, 0), fx.name)
	}
}

func TestBuildAll_Logging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	_, err := dec.BuildAll(context.Background(), parallelogram(t), dec.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assembled := logs.FilterMessage("operator assembled")
	require.Equal(t, 5, assembled.Len())
	seen := map[string]bool{}
	for _, e := range assembled.All() {
		fields := e.ContextMap()
		seen[fields["operator"].(string)] = true
		assert.EqualValues(t, 4, fields["vertices"])
	}
	assert.Len(t, seen, 5)

	ready := logs.FilterMessage("operators ready").All()
	require.Len(t, ready, 1)
	assert.Equal(t, dec.DefaultRegularization, ready[0].ContextMap()["regularization"])
}

func TestBuildAll_Errors(t *testing.T) {
	t.Parallel()

	_, err := dec.BuildAll(context.Background(), nil)
	require.ErrorIs(t, err, dec.ErrNilMesh)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ops, err := dec.BuildAll(ctx, parallelogram(t))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ops)

	_, err = dec.BuildAll(context.Background(), stuckCycle{parallelogram(t)})
	require.ErrorIs(t, err, dec.ErrOpenFaceCycle)
	assert.Contains(t, err.Error(), "BuildAll")
}
