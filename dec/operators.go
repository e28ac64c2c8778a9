// SPDX-License-Identifier: MIT
// Package dec - concurrent assembly of the full operator set.

package dec

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvdec/sparse"
)

// Operators bundles the five DEC operators of one mesh.
type Operators struct {
	Star0 *sparse.Matrix // |V|×|V|
	Star1 *sparse.Matrix // |E|×|E|
	Star2 *sparse.Matrix // |F|×|F|
	D0    *sparse.Matrix // |E|×|V|
	D1    *sparse.Matrix // |F|×|E|
}

// complete reports whether every operator is present.
func (ops *Operators) complete() bool {
	return ops != nil && ops.Star0 != nil && ops.Star1 != nil && ops.Star2 != nil && ops.D0 != nil && ops.D1 != nil
}

// BuildAll runs the five builders concurrently and returns them together.
// Each builder writes only its own field, so no locking is needed. ctx is
// checked before every builder starts; the first error cancels the rest.
func BuildAll(ctx context.Context, m Mesh, opts ...Option) (*Operators, error) {
	if isNil(m) {
		return nil, decErrorf(opBuildAll, ErrNilMesh)
	}
	// Resolve options once; every log line carries the mesh size.
	o := gatherOptions(opts...)
	log := o.logger.With(
		zap.Int("vertices", m.NumVertices()),
		zap.Int("edges", m.NumEdges()),
		zap.Int("faces", m.NumFaces()),
	)

	// One job per operator, each owning a distinct destination field.
	ops := &Operators{}
	jobs := []struct {
		name  string
		dst   **sparse.Matrix
		build func() (*sparse.Matrix, error)
	}{
		{opHodge0, &ops.Star0, func() (*sparse.Matrix, error) { return Hodge0(m) }},
		{opHodge1, &ops.Star1, func() (*sparse.Matrix, error) { return Hodge1(m, opts...) }},
		{opHodge2, &ops.Star2, func() (*sparse.Matrix, error) { return Hodge2(m) }},
		{opD0, &ops.D0, func() (*sparse.Matrix, error) { return ExteriorDerivative0(m) }},
		{opD1, &ops.D1, func() (*sparse.Matrix, error) { return ExteriorDerivative1(m) }},
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		job := job
		eg.Go(func() error {
			// Skip work once ctx is done or a sibling failed.
			if err := egCtx.Err(); err != nil {
				return err
			}
			start := time.Now()
			out, err := job.build()
			if err != nil {
				return err
			}
			*job.dst = out // published to the caller by eg.Wait
			r, c := out.Dims()
			log.Debug("operator assembled",
				zap.String("operator", job.name),
				zap.Int("rows", r),
				zap.Int("cols", c),
				zap.Int("nnz", out.NNZ()),
				zap.Duration("elapsed", time.Since(start)),
			)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, decErrorf(opBuildAll, err)
	}
	log.Debug("operators ready", zap.Float64("regularization", o.regularization))

	return ops, nil
}
