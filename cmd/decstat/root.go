// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvdec/dec"
	"github.com/katalvlaran/lvdec/mesh"
	"github.com/katalvlaran/lvdec/meshio"
)

// app carries flag values and the resolved runtime state of one invocation.
type app struct {
	configPath string
	eps        float64
	area       string
	verbose    bool

	cfg    settings
	logger *zap.Logger
}

// newRootCmd assembles a fresh command tree; tests build one per case.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "decstat",
		Short:        "Build and inspect discrete exterior calculus operators",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML file with regularization and area_policy")
	pf.Float64Var(&a.eps, "eps", dec.DefaultRegularization, "Hodge1 regularization added to every edge")
	pf.StringVar(&a.area, "area", "", "dual vertex area: unit|barycentric|circumcentric")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.opsCmd(), a.laplacianCmd(), a.fixtureCmd())

	return root
}

// init resolves settings (defaults < config file < flags) and the logger.
func (a *app) init(cmd *cobra.Command) error {
	s := defaultSettings()
	if a.configPath != "" {
		fc, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		if s, err = s.apply(fc); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("eps") {
		s.eps = a.eps
	}
	if cmd.Flags().Changed("area") {
		p, err := mesh.ParseAreaPolicy(a.area)
		if err != nil {
			return err
		}
		s.policy = p
	}
	if err := s.validate(); err != nil {
		return err
	}
	a.cfg = s

	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose).Named("decstat")

	return nil
}

// newLogger builds a production-style JSON logger on w; verbose lowers the
// level to debug.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(w))))
}

// loadMesh reads an OBJ file, or stdin for "-".
func (a *app) loadMesh(cmd *cobra.Command, path string) (*mesh.Mesh, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	m, err := meshio.ReadMesh(r, mesh.WithAreaPolicy(a.cfg.policy))
	if err != nil {
		return nil, err
	}
	a.logger.Info("mesh loaded",
		zap.String("path", path),
		zap.Int("vertices", m.NumVertices()),
		zap.Int("edges", m.NumEdges()),
		zap.Int("faces", m.NumFaces()),
		zap.Stringer("area_policy", m.AreaPolicy()),
	)

	return m, nil
}

// buildOps loads path and assembles every operator.
func (a *app) buildOps(cmd *cobra.Command, path string) (*mesh.Mesh, *dec.Operators, error) {
	m, err := a.loadMesh(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	ops, err := dec.BuildAll(cmd.Context(), m,
		dec.WithRegularization(a.cfg.eps),
		dec.WithLogger(a.logger),
	)
	if err != nil {
		return nil, nil, err
	}

	return m, ops, nil
}
