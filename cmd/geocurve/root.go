package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"honnef.co/go/geocurve"
	"honnef.co/go/geocurve/interop"
	"honnef.co/go/geocurve/internal/config"
	"honnef.co/go/geocurve/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "geocurve",
		Short:         "Draw edge-bundled curves on the globe",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Sample curves and split them at the antimeridian",
		Long: `Render reads a GeoJSON FeatureCollection of LineString features. The
coordinates of every feature are the control points of one spherical Bézier
curve, in degrees. Features with a "straight": true property are drawn along
the great circle between their first and last coordinates.

The output is a FeatureCollection with one MultiLineString feature per input
feature. Its lines are the curve's segments, split wherever the curve crosses
the antimeridian.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			geocurve.SetLogger(log)
			defer geocurve.SetLogger(nil)

			r, err := openInput(cmd, in)
			if err != nil {
				return err
			}
			defer r.Close()
			w, err := openOutput(cmd, out)
			if err != nil {
				return err
			}
			if err := render(cmd.Context(), log, cfg, r, w); err != nil {
				w.Close()
				return err
			}
			return errors.Wrap(w.Close(), "close output")
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "-", "input file, - for stdin")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func render(ctx context.Context, log *slog.Logger, cfg *config.Config, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	curves, err := interop.ReadCurves(data, cfg.Curve.StraightTwoPoint)
	if err != nil {
		return err
	}

	start := time.Now()
	segs, err := interop.Render(ctx, curves, cfg.Options())
	if err != nil {
		return err
	}
	var n int
	for _, s := range segs {
		n += len(s)
	}
	log.Info("rendered curves", "curves", len(curves), "segments", n, "elapsed", time.Since(start))

	fc, err := interop.FeatureCollection(curves, segs)
	if err != nil {
		return err
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}
	return f, nil
}
