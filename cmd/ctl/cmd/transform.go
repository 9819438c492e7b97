package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jpfielding/mct.go/pkg/compress/mct"
	"github.com/jpfielding/mct.go/pkg/planar"
	"github.com/jpfielding/mct.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewEncodeCmd applies a forward transform to an int32 planar file
func NewEncodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "forward component transform",
		Long:  "Reads int32 planes, applies the forward transform and writes int32 planes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, _ := cmd.Flags().GetInt("components")
			params, err := loadParams(ctx, cmd, comps)
			if err != nil {
				return err
			}
			in, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer in.Close()
			planes, err := planar.Read[int32](in, comps)
			if err != nil {
				return err
			}
			if err := params.Encode(planes); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			slog.InfoContext(ctx, "encoded",
				slog.String("kind", params.Kind.String()),
				slog.Int("components", comps),
				slog.Int("samples", len(planes[0])))
			return writeOutput(cmd, func(w io.Writer) error { return planar.Write(w, planes) })
		},
	}
	transformFlags(cmd)
	return cmd
}

// NewDecodeCmd applies an inverse transform. The reversible transform works
// on int32 planes, the irreversible and custom transforms on float32 planes.
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "inverse component transform",
		Long:  "Reads planes, applies the inverse transform and writes int32 (reversible) or float32 (irreversible, custom) planes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, _ := cmd.Flags().GetInt("components")
			intInput, _ := cmd.Flags().GetBool("int-input")
			params, err := loadParams(ctx, cmd, comps)
			if err != nil {
				return err
			}
			in, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer in.Close()

			var write func(io.Writer) error
			var samples int
			switch params.Kind {
			case mct.KindNone, mct.KindReversible:
				planes, err := planar.Read[int32](in, comps)
				if err != nil {
					return err
				}
				if err := params.DecodeInt(planes); err != nil {
					return fmt.Errorf("decode: %w", err)
				}
				samples = len(planes[0])
				write = func(w io.Writer) error { return planar.Write(w, planes) }
			default:
				var planes [][]float32
				if intInput {
					ints, err := planar.Read[int32](in, comps)
					if err != nil {
						return err
					}
					planes = planar.ToFloat32(ints)
				} else if planes, err = planar.Read[float32](in, comps); err != nil {
					return err
				}
				if err := params.DecodeReal(planes); err != nil {
					return fmt.Errorf("decode: %w", err)
				}
				samples = len(planes[0])
				write = func(w io.Writer) error { return planar.Write(w, planes) }
			}
			slog.InfoContext(ctx, "decoded",
				slog.String("kind", params.Kind.String()),
				slog.Int("components", comps),
				slog.Int("samples", samples))
			return writeOutput(cmd, write)
		},
	}
	transformFlags(cmd)
	cmd.Flags().Bool("int-input", false, "input holds int32 samples (e.g. encode output) for a float32 inverse")
	return cmd
}

// NewNormsCmd prints the basis norms of a transform as JSON
func NewNormsCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "norms",
		Short: "basis norms of a transform",
		Long:  "Prints the per-component basis norms the quantizer uses to weight distortion.",
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, _ := cmd.Flags().GetInt("components")
			params, err := loadParams(ctx, cmd, comps)
			if err != nil {
				return err
			}
			norms, err := params.Norms(comps)
			if err != nil {
				return fmt.Errorf("norms: %w", err)
			}
			j, _ := json.Marshal(norms)
			fmt.Fprintln(cmd.OutOrStdout(), string(j))
			return nil
		},
	}
	pf := cmd.Flags()
	pf.StringP("kind", "k", "reversible", "transform (none|reversible|irreversible|custom)")
	pf.IntP("components", "c", 3, "number of components")
	pf.StringP("matrix", "m", "", "float32 matrix file for the custom transform")
	return cmd
}

// NewVerifyCmd checks the accelerated kernels against the portable ones
func NewVerifyCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "compare accelerated and portable kernels",
		Long:  "Runs every fixed transform through both kernel sets on pseudo-random planes and fails on the first difference.",
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, _ := cmd.Flags().GetInt("samples")
			seed, _ := cmd.Flags().GetUint64("seed")
			if samples < 0 {
				return fmt.Errorf("negative sample count %d", samples)
			}
			if err := mct.CheckKernels(samples, seed); err != nil {
				return err
			}
			slog.InfoContext(ctx, "kernels agree",
				slog.String("dispatch", mct.CurrentLevel().String()),
				slog.Int("samples", samples))
			fmt.Fprintf(cmd.OutOrStdout(), "ok dispatch=%s samples=%d\n", mct.CurrentLevel(), samples)
			return nil
		},
	}
	pf := cmd.Flags()
	pf.Int("samples", 1<<16, "samples per plane")
	pf.Uint64("seed", 1, "random seed")
	return cmd
}

func transformFlags(cmd *cobra.Command) {
	pf := cmd.Flags()
	pf.StringP("kind", "k", "reversible", "transform (none|reversible|irreversible|custom)")
	pf.IntP("components", "c", 3, "number of component planes in the input")
	pf.StringP("matrix", "m", "", "float32 matrix file for the custom transform")
	pf.Bool("signed", false, "samples are signed (passed through to the custom transform)")
	pf.StringP("in", "i", "-", "input planar file (- for stdin)")
	pf.StringP("out", "o", "-", "output planar file (- for stdout)")
}

func loadParams(ctx context.Context, cmd *cobra.Command, comps int) (mct.Params, error) {
	kindName, _ := cmd.Flags().GetString("kind")
	kind, err := mct.ParseKind(kindName)
	if err != nil {
		return mct.Params{}, err
	}
	params := mct.Params{Kind: kind}
	if cmd.Flags().Lookup("signed") != nil {
		params.Signed, _ = cmd.Flags().GetBool("signed")
	}
	if kind != mct.KindCustom {
		logParams(ctx, params)
		return params, nil
	}

	matrixPath, _ := cmd.Flags().GetString("matrix")
	if matrixPath == "" {
		return mct.Params{}, fmt.Errorf("custom transform requires --matrix")
	}
	f, err := os.Open(matrixPath)
	if err != nil {
		return mct.Params{}, fmt.Errorf("failed to open matrix: %w", err)
	}
	defer f.Close()
	blob, n, err := planar.ReadMatrix(f)
	if err != nil {
		return mct.Params{}, err
	}
	if n != comps {
		return mct.Params{}, fmt.Errorf("%w: %dx%d matrix for %d components", mct.ErrMatrixSize, n, n, comps)
	}
	params.Matrix = blob
	slog.DebugContext(ctx, "loaded matrix",
		slog.String("path", matrixPath),
		slog.Int("components", n),
		slog.String("id", util.BytesUUID(blob)),
		slog.String("md5", util.Md5Hex(blob)))
	logParams(ctx, params)
	return params, nil
}

// logParams tags the run with a stable id for its transform settings so
// runs with identical settings can be matched up in the logs.
func logParams(ctx context.Context, params mct.Params) {
	slog.DebugContext(ctx, "transform params",
		slog.String("kind", params.Kind.String()),
		slog.Bool("signed", params.Signed),
		slog.String("params", util.HashUUID(params)))
}

func openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	path, _ := cmd.Flags().GetString("in")
	path = strings.TrimPrefix(path, "file://")
	if path == "-" || path == "" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func writeOutput(cmd *cobra.Command, write func(io.Writer) error) error {
	path, _ := cmd.Flags().GetString("out")
	path = strings.TrimPrefix(path, "file://")
	if path == "-" || path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
