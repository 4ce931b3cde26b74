package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adriansahlman/resample/bmpx"
	"github.com/adriansahlman/resample/internal/config"
	"github.com/adriansahlman/resample/internal/logging"
)

func newResizeCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "resize <input.bmp> <output.bmp>",
		Short: "Resize a BMP image",
		Example: `  bmpresize resize --width 640 --height 480 in.bmp out.bmp
  bmpresize resize -W 100 -H 100 --filter mks2021 in.bmp thumb.bmp`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return &ExitError{Code: 2, Err: fmt.Errorf("--width and --height must be positive, got %dx%d", width, height)}
			}

			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := logging.FromContext(ctx).With(
				slog.String("input", args[0]),
				slog.String("output", args[1]),
			)

			return resizeFile(logger, cfg, args[0], args[1], width, height)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&width, "width", "W", 0, "output width in pixels")
	f.IntVarP(&height, "height", "H", 0, "output height in pixels")
	f.StringP("filter", "f", config.Default().Filter, "resampling filter, see 'bmpresize filters'")
	f.Int("parallel", config.Default().Parallel, "maximum number of resize workers")
	f.Int("batch-size", config.Default().BatchSize, "pixels per worker job")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func resizeFile(logger *slog.Logger, cfg *config.Config, in, out string, width, height int) (err error) {
	kind, err := cfg.Kind()
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(out)
		}
	}()

	logger.Debug("resizing",
		slog.String("filter", kind.String()),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("parallel", cfg.Parallel),
	)

	start := time.Now()
	w := bufio.NewWriter(dst)
	err = bmpx.Resize(
		bufio.NewReader(src),
		w,
		width,
		height,
		bmpx.WithResizeKind(kind),
		bmpx.WithResizeParallelLimit(cfg.Parallel),
		bmpx.WithResizeParallelBatchSize(cfg.BatchSize),
	)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		return fmt.Errorf("resizing %s: %w", in, err)
	}

	logger.Info("resized",
		slog.String("filter", kind.String()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}
