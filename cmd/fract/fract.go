// Command fract renders a Julia set and a Lyapunov fractal to image files.
//
// Settings come from FRACT_* environment variables and may be overridden by
// flags:
//
//	fract                       # both fractals
//	fract julia --c=-0.8,0.156  # escape-time only
//	fract lyapunov --pattern=AB --resolution=1920x1080
package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/willbeason/fract/internal/config"
	"github.com/willbeason/fract/pkg/render"
	"github.com/willbeason/fract/pkg/sink"
)

// app carries what every command needs once flags are parsed.
type app struct {
	cfg  *config.Config
	sink sink.Sink
	log  *slog.Logger
}

func mainCmd(cfg *config.Config, s sink.Sink) *cobra.Command {
	a := &app{cfg: cfg, sink: s, log: slog.New(slog.DiscardHandler)}

	cmd := &cobra.Command{
		Use:               "fract",
		Short:             "Render a Julia set and a Lyapunov fractal",
		Args:              cobra.ExactArgs(0),
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.renderJulia(cmd.Context()); err != nil {
				return err
			}
			return a.renderLyapunov(cmd.Context())
		},
	}

	bindFlags(cmd.PersistentFlags(), cfg)
	cmd.AddCommand(juliaCmd(a), lyapunovCmd(a))

	return cmd
}

func bindFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")
	fs.Var(config.Resolution{Width: &cfg.Width, Height: &cfg.Height}, "resolution", "image size, sets both width and height")
	fs.IntVar(&cfg.MaxIterations, "max-iterations", cfg.MaxIterations, "iteration budget per pixel, 1 to 65535")
	fs.Var(&cfg.JuliaC, "c", "Julia constant, as re+imi or re,im")
	fs.Var(&cfg.Pattern, "pattern", "Lyapunov forcing pattern, as binary digits or A/B letters")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "render goroutines, 0 for one per CPU")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort a render after this long, 0 for no limit")
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for output images")
	fs.StringVar(&cfg.JuliaOutput, "julia-output", cfg.JuliaOutput, "Julia image file name (.png, .tiff or .bmp)")
	fs.StringVar(&cfg.LyapunovOutput, "lyapunov-output", cfg.LyapunovOutput, "Lyapunov image file name (.png, .tiff or .bmp)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
}

// setup validates the merged configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	level, _ := a.cfg.Level()
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	render.SetLogger(a.log)

	return nil
}

func (a *app) renderCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

func (a *app) write(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	start := time.Now()
	if err := a.sink.Write(img, path); err != nil {
		return err
	}
	a.log.Info("wrote", "path", path, "elapsed", time.Since(start))

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cfg, err := config.Load()
	if err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	err = mainCmd(&cfg, sink.File{}).ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
