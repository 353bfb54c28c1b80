package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/fract/pkg/render"
)

func lyapunovCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lyapunov",
		Short: "Render the Lyapunov exponent of the forced logistic map",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.renderLyapunov(cmd.Context())
		},
	}
}

func (a *app) renderLyapunov(ctx context.Context) error {
	p := a.cfg.LyapunovParams()
	a.log.Info("rendering", "fractal", "lyapunov", "width", p.Width, "height", p.Height,
		"max_iterations", p.MaxIterations, "pattern", p.Pattern.String())

	ctx, cancel := a.renderCtx(ctx)
	defer cancel()

	start := time.Now()
	img, err := render.Lyapunov(ctx, p, render.WithWorkers(a.cfg.Workers))
	if err != nil {
		return err
	}
	a.log.Info("rendered", "fractal", "lyapunov", "elapsed", time.Since(start))

	return a.write(img, a.cfg.LyapunovPath())
}
