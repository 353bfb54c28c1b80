package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/fract/pkg/render"
)

func juliaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "julia",
		Short: "Render the escape-time map of z² + c",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.renderJulia(cmd.Context())
		},
	}
}

func (a *app) renderJulia(ctx context.Context) error {
	p := a.cfg.JuliaParams()
	a.log.Info("rendering", "fractal", "julia", "width", p.Width, "height", p.Height,
		"max_iterations", p.MaxIterations, "c", a.cfg.JuliaC.String())

	ctx, cancel := a.renderCtx(ctx)
	defer cancel()

	start := time.Now()
	img, err := render.Julia(ctx, p, render.WithWorkers(a.cfg.Workers))
	if err != nil {
		return err
	}
	a.log.Info("rendered", "fractal", "julia", "elapsed", time.Since(start))

	return a.write(img, a.cfg.JuliaPath())
}
