package render

import (
	"context"
	"fmt"
	"image"

	"github.com/willbeason/fract/pkg/coords"
	"github.com/willbeason/fract/pkg/lyapunov"
	"github.com/willbeason/fract/pkg/palette"
)

// LyapunovParams describes one Lyapunov render.
type LyapunovParams struct {
	Width, Height int
	MaxIterations uint16
	Pattern       lyapunov.Pattern
}

// Lyapunov renders the Lyapunov exponent of the forced logistic map over
// (a, b) in [2, 4]×[2, 4] as an opaque RGB image.
func Lyapunov(ctx context.Context, p LyapunovParams, opts ...Option) (*image.RGBA, error) {
	if err := validate(p.Width, p.Height, p.MaxIterations); err != nil {
		return nil, err
	}
	if p.Pattern.Len() == 0 {
		return nil, fmt.Errorf("%w: %w: empty", ErrInvalidParams, lyapunov.ErrInvalidPattern)
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))

	err := run(ctx, "lyapunov", p.Width, p.Height, opts, func() rowFunc {
		scratch := lyapunov.NewScratch(p.MaxIterations)

		return func(y int) {
			for x := 0; x < p.Width; x++ {
				a, b := coords.Lyapunov(x, y, p.Width, p.Height)
				lambda := lyapunov.Exponent(a, b, p.Pattern, p.MaxIterations, scratch)
				img.SetRGBA(x, y, palette.LyapunovRGB(lambda))
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return img, nil
}
