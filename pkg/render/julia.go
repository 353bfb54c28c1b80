package render

import (
	"context"
	"image"

	"github.com/willbeason/fract/pkg/coords"
	"github.com/willbeason/fract/pkg/escape"
	"github.com/willbeason/fract/pkg/palette"
)

// DefaultJuliaC is the Julia constant rendered when none is given.
const DefaultJuliaC complex64 = complex(-0.4, 0.6)

// JuliaParams describes one escape-time render.
type JuliaParams struct {
	Width, Height int
	MaxIterations uint16
	C             complex64
}

// Julia renders the filled Julia set of z² + C over [-2, 2]×[-2, 2] as a
// grayscale image whose levels are escape indices.
func Julia(ctx context.Context, p JuliaParams, opts ...Option) (*image.Gray, error) {
	if err := validate(p.Width, p.Height, p.MaxIterations); err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, p.Width, p.Height))

	err := run(ctx, "julia", p.Width, p.Height, opts, func() rowFunc {
		return func(y int) {
			row := img.Pix[y*img.Stride : y*img.Stride+p.Width]
			for x := range row {
				cx, cy := coords.Julia(x, y, p.Width, p.Height)
				i := escape.Index(complex(cx, cy), p.C, p.MaxIterations)
				row[x] = palette.Luma(i, p.MaxIterations)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return img, nil
}
