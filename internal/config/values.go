package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/willbeason/fract/pkg/lyapunov"
)

// Complex is a complex64 readable from the environment and from flags.
// It accepts Go notation ("-0.4+0.6i", "(-0.4+0.6i)") or a comma-separated
// pair ("-0.4,0.6").
type Complex complex64

var _ pflag.Value = (*Complex)(nil)

func (c *Complex) Set(s string) error {
	s = strings.TrimSpace(s)

	if re, im, ok := strings.Cut(s, ","); ok {
		r, err := strconv.ParseFloat(strings.TrimSpace(re), 32)
		if err != nil {
			return fmt.Errorf("complex %q: %w", s, err)
		}
		i, err := strconv.ParseFloat(strings.TrimSpace(im), 32)
		if err != nil {
			return fmt.Errorf("complex %q: %w", s, err)
		}
		*c = Complex(complex(float32(r), float32(i)))
		return nil
	}

	v, err := strconv.ParseComplex(s, 64)
	if err != nil {
		return fmt.Errorf("complex %q: %w", s, err)
	}
	*c = Complex(complex64(v))
	return nil
}

func (c *Complex) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

func (c *Complex) String() string {
	return strconv.FormatComplex(complex128(*c), 'g', -1, 64)
}

func (c *Complex) Type() string {
	return "complex"
}

// Pattern is a forcing pattern readable from the environment and from flags,
// in any form lyapunov.ParsePattern accepts.
type Pattern struct {
	lyapunov.Pattern
}

var _ pflag.Value = (*Pattern)(nil)

func (p *Pattern) Set(s string) error {
	parsed, err := lyapunov.ParsePattern(s)
	if err != nil {
		return err
	}
	p.Pattern = parsed
	return nil
}

func (p *Pattern) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

func (p *Pattern) Type() string {
	return "pattern"
}

// Resolution is a pflag.Value writing "WxH" into a width and height.
type Resolution struct {
	Width, Height *int
}

var _ pflag.Value = Resolution{}

func (r Resolution) Set(s string) error {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return fmt.Errorf("resolution %q: want WIDTHxHEIGHT", s)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return fmt.Errorf("resolution %q: width: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return fmt.Errorf("resolution %q: height: %w", s, err)
	}

	*r.Width, *r.Height = width, height
	return nil
}

func (r Resolution) String() string {
	if r.Width == nil || r.Height == nil {
		return ""
	}
	return fmt.Sprintf("%dx%d", *r.Width, *r.Height)
}

func (r Resolution) Type() string {
	return "WxH"
}
