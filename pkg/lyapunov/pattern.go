package lyapunov

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned when a forcing pattern is empty or holds a
// choice other than 0 or 1.
var ErrInvalidPattern = errors.New("invalid forcing pattern")

// Default is the forcing pattern AB ABB.
var Default = Pattern{choices: []uint8{0, 1, 0, 1, 1}}

// A Pattern is a cyclic sequence of binary choices selecting, for each step of
// the logistic map, which of the two parameters drives it. Choice 0 selects a,
// choice 1 selects b.
//
// The zero Pattern is empty and invalid; build one with NewPattern or
// ParsePattern. A Pattern never changes after construction and is safe to share
// between goroutines.
type Pattern struct {
	choices []uint8
}

// NewPattern copies choices into a Pattern.
func NewPattern(choices ...uint8) (Pattern, error) {
	if len(choices) == 0 {
		return Pattern{}, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	for i, c := range choices {
		if c > 1 {
			return Pattern{}, fmt.Errorf("%w: choice %d at position %d, want 0 or 1", ErrInvalidPattern, c, i)
		}
	}

	return Pattern{choices: append([]uint8(nil), choices...)}, nil
}

// ParsePattern reads a pattern written as binary digits ("01011"), as the
// letters A and B ("ABABB"), or either separated by commas or spaces
// ("0,1,0,1,1").
func ParsePattern(s string) (Pattern, error) {
	var choices []uint8

	for _, r := range s {
		switch r {
		case '0', 'a', 'A':
			choices = append(choices, 0)
		case '1', 'b', 'B':
			choices = append(choices, 1)
		case ',', ' ', '\t', '[', ']':
		default:
			return Pattern{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidPattern, r, s)
		}
	}

	return NewPattern(choices...)
}

// Len is the period of the pattern.
func (p Pattern) Len() int {
	return len(p.choices)
}

// At returns the choice governing step n. Indexing wraps modulo Len.
func (p Pattern) At(n int) uint8 {
	return p.choices[n%len(p.choices)]
}

// R returns the map coefficient for step n: a when the choice is 0, b otherwise.
func (p Pattern) R(n int, a, b float32) float32 {
	if p.At(n) == 0 {
		return a
	}
	return b
}

// Choices returns a copy of the pattern's choices.
func (p Pattern) Choices() []uint8 {
	return append([]uint8(nil), p.choices...)
}

// String renders the pattern as binary digits, the form ParsePattern reads.
func (p Pattern) String() string {
	var sb strings.Builder
	for _, c := range p.choices {
		sb.WriteByte('0' + c)
	}
	return sb.String()
}
