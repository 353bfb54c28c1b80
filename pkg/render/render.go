// Package render fills pixel buffers with escape-time and Lyapunov fractals.
//
// Rows are handed out to a fixed set of workers. Each row is written by exactly
// one worker and every worker reads only immutable parameters, so the buffer
// needs no locking and the result is identical for any worker count.
package render

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidParams is returned before any pixel work when the resolution or
// iteration budget cannot be rendered.
var ErrInvalidParams = errors.New("invalid render parameters")

// bytesPerPixel bounds the buffer size check; RGBA is the widest buffer.
const bytesPerPixel = 4

type options struct {
	workers int
}

// An Option configures a render.
type Option func(*options)

// WithWorkers sets the number of goroutines computing rows. Zero or a negative
// count uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func validate(width, height int, maxIterations uint16) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: resolution %dx%d must be positive", ErrInvalidParams, width, height)
	case width > math.MaxInt/bytesPerPixel/height:
		return fmt.Errorf("%w: resolution %dx%d is too large", ErrInvalidParams, width, height)
	case maxIterations == 0:
		return fmt.Errorf("%w: iteration budget must be at least 1", ErrInvalidParams)
	}
	return nil
}

// workerCount resolves the requested count against the number of rows.
func workerCount(requested, rows int) int {
	n := requested
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(1, min(n, rows))
}

// A rowFunc computes and stores every pixel of row y.
type rowFunc func(y int)

// rows calls a rowFunc once for every y in [0, height). newWorker is called
// once per worker, so state captured by the returned rowFunc is private to
// that worker.
//
// The context is checked before every row. On cancellation rows returns the
// context's error and the rows already written must be discarded.
func rows(ctx context.Context, height, workers int, newWorker func() rowFunc) error {
	g, ctx := errgroup.WithContext(ctx)

	yChannel := make(chan int)
	g.Go(func() error {
		defer close(yChannel)
		for y := 0; y < height; y++ {
			select {
			case yChannel <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range workers {
		row := newWorker()
		g.Go(func() error {
			for y := range yChannel {
				if err := ctx.Err(); err != nil {
					return err
				}
				row(y)
			}
			return nil
		})
	}

	return g.Wait()
}

// run resolves options, fans rows out and logs the outcome.
func run(ctx context.Context, fractal string, width, height int, opts []Option, newWorker func() rowFunc) error {
	o := newOptions(opts)
	workers := workerCount(o.workers, height)

	start := time.Now()
	err := rows(ctx, height, workers, newWorker)

	log := Logger().With("fractal", fractal, "width", width, "height", height, "workers", workers)
	if err != nil {
		log.Debug("render aborted", "err", err)
		return fmt.Errorf("render %s: %w", fractal, err)
	}
	log.Debug("render finished", "elapsed", time.Since(start))

	return nil
}
