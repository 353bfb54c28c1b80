package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/willbeason/fract/internal/config"
	"github.com/willbeason/fract/pkg/render"
	"github.com/willbeason/fract/pkg/sink"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { render.SetLogger(nil) })

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := mainCmd(&cfg, sink.File{})
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRenderBoth(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--resolution", "16x12", "--max-iterations", "32", "--output-dir", dir)
	if err != nil {
		t.Fatalf("execute() error = %v\n%s", err, out)
	}

	julia := decodePNG(t, filepath.Join(dir, "julia.png"))
	if _, ok := julia.(*image.Gray); !ok {
		t.Errorf("julia.png decoded as %T, want grayscale", julia)
	}
	if got := julia.Bounds(); got != image.Rect(0, 0, 16, 12) {
		t.Errorf("julia.png bounds = %v, want 16x12", got)
	}

	lyap := decodePNG(t, filepath.Join(dir, "lyapunov.png"))
	if got := lyap.Bounds(); got != image.Rect(0, 0, 16, 12) {
		t.Errorf("lyapunov.png bounds = %v, want 16x12", got)
	}

	for _, want := range []string{"fractal=julia", "fractal=lyapunov", "wrote"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestJuliaOnly(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "julia", "--width", "8", "--height", "8", "--c", "-0.8,0.156",
		"--julia-output", "j.tiff", "--output-dir", dir, "--log-level", "error")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "j.tiff")); err != nil {
		t.Errorf("julia output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "lyapunov.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("julia subcommand wrote lyapunov output: %v", err)
	}
}

func TestLyapunovOnly(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "lyapunov", "--resolution", "8x4", "--pattern", "AB",
		"--lyapunov-output", "l.bmp", "--output-dir", dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "l.bmp")); err != nil {
		t.Errorf("lyapunov output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "julia.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("lyapunov subcommand wrote julia output: %v", err)
	}
}

func TestEnvOverriddenByFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FRACT_WIDTH", "3")
	t.Setenv("FRACT_HEIGHT", "3")
	t.Setenv("FRACT_OUTPUT_DIR", dir)

	if _, err := execute(t, "julia", "--width", "5"); err != nil {
		t.Fatal(err)
	}

	if got := decodePNG(t, filepath.Join(dir, "julia.png")).Bounds(); got != image.Rect(0, 0, 5, 3) {
		t.Errorf("bounds = %v, want 5x3", got)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{"--width", "0"},
		{"--max-iterations", "0"},
		{"--max-iterations", "70000"},
		{"--log-level", "loud"},
	} {
		_, err := execute(t, append(args, "--output-dir", dir)...)
		if !errors.Is(err, config.ErrInvalid) {
			t.Errorf("execute(%v) error = %v, want config.ErrInvalid", args, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("invalid configuration still wrote %d files", len(entries))
	}
}

func TestMalformedFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--pattern", "012"},
		{"--c", "nope"},
		{"--resolution", "big"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("execute(%v) should fail", args)
		}
	}
}

func TestTimeout(t *testing.T) {
	_, err := execute(t, "lyapunov", "--resolution", "500x500", "--max-iterations", "2000",
		"--timeout", "1ns", "--output-dir", t.TempDir())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("execute() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestOutputFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "julia", "--resolution", "4x4", "--output-dir", file)
	if err == nil {
		t.Fatal("expected error writing beneath a regular file")
	}
}

func TestUnsupportedExtension(t *testing.T) {
	_, err := execute(t, "julia", "--resolution", "4x4", "--julia-output", "j.jpg", "--output-dir", t.TempDir())

	var we *sink.WriteError
	if !errors.As(err, &we) || !errors.Is(err, sink.ErrUnsupportedExtension) {
		t.Errorf("execute() error = %v, want sink.ErrUnsupportedExtension", err)
	}
}
