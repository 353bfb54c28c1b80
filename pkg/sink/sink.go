// Package sink persists rendered pixel buffers as lossless image files.
package sink

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrUnsupportedPixelFormat is returned for buffers other than 8-bit gray or RGB.
	ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")

	// ErrUnsupportedExtension is returned when no encoder matches the file name.
	ErrUnsupportedExtension = errors.New("unsupported image extension")
)

// A Sink stores a finished pixel buffer under a path.
type Sink interface {
	Write(img image.Image, path string) error
}

// WriteError reports a failed write of path during Op.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type encodeFunc func(w io.Writer, img image.Image) error

// encoders maps lower-case file extensions to lossless encoders.
var encoders = map[string]encodeFunc{
	"":      png.Encode,
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// File writes images to the local filesystem. The format follows the file
// extension: PNG (also used when there is none), TIFF or BMP.
//
// The image is encoded into a temporary file beside the destination and only
// renamed into place once complete, so a failed write never leaves a partial
// file at path.
type File struct {
	// Perm is applied to written files. Zero means 0o644.
	Perm os.FileMode
}

var _ Sink = File{}

// Write implements Sink. Only *image.Gray and *image.RGBA are accepted.
func (f File) Write(img image.Image, path string) error {
	switch img.(type) {
	case *image.Gray, *image.RGBA:
	default:
		return &WriteError{Op: "encode", Path: path, Err: fmt.Errorf("%w: %T", ErrUnsupportedPixelFormat, img)}
	}

	encode, ok := encoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return &WriteError{Op: "encode", Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(path))}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &WriteError{Op: "create", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := encode(tmp, img); err != nil {
		_ = tmp.Close()
		return &WriteError{Op: "encode", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Op: "close", Path: path, Err: err}
	}

	perm := f.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return &WriteError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &WriteError{Op: "rename", Path: path, Err: err}
	}

	return nil
}
