package nui

import (
	"errors"
	"fmt"
)

var errSurfaceMismatch = errors.New("nui: surface and context belong to different windows")

// Surface is the presentable framebuffer of a window.
type Surface struct {
	native        native
	width, height int
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// Resize sets the surface size. Non-positive dimensions are rejected with
// ErrInvalidSize and leave the size unchanged.
func (s *Surface) Resize(ctx *Current, width, height int) error {
	if ctx == nil || ctx.native != s.native {
		return errSurfaceMismatch
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("nui: resize %vx%v: %w", width, height, ErrInvalidSize)
	}
	s.width, s.height = width, height
	return nil
}

// SwapBuffers presents the back buffer rendered with ctx.
func (s *Surface) SwapBuffers(ctx *Current) error {
	if ctx == nil || ctx.native != s.native {
		return errSurfaceMismatch
	}
	s.native.SwapBuffers()
	return nil
}
