// Package nui aims to be unremarkable in aiding windowing.
//
// A Window is created with a negotiated Config. Its context is handed out not
// current; making it current against the window's Surface yields a Current,
// the only value able to resolve GL entry points. Start joins the three with
// a Renderer into a Running window whose event loop owns the main thread.
package nui

import (
	"errors"
	"runtime"
)

func init() {
	// GLFW and the GL context are bound to the main thread.
	runtime.LockOSThread()
}

var (
	// ErrNoConfig is returned when the platform offers no usable config.
	ErrNoConfig = errors.New("nui: no compatible config")

	// ErrInvalidSize is returned for a resize with a non-positive dimension.
	ErrInvalidSize = errors.New("nui: invalid surface size")

	// ErrContextUsed is returned when a NotCurrent is made current twice.
	ErrContextUsed = errors.New("nui: context already made current")
)

// Event is delivered to a Running window in platform order.
type Event interface{ event() }

// RedrawRequested asks for a frame to be drawn and presented.
type RedrawRequested struct{}

// Resized reports the new framebuffer size in pixels.
type Resized struct{ Width, Height int }

// Moved reports the new window position; Running ignores it.
type Moved struct{ X, Y int }

// Focused reports a change of input focus; Running ignores it.
type Focused struct{ Focused bool }

func (RedrawRequested) event() {}
func (Resized) event()         {}
func (Moved) event()           {}
func (Focused) event()         {}

// Renderer draws frames into the current context.
type Renderer interface {
	Draw()
	Resize(width, height int)
	Release()
}
