package nui

import (
	"runtime"
	"unsafe"
)

// NotCurrent is a context that is not current on any thread and can not be
// used for drawing.
type NotCurrent struct {
	native native
	cfg    Config
}

// MakeCurrent activates the context on the calling thread against s. The
// calling goroutine is locked to its OS thread. A NotCurrent is consumed by
// a successful call.
func (c *NotCurrent) MakeCurrent(s *Surface) (*Current, error) {
	if c.native == nil {
		return nil, ErrContextUsed
	}
	if s == nil || s.native != c.native {
		return nil, errSurfaceMismatch
	}
	runtime.LockOSThread()
	c.native.MakeContextCurrent()

	cur := &Current{native: c.native, cfg: c.cfg, surface: s}
	c.native = nil
	return cur, nil
}

// Current is a context current on the calling thread. GL entry points may only
// be resolved and called through a Current.
type Current struct {
	native  native
	cfg     Config
	surface *Surface
}

// ProcAddress returns the address of the named GL function.
func (c *Current) ProcAddress(name string) unsafe.Pointer { return getProcAddress(name) }

func (c *Current) Config() Config { return c.cfg }

// Surface returns the surface the context is current against.
func (c *Current) Surface() *Surface { return c.surface }

// MakeCurrent rebinds the context against s on the calling thread.
func (c *Current) MakeCurrent(s *Surface) error {
	if s == nil || s.native != c.native {
		return errSurfaceMismatch
	}
	c.native.MakeContextCurrent()
	c.surface = s
	return nil
}
