package nui

import (
	"log/slog"

	"github.com/pkg/profile"
)

// Running is a window with a current context, surface and renderer, ready to
// run its event loop. All fields are set by Start.
type Running struct {
	win      *Window
	ctx      *Current
	surface  *Surface
	renderer Renderer
}

// Start joins w with its current context, surface and renderer.
func (w *Window) Start(ctx *Current, surface *Surface, r Renderer) *Running {
	return &Running{win: w, ctx: ctx, surface: surface, renderer: r}
}

// RequestRedraw queues a RedrawRequested unless one is pending.
func (r *Running) RequestRedraw() { r.win.post(RedrawRequested{}) }

// Run dispatches events until the window is asked to close, blocking while
// no event is pending. On return the renderer is released while its context
// is still current, then the window is destroyed.
func (r *Running) Run() {
	if dir := r.win.opts.ProfilePath; dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook).Stop()
	}
	defer r.win.Destroy()
	defer r.renderer.Release()

	r.RequestRedraw()
	for !r.win.native.ShouldClose() {
		if len(r.win.events) > 0 {
			pollEvents()
		} else {
			waitEvents()
		}
		r.dispatch()
	}
	slog.Debug("Event loop done")
}

// dispatch handles events queued so far. Events posted while dispatching wait
// for the next call.
func (r *Running) dispatch() {
	events := r.win.events
	r.win.events = nil
	for _, ev := range events {
		r.handle(ev)
	}
}

func (r *Running) handle(ev Event) {
	switch ev := ev.(type) {
	case RedrawRequested:
		r.renderer.Draw()
		r.RequestRedraw()
		if err := r.surface.SwapBuffers(r.ctx); err != nil {
			slog.Warn("Swap buffers", slog.String("error", err.Error()))
		}
	case Resized:
		if err := r.surface.Resize(r.ctx, ev.Width, ev.Height); err != nil {
			slog.Debug("Ignore resize", slog.String("error", err.Error()))
			return
		}
		r.renderer.Resize(ev.Width, ev.Height)
	}
}
