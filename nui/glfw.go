package nui

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	pollEvents           = glfw.PollEvents
	waitEvents           = glfw.WaitEvents
	getProcAddress       = glfw.GetProcAddress
	detachCurrentContext = glfw.DetachCurrentContext
	terminate            = glfw.Terminate
)

// native is the part of *glfw.Window used once a window exists.
type native interface {
	MakeContextCurrent()
	SwapBuffers()
	GetFramebufferSize() (width, height int)
	ShouldClose() bool
	Destroy()
}

// Window is a native window that has not yet started its event loop.
type Window struct {
	native native
	cfg    Config
	opts   Options

	// events posted by callbacks and not yet dispatched.
	events []Event
}

// Create opens a window titled title with the config of the highest sample
// count the platform offers.
func Create(title string, opts ...Option) (*Window, Config, error) {
	o := newOptions(opts...)

	if err := glfw.Init(); err != nil {
		return nil, Config{}, fmt.Errorf("nui: init glfw: %w", err)
	}

	cfg, err := ChooseConfig(candidates(videoDepths(), o.MaxSamples, o.Major, o.Minor))
	if err != nil {
		terminate()
		return nil, Config{}, err
	}
	slog.Info("Chose config", slog.String("config", cfg.String()))

	hint(cfg)
	win, err := glfw.CreateWindow(o.Width, o.Height, title, nil, nil)
	if err != nil {
		terminate()
		return nil, Config{}, fmt.Errorf("nui: create window: %w", err)
	}

	w := &Window{native: win, cfg: cfg, opts: o}
	w.listen(win)
	return w, cfg, nil
}

// videoDepths returns the color depths of the primary monitor, current mode first.
func videoDepths() []colorDepth {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return nil
	}
	var ds []colorDepth
	if m := mon.GetVideoMode(); m != nil {
		ds = append(ds, colorDepth{m.RedBits, m.GreenBits, m.BlueBits})
	}
	for _, m := range mon.GetVideoModes() {
		ds = append(ds, colorDepth{m.RedBits, m.GreenBits, m.BlueBits})
	}
	return ds
}

func hint(cfg Config) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.RedBits, cfg.RedBits)
	glfw.WindowHint(glfw.GreenBits, cfg.GreenBits)
	glfw.WindowHint(glfw.BlueBits, cfg.BlueBits)
	glfw.WindowHint(glfw.AlphaBits, cfg.AlphaBits)
	glfw.WindowHint(glfw.DepthBits, cfg.DepthBits)
	glfw.WindowHint(glfw.StencilBits, cfg.StencilBits)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
}

func (w *Window) listen(win *glfw.Window) {
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.post(Resized{Width: width, Height: height})
	})
	win.SetRefreshCallback(func(_ *glfw.Window) {
		w.post(RedrawRequested{})
	})
	win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		w.post(Moved{X: x, Y: y})
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.post(Focused{Focused: focused})
	})
}

// post queues ev for dispatch. Pending redraw requests are coalesced.
func (w *Window) post(ev Event) {
	if _, ok := ev.(RedrawRequested); ok {
		for _, pending := range w.events {
			if _, ok := pending.(RedrawRequested); ok {
				return
			}
		}
	}
	w.events = append(w.events, ev)
}

// CreateContext returns the window's context, not yet current on any thread.
func (w *Window) CreateContext(cfg Config) (*NotCurrent, error) {
	if err := w.check(cfg); err != nil {
		return nil, err
	}
	return &NotCurrent{native: w.native, cfg: cfg}, nil
}

// CreateSurface returns the window's presentable surface sized to its
// current framebuffer.
func (w *Window) CreateSurface(cfg Config) (*Surface, error) {
	if err := w.check(cfg); err != nil {
		return nil, err
	}
	width, height := w.native.GetFramebufferSize()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("nui: create surface %vx%v: %w", width, height, ErrInvalidSize)
	}
	return &Surface{native: w.native, width: width, height: height}, nil
}

func (w *Window) check(cfg Config) error {
	if w.native == nil {
		return fmt.Errorf("nui: window destroyed")
	}
	if cfg != w.cfg {
		return fmt.Errorf("nui: config %v was not negotiated for this window", cfg)
	}
	return nil
}

// Destroy closes the window and terminates GLFW. It is safe to call more than once.
func (w *Window) Destroy() {
	if w.native == nil {
		return
	}
	detachCurrentContext()
	w.native.Destroy()
	w.native = nil
	terminate()
}
