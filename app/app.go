// Package app runs a render variant in a native window.
package app

import (
	"fmt"
	"log/slog"

	"dasa.cc/harness/nui"
	"dasa.cc/harness/render"
)

// Run opens a window titled after v, draws v until the window is closed and
// releases every resource before returning. Setup errors are returned with
// nothing left open.
func Run(v render.Variant, opts ...nui.Option) error {
	win, cfg, err := nui.Create(v.Name, opts...)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	running, err := start(win, cfg, v)
	if err != nil {
		win.Destroy()
		return err
	}

	running.Run()
	return nil
}

func start(win *nui.Window, cfg nui.Config, v render.Variant) (*nui.Running, error) {
	notCurrent, err := win.CreateContext(cfg)
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}

	surface, err := win.CreateSurface(cfg)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}

	ctx, err := notCurrent.MakeCurrent(surface)
	if err != nil {
		return nil, fmt.Errorf("make current: %w", err)
	}

	r, err := render.Load(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("load renderer: %w", err)
	}

	samples := r.Samples()
	if samples != cfg.Samples {
		slog.Warn("Samples differ from config", slog.Int("requested", cfg.Samples), slog.Int("effective", samples))
	}

	width, height := surface.Size()
	r.Resize(width, height)
	slog.Info("Start", slog.String("variant", v.Name), slog.Int("width", width), slog.Int("height", height), slog.Int("samples", samples))

	return win.Start(ctx, surface, r), nil
}
