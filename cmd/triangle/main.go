package main

import (
	"flag"
	"log/slog"
	"os"

	"dasa.cc/harness/app"
	"dasa.cc/harness/nui"
	"dasa.cc/harness/render"
)

var (
	flagSamples = flag.Int("samples", 16, "upper bound of multisample counts to try")
	flagProfile = flag.String("cpuprofile", "", "write a CPU profile of the event loop to this directory")
	flagDebug   = flag.Bool("debug", false, "log at debug level")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *flagDebug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	opts := []nui.Option{nui.WithMaxSamples(*flagSamples)}
	if *flagProfile != "" {
		opts = append(opts, nui.WithCPUProfile(*flagProfile))
	}

	if err := app.Run(render.Triangle(), opts...); err != nil {
		slog.Error("Run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
