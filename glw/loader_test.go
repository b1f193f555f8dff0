package glw

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"dasa.cc/harness/glw/glwtest"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// captureLog sends the default logger to a buffer until the test ends.
func captureLog(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLoadNoContext(t *testing.T) {
	if _, err := Load(nil); !errors.Is(err, ErrNoContext) {
		t.Errorf("have %v, want ErrNoContext", err)
	}
}

func TestLogStrings(t *testing.T) {
	buf := captureLog(t, slog.LevelInfo)
	rec := &glwtest.Recorder{Strings: map[uint32]string{
		gl.RENDERER:                 "llvmpipe",
		gl.SHADING_LANGUAGE_VERSION: "4.60",
	}}

	logStrings(rec)

	out := buf.String()
	t.Log(out)
	for _, want := range []string{"renderer=llvmpipe", "glsl=4.60"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
	if strings.Contains(out, "version=") {
		t.Error("logged a version the driver did not report")
	}
	if n := rec.Count("GetString"); n != 3 {
		t.Errorf("have %v queries, want 3", n)
	}

	buf.Reset()
	logStrings(&glwtest.Recorder{})
	if buf.Len() != 0 {
		t.Errorf("have %q, want nothing logged", buf.String())
	}
}

func TestSamples(t *testing.T) {
	rec := &glwtest.Recorder{Integers: map[uint32]int32{gl.SAMPLES: 4}}
	if n := Samples(rec); n != 4 {
		t.Errorf("have %v samples, want 4", n)
	}
	if c := rec.Find("GetInteger"); len(c) != 1 || c[0].Args[0] != uint32(gl.SAMPLES) {
		t.Errorf("have %v", c)
	}
}

func TestDebug(t *testing.T) {
	buf := captureLog(t, slog.LevelDebug)
	rec := &glwtest.Recorder{}

	prg, err := Build(Debug(rec), "vert", "frag")
	if err != nil {
		t.Fatal(err)
	}
	prg.Delete()

	// every call still reaches the wrapped functions.
	if n := rec.Count("CreateShader"); n != 2 {
		t.Errorf("have %v shaders, want 2", n)
	}
	if n := rec.Live(glwtest.Program); n != 0 {
		t.Errorf("have %v live programs", n)
	}

	out := buf.String()
	lines := strings.Count(out, "\n")
	if lines != len(rec.Calls) {
		t.Errorf("have %v log lines for %v calls", lines, len(rec.Calls))
	}
	for _, want := range []string{"call=CreateShader", "call=LinkProgram", "call=DeleteProgram", "result="} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestDebugQuietAboveDebugLevel(t *testing.T) {
	buf := captureLog(t, slog.LevelInfo)
	fn := Debug(&glwtest.Recorder{})
	fn.Clear(gl.COLOR_BUFFER_BIT)
	fn.DrawArrays(gl.TRIANGLES, 0, 3)
	if buf.Len() != 0 {
		t.Errorf("have %q, want nothing logged", buf.String())
	}
}
