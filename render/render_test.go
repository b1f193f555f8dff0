package render

import (
	"errors"
	"testing"
	"unsafe"

	"dasa.cc/harness/glw"
	"dasa.cc/harness/glw/glwtest"
	"github.com/go-gl/gl/v4.6-core/gl"
	"golang.org/x/image/math/f32"
)

func newRecorder() *glwtest.Recorder {
	return &glwtest.Recorder{Uniforms: map[string]int32{"matrix": 2}}
}

func mustNew(t *testing.T, fn glw.Functions, v Variant) *Renderer {
	t.Helper()
	r, err := New(fn, v)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestTriangleDraw(t *testing.T) {
	rec := newRecorder()
	r := mustNew(t, rec, Triangle())

	rec.Reset()
	r.Draw()

	draws := rec.Find("DrawArrays")
	if len(draws) != 1 {
		t.Fatalf("have %v DrawArrays, want 1", len(draws))
	}
	if mode, first, count := draws[0].Args[0], draws[0].Args[1], draws[0].Args[2]; mode != uint32(gl.TRIANGLES) || first != int32(0) || count != int32(3) {
		t.Errorf("have %v", draws[0])
	}
	if n := rec.Count("DrawElements"); n != 0 {
		t.Errorf("have %v DrawElements, want 0", n)
	}

	clears := rec.Find("Clear")
	if len(clears) != 1 || clears[0].Args[0] != uint32(gl.COLOR_BUFFER_BIT) {
		t.Errorf("have clears %v", clears)
	}
	colors := rec.Find("ClearColor")
	if len(colors) != 1 {
		t.Fatalf("have %v ClearColor, want 1", len(colors))
	}
	for i, want := range []float32{0.1, 0.1, 0.1, 0.9} {
		if colors[0].Args[i] != want {
			t.Errorf("have clear color %v", colors[0])
		}
	}
	if n := rec.Count("UniformMatrix4fv"); n != 0 {
		t.Errorf("2-D variant uploaded %v matrices", n)
	}
	if rec.Index("UseProgram", 0) > rec.Index("DrawArrays", 0) {
		t.Error("program not in use before draw")
	}
}

func TestTriangleMesh(t *testing.T) {
	rec := newRecorder()
	mustNew(t, rec, Triangle())

	uploads := rec.Find("NamedBufferStorage")
	if len(uploads) != 1 {
		t.Fatalf("have %v uploads, want 1", len(uploads))
	}
	data := uploads[0].Args[1].([]byte)
	if len(data) != 3*int(unsafe.Sizeof(Vertex2{})) {
		t.Errorf("have %v bytes", len(data))
	}
	mem := unsafe.Slice((*byte)(unsafe.Pointer(&triangleVertices[0])), len(data))
	if string(data) != string(mem) {
		t.Error("uploaded bytes differ from vertex records")
	}

	vb := rec.Find("VertexArrayVertexBuffer")
	if len(vb) != 1 || vb[0].Args[1] != uint32(0) || vb[0].Args[4] != int32(unsafe.Sizeof(Vertex2{})) {
		t.Errorf("have %v", vb)
	}
	offsets := map[int32]uint32{
		rec.Attribs["position"]: uint32(unsafe.Offsetof(Vertex2{}.Position)),
		rec.Attribs["color"]:    uint32(unsafe.Offsetof(Vertex2{}.Color)),
	}
	sizes := map[int32]int32{rec.Attribs["position"]: 2, rec.Attribs["color"]: 3}
	for _, c := range rec.Find("VertexArrayAttribFormat") {
		index := int32(c.Args[1].(uint32))
		if c.Args[2] != sizes[index] || c.Args[3] != uint32(gl.FLOAT) || c.Args[4] != false || c.Args[5] != offsets[index] {
			t.Errorf("have %v", c)
		}
	}
	if n := rec.Count("VertexArrayElementBuffer"); n != 0 {
		t.Errorf("non-indexed variant bound %v element buffers", n)
	}
}

func TestTetrahedronDraw(t *testing.T) {
	rec := newRecorder()
	r := mustNew(t, rec, Tetrahedron())
	if n := rec.Count("VertexArrayElementBuffer"); n != 1 {
		t.Errorf("have %v element buffer bindings, want 1", n)
	}
	if calls := rec.Find("Enable"); len(calls) != 1 || calls[0].Args[0] != uint32(gl.DEPTH_TEST) {
		t.Errorf("have %v", calls)
	}

	rec.Reset()
	r.Draw()

	draws := rec.Find("DrawElements")
	if len(draws) != 1 {
		t.Fatalf("have %v DrawElements, want 1", len(draws))
	}
	if count, typ := draws[0].Args[1], draws[0].Args[2]; count != int32(12) || typ != uint32(gl.UNSIGNED_INT) {
		t.Errorf("have %v", draws[0])
	}
	if n := rec.Count("DrawArrays"); n != 0 {
		t.Errorf("have %v DrawArrays, want 0", n)
	}

	upload := rec.Index("UniformMatrix4fv", 0)
	if upload < 0 || upload > rec.Index("DrawElements", 0) {
		t.Fatalf("matrix not uploaded before draw: %v", rec.Calls)
	}
	c := rec.Calls[upload]
	if c.Args[0] != int32(2) {
		t.Errorf("have location %v, want 2", c.Args[0])
	}
	want := glw.Mul16fv(glw.Perspective16fv(glw.Radians(45), 800.0/600.0, 0.1, 100),
		glw.Mul16fv(glw.Translate16fv(glw.Vec3(0, 0, -3)), glw.RotateX16fv(glw.Radians(-95))))
	if c.Args[1] != want {
		t.Errorf("have matrix %v, want %v", c.Args[1], want)
	}

	if clears := rec.Find("Clear"); len(clears) != 1 || clears[0].Args[0] != uint32(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT) {
		t.Errorf("have clears %v", clears)
	}

	// the location is looked up once across frames.
	r.Draw()
	r.Draw()
	if n := rec.Count("GetUniformLocation"); n != 1 {
		t.Errorf("have %v location lookups, want 1", n)
	}
}

func TestDrawWithClearColor(t *testing.T) {
	rec := newRecorder()
	r := mustNew(t, rec, Triangle())
	rec.Reset()

	r.DrawWithClearColor(1, 0.5, 0.25, 1)
	colors := rec.Find("ClearColor")
	if len(colors) != 1 || colors[0].Args[0] != float32(1) || colors[0].Args[1] != float32(0.5) || colors[0].Args[2] != float32(0.25) {
		t.Errorf("have %v", colors)
	}
}

func TestResize(t *testing.T) {
	for _, v := range []Variant{Triangle(), Tetrahedron()} {
		t.Run(v.Name, func(t *testing.T) {
			rec := newRecorder()
			r := mustNew(t, rec, v)

			for _, sz := range [][2]int32{{1, 1}, {640, 480}, {1920, 1080}, {7, 3000}} {
				r.Resize(int(sz[0]), int(sz[1]))
				if have, want := r.Viewport(), [4]int32{0, 0, sz[0], sz[1]}; have != want {
					t.Errorf("have viewport %v, want %v", have, want)
				}
				calls := rec.Find("Viewport")
				last := calls[len(calls)-1]
				if last.Args[2] != sz[0] || last.Args[3] != sz[1] {
					t.Errorf("have %v", last)
				}
			}

			r.Resize(300, 200)
			once := r.Viewport()
			r.Resize(300, 200)
			if r.Viewport() != once {
				t.Errorf("resize not idempotent: %v %v", once, r.Viewport())
			}

			n := rec.Count("Viewport")
			for _, sz := range [][2]int{{0, 0}, {0, 200}, {300, 0}, {-5, -5}} {
				r.Resize(sz[0], sz[1])
			}
			if r.Viewport() != once {
				t.Errorf("zero resize changed viewport to %v", r.Viewport())
			}
			if rec.Count("Viewport") != n {
				t.Error("zero resize reached GL")
			}
		})
	}
}

func TestResizeAspect(t *testing.T) {
	rec := newRecorder()
	r := mustNew(t, rec, Tetrahedron())

	r.Resize(400, 400)
	square := r.Matrix()
	r.Resize(800, 400)
	wide := r.Matrix()

	// widening halves the x scale and leaves y alone.
	if square[5] != wide[5] {
		t.Errorf("y scale changed: %v %v", square[5], wide[5])
	}
	if d := square[0] - 2*wide[0]; d > 1e-6 || d < -1e-6 {
		t.Errorf("have x scale %v, want %v", wide[0], square[0]/2)
	}
}

func TestRelease(t *testing.T) {
	tests := []struct {
		v       Variant
		buffers int
	}{
		{Triangle(), 1},
		{Tetrahedron(), 2},
	}
	for _, tt := range tests {
		t.Run(tt.v.Name, func(t *testing.T) {
			rec := newRecorder()
			r := mustNew(t, rec, tt.v)
			r.Draw()
			r.Release()
			r.Release()

			for kind, want := range map[string]int{
				glwtest.Program:     1,
				glwtest.Buffer:      tt.buffers,
				glwtest.VertexArray: 1,
			} {
				if n := rec.Created(kind); n != want {
					t.Errorf("created %v %s, want %v", n, kind, want)
				}
				if n := rec.Deleted(kind); n != want {
					t.Errorf("deleted %v %s, want %v", n, kind, want)
				}
				if n := rec.Live(kind); n != 0 {
					t.Errorf("leaked %v %s", n, kind)
				}
			}
			if n := rec.Live(glwtest.Shader); n != 0 {
				t.Errorf("leaked %v shaders", n)
			}
			if len(rec.Errors) != 0 {
				t.Error(rec.Errors)
			}

			// program, then buffers, then vertex array.
			prg, buf, vao := rec.Index("DeleteProgram", 0), rec.Index("DeleteBuffer", 0), rec.Index("DeleteVertexArray", 0)
			if !(prg < buf && buf < vao) {
				t.Errorf("delete order program %v buffer %v vertex array %v", prg, buf, vao)
			}
		})
	}
}

func TestNewShaderError(t *testing.T) {
	rec := newRecorder()
	rec.FailCompile = map[uint32]string{gl.VERTEX_SHADER: "0:3: 'matrix' undeclared"}

	_, err := New(rec, Tetrahedron())
	var serr *glw.ShaderError
	if !errors.As(err, &serr) {
		t.Fatalf("have %v, want shader error", err)
	}
	t.Log(err)
	for _, kind := range []string{glwtest.Shader, glwtest.Program, glwtest.Buffer, glwtest.VertexArray} {
		if n := rec.Live(kind); n != 0 {
			t.Errorf("leaked %v %s", n, kind)
		}
	}
}

func TestNewInactiveAttrib(t *testing.T) {
	rec := newRecorder()
	rec.Attribs = map[string]int32{"position": 0, "color": -1}

	if _, err := New(rec, Tetrahedron()); err == nil {
		t.Fatal("expected error")
	}
	for _, kind := range []string{glwtest.Program, glwtest.Buffer, glwtest.VertexArray} {
		if n := rec.Live(kind); n != 0 {
			t.Errorf("leaked %v %s", n, kind)
		}
	}
	if len(rec.Errors) != 0 {
		t.Error(rec.Errors)
	}
}

func TestSetModel(t *testing.T) {
	rec := newRecorder()
	r := mustNew(t, rec, Tetrahedron())
	r.SetModel(glw.Ident16fv())
	rec.Reset()
	r.Draw()

	want := glw.Mul16fv(glw.Perspective16fv(glw.Radians(45), 800.0/600.0, 0.1, 100), glw.Translate16fv(f32.Vec3{0, 0, -3}))
	if c := rec.Find("UniformMatrix4fv"); len(c) != 1 || c[0].Args[1] != want {
		t.Errorf("have %v", c)
	}
}

func TestSamples(t *testing.T) {
	rec := newRecorder()
	rec.Integers = map[uint32]int32{gl.SAMPLES: 8}
	r := mustNew(t, rec, Triangle())
	if n := r.Samples(); n != 8 {
		t.Errorf("have %v samples, want 8", n)
	}
}

func TestDebugFunctions(t *testing.T) {
	rec := newRecorder()
	r := mustNew(t, glw.Debug(rec), Tetrahedron())
	r.Draw()
	r.Release()

	if n := rec.Count("DrawElements"); n != 1 {
		t.Errorf("have %v DrawElements through debug functions, want 1", n)
	}
	for _, kind := range []string{glwtest.Program, glwtest.Buffer, glwtest.VertexArray} {
		if n := rec.Live(kind); n != 0 {
			t.Errorf("leaked %v %s", n, kind)
		}
	}
}
