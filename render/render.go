// Package render draws one static mesh with one shader program.
package render

import (
	"context"
	"fmt"
	"log/slog"

	"dasa.cc/harness/glw"
	"github.com/go-gl/gl/v4.6-core/gl"
	"golang.org/x/image/math/f32"
)

// DefaultClearColor is the RGBA color Draw clears to.
var DefaultClearColor = [4]float32{0.1, 0.1, 0.1, 0.9}

// Renderer owns the program, vertex array and buffers of a Variant.
// Methods must be called on the thread the context is current on.
type Renderer struct {
	fn      glw.Functions
	variant Variant

	prg  glw.Program
	mesh glw.Mesh
	vao  glw.VertexArray

	ClearColor [4]float32

	model, view   f32.Mat4
	width, height int

	released bool
}

// Load resolves GL functions through the current context p and returns a
// Renderer for v. When the default logger is enabled at debug level every
// GL call is traced.
func Load(p glw.ProcAddresser, v Variant) (*Renderer, error) {
	d, err := glw.Load(p)
	if err != nil {
		return nil, err
	}
	var fn glw.Functions = d
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		fn = glw.Debug(fn)
	}
	return New(fn, v)
}

// New compiles v's shaders and uploads its mesh. Construction either
// succeeds or deletes every object it created.
func New(fn glw.Functions, v Variant) (_ *Renderer, err error) {
	r := &Renderer{
		fn:         fn,
		variant:    v,
		ClearColor: DefaultClearColor,
		model:      glw.RotateX16fv(glw.Radians(-95)),
		view:       glw.Translate16fv(glw.Vec3(0, 0, -3)),
		width:      800,
		height:     600,
	}

	if v.Perspective {
		fn.Enable(gl.DEPTH_TEST)
	}

	if r.prg, err = glw.Install(fn, v.Vert, v.Frag); err != nil {
		return nil, fmt.Errorf("render: build %s program: %w", v.Name, err)
	}
	defer func() {
		if err != nil {
			r.prg.Delete()
		}
	}()

	if r.mesh, err = v.Mesh(fn); err != nil {
		return nil, fmt.Errorf("render: upload %s mesh: %w", v.Name, err)
	}
	defer func() {
		if err != nil {
			r.mesh.Delete()
		}
	}()

	if r.vao, err = glw.NewVertexArray(fn, r.prg, r.mesh.Vertices, r.mesh.Layout, r.mesh.Indices); err != nil {
		return nil, fmt.Errorf("render: %s vertex array: %w", v.Name, err)
	}

	slog.Debug("Renderer ready",
		slog.String("variant", v.Name),
		slog.Int("count", int(r.vao.Count())),
		slog.Bool("indexed", r.vao.Indexed()),
	)
	return r, nil
}

// SetModel sets the model transform of perspective variants.
func (r *Renderer) SetModel(m f32.Mat4) { r.model = m }

// Matrix returns projection × view × model for the current viewport.
func (r *Renderer) Matrix() f32.Mat4 {
	proj := glw.Perspective16fv(glw.Radians(45), float32(r.width)/float32(r.height), 0.1, 100)
	return glw.Mul16fv(proj, glw.Mul16fv(r.view, r.model))
}

// Draw draws a frame cleared to ClearColor.
func (r *Renderer) Draw() {
	c := r.ClearColor
	r.DrawWithClearColor(c[0], c[1], c[2], c[3])
}

// DrawWithClearColor clears to the given color and issues one draw call.
// Presenting the frame is left to the caller.
func (r *Renderer) DrawWithClearColor(red, green, blue, alpha float32) {
	r.prg.Use()
	r.vao.Bind()

	r.fn.ClearColor(red, green, blue, alpha)
	if r.variant.Perspective {
		r.fn.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		u := r.prg.Uniform16fv("matrix")
		u.Set(r.Matrix())
	} else {
		r.fn.Clear(gl.COLOR_BUFFER_BIT)
	}

	r.vao.Draw(gl.TRIANGLES)
}

// Resize sets the viewport to width×height. Non-positive sizes are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.fn.Viewport(0, 0, int32(width), int32(height))
}

// Samples returns the sample count of the framebuffer drawn to.
func (r *Renderer) Samples() int { return glw.Samples(r.fn) }

// Viewport returns x, y, width and height of the viewport.
func (r *Renderer) Viewport() [4]int32 { return [4]int32{0, 0, int32(r.width), int32(r.height)} }

// Release deletes the program, buffers and vertex array. Calls after the
// first do nothing.
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.released = true
	r.prg.Delete()
	r.mesh.Delete()
	r.vao.Delete()
}
