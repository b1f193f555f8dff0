package glw

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"golang.org/x/image/math/f32"
)

// ErrNoContext is returned by Load when no current context is given.
var ErrNoContext = errors.New("glw: no current context")

// ProcAddresser resolves GL entry points by name. Implementations are only
// valid while their context is current on the calling thread.
type ProcAddresser interface {
	ProcAddress(name string) unsafe.Pointer
}

// Functions is the dispatch table of GL entry points used by this module.
// Dispatch is the driver backed implementation; tests substitute a recorder.
type Functions interface {
	Enable(capability uint32)
	GetString(name uint32) string
	GetInteger(pname uint32) int32

	CreateShader(typ uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, m f32.Mat4)

	CreateBuffer() uint32
	NamedBufferStorage(buffer uint32, data []byte, flags uint32)
	DeleteBuffer(buffer uint32)

	CreateVertexArray() uint32
	VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32)
	VertexArrayElementBuffer(vao, buffer uint32)
	EnableVertexArrayAttrib(vao, index uint32)
	VertexArrayAttribFormat(vao, index uint32, size int32, typ uint32, normalized bool, offset uint32)
	VertexArrayAttribBinding(vao, index, binding uint32)
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, typ uint32, offset int)
}

// Load resolves every GL entry point through p and returns the bound
// dispatch table. A required function that cannot be resolved is an error.
func Load(p ProcAddresser) (*Dispatch, error) {
	if p == nil {
		return nil, ErrNoContext
	}
	if err := gl.InitWithProcAddrFunc(p.ProcAddress); err != nil {
		return nil, fmt.Errorf("glw: resolve gl functions: %w", err)
	}
	d := &Dispatch{}
	logStrings(d)
	return d, nil
}

// Samples returns the sample count of the framebuffer the context draws to.
// Window systems treat requested samples as a hint, so this may differ from
// the config that was asked for.
func Samples(fn Functions) int { return int(fn.GetInteger(gl.SAMPLES)) }

// logStrings reports driver identification; missing strings are skipped.
func logStrings(fn Functions) {
	for _, s := range []struct {
		key  string
		name uint32
	}{
		{"renderer", gl.RENDERER},
		{"version", gl.VERSION},
		{"glsl", gl.SHADING_LANGUAGE_VERSION},
	} {
		if v := fn.GetString(s.name); v != "" {
			slog.Info("OpenGL", slog.String(s.key, v))
		}
	}
}

// Dispatch forwards Functions to the entry points resolved by Load.
type Dispatch struct{}

func (Dispatch) Enable(capability uint32) { gl.Enable(capability) }

func (Dispatch) GetString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (Dispatch) GetInteger(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (Dispatch) CreateShader(typ uint32) uint32 { return gl.CreateShader(typ) }

func (Dispatch) ShaderSource(shader uint32, src string) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (Dispatch) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Dispatch) GetShaderi(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (d Dispatch) GetShaderInfoLog(shader uint32) string {
	n := d.GetShaderi(shader, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Dispatch) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Dispatch) CreateProgram() uint32               { return gl.CreateProgram() }
func (Dispatch) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (Dispatch) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (Dispatch) GetProgrami(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (d Dispatch) GetProgramInfoLog(program uint32) string {
	n := d.GetProgrami(program, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Dispatch) UseProgram(program uint32)    { gl.UseProgram(program) }
func (Dispatch) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Dispatch) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Dispatch) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Dispatch) UniformMatrix4fv(location int32, m f32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (Dispatch) CreateBuffer() uint32 {
	var buf uint32
	gl.CreateBuffers(1, &buf)
	return buf
}

func (Dispatch) NamedBufferStorage(buffer uint32, data []byte, flags uint32) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gl.Ptr(data)
	}
	gl.NamedBufferStorage(buffer, len(data), p, flags)
}

func (Dispatch) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Dispatch) CreateVertexArray() uint32 {
	var vao uint32
	gl.CreateVertexArrays(1, &vao)
	return vao
}

func (Dispatch) VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32) {
	gl.VertexArrayVertexBuffer(vao, binding, buffer, offset, stride)
}

func (Dispatch) VertexArrayElementBuffer(vao, buffer uint32) {
	gl.VertexArrayElementBuffer(vao, buffer)
}

func (Dispatch) EnableVertexArrayAttrib(vao, index uint32) { gl.EnableVertexArrayAttrib(vao, index) }

func (Dispatch) VertexArrayAttribFormat(vao, index uint32, size int32, typ uint32, normalized bool, offset uint32) {
	gl.VertexArrayAttribFormat(vao, index, size, typ, normalized, offset)
}

func (Dispatch) VertexArrayAttribBinding(vao, index, binding uint32) {
	gl.VertexArrayAttribBinding(vao, index, binding)
}

func (Dispatch) BindVertexArray(vao uint32)   { gl.BindVertexArray(vao) }
func (Dispatch) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Dispatch) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (Dispatch) Clear(mask uint32)                  { gl.Clear(mask) }
func (Dispatch) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Dispatch) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (Dispatch) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	gl.DrawElements(mode, count, typ, gl.PtrOffset(offset))
}
