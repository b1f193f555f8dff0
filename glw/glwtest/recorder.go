// Package glwtest provides a call recording implementation of glw.Functions
// for tests that run without a GL context.
package glwtest

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Object kinds tracked by a Recorder.
const (
	Shader      = "shader"
	Program     = "program"
	Buffer      = "buffer"
	VertexArray = "vertexarray"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string { return fmt.Sprintf("%s%v", c.Name, c.Args) }

// Recorder records every call made through it and tracks the lifetime of
// created objects. The zero value is ready to use.
type Recorder struct {
	Calls []Call

	// Attribs and Uniforms map names to locations; missing names resolve
	// to index of first lookup for attribs and -1 for uniforms.
	Attribs  map[string]int32
	Uniforms map[string]int32
	Strings  map[uint32]string
	Integers map[uint32]int32

	FailCompile map[uint32]string // shader type to info log
	FailLink    string

	// Errors lists misuse such as deleting an object twice.
	Errors []string

	next    uint32
	live    map[uint32]string
	created map[string]int
	deleted map[string]int
	types   map[uint32]uint32
}

func (r *Recorder) record(name string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) create(kind string) uint32 {
	if r.live == nil {
		r.live = make(map[uint32]string)
		r.created = make(map[string]int)
		r.deleted = make(map[string]int)
	}
	r.next++
	r.live[r.next] = kind
	r.created[kind]++
	return r.next
}

func (r *Recorder) free(kind string, v uint32) {
	if v == 0 {
		return
	}
	if k, ok := r.live[v]; !ok || k != kind {
		r.Errors = append(r.Errors, fmt.Sprintf("delete of %s %v not alive", kind, v))
		return
	}
	delete(r.live, v)
	r.deleted[kind]++
}

// Count returns the number of recorded calls named name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns recorded calls named name in order.
func (r *Recorder) Find(name string) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Index returns the position of the first call named name at or after
// position from, or -1.
func (r *Recorder) Index(name string, from int) int {
	for i := from; i < len(r.Calls); i++ {
		if r.Calls[i].Name == name {
			return i
		}
	}
	return -1
}

// Created returns how many objects of kind were created.
func (r *Recorder) Created(kind string) int { return r.created[kind] }

// Deleted returns how many objects of kind were deleted.
func (r *Recorder) Deleted(kind string) int { return r.deleted[kind] }

// Live returns how many objects of kind are created and not deleted.
func (r *Recorder) Live(kind string) int {
	n := 0
	for _, k := range r.live {
		if k == kind {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps object state.
func (r *Recorder) Reset() { r.Calls = nil }

func (r *Recorder) Enable(capability uint32) { r.record("Enable", capability) }

func (r *Recorder) GetString(name uint32) string {
	r.record("GetString", name)
	return r.Strings[name]
}

func (r *Recorder) GetInteger(pname uint32) int32 {
	r.record("GetInteger", pname)
	return r.Integers[pname]
}

func (r *Recorder) CreateShader(typ uint32) uint32 {
	v := r.create(Shader)
	if r.types == nil {
		r.types = make(map[uint32]uint32)
	}
	r.types[v] = typ
	r.record("CreateShader", typ)
	return v
}

func (r *Recorder) ShaderSource(shader uint32, src string) { r.record("ShaderSource", shader, src) }
func (r *Recorder) CompileShader(shader uint32)            { r.record("CompileShader", shader) }

func (r *Recorder) GetShaderi(shader uint32, pname uint32) int32 {
	r.record("GetShaderi", shader, pname)
	if _, fail := r.FailCompile[r.types[shader]]; fail {
		return 0
	}
	return 1
}

func (r *Recorder) GetShaderInfoLog(shader uint32) string {
	r.record("GetShaderInfoLog", shader)
	return r.FailCompile[r.types[shader]]
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader", shader)
	r.free(Shader, shader)
}

func (r *Recorder) CreateProgram() uint32 {
	r.record("CreateProgram")
	return r.create(Program)
}

func (r *Recorder) AttachShader(program, shader uint32) { r.record("AttachShader", program, shader) }
func (r *Recorder) LinkProgram(program uint32)          { r.record("LinkProgram", program) }

func (r *Recorder) GetProgrami(program uint32, pname uint32) int32 {
	r.record("GetProgrami", program, pname)
	if r.FailLink != "" {
		return 0
	}
	return 1
}

func (r *Recorder) GetProgramInfoLog(program uint32) string {
	r.record("GetProgramInfoLog", program)
	return r.FailLink
}

func (r *Recorder) UseProgram(program uint32) { r.record("UseProgram", program) }

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
	r.free(Program, program)
}

func (r *Recorder) GetAttribLocation(program uint32, name string) int32 {
	r.record("GetAttribLocation", program, name)
	if r.Attribs == nil {
		r.Attribs = make(map[string]int32)
	}
	loc, ok := r.Attribs[name]
	if !ok {
		loc = int32(len(r.Attribs))
		r.Attribs[name] = loc
	}
	return loc
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	r.record("GetUniformLocation", program, name)
	if loc, ok := r.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) UniformMatrix4fv(location int32, m f32.Mat4) {
	r.record("UniformMatrix4fv", location, m)
}

func (r *Recorder) CreateBuffer() uint32 {
	r.record("CreateBuffer")
	return r.create(Buffer)
}

func (r *Recorder) NamedBufferStorage(buffer uint32, data []byte, flags uint32) {
	r.record("NamedBufferStorage", buffer, append([]byte(nil), data...), flags)
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.record("DeleteBuffer", buffer)
	r.free(Buffer, buffer)
}

func (r *Recorder) CreateVertexArray() uint32 {
	r.record("CreateVertexArray")
	return r.create(VertexArray)
}

func (r *Recorder) VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32) {
	r.record("VertexArrayVertexBuffer", vao, binding, buffer, offset, stride)
}

func (r *Recorder) VertexArrayElementBuffer(vao, buffer uint32) {
	r.record("VertexArrayElementBuffer", vao, buffer)
}

func (r *Recorder) EnableVertexArrayAttrib(vao, index uint32) {
	r.record("EnableVertexArrayAttrib", vao, index)
}

func (r *Recorder) VertexArrayAttribFormat(vao, index uint32, size int32, typ uint32, normalized bool, offset uint32) {
	r.record("VertexArrayAttribFormat", vao, index, size, typ, normalized, offset)
}

func (r *Recorder) VertexArrayAttribBinding(vao, index, binding uint32) {
	r.record("VertexArrayAttribBinding", vao, index, binding)
}

func (r *Recorder) BindVertexArray(vao uint32) { r.record("BindVertexArray", vao) }

func (r *Recorder) DeleteVertexArray(vao uint32) {
	r.record("DeleteVertexArray", vao)
	r.free(VertexArray, vao)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask uint32) { r.record("Clear", mask) }

func (r *Recorder) Viewport(x, y, width, height int32) { r.record("Viewport", x, y, width, height) }

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	r.record("DrawElements", mode, count, typ, offset)
}
