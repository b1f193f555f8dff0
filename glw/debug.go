package glw

import (
	"log/slog"

	"golang.org/x/image/math/f32"
)

// Debug returns Functions that log every call made through fn at debug level,
// along with its arguments and result.
func Debug(fn Functions) Functions { return debug{fn} }

type debug struct{ fn Functions }

func trace(name string, args ...interface{}) {
	slog.Debug("GL", slog.String("call", name), slog.Any("args", args))
}

func traceResult(name string, ret interface{}, args ...interface{}) {
	slog.Debug("GL", slog.String("call", name), slog.Any("args", args), slog.Any("result", ret))
}

func (d debug) Enable(capability uint32) {
	trace("Enable", capability)
	d.fn.Enable(capability)
}

func (d debug) GetString(name uint32) string {
	s := d.fn.GetString(name)
	traceResult("GetString", s, name)
	return s
}

func (d debug) GetInteger(pname uint32) int32 {
	v := d.fn.GetInteger(pname)
	traceResult("GetInteger", v, pname)
	return v
}

func (d debug) CreateShader(typ uint32) uint32 {
	v := d.fn.CreateShader(typ)
	traceResult("CreateShader", v, typ)
	return v
}

func (d debug) ShaderSource(shader uint32, src string) {
	trace("ShaderSource", shader, len(src))
	d.fn.ShaderSource(shader, src)
}

func (d debug) CompileShader(shader uint32) {
	trace("CompileShader", shader)
	d.fn.CompileShader(shader)
}

func (d debug) GetShaderi(shader uint32, pname uint32) int32 {
	v := d.fn.GetShaderi(shader, pname)
	traceResult("GetShaderi", v, shader, pname)
	return v
}

func (d debug) GetShaderInfoLog(shader uint32) string {
	s := d.fn.GetShaderInfoLog(shader)
	traceResult("GetShaderInfoLog", s, shader)
	return s
}

func (d debug) DeleteShader(shader uint32) {
	trace("DeleteShader", shader)
	d.fn.DeleteShader(shader)
}

func (d debug) CreateProgram() uint32 {
	v := d.fn.CreateProgram()
	traceResult("CreateProgram", v)
	return v
}

func (d debug) AttachShader(program, shader uint32) {
	trace("AttachShader", program, shader)
	d.fn.AttachShader(program, shader)
}

func (d debug) LinkProgram(program uint32) {
	trace("LinkProgram", program)
	d.fn.LinkProgram(program)
}

func (d debug) GetProgrami(program uint32, pname uint32) int32 {
	v := d.fn.GetProgrami(program, pname)
	traceResult("GetProgrami", v, program, pname)
	return v
}

func (d debug) GetProgramInfoLog(program uint32) string {
	s := d.fn.GetProgramInfoLog(program)
	traceResult("GetProgramInfoLog", s, program)
	return s
}

func (d debug) UseProgram(program uint32) {
	trace("UseProgram", program)
	d.fn.UseProgram(program)
}

func (d debug) DeleteProgram(program uint32) {
	trace("DeleteProgram", program)
	d.fn.DeleteProgram(program)
}

func (d debug) GetAttribLocation(program uint32, name string) int32 {
	v := d.fn.GetAttribLocation(program, name)
	traceResult("GetAttribLocation", v, program, name)
	return v
}

func (d debug) GetUniformLocation(program uint32, name string) int32 {
	v := d.fn.GetUniformLocation(program, name)
	traceResult("GetUniformLocation", v, program, name)
	return v
}

func (d debug) UniformMatrix4fv(location int32, m f32.Mat4) {
	trace("UniformMatrix4fv", location, m)
	d.fn.UniformMatrix4fv(location, m)
}

func (d debug) CreateBuffer() uint32 {
	v := d.fn.CreateBuffer()
	traceResult("CreateBuffer", v)
	return v
}

func (d debug) NamedBufferStorage(buffer uint32, data []byte, flags uint32) {
	trace("NamedBufferStorage", buffer, len(data), flags)
	d.fn.NamedBufferStorage(buffer, data, flags)
}

func (d debug) DeleteBuffer(buffer uint32) {
	trace("DeleteBuffer", buffer)
	d.fn.DeleteBuffer(buffer)
}

func (d debug) CreateVertexArray() uint32 {
	v := d.fn.CreateVertexArray()
	traceResult("CreateVertexArray", v)
	return v
}

func (d debug) VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32) {
	trace("VertexArrayVertexBuffer", vao, binding, buffer, offset, stride)
	d.fn.VertexArrayVertexBuffer(vao, binding, buffer, offset, stride)
}

func (d debug) VertexArrayElementBuffer(vao, buffer uint32) {
	trace("VertexArrayElementBuffer", vao, buffer)
	d.fn.VertexArrayElementBuffer(vao, buffer)
}

func (d debug) EnableVertexArrayAttrib(vao, index uint32) {
	trace("EnableVertexArrayAttrib", vao, index)
	d.fn.EnableVertexArrayAttrib(vao, index)
}

func (d debug) VertexArrayAttribFormat(vao, index uint32, size int32, typ uint32, normalized bool, offset uint32) {
	trace("VertexArrayAttribFormat", vao, index, size, typ, normalized, offset)
	d.fn.VertexArrayAttribFormat(vao, index, size, typ, normalized, offset)
}

func (d debug) VertexArrayAttribBinding(vao, index, binding uint32) {
	trace("VertexArrayAttribBinding", vao, index, binding)
	d.fn.VertexArrayAttribBinding(vao, index, binding)
}

func (d debug) BindVertexArray(vao uint32) {
	trace("BindVertexArray", vao)
	d.fn.BindVertexArray(vao)
}

func (d debug) DeleteVertexArray(vao uint32) {
	trace("DeleteVertexArray", vao)
	d.fn.DeleteVertexArray(vao)
}

func (d debug) ClearColor(r, g, b, a float32) {
	trace("ClearColor", r, g, b, a)
	d.fn.ClearColor(r, g, b, a)
}

func (d debug) Clear(mask uint32) {
	trace("Clear", mask)
	d.fn.Clear(mask)
}

func (d debug) Viewport(x, y, width, height int32) {
	trace("Viewport", x, y, width, height)
	d.fn.Viewport(x, y, width, height)
}

func (d debug) DrawArrays(mode uint32, first, count int32) {
	trace("DrawArrays", mode, first, count)
	d.fn.DrawArrays(mode, first, count)
}

func (d debug) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	trace("DrawElements", mode, count, typ, offset)
	d.fn.DrawElements(mode, count, typ, offset)
}
