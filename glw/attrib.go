package glw

import (
	"fmt"
	"reflect"
	"unicode"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Attrib describes one vertex attribute of an interleaved record.
type Attrib struct {
	Name       string
	Size       int32 // component count
	Type       uint32
	Normalized bool
	Offset     uint32 // byte offset within the record

	field int
}

// Layout describes how a vertex record's bytes are interpreted as attributes.
type Layout struct {
	Stride  int32
	Attribs []Attrib
}

// LayoutOf returns the attribute layout of the struct v. Exported fields of
// type float32, f32.Vec2, f32.Vec3 or f32.Vec4 become float attributes named
// by the field name with its first rune lowered; a `glw:"name"` tag overrides
// the name and `glw:"-"` skips the field.
func LayoutOf(v interface{}) (Layout, error) {
	typ := reflect.TypeOf(v)
	if typ == nil || typ.Kind() != reflect.Struct {
		return Layout{}, fmt.Errorf("glw: vertex type %v is not a struct", typ)
	}

	l := Layout{Stride: int32(typ.Size())}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("glw")
		if name == "-" {
			continue
		}
		if name == "" {
			p := []rune(f.Name)
			p[0] = unicode.ToLower(p[0])
			name = string(p)
		}

		var size int32
		switch {
		case f.Type.Kind() == reflect.Float32:
			size = 1
		case f.Type.Kind() == reflect.Array && f.Type.Elem().Kind() == reflect.Float32 && f.Type.Len() <= 4:
			size = int32(f.Type.Len())
		default:
			return Layout{}, fmt.Errorf("glw: field %s.%s has unsupported type %v", typ.Name(), f.Name, f.Type)
		}

		l.Attribs = append(l.Attribs, Attrib{
			Name:   name,
			Size:   size,
			Type:   gl.FLOAT,
			Offset: uint32(f.Offset),
			field:  i,
		})
	}
	if len(l.Attribs) == 0 {
		return Layout{}, fmt.Errorf("glw: vertex type %v has no attributes", typ)
	}
	return l, nil
}

// VertexArray binds a vertex buffer, and optionally an index buffer, with the
// attribute layout of the vertex record.
type VertexArray struct {
	fn    Functions
	Value uint32

	count     int32
	indexed   bool
	indexType uint32
}

// NewVertexArray creates a vertex array object with vbo at binding 0 and
// declares every attribute of layout against prg. ibo may be nil.
func NewVertexArray(fn Functions, prg Program, vbo Buffer, layout Layout, ibo *Buffer) (VertexArray, error) {
	vao := VertexArray{fn: fn, Value: fn.CreateVertexArray()}
	if vao.Value == 0 {
		return VertexArray{}, fmt.Errorf("glw: create vertex array failed")
	}

	const binding = 0
	fn.VertexArrayVertexBuffer(vao.Value, binding, vbo.Value, 0, layout.Stride)

	for _, a := range layout.Attribs {
		loc := prg.Attrib(a.Name)
		if loc < 0 {
			vao.Delete()
			return VertexArray{}, fmt.Errorf("glw: attribute %q not active in program", a.Name)
		}
		index := uint32(loc)
		fn.EnableVertexArrayAttrib(vao.Value, index)
		fn.VertexArrayAttribFormat(vao.Value, index, a.Size, a.Type, a.Normalized, a.Offset)
		fn.VertexArrayAttribBinding(vao.Value, index, binding)
	}

	if ibo != nil {
		fn.VertexArrayElementBuffer(vao.Value, ibo.Value)
		vao.indexed, vao.count, vao.indexType = true, int32(ibo.Len), ibo.Type
	} else {
		vao.count = int32(vbo.Len)
	}
	return vao, nil
}

// Indexed reports whether Draw issues an indexed draw call.
func (vao VertexArray) Indexed() bool { return vao.indexed }

// Count is the number of vertices, or indices if indexed, drawn by Draw.
func (vao VertexArray) Count() int32 { return vao.count }

func (vao VertexArray) Bind()   { vao.fn.BindVertexArray(vao.Value) }
func (vao VertexArray) Delete() { vao.fn.DeleteVertexArray(vao.Value) }

// Draw issues one draw call of mode over the bound geometry.
func (vao VertexArray) Draw(mode uint32) {
	if vao.indexed {
		vao.fn.DrawElements(mode, vao.count, vao.indexType, 0)
	} else {
		vao.fn.DrawArrays(mode, 0, vao.count)
	}
}
