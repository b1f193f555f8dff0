package glw

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"golang.org/x/exp/constraints"
	mf32 "golang.org/x/mobile/exp/f32"
)

// Buffer is an immutable storage buffer holding Len elements.
type Buffer struct {
	fn    Functions
	Value uint32
	Len   int
	Size  int    // bytes
	Type  uint32 // element type of index buffers
}

func (buf Buffer) Delete() { buf.fn.DeleteBuffer(buf.Value) }

func newBuffer(fn Functions, data []byte, n int) (Buffer, error) {
	buf := Buffer{fn: fn, Value: fn.CreateBuffer(), Len: n, Size: len(data)}
	if buf.Value == 0 {
		return Buffer{}, fmt.Errorf("glw: create buffer failed")
	}
	fn.NamedBufferStorage(buf.Value, data, gl.DYNAMIC_STORAGE_BIT)
	return buf, nil
}

// Pack returns the interleaved little endian bytes of vertices as laid out
// by l. Bytes not covered by an attribute are left zero.
func Pack[V any](l Layout, vertices []V) []byte {
	bin := make([]byte, int(l.Stride)*len(vertices))
	for i := range vertices {
		val := reflect.ValueOf(&vertices[i]).Elem()
		rec := bin[i*int(l.Stride):]
		for _, a := range l.Attribs {
			f := val.Field(a.field)
			var comps []float32
			if f.Kind() == reflect.Float32 {
				comps = []float32{float32(f.Float())}
			} else {
				comps = make([]float32, f.Len())
				for j := range comps {
					comps[j] = float32(f.Index(j).Float())
				}
			}
			copy(rec[a.Offset:], mf32.Bytes(binary.LittleEndian, comps...))
		}
	}
	return bin
}

// NewVertexBuffer uploads vertices in one call and returns the buffer along
// with the layout of V.
func NewVertexBuffer[V any](fn Functions, vertices []V) (Buffer, Layout, error) {
	var zero V
	l, err := LayoutOf(zero)
	if err != nil {
		return Buffer{}, Layout{}, err
	}
	buf, err := newBuffer(fn, Pack(l, vertices), len(vertices))
	if err != nil {
		return Buffer{}, Layout{}, err
	}
	return buf, l, nil
}

// indexType returns the GL element type matching the size of T.
func indexType[T constraints.Unsigned]() (uint32, error) {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		return gl.UNSIGNED_BYTE, nil
	case 2:
		return gl.UNSIGNED_SHORT, nil
	case 4:
		return gl.UNSIGNED_INT, nil
	}
	return 0, fmt.Errorf("glw: unsupported index type %T", zero)
}

// NewIndexBuffer uploads little endian indices in one call.
func NewIndexBuffer[T constraints.Unsigned](fn Functions, indices []T) (Buffer, error) {
	typ, err := indexType[T]()
	if err != nil {
		return Buffer{}, err
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	bin := make([]byte, 0, size*len(indices))
	for _, x := range indices {
		switch size {
		case 1:
			bin = append(bin, byte(x))
		case 2:
			bin = binary.LittleEndian.AppendUint16(bin, uint16(x))
		case 4:
			bin = binary.LittleEndian.AppendUint32(bin, uint32(x))
		}
	}
	buf, err := newBuffer(fn, bin, len(indices))
	if err != nil {
		return Buffer{}, err
	}
	buf.Type = typ
	return buf, nil
}

// Mesh is the GPU side geometry of one draw call.
type Mesh struct {
	Vertices Buffer
	Indices  *Buffer
	Layout   Layout
}

// NewMesh uploads vertices and, when indices is not empty, a second buffer of
// indices for indexed drawing.
func NewMesh[V any, T constraints.Unsigned](fn Functions, vertices []V, indices []T) (Mesh, error) {
	vbo, l, err := NewVertexBuffer(fn, vertices)
	if err != nil {
		return Mesh{}, err
	}
	m := Mesh{Vertices: vbo, Layout: l}
	if len(indices) > 0 {
		ibo, err := NewIndexBuffer(fn, indices)
		if err != nil {
			vbo.Delete()
			return Mesh{}, err
		}
		m.Indices = &ibo
	}
	return m, nil
}

// Delete releases every buffer of the mesh.
func (m Mesh) Delete() {
	m.Vertices.Delete()
	if m.Indices != nil {
		m.Indices.Delete()
	}
}
