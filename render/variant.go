package render

import (
	_ "embed"

	"dasa.cc/harness/glw"
	"golang.org/x/image/math/f32"
)

var (
	//go:embed shaders/triangle.vert
	triangleVert string
	//go:embed shaders/triangle.frag
	triangleFrag string
	//go:embed shaders/tetra.vert
	tetraVert string
	//go:embed shaders/tetra.frag
	tetraFrag string
)

// Vertex2 is a vertex record of the 2-D variant.
type Vertex2 struct {
	Position f32.Vec2
	Color    f32.Vec3
}

// Vertex3 is a vertex record of the 3-D variant.
type Vertex3 struct {
	Position f32.Vec3
	Color    f32.Vec3
}

// Variant is a mesh with the shader program that draws it.
type Variant struct {
	Name string
	Vert glw.VertSrc
	Frag glw.FragSrc

	// Perspective variants clear depth and upload a model view projection
	// matrix to uniform "matrix" each frame.
	Perspective bool

	Mesh func(glw.Functions) (glw.Mesh, error)
}

var (
	triangleVertices = []Vertex2{
		{Position: f32.Vec2{-0.5, -0.5}, Color: f32.Vec3{1, 0, 0}},
		{Position: f32.Vec2{+0.0, +0.5}, Color: f32.Vec3{0, 1, 0}},
		{Position: f32.Vec2{+0.5, -0.5}, Color: f32.Vec3{0, 0, 1}},
	}

	tetraVertices = []Vertex3{
		{Position: f32.Vec3{-0.5, -0.5, 0.0}, Color: f32.Vec3{1, 0, 0}},
		{Position: f32.Vec3{+0.0, +0.5, 0.0}, Color: f32.Vec3{0, 1, 0}},
		{Position: f32.Vec3{+0.5, -0.5, 0.0}, Color: f32.Vec3{0, 0, 1}},
		{Position: f32.Vec3{+0.0, +0.0, 0.5}, Color: f32.Vec3{0, 0, 0}},
	}

	tetraIndices = []uint32{
		0, 1, 2,
		0, 1, 3,
		0, 2, 3,
		1, 2, 3,
	}
)

// Triangle is the 2-D variant: one red, green and blue triangle.
func Triangle() Variant {
	return Variant{
		Name: "Triangle",
		Vert: glw.VertSrc(triangleVert),
		Frag: glw.FragSrc(triangleFrag),
		Mesh: func(fn glw.Functions) (glw.Mesh, error) {
			return glw.NewMesh[Vertex2, uint32](fn, triangleVertices, nil)
		},
	}
}

// Tetrahedron is the 3-D variant: four vertices drawn as four indexed triangles.
func Tetrahedron() Variant {
	return Variant{
		Name:        "Tetrahedron",
		Vert:        glw.VertSrc(tetraVert),
		Frag:        glw.FragSrc(tetraFrag),
		Perspective: true,
		Mesh: func(fn glw.Functions) (glw.Mesh, error) {
			return glw.NewMesh(fn, tetraVertices, tetraIndices)
		},
	}
}
