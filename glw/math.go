package glw

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Matrices are column-major, as uploaded with transpose false.

// Radians converts deg to radians.
func Radians(deg float32) float32 { return deg * math.Pi / 180 }

func Vec2(v0, v1 float32) f32.Vec2     { return f32.Vec2{v0, v1} }
func Vec3(v0, v1, v2 float32) f32.Vec3 { return f32.Vec3{v0, v1, v2} }

func Ident16fv() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate16fv returns the translation matrix of v.
func Translate16fv(v f32.Vec3) f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v[0], v[1], v[2], 1,
	}
}

// RotateX16fv returns the rotation matrix of angle radians about the x axis.
func RotateX16fv(angle float32) f32.Mat4 {
	s, c := math.Sincos(float64(angle))
	sn, cs := float32(s), float32(c)
	return f32.Mat4{
		1, 0, 0, 0,
		0, +cs, sn, 0,
		0, -sn, cs, 0,
		0, 0, 0, 1,
	}
}

// Perspective16fv returns a right-handed projection for a GL clip volume of
// z in [-1, 1], fovy in radians.
func Perspective16fv(fovy, aspect, near, far float32) f32.Mat4 {
	f := float32(1 / math.Tan(float64(fovy/2)))
	return f32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), -1,
		0, 0, (2 * far * near) / (near - far), 0,
	}
}

// Mul16fv returns the product a×b.
func Mul16fv(a, b f32.Mat4) (m f32.Mat4) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = a[0*4+r]*b[c*4+0] +
				a[1*4+r]*b[c*4+1] +
				a[2*4+r]*b[c*4+2] +
				a[3*4+r]*b[c*4+3]
		}
	}
	return m
}

// Transform4fv returns m×v.
func Transform4fv(m f32.Mat4, v f32.Vec4) (o f32.Vec4) {
	for r := 0; r < 4; r++ {
		o[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return o
}

func string16fv(m f32.Mat4) string {
	return fmt.Sprintf(
		"[% 0.2f % 0.2f % 0.2f % 0.2f]\n[% 0.2f % 0.2f % 0.2f % 0.2f]\n[% 0.2f % 0.2f % 0.2f % 0.2f]\n[% 0.2f % 0.2f % 0.2f % 0.2f]",
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	)
}
