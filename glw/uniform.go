package glw

import "golang.org/x/image/math/f32"

// U16fv is a mat4 uniform.
type U16fv struct {
	fn       Functions
	Location int32
	m        f32.Mat4
}

// Uniform16fv returns the named mat4 uniform of prg.
func (prg Program) Uniform16fv(name string) U16fv {
	return U16fv{fn: prg.fn, Location: prg.Uniform(name), m: Ident16fv()}
}

// Set stores m and uploads it to the currently used program.
func (u *U16fv) Set(m f32.Mat4) {
	u.m = m
	u.Update()
}

func (u U16fv) Update() { u.fn.UniformMatrix4fv(u.Location, u.m) }

func (u U16fv) Get() f32.Mat4 { return u.m }

func (u U16fv) String() string { return string16fv(u.m) }
