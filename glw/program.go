package glw

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ShaderError reports a failed compile or link along with the driver's info log.
type ShaderError struct {
	Stage string // VertexShader, FragmentShader or LinkProgram
	Where string // first caller outside this package
	Log   string
}

func (err *ShaderError) Error() string {
	return fmt.Sprintf("%s %s\n%s", err.Stage, err.Where, err.Log)
}

// caller returns first file and line number outside of this package for calling
// goroutine's stack, and a stage name which may be overridden based on stack frames.
func caller(defaultName string) (name, where string) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	var (
		frame runtime.Frame
		more  bool
		inpkg = func(s string) bool { return strings.HasPrefix(s, "dasa.cc/harness/glw.") }
	)
	name = defaultName

	for frame, more = frames.Next(); more && inpkg(frame.Function); frame, more = frames.Next() {
		switch frame.Function {
		case "dasa.cc/harness/glw.VertSrc.Compile":
			name = "VertexShader"
		case "dasa.cc/harness/glw.FragSrc.Compile":
			name = "FragmentShader"
		}
	}

	return name, fmt.Sprintf("%s:%v", frame.File, frame.Line)
}

func compile(fn Functions, typ uint32, src string) (uint32, error) {
	shd := fn.CreateShader(typ)
	fn.ShaderSource(shd, src)
	fn.CompileShader(shd)
	if fn.GetShaderi(shd, gl.COMPILE_STATUS) == gl.FALSE {
		name, where := caller("CompileShader")
		return shd, &ShaderError{Stage: name, Where: where, Log: fn.GetShaderInfoLog(shd)}
	}
	return shd, nil
}

// VertSrc is vertex shader source code.
type VertSrc string

// Compile returns the compiled shader of src and error if any.
func (src VertSrc) Compile(fn Functions) (uint32, error) {
	return compile(fn, gl.VERTEX_SHADER, string(src))
}

// FragSrc is fragment shader source code.
type FragSrc string

// Compile returns the compiled shader of src and error if any.
func (src FragSrc) Compile(fn Functions) (uint32, error) {
	return compile(fn, gl.FRAGMENT_SHADER, string(src))
}

// Program identifies a linked shader program.
type Program struct {
	fn      Functions
	Program uint32

	uniforms *lru.Cache[string, int32]
}

// Use installs program as part of current rendering state.
func (prg Program) Use() { prg.fn.UseProgram(prg.Program) }

// Uniform returns uniform location by name in program.
func (prg Program) Uniform(name string) int32 {
	if loc, ok := prg.uniforms.Get(name); ok {
		return loc
	}
	loc := prg.fn.GetUniformLocation(prg.Program, name)
	prg.uniforms.Add(name, loc)
	return loc
}

// Attrib returns attribute location by name in program.
func (prg Program) Attrib(name string) int32 {
	return prg.fn.GetAttribLocation(prg.Program, name)
}

// Delete frees the memory and invalidates the name associated with the program.
func (prg Program) Delete() { prg.fn.DeleteProgram(prg.Program) }

// Build compiles shaders and links program. Shader stages are deleted once
// attached; on error every object created here is deleted before returning.
func Build(fn Functions, vsrc VertSrc, fsrc FragSrc) (Program, error) {
	uniforms, err := lru.New[string, int32](16)
	if err != nil {
		return Program{}, err
	}
	prg := Program{fn: fn, uniforms: uniforms}

	vshd, err := vsrc.Compile(fn)
	defer fn.DeleteShader(vshd)
	if err != nil {
		return Program{}, err
	}

	fshd, err := fsrc.Compile(fn)
	defer fn.DeleteShader(fshd)
	if err != nil {
		return Program{}, err
	}

	prg.Program = fn.CreateProgram()
	fn.AttachShader(prg.Program, vshd)
	fn.AttachShader(prg.Program, fshd)
	fn.LinkProgram(prg.Program)

	if fn.GetProgrami(prg.Program, gl.LINK_STATUS) == gl.FALSE {
		name, where := caller("LinkProgram")
		err := &ShaderError{Stage: name, Where: where, Log: fn.GetProgramInfoLog(prg.Program)}
		prg.Delete()
		return Program{}, err
	}

	return prg, nil
}

// Install is a helper that wraps Build and Program.Use.
func Install(fn Functions, vsrc VertSrc, fsrc FragSrc) (Program, error) {
	prg, err := Build(fn, vsrc, fsrc)
	if err != nil {
		return Program{}, err
	}
	prg.Use()
	return prg, nil
}
