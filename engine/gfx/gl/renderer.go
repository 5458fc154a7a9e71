package glbackend

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/trellis/engine/assets"
	"github.com/hubastard/trellis/engine/core"
)

// RendererGL draws indexed, per-vertex colored triangle meshes with one
// dynamic vertex buffer and one 16-bit index buffer.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	// capacities in bytes of the GPU buffers, grown on demand
	vboCap int
	eboCap int
}

var _ core.Renderer = (*RendererGL)(nil)

func NewRendererGL(win core.Window, _ core.Config) (core.Renderer, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	vsSrc, err := assets.LoadShader("mesh.vert")
	if err != nil {
		return err
	}
	fsSrc, err := assets.LoadShader("mesh.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vsSrc, fsSrc)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	// the element binding is part of the VAO state
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	layout := core.ColorVertexLayout
	for _, a := range layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, glType(a.Type), false, layout.Stride, uintptr(a.Offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// 2D widgets are painted in order; later geometry covers earlier.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	core.Logger().Info("gl renderer ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"vendor", r.GPUVendor(), "renderer", r.GPURenderer())
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// UpdateMesh replaces the GPU buffers with vertices and indices.
func (r *RendererGL) UpdateMesh(vertices []core.Vertex, indices []uint16) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil
	}
	if len(vertices) > 1<<16 {
		return errors.New("gl: mesh exceeds the 16-bit index range")
	}

	vbytes := len(vertices) * int(unsafe.Sizeof(core.Vertex{}))
	ibytes := len(indices) * 2

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	r.vboCap = upload(gl.ARRAY_BUFFER, r.vboCap, vbytes, gl.Ptr(&vertices[0]))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	r.eboCap = upload(gl.ELEMENT_ARRAY_BUFFER, r.eboCap, ibytes, gl.Ptr(&indices[0]))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl: buffer upload failed: 0x%x", code)
	}
	return nil
}

// DrawMesh draws the first indexCount indices of the current mesh.
func (r *RendererGL) DrawMesh(indexCount int) {
	if indexCount <= 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }

// upload orphans the bound buffer when data no longer fits, otherwise it
// overwrites in place. It returns the new capacity.
func upload(target uint32, capacity, size int, data unsafe.Pointer) int {
	if size > capacity {
		gl.BufferData(target, size, data, gl.DYNAMIC_DRAW)
		return size
	}
	gl.BufferSubData(target, 0, size, data)
	return capacity
}

func glType(t core.AttribType) uint32 {
	switch t {
	case core.AttribFloat32:
		return gl.FLOAT
	}
	panic(fmt.Sprintf("gl: unsupported attribute type %d", t))
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
