// Package opengl draws the layout debug overlay with OpenGL 4.1 and connects
// GLFW window events to a layout engine.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/menulayout"
)

// floatsPerVertex is the packed vertex layout: clip-space x and y, then
// r, g, b and a in [0, 1].
const floatsPerVertex = 6

// Positions arrive in clip space, so the shaders carry no uniforms.
const (
	overlayVertexShader = `#version 410 core
layout (location = 0) in vec2 inPos;
layout (location = 1) in vec4 inColor;
out vec4 vColor;
void main() {
    vColor = inColor;
    gl_Position = vec4(inPos, 0.0, 1.0);
}
` + "\x00"

	overlayFragmentShader = `#version 410 core
in vec4 vColor;
out vec4 outColor;
void main() {
    outColor = vColor;
}
` + "\x00"
)

// Renderer draws a menulayout.Overlay into the current framebuffer.
type Renderer struct {
	program  uint32
	vao, vbo uint32
	width    int
	height   int

	packed []float32 // reused between frames
}

// NewRenderer builds the overlay pipeline for a viewport of the given size in
// pixels. An OpenGL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	program, err := buildProgram(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, err
	}

	r := &Renderer{program: program, width: width, height: height}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return r, nil
}

// Resize sets the viewport size the overlay is mapped to.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Size returns the viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Render draws the overlay on top of the framebuffer contents with alpha
// blending. The blend enable flag is restored afterwards.
func (r *Renderer) Render(o *menulayout.Overlay) error {
	if o == nil || o.Len() == 0 {
		return nil
	}
	if r.width <= 0 || r.height <= 0 {
		return fmt.Errorf("overlay: invalid viewport %dx%d", r.width, r.height)
	}

	r.packed = packVertices(r.packed[:0], o.Vertices, float32(r.width), float32(r.height))

	blending := gl.IsEnabled(gl.BLEND)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.packed)*4, gl.Ptr(r.packed), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(o.Len()))
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	if !blending {
		gl.Disable(gl.BLEND)
	}
	return nil
}

// Delete releases the GL objects. The renderer must not be used afterwards.
func (r *Renderer) Delete() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// packVertices appends verts to dst in the GPU layout, mapping screen pixels
// (origin top-left, y down) to clip space (origin center, y up).
func packVertices(dst []float32, verts []menulayout.Vertex, width, height float32) []float32 {
	for _, v := range verts {
		dst = append(dst,
			2*v.Pos.X/width-1,
			1-2*v.Pos.Y/height,
			float32(v.Color.R)/255,
			float32(v.Color.G)/255,
			float32(v.Color.B)/255,
			float32(v.Color.A)/255,
		)
	}
	return dst
}

func buildProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, "vertex", vertexSource)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, "fragment", fragmentSource)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("overlay: link shaders: %s", msg)
	}
	return program, nil
}

func compileShader(kind uint32, name, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("overlay: compile %s shader: %s", name, msg)
	}
	return shader, nil
}

// infoLog reads the info log of a shader or program object.
func infoLog(object uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	param(object, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := make([]byte, n)
	read(object, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
