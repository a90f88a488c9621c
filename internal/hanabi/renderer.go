package hanabi

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// vertex layout: x, y, r, g, b, a (floats). Colors are premultiplied so
// the whole batch renders additively in one draw call, which is what
// glowing fireworks over a dark background want.
const vertexFloats = 6

// Renderer draws the frame with a single colored-triangle program and a
// streaming VBO. It implements Surface; all calls must come from the
// thread holding the GL context.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32

	buf  []float32
	w, h float64
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(primVertSrc, primFragSrc)
	if err != nil {
		return nil, fmt.Errorf("prim program: %w", err)
	}

	r := &Renderer{prog: prog}
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	stride := int32(vertexFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	gl.BindVertexArray(0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	return r, nil
}

// BeginFrame sets the viewport for the current framebuffer size and
// resets the vertex batch.
func (r *Renderer) BeginFrame(fbWidth, fbHeight int) {
	r.w = float64(fbWidth)
	r.h = float64(fbHeight)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	r.buf = r.buf[:0]
}

// EndFrame uploads and draws everything batched since BeginFrame.
func (r *Renderer) EndFrame() {
	if len(r.buf) == 0 {
		return
	}
	gl.UseProgram(r.prog)
	gl.Uniform2f(r.uResolution, float32(r.w), float32(r.h))
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.buf)*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.buf)/vertexFloats))
	gl.BindVertexArray(0)
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.prog)
}

func (r *Renderer) Size() (float64, float64) {
	return r.w, r.h
}

// Clear wipes the framebuffer immediately; batched geometry drawn at
// EndFrame lands on top.
func (r *Renderer) Clear(col RGB) {
	gl.ClearColor(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// push appends one vertex with premultiplied color.
func (r *Renderer) push(x, y float64, col RGB, alpha float64) {
	a := float32(clampF(alpha, 0, 1))
	r.buf = append(r.buf,
		float32(x), float32(y),
		float32(col.R)/255*a, float32(col.G)/255*a, float32(col.B)/255*a, a,
	)
}

func (r *Renderer) FillRect(x, y, w, h float64, col RGB, alpha float64) {
	r.push(x, y, col, alpha)
	r.push(x+w, y, col, alpha)
	r.push(x+w, y+h, col, alpha)
	r.push(x, y, col, alpha)
	r.push(x+w, y+h, col, alpha)
	r.push(x, y+h, col, alpha)
}

// FillDisc approximates the disc with a triangle fan; segment count
// scales with radius so small particles stay cheap.
func (r *Renderer) FillDisc(x, y, radius float64, col RGB, alpha float64) {
	if radius <= 0 {
		return
	}
	segs := 8 + int(radius)
	if segs > 28 {
		segs = 28
	}
	step := 2 * math.Pi / float64(segs)
	px := x + radius
	py := y
	for i := 1; i <= segs; i++ {
		ang := float64(i) * step
		nx := x + math.Cos(ang)*radius
		ny := y + math.Sin(ang)*radius
		r.push(x, y, col, alpha)
		r.push(px, py, col, alpha)
		r.push(nx, ny, col, alpha)
		px, py = nx, ny
	}
}

// Segment draws a line of the given width as one quad.
func (r *Renderer) Segment(x1, y1, x2, y2, width float64, col RGB, alpha float64) {
	dx := x2 - x1
	dy := y2 - y1
	l := math.Hypot(dx, dy)
	if l < 1e-6 {
		return
	}
	// Unit normal scaled to half width.
	nx := -dy / l * width / 2
	ny := dx / l * width / 2
	r.push(x1+nx, y1+ny, col, alpha)
	r.push(x2+nx, y2+ny, col, alpha)
	r.push(x2-nx, y2-ny, col, alpha)
	r.push(x1+nx, y1+ny, col, alpha)
	r.push(x2-nx, y2-ny, col, alpha)
	r.push(x1-nx, y1-ny, col, alpha)
}
