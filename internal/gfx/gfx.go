// Package gfx defines the fixed-function drawing contract shared by the
// software rasterizer and the OpenGL window backend.
package gfx

import "image"

// Cap is a toggleable device capability.
type Cap int

const (
	Lighting Cap = iota
	Texture2D
	DepthTest
)

func (c Cap) String() string {
	switch c {
	case Lighting:
		return "lighting"
	case Texture2D:
		return "texture2d"
	case DepthTest:
		return "depth-test"
	}
	return "unknown"
}

// Mode is a primitive assembly mode for Begin.
type Mode int

const (
	Lines Mode = iota
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
	Quads
	QuadStrip
	Polygon
)

var modeNames = [...]string{
	Lines:         "lines",
	LineStrip:     "line-strip",
	LineLoop:      "line-loop",
	Triangles:     "triangles",
	TriangleStrip: "triangle-strip",
	TriangleFan:   "triangle-fan",
	Quads:         "quads",
	QuadStrip:     "quad-strip",
	Polygon:       "polygon",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// IsLine reports whether the mode emits line segments rather than filled faces.
func (m Mode) IsLine() bool {
	return m == Lines || m == LineStrip || m == LineLoop
}

// MatrixMode selects which matrix stack transform calls apply to.
type MatrixMode int

const (
	ModelView MatrixMode = iota
	Projection
)

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Device is an immediate-mode, fixed-function drawing target.
//
// Transform calls post-multiply the current matrix of the active stack,
// so the last call issued is the first applied to a vertex.
type Device interface {
	Viewport(w, h int)
	ClearColor(c Color)
	Clear()

	MatrixMode(m MatrixMode)
	LoadIdentity()
	PushMatrix()
	PopMatrix()
	Translate(x, y, z float32)
	// Rotate turns deg degrees counter-clockwise around (x, y, z).
	Rotate(deg, x, y, z float32)
	Scale(x, y, z float32)
	Ortho(left, right, bottom, top, near, far float64)
	Perspective(fovy, aspect, near, far float64)
	LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float64)

	Enable(c Cap)
	Disable(c Cap)
	IsEnabled(c Cap) bool

	LineWidth(w float32)
	// BindTexture selects the image sampled while Texture2D is enabled.
	// A nil image unbinds.
	BindTexture(img *image.NRGBA)

	Begin(m Mode)
	Color(c Color)
	Normal(x, y, z float32)
	TexCoord(u, v float32)
	Vertex(x, y, z float32)
	End()
}
