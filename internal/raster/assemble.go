package raster

import "langit/internal/gfx"

// assembleTriangles returns vertex index triples for a filled primitive
// of n vertices. Incomplete trailing groups are ignored.
func assembleTriangles(m gfx.Mode, n int) [][3]int {
	var out [][3]int
	switch m {
	case gfx.Triangles:
		for i := 0; i+2 < n; i += 3 {
			out = append(out, [3]int{i, i + 1, i + 2})
		}
	case gfx.TriangleStrip:
		for i := 2; i < n; i++ {
			if i%2 == 0 {
				out = append(out, [3]int{i - 2, i - 1, i})
			} else {
				out = append(out, [3]int{i - 1, i - 2, i})
			}
		}
	case gfx.TriangleFan, gfx.Polygon:
		for i := 2; i < n; i++ {
			out = append(out, [3]int{0, i - 1, i})
		}
	case gfx.Quads:
		for i := 0; i+3 < n; i += 4 {
			out = append(out, [3]int{i, i + 1, i + 2}, [3]int{i, i + 2, i + 3})
		}
	case gfx.QuadStrip:
		// v0 v1 v3 v2 form each quad.
		for i := 0; i+3 < n; i += 2 {
			out = append(out, [3]int{i, i + 1, i + 3}, [3]int{i, i + 3, i + 2})
		}
	}
	return out
}

// assembleLines returns vertex index pairs for a line primitive.
func assembleLines(m gfx.Mode, n int) [][2]int {
	var out [][2]int
	switch m {
	case gfx.Lines:
		for i := 0; i+1 < n; i += 2 {
			out = append(out, [2]int{i, i + 1})
		}
	case gfx.LineStrip, gfx.LineLoop:
		for i := 1; i < n; i++ {
			out = append(out, [2]int{i - 1, i})
		}
		if m == gfx.LineLoop && n > 2 {
			out = append(out, [2]int{n - 1, 0})
		}
	}
	return out
}
