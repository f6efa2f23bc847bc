package confetti

import "github.com/go-gl/mathgl/mgl32"

// Vertex matches the per-vertex stream of particles.wgsl (location 0).
type Vertex struct {
	Position mgl32.Vec2 `confetti:"layout" format:"float2" location:"0"`
}

// Triangle returns the lower-right half of the rectangle at (x,y) with size w×h.
func Triangle(x, y, w, h float32) [3]Vertex {
	x0, x1 := x, x+w
	y0, y1 := y, y+h

	return [3]Vertex{
		{Position: mgl32.Vec2{x0, y0}},
		{Position: mgl32.Vec2{x1, y0}},
		{Position: mgl32.Vec2{x1, y1}},
	}
}

// Rectangle returns two triangles (triangle list, no index buffer) covering
// the rectangle at (x,y) with size w×h. Both triangles share the diagonal
// corners (x,y) and (x+w,y+h).
func Rectangle(x, y, w, h float32) [6]Vertex {
	x0, x1 := x, x+w
	y0, y1 := y, y+h

	return [6]Vertex{
		{Position: mgl32.Vec2{x0, y0}}, // first triangle
		{Position: mgl32.Vec2{x1, y0}},
		{Position: mgl32.Vec2{x1, y1}},
		{Position: mgl32.Vec2{x0, y0}}, // second triangle
		{Position: mgl32.Vec2{x1, y1}},
		{Position: mgl32.Vec2{x0, y1}},
	}
}

// Quad is a size×size Rectangle centered on the local origin, so the shader
// can spin it in place.
func Quad(size float32) [6]Vertex {
	half := size / 2
	return Rectangle(-half, -half, size, size)
}
