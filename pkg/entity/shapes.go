package entity

import "github.com/strasdat/vviz/pkg/spatial"

// ColoredCube returns an axis-aligned cube with side length 2*scale
// centered at the origin, each face pair in a distinct color.
func ColoredCube(scale float32) Entity3 {
	s := scale
	face := func(color Color, corners ...spatial.Vec3) []Vertex {
		out := make([]Vertex, 0, len(corners))
		for _, c := range corners {
			out = append(out, VertexOf(c, color))
		}
		return out
	}

	var vertices []Vertex
	vertices = append(vertices, face(Color{1, 0.5, 0.5, 1},
		spatial.Vec3{X: -s, Y: -s, Z: -s}, spatial.Vec3{X: s, Y: -s, Z: -s},
		spatial.Vec3{X: s, Y: s, Z: -s}, spatial.Vec3{X: -s, Y: s, Z: -s})...)
	vertices = append(vertices, face(Color{0.5, 1, 0.5, 1},
		spatial.Vec3{X: -s, Y: -s, Z: s}, spatial.Vec3{X: s, Y: -s, Z: s},
		spatial.Vec3{X: s, Y: s, Z: s}, spatial.Vec3{X: -s, Y: s, Z: s})...)
	vertices = append(vertices, face(Color{0.5, 0.5, 1, 1},
		spatial.Vec3{X: -s, Y: -s, Z: -s}, spatial.Vec3{X: -s, Y: s, Z: -s},
		spatial.Vec3{X: -s, Y: s, Z: s}, spatial.Vec3{X: -s, Y: -s, Z: s})...)
	vertices = append(vertices, face(Color{1, 0.5, 0, 1},
		spatial.Vec3{X: s, Y: -s, Z: -s}, spatial.Vec3{X: s, Y: s, Z: -s},
		spatial.Vec3{X: s, Y: s, Z: s}, spatial.Vec3{X: s, Y: -s, Z: s})...)
	vertices = append(vertices, face(Color{0, 0.5, 1, 1},
		spatial.Vec3{X: -s, Y: -s, Z: -s}, spatial.Vec3{X: -s, Y: -s, Z: s},
		spatial.Vec3{X: s, Y: -s, Z: s}, spatial.Vec3{X: s, Y: -s, Z: -s})...)
	vertices = append(vertices, face(Color{1, 0, 0.5, 1},
		spatial.Vec3{X: -s, Y: s, Z: -s}, spatial.Vec3{X: -s, Y: s, Z: s},
		spatial.Vec3{X: s, Y: s, Z: s}, spatial.Vec3{X: s, Y: s, Z: -s})...)

	faces := [][3]int16{
		{0, 1, 2}, {0, 2, 3},
		{6, 5, 4}, {7, 6, 4},
		{8, 9, 10}, {8, 10, 11},
		{14, 13, 12}, {15, 14, 12},
		{16, 17, 18}, {16, 18, 19},
		{22, 21, 20}, {23, 22, 20},
	}
	return Mesh3{Vertices: vertices, Faces: faces}
}

// ColoredTriangle is one solid-colored triangle face.
type ColoredTriangle struct {
	Corners [3]spatial.Vec3
	Color   Color
}

// ColoredTriangles builds a mesh from independent triangles, three
// vertices per face.
func ColoredTriangles(triangles []ColoredTriangle) Entity3 {
	vertices := make([]Vertex, 0, 3*len(triangles))
	faces := make([][3]int16, 0, len(triangles))
	for i, tri := range triangles {
		for _, c := range tri.Corners {
			vertices = append(vertices, VertexOf(c, tri.Color))
		}
		base := int16(i * 3)
		faces = append(faces, [3]int16{base, base + 1, base + 2})
	}
	return Mesh3{Vertices: vertices, Faces: faces}
}

// Axis3 returns a coordinate frame gizmo: three line segments of length
// scale along +x (red), +y (green) and +z (blue).
func Axis3(scale float32) Entity3 {
	red := Color{1, 0, 0, 1}
	green := Color{0, 1, 0, 1}
	blue := Color{0, 0, 1, 1}
	origin := spatial.Vec3{}
	return LineSegments3{
		Vertices: []Vertex{
			VertexOf(origin, red),
			VertexOf(origin, green),
			VertexOf(origin, blue),
			VertexOf(spatial.Vec3{X: scale}, red),
			VertexOf(spatial.Vec3{Y: scale}, green),
			VertexOf(spatial.Vec3{Z: scale}, blue),
		},
		Segments: [][2]int16{{0, 3}, {1, 4}, {2, 5}},
	}
}

// ColoredPoints3 represents each point as a tiny triangle, since line
// and point primitives are not universally available. The triangle spans
// pointSize along each axis from the point.
func ColoredPoints3(points []spatial.Vec3, color Color) Entity3 {
	const pointSize = 0.01
	vertices := make([]Vertex, 0, 3*len(points))
	faces := make([][3]int16, 0, len(points))
	for i, p := range points {
		vertices = append(vertices,
			VertexOf(p.Add(spatial.Vec3{X: pointSize}), color),
			VertexOf(p.Add(spatial.Vec3{Y: pointSize}), color),
			VertexOf(p.Add(spatial.Vec3{Z: pointSize}), color),
		)
		base := int16(i * 3)
		faces = append(faces, [3]int16{base, base + 1, base + 2})
	}
	return Mesh3{Vertices: vertices, Faces: faces}
}
