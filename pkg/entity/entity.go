// Package entity defines the 3D drawables that can be placed into a 3D
// panel: triangle meshes and line segment sets, each positioned by a
// rigid pose in the panel's scene frame.
package entity

import "github.com/strasdat/vviz/pkg/spatial"

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// Vertex is a colored 3D vertex: position followed by RGBA. The flat
// layout matches the vertex buffer format renderers consume.
type Vertex [7]float32

// VertexOf packs a position and color into a Vertex.
func VertexOf(position spatial.Vec3, color Color) Vertex {
	return Vertex{position.X, position.Y, position.Z, color.R, color.G, color.B, color.A}
}

// Position returns the vertex position.
func (v Vertex) Position() spatial.Vec3 {
	return spatial.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Mesh3 is a triangle mesh of colored vertices. Faces index into
// Vertices, three indices per triangle.
type Mesh3 struct {
	Vertices []Vertex   `json:"vertices"`
	Faces    [][3]int16 `json:"faces"`
}

// LineSegments3 is a set of colored line segments. Each index pair in
// Segments selects the two endpoint vertices of one segment.
type LineSegments3 struct {
	Vertices []Vertex   `json:"vertices"`
	Segments [][2]int16 `json:"segments"`
}

// Entity3 is a 3D drawable. The variant set is closed: Mesh3 or
// LineSegments3.
type Entity3 interface {
	isEntity3()
}

func (Mesh3) isEntity3()         {}
func (LineSegments3) isEntity3() {}

// Named3 couples an entity with its label and its pose in the scene
// frame. Entities inside a panel are keyed by label; re-placing a label
// replaces the previous entity in place.
type Named3 struct {
	Label  string
	Entity Entity3
	// ScenePose places the entity in the panel's scene frame.
	ScenePose spatial.Pose
}
