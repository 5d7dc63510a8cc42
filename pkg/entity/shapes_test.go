package entity

import (
	"testing"

	"github.com/strasdat/vviz/pkg/spatial"
)

func TestColoredCube(t *testing.T) {
	e := ColoredCube(0.5)
	mesh, ok := e.(Mesh3)
	if !ok {
		t.Fatalf("cube should be a mesh, got %T", e)
	}
	if len(mesh.Vertices) != 24 {
		t.Errorf("vertex count = %d, want 24", len(mesh.Vertices))
	}
	if len(mesh.Faces) != 12 {
		t.Errorf("face count = %d, want 12", len(mesh.Faces))
	}
	for _, v := range mesh.Vertices {
		p := v.Position()
		for _, c := range []float32{p.X, p.Y, p.Z} {
			if c != 0.5 && c != -0.5 {
				t.Fatalf("cube corner component %g out of {-0.5, 0.5}", c)
			}
		}
	}
}

func TestColoredTriangles(t *testing.T) {
	tris := []ColoredTriangle{
		{Corners: [3]spatial.Vec3{{X: 1}, {Y: 1}, {Z: 1}}, Color: Color{1, 0, 0, 1}},
		{Corners: [3]spatial.Vec3{{X: -1}, {Y: -1}, {Z: -1}}, Color: Color{0, 1, 0, 1}},
	}
	mesh := ColoredTriangles(tris).(Mesh3)
	if len(mesh.Vertices) != 6 || len(mesh.Faces) != 2 {
		t.Fatalf("got %d vertices, %d faces", len(mesh.Vertices), len(mesh.Faces))
	}
	if mesh.Faces[1] != [3]int16{3, 4, 5} {
		t.Errorf("second face indices = %v", mesh.Faces[1])
	}
}

func TestAxis3(t *testing.T) {
	segs := Axis3(2).(LineSegments3)
	if len(segs.Vertices) != 6 || len(segs.Segments) != 3 {
		t.Fatalf("got %d vertices, %d segments", len(segs.Vertices), len(segs.Segments))
	}
	tip := segs.Vertices[3].Position()
	if tip.X != 2 || tip.Y != 0 || tip.Z != 0 {
		t.Errorf("x-axis tip = %+v", tip)
	}
}

func TestColoredPoints3(t *testing.T) {
	pts := []spatial.Vec3{{X: 1, Y: 2, Z: 3}, {}}
	mesh := ColoredPoints3(pts, Color{0, 0, 1, 1}).(Mesh3)
	if len(mesh.Vertices) != 6 || len(mesh.Faces) != 2 {
		t.Fatalf("got %d vertices, %d faces", len(mesh.Vertices), len(mesh.Faces))
	}
}
