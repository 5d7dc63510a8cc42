package gui

import (
	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/entity"
	"github.com/strasdat/vviz/pkg/spatial"
)

// Renderer draws panel contents into grid cells. Implementations wrap a
// concrete graphics backend; the loop only hands them flattened frame
// data and never retains what they return.
type Renderer interface {
	// RenderPanel2D draws an image panel into a cell of the given size.
	RenderPanel2D(label string, img component.ImageRGBA8, cellW, cellH float64)
	// RenderPanel3D draws a 3D panel's scene into a cell of the given
	// size.
	RenderPanel3D(label string, scene Scene, cellW, cellH float64)
}

// Scene is the flattened draw list of one 3D panel for one frame.
type Scene struct {
	// CameraPose is the camera's pose in the scene frame; renderers
	// invert it for the view matrix.
	CameraPose spatial.Pose
	// Items lists the panel's entities in placement order.
	Items []DrawItem
}

// DrawItem is one entity to draw.
type DrawItem struct {
	Label     string
	Entity    entity.Entity3
	ScenePose spatial.Pose
}

// Scene flattens the panel into a frame draw list.
func (p *Panel3D) Scene() Scene {
	scene := Scene{CameraPose: p.CameraPose()}
	p.entities.Range(func(_ string, e entity.Named3) bool {
		scene.Items = append(scene.Items, DrawItem{
			Label:     e.Label,
			Entity:    e.Entity,
			ScenePose: e.ScenePose,
		})
		return true
	})
	return scene
}
