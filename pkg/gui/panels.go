package gui

import (
	"math"

	"github.com/strasdat/vviz/internal/omap"
	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/entity"
	"github.com/strasdat/vviz/pkg/spatial"
)

// Panel is one cell of the main display area. The variant set is
// closed: Panel2D or Panel3D.
type Panel interface {
	// AspectRatio is the panel's preferred width over height, used by
	// the grid layout.
	AspectRatio() float64
	isPanel()
}

// Panel2D shows a single image. Re-adding the label swaps the image.
type Panel2D struct {
	Image component.ImageRGBA8
}

func (p *Panel2D) AspectRatio() float64 {
	return p.Image.AspectRatio()
}

func (*Panel2D) isPanel() {}

// panel3DAspect is the fixed render target shape of a 3D viewport.
const panel3DAspect = 640.0 / 480.0

// Default orbit camera: slightly above the scene, pulled back along +z,
// pitched down to face the origin.
const (
	defaultOrbitPitch    = -0.4
	defaultOrbitDistance = 3.5
)

// Panel3D shows an ordered set of named entities through an orbit
// camera. All entity state arrives via Apply; the camera is the only
// part of the panel that local input mutates.
type Panel3D struct {
	entities *omap.Map[string, entity.Named3]

	// Orbit state, in radians. The camera circles the scene origin at a
	// fixed distance; yaw spins around y, pitch tilts toward the poles.
	yaw, pitch float64
	distance   float64
}

// NewPanel3D returns an empty 3D panel with the default camera.
func NewPanel3D() *Panel3D {
	return &Panel3D{
		entities: omap.New[string, entity.Named3](),
		pitch:    defaultOrbitPitch,
		distance: defaultOrbitDistance,
	}
}

func (p *Panel3D) AspectRatio() float64 {
	return panel3DAspect
}

func (*Panel3D) isPanel() {}

// Entity returns the named entity, if placed.
func (p *Panel3D) Entity(label string) (entity.Named3, bool) {
	return p.entities.Get(label)
}

// EntityLabels returns a copy of the entity labels in placement order.
func (p *Panel3D) EntityLabels() []string {
	return append([]string(nil), p.entities.Keys()...)
}

// place inserts or replaces an entity, keeping its slot position on
// replace.
func (p *Panel3D) place(e entity.Named3) {
	p.entities.Set(e.Label, e)
}

// updatePose repositions a placed entity. It reports false when the
// entity does not exist.
func (p *Panel3D) updatePose(label string, scenePose spatial.Pose) bool {
	e, ok := p.entities.Get(label)
	if !ok {
		return false
	}
	e.ScenePose = scenePose
	p.entities.Set(label, e)
	return true
}

// Orbit rotates the camera around the scene origin by the given yaw and
// pitch deltas (radians). Pitch is clamped short of the poles so the
// view never flips.
func (p *Panel3D) Orbit(dyaw, dpitch float64) {
	const limit = math.Pi/2 - 0.01
	p.yaw += dyaw
	p.pitch = math.Max(-limit, math.Min(limit, p.pitch+dpitch))
}

// CameraPose returns the camera's pose in the scene frame: yaw around
// y, then pitch, then pulled back along the camera's own z-axis.
func (p *Panel3D) CameraPose() spatial.Pose {
	return spatial.RotY(float32(p.yaw)).
		Mul(spatial.RotX(float32(p.pitch))).
		Mul(spatial.Translate(spatial.Vec3{Z: float32(p.distance)}))
}
