package manager

import (
	"github.com/strasdat/vviz/pkg/entity"
	"github.com/strasdat/vviz/pkg/message"
	"github.com/strasdat/vviz/pkg/spatial"
)

// Panel2D is a handle to a 2D image panel. The panel is display-only;
// the handle exists so a panel can be re-imaged by re-adding the label.
type Panel2D struct {
	label string
}

// Label returns the panel's label.
func (p *Panel2D) Label() string {
	return p.label
}

// Panel3D is a handle to a 3D scene panel. Entities are placed and
// posed by name; the panel itself must exist before anything is placed
// into it, which holds by construction when using this handle.
type Panel3D struct {
	shared *Shared
	label  string
}

// Label returns the panel's label.
func (p *Panel3D) Label() string {
	return p.label
}

// PlaceEntity adds e to the panel at the identity pose. If an entity
// with this label already exists it is replaced in place.
func (p *Panel3D) PlaceEntity(label string, e entity.Entity3) {
	p.PlaceEntityAt(label, e, spatial.IdentityPose())
}

// PlaceEntityAt adds e to the panel posed at scenePose (the pose of the
// entity in the panel's scene frame). If an entity with this label
// already exists it is replaced in place.
func (p *Panel3D) PlaceEntityAt(label string, e entity.Entity3, scenePose spatial.Pose) {
	p.shared.enqueue(message.PlaceEntity{
		Panel: p.label,
		Entity: entity.Named3{
			Label:     label,
			Entity:    e,
			ScenePose: scenePose,
		},
	})
}

// UpdateEntityPose sets the scene pose of the named entity. If no such
// entity exists in the panel this is a no-op.
func (p *Panel3D) UpdateEntityPose(label string, scenePose spatial.Pose) {
	p.shared.enqueue(message.UpdateEntityPose{
		Panel:     p.label,
		Entity:    label,
		ScenePose: scenePose,
	})
}
