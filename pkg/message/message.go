// Package message defines the two closed command families exchanged
// between the control side and the presentation side, and their JSON
// wire encoding.
//
// ToGui messages flow control -> presentation (add components and
// panels, place entities, update poses, delete). FromGui messages flow
// presentation -> control (value changes and button presses). Ordering
// within each family is FIFO end to end; no ordering holds across
// families.
//
// The variant sets are closed sum types. Receivers apply them with an
// exhaustive type switch at the point of use; there is no dynamic
// dispatch and the wire schema is enumerable from the types here.
package message

import (
	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/entity"
	"github.com/strasdat/vviz/pkg/spatial"
)

// ToGui is a control-to-presentation command.
type ToGui interface {
	isToGui()
}

// AddButton creates (or replaces) a push button component.
type AddButton struct {
	Label string `json:"label"`
}

// AddToggle creates (or replaces) a checkbox component.
type AddToggle struct {
	Label string `json:"label"`
	Value bool   `json:"value"`
}

// AddNumber creates (or replaces) a read-only numeric label.
type AddNumber struct {
	Label string           `json:"label"`
	Value component.Scalar `json:"value"`
}

// AddRangedNumber creates (or replaces) a slider with bounds [Min, Max].
type AddRangedNumber struct {
	Label string           `json:"label"`
	Value component.Scalar `json:"value"`
	Min   component.Scalar `json:"min"`
	Max   component.Scalar `json:"max"`
}

// AddEnum creates (or replaces) a combo box. Value is the string
// rendering of the selected variant and must be one of Options.
type AddEnum struct {
	Label   string   `json:"label"`
	Value   string   `json:"value"`
	Options []string `json:"options"`
}

// AddPanel2D creates (or replaces) a 2D image panel.
type AddPanel2D struct {
	Label string               `json:"label"`
	Image component.ImageRGBA8 `json:"image"`
}

// AddPanel3D creates (or replaces) an empty 3D scene panel.
type AddPanel3D struct {
	Label string `json:"label"`
}

// PlaceEntity inserts or replaces a named entity inside a 3D panel,
// preserving insertion order on replace. The panel must already exist;
// placing into a missing panel is a caller error.
type PlaceEntity struct {
	Panel  string
	Entity entity.Named3
}

// UpdateEntityPose sets the scene pose of a named entity inside a 3D
// panel. If the entity does not exist the message is a silent no-op by
// design; occurrences are counted, not raised.
type UpdateEntityPose struct {
	Panel     string       `json:"panel"`
	Entity    string       `json:"entity"`
	ScenePose spatial.Pose `json:"scenePose"`
}

// DeleteComponent removes a component. Deleting a missing label is a
// silent no-op.
type DeleteComponent struct {
	Label string `json:"label"`
}

func (AddButton) isToGui()        {}
func (AddToggle) isToGui()        {}
func (AddNumber) isToGui()        {}
func (AddRangedNumber) isToGui()  {}
func (AddEnum) isToGui()          {}
func (AddPanel2D) isToGui()       {}
func (AddPanel3D) isToGui()       {}
func (PlaceEntity) isToGui()      {}
func (UpdateEntityPose) isToGui() {}
func (DeleteComponent) isToGui()  {}

// FromGui is a presentation-to-control report. Each interactive change
// event produces exactly one message; applying one to a mirror slot that
// does not exist is a protocol desync.
type FromGui interface {
	isFromGui()
}

// ButtonPressed reports a button click. The mirror latches the pressed
// flag until the control side reads it.
type ButtonPressed struct {
	Label string `json:"label"`
}

// ToggleChanged reports a checkbox toggle.
type ToggleChanged struct {
	Label string `json:"label"`
	Value bool   `json:"value"`
}

// RangedChanged reports a slider drag. Value is within the bounds the
// slider was declared with.
type RangedChanged struct {
	Label string           `json:"label"`
	Value component.Scalar `json:"value"`
}

// EnumChanged reports a combo box selection. Value is one of the
// declared options.
type EnumChanged struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (ButtonPressed) isFromGui() {}
func (ToggleChanged) isFromGui() {}
func (RangedChanged) isFromGui() {}
func (EnumChanged) isFromGui()   {}
