// Package gui is the presentation side of vviz: the authoritative
// component and panel tables the render loop owns, the per-frame loop
// that applies control commands and collects user input, and the grid
// layout for the main display area.
//
// Nothing here is touched by the control side directly; every
// cross-side effect arrives as a message through the transport.
package gui

import (
	"fmt"

	"github.com/strasdat/vviz/internal/omap"
	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/errors"
	"github.com/strasdat/vviz/pkg/message"
)

// Store holds the authoritative state of the presentation side. The
// render loop mutates it directly from user input; the control side
// only ever reaches it through ToGui messages.
type Store struct {
	components *omap.Map[string, component.Component]
	panels     *omap.Map[string, Panel]

	// pending collects one FromGui message per input change event,
	// drained once per frame.
	pending []message.FromGui

	stats Stats
}

// Stats counts the deliberate silent no-ops of the apply policy, so a
// desync shows up in diagnostics without turning the policy into an
// error.
type Stats struct {
	// PoseUpdatesDropped counts UpdateEntityPose messages whose entity
	// did not exist.
	PoseUpdatesDropped uint64
	// DeletesDropped counts DeleteComponent messages whose label did
	// not exist.
	DeletesDropped uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		components: omap.New[string, component.Component](),
		panels:     omap.New[string, Panel](),
	}
}

// Stats returns the silent no-op counters.
func (s *Store) Stats() Stats {
	return s.stats
}

// Component returns the component stored under label.
func (s *Store) Component(label string) (component.Component, bool) {
	return s.components.Get(label)
}

// Panel returns the panel stored under label.
func (s *Store) Panel(label string) (Panel, bool) {
	return s.panels.Get(label)
}

// ComponentLabels returns a copy of the component labels in insertion
// order.
func (s *Store) ComponentLabels() []string {
	return append([]string(nil), s.components.Keys()...)
}

// PanelLabels returns a copy of the panel labels in insertion order.
func (s *Store) PanelLabels() []string {
	return append([]string(nil), s.panels.Keys()...)
}

// Apply folds one control command into the store. Add commands are
// insert-or-replace on label. PlaceEntity requires its panel to exist;
// that is the control side's contract, and a miss is fatal.
// UpdateEntityPose on a missing entity and DeleteComponent on a missing
// label are silent no-ops by design, counted in Stats.
func (s *Store) Apply(m message.ToGui) {
	switch v := m.(type) {
	case message.AddButton:
		s.components.Set(v.Label, &component.Button{})
	case message.AddToggle:
		s.components.Set(v.Label, &component.Toggle{Value: v.Value})
	case message.AddNumber:
		s.components.Set(v.Label, &component.NumberLabel{Value: v.Value})
	case message.AddRangedNumber:
		s.components.Set(v.Label, &component.RangedNumber{Value: v.Value, Min: v.Min, Max: v.Max})
	case message.AddEnum:
		s.components.Set(v.Label, &component.EnumCombo{Value: v.Value, Options: v.Options})
	case message.AddPanel2D:
		s.panels.Set(v.Label, &Panel2D{Image: v.Image})
	case message.AddPanel3D:
		s.panels.Set(v.Label, NewPanel3D())
	case message.PlaceEntity:
		s.panel3D("gui.PlaceEntity", v.Panel).place(v.Entity)
	case message.UpdateEntityPose:
		if !s.panel3D("gui.UpdateEntityPose", v.Panel).updatePose(v.Entity, v.ScenePose) {
			s.stats.PoseUpdatesDropped++
		}
	case message.DeleteComponent:
		if _, ok := s.components.Get(v.Label); !ok {
			s.stats.DeletesDropped++
			return
		}
		s.components.Delete(v.Label)
	default:
		panic(&errors.DesyncError{Op: "gui.Apply", Detail: fmt.Sprintf("unknown message %T", m)})
	}
}

// panel3D fetches a 3D panel or panics: entity placement and pose
// updates target panels the control side created itself.
func (s *Store) panel3D(op, label string) *Panel3D {
	p, ok := s.panels.Get(label)
	if !ok {
		panic(&errors.DesyncError{Op: op, Label: label, Detail: "no such panel"})
	}
	p3, ok := p.(*Panel3D)
	if !ok {
		panic(&errors.DesyncError{Op: op, Label: label, Detail: fmt.Sprintf("panel is %T", p)})
	}
	return p3
}

// TakePending removes and returns the FromGui messages collected since
// the last call, in event order.
func (s *Store) TakePending() []message.FromGui {
	pending := s.pending
	s.pending = nil
	return pending
}

// componentVariant fetches a component slot and asserts its variant.
func componentVariant[T component.Component](s *Store, op, label string) T {
	c, ok := s.components.Get(label)
	if !ok {
		panic(&errors.DesyncError{Op: op, Label: label, Detail: "no such component"})
	}
	v, ok := c.(T)
	if !ok {
		panic(&errors.DesyncError{Op: op, Label: label, Detail: fmt.Sprintf("slot holds %T", c)})
	}
	return v
}
