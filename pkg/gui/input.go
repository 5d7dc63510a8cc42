package gui

import (
	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/errors"
	"github.com/strasdat/vviz/pkg/message"
)

// Input entry points. Each corresponds to one interactive change event
// on a widget and produces at most one FromGui message: exactly one
// when the event changes state, none when it is absorbed (a toggle set
// to its current value, a slider drag clamped onto its current value).
// The widget must exist and hold the matching variant; the driver only
// routes input to widgets it drew from this store, so a miss is fatal.

// PressButton records a button click.
func (s *Store) PressButton(label string) {
	componentVariant[*component.Button](s, "gui.PressButton", label)
	s.pending = append(s.pending, message.ButtonPressed{Label: label})
}

// SetToggle sets a checkbox to value. Setting the current value is not
// a change event and emits nothing.
func (s *Store) SetToggle(label string, value bool) {
	slot := componentVariant[*component.Toggle](s, "gui.SetToggle", label)
	if slot.Value == value {
		return
	}
	slot.Value = value
	s.pending = append(s.pending, message.ToggleChanged{Label: label, Value: value})
}

// SetSlider drags a slider to value, clamped into the slider's declared
// bounds. The slider is the range's enforcement point: whatever the
// drag says, the value that lands in the store and on the wire is in
// [min, max].
func (s *Store) SetSlider(label string, value component.Scalar) {
	slot := componentVariant[*component.RangedNumber](s, "gui.SetSlider", label)
	if value.Less(slot.Min) {
		value = slot.Min
	} else if slot.Max.Less(value) {
		value = slot.Max
	}
	if value.Equal(slot.Value) {
		return
	}
	slot.Value = value
	s.pending = append(s.pending, message.RangedChanged{Label: label, Value: value})
}

// SelectEnum selects a combo box option. The option must be one of the
// declared set; re-selecting the current option emits nothing.
func (s *Store) SelectEnum(label, option string) {
	slot := componentVariant[*component.EnumCombo](s, "gui.SelectEnum", label)
	found := false
	for _, opt := range slot.Options {
		if opt == option {
			found = true
			break
		}
	}
	if !found {
		panic(&errors.DesyncError{Op: "gui.SelectEnum", Label: label, Detail: "option " + option + " not declared"})
	}
	if slot.Value == option {
		return
	}
	slot.Value = option
	s.pending = append(s.pending, message.EnumChanged{Label: label, Value: option})
}

// OrbitPanel applies a camera drag to a 3D panel. Only the panel's
// camera pose changes; entities and the component table are untouched,
// and nothing crosses the wire.
func (s *Store) OrbitPanel(label string, dyaw, dpitch float64) {
	s.panel3D("gui.OrbitPanel", label).Orbit(dyaw, dpitch)
}
