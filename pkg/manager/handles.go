package manager

import (
	"fmt"

	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/errors"
)

// Handles are lightweight references into the shared mirror. Each
// edge-triggered handle keeps its own last-seen value, so two handles
// reading the same label each get their own "changed since I last
// looked" answer.

// Button is a handle to a push button.
type Button struct {
	shared *Shared
	label  string
}

// WasPressed reports whether the button was pressed since the last
// call, and clears the latch. Repeated calls without a new press return
// false.
func (b *Button) WasPressed() bool {
	var pressed bool
	b.shared.read(func() {
		slot := variantOf[*component.Button](b.shared, "manager.Button.WasPressed", b.label)
		pressed = slot.Pressed
		slot.Pressed = false
	})
	return pressed
}

// Toggle is a handle to a boolean checkbox.
type Toggle struct {
	shared *Shared
	label  string
	cache  bool
}

// Get returns the current value.
func (tg *Toggle) Get() bool {
	var value bool
	tg.shared.read(func() {
		value = variantOf[*component.Toggle](tg.shared, "manager.Toggle.Get", tg.label).Value
	})
	tg.cache = value
	return value
}

// GetNew returns the current value only if it differs from what this
// handle last observed.
func (tg *Toggle) GetNew() (bool, bool) {
	var value bool
	tg.shared.read(func() {
		value = variantOf[*component.Toggle](tg.shared, "manager.Toggle.GetNew", tg.label).Value
	})
	if value == tg.cache {
		return false, false
	}
	tg.cache = value
	return value, true
}

// Number is a handle to a read-only numeric label of kind T.
type Number[T component.Number] struct {
	shared *Shared
	label  string
	cache  T
}

// Get returns the current value.
func (n *Number[T]) Get() T {
	var value T
	n.shared.read(func() {
		slot := variantOf[*component.NumberLabel](n.shared, "manager.Number.Get", n.label)
		value = component.NumberOf[T](slot.Value)
	})
	n.cache = value
	return value
}

// GetNew returns the current value only if it differs from what this
// handle last observed.
func (n *Number[T]) GetNew() (T, bool) {
	var value T
	n.shared.read(func() {
		slot := variantOf[*component.NumberLabel](n.shared, "manager.Number.GetNew", n.label)
		value = component.NumberOf[T](slot.Value)
	})
	if value == n.cache {
		var zero T
		return zero, false
	}
	n.cache = value
	return value, true
}

// RangedNumber is a handle to a slider of kind T. Values read from it
// stay within the bounds the slider was declared with.
type RangedNumber[T component.Number] struct {
	shared *Shared
	label  string
	cache  T
}

// Get returns the current value.
func (r *RangedNumber[T]) Get() T {
	var value T
	r.shared.read(func() {
		slot := variantOf[*component.RangedNumber](r.shared, "manager.RangedNumber.Get", r.label)
		value = component.NumberOf[T](slot.Value)
	})
	r.cache = value
	return value
}

// GetNew returns the current value only if it differs from what this
// handle last observed.
func (r *RangedNumber[T]) GetNew() (T, bool) {
	var value T
	r.shared.read(func() {
		slot := variantOf[*component.RangedNumber](r.shared, "manager.RangedNumber.GetNew", r.label)
		value = component.NumberOf[T](slot.Value)
	})
	if value == r.cache {
		var zero T
		return zero, false
	}
	r.cache = value
	return value, true
}

// EnumValue is the constraint for enum component values: comparable,
// with a String rendering that distinguishes every option.
type EnumValue interface {
	comparable
	fmt.Stringer
}

// Enum is a handle to a combo box over the closed option set of T.
type Enum[T EnumValue] struct {
	shared  *Shared
	label   string
	options []T
	cache   T
}

// Get returns the current value.
func (e *Enum[T]) Get() T {
	value := e.current("manager.Enum.Get")
	e.cache = value
	return value
}

// GetNew returns the current value only if it differs from what this
// handle last observed.
func (e *Enum[T]) GetNew() (T, bool) {
	value := e.current("manager.Enum.GetNew")
	if value == e.cache {
		var zero T
		return zero, false
	}
	e.cache = value
	return value, true
}

// current reads the mirror's string rendering and parses it back into
// T by matching the option set. The rendering always originated from
// one of the options, so a miss means the closed set was violated.
func (e *Enum[T]) current(op string) T {
	var rendered string
	e.shared.read(func() {
		rendered = variantOf[*component.EnumCombo](e.shared, op, e.label).Value
	})
	for _, opt := range e.options {
		if opt.String() == rendered {
			return opt
		}
	}
	panic(&errors.DesyncError{
		Op:     op,
		Label:  e.label,
		Detail: fmt.Sprintf("value %q is not among the declared options", rendered),
	})
}
