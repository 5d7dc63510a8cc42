// Package manager is the control-side API of vviz. Application code
// adds components and panels through a Manager, reads their current
// values back through typed handles without ever blocking on the render
// loop, and calls Synchronize periodically to exchange message batches
// with the presentation side.
//
// Reads are served from a local mirror that is written optimistically
// on every add and corrected by inbound reports during Synchronize, so
// a value is readable immediately after its add call returns.
package manager

import (
	"time"

	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/message"
	"github.com/strasdat/vviz/pkg/transport"
)

// Manager owns the control side of one link: the mirror, the outbound
// queue and the transport endpoint.
type Manager struct {
	link   transport.ControlLink
	shared *Shared
	tick   time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithTick overrides the sleep floor applied at the end of every
// Synchronize call.
func WithTick(tick time.Duration) Option {
	return func(m *Manager) {
		m.tick = tick
	}
}

// New returns a Manager speaking over link. The link is typically one
// end of transport.NewLocalPair or a transport.RemoteControl.
func New(link transport.ControlLink, opts ...Option) *Manager {
	m := &Manager{
		link:   link,
		shared: newShared(),
		tick:   transport.DefaultTick,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Synchronize exchanges state with the presentation side: it first
// drains the outbound queue completely to the transport, then applies
// every inbound report that is currently available (a non-blocking
// poll, not a blocking receive), then sleeps the tick floor. Call it
// repeatedly from the application loop.
func (m *Manager) Synchronize() error {
	if err := m.link.Send(m.shared.takeQueue()); err != nil {
		return err
	}
	inbound, err := m.link.Receive()
	if err != nil {
		return err
	}
	for _, msg := range inbound {
		m.shared.apply(msg)
	}
	if m.tick > 0 {
		time.Sleep(m.tick)
	}
	return nil
}

// AddButton adds a push button to the side panel.
func (m *Manager) AddButton(label string) *Button {
	m.shared.register(label,
		&component.Button{},
		message.AddButton{Label: label})
	return &Button{shared: m.shared, label: label}
}

// AddToggle adds a boolean checkbox to the side panel.
func (m *Manager) AddToggle(label string, value bool) *Toggle {
	m.shared.register(label,
		&component.Toggle{Value: value},
		message.AddToggle{Label: label, Value: value})
	return &Toggle{shared: m.shared, label: label, cache: value}
}

// AddNumber adds a read-only numeric label to the side panel.
func AddNumber[T component.Number](m *Manager, label string, value T) *Number[T] {
	s := component.ScalarOf(value)
	m.shared.register(label,
		&component.NumberLabel{Value: s},
		message.AddNumber{Label: label, Value: s})
	return &Number[T]{shared: m.shared, label: label, cache: value}
}

// AddRangedNumber adds a slider with bounds [min, max] to the side
// panel. The initial value must lie within the bounds; that is the
// caller's contract, not checked here.
func AddRangedNumber[T component.Number](m *Manager, label string, value, min, max T) *RangedNumber[T] {
	s, lo, hi := component.ScalarOf(value), component.ScalarOf(min), component.ScalarOf(max)
	m.shared.register(label,
		&component.RangedNumber{Value: s, Min: lo, Max: hi},
		message.AddRangedNumber{Label: label, Value: s, Min: lo, Max: hi})
	return &RangedNumber[T]{shared: m.shared, label: label, cache: value}
}

// AddEnum adds a combo box over the closed set options to the side
// panel. Values cross the wire as their String renderings, so every
// option must render to a distinct string.
func AddEnum[T EnumValue](m *Manager, label string, value T, options []T) *Enum[T] {
	rendered := make([]string, len(options))
	for i, opt := range options {
		rendered[i] = opt.String()
	}
	m.shared.register(label,
		&component.EnumCombo{Value: value.String(), Options: rendered},
		message.AddEnum{Label: label, Value: value.String(), Options: rendered})
	return &Enum[T]{shared: m.shared, label: label, options: options, cache: value}
}

// AddPanel2D adds a 2D image panel to the main display area.
func (m *Manager) AddPanel2D(label string, image component.ImageRGBA8) *Panel2D {
	m.shared.enqueue(message.AddPanel2D{Label: label, Image: image})
	return &Panel2D{label: label}
}

// AddPanel3D adds an empty 3D scene panel to the main display area.
func (m *Manager) AddPanel3D(label string) *Panel3D {
	m.shared.enqueue(message.AddPanel3D{Label: label})
	return &Panel3D{shared: m.shared, label: label}
}

// DeleteComponent removes a component from both sides. Deleting a label
// that does not exist is a no-op; handles to a deleted label must not
// be read afterwards.
func (m *Manager) DeleteComponent(label string) {
	m.shared.delete(label)
	m.shared.enqueue(message.DeleteComponent{Label: label})
}
