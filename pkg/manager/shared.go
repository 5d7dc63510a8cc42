package manager

import (
	"fmt"
	"sync"

	"github.com/strasdat/vviz/internal/omap"
	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/errors"
	"github.com/strasdat/vviz/pkg/message"
)

// Shared is the control-side state every handle aliases: the mirror of
// component values and the outbound message queue. The mirror is
// updated optimistically when a component is added and corrected by
// inbound FromGui messages during Synchronize.
//
// The control side is expected to run on a single goroutine, but
// handles alias this state freely, so access is serialized by a mutex
// rather than by convention.
type Shared struct {
	mu         sync.Mutex
	components *omap.Map[string, component.Component]
	queue      []message.ToGui
}

func newShared() *Shared {
	return &Shared{components: omap.New[string, component.Component]()}
}

// register records the local mirror entry and queues the matching Add
// message in one step, so a read issued immediately after an add
// succeeds without a round trip. Re-using a label overwrites the mirror
// entry; the presentation side resolves to the same state once the
// message lands, since its insert is idempotent on label.
func (s *Shared) register(label string, c component.Component, msg message.ToGui) {
	s.mu.Lock()
	s.components.Set(label, c)
	s.queue = append(s.queue, msg)
	s.mu.Unlock()
}

// enqueue appends a message to the outbound FIFO.
func (s *Shared) enqueue(msg message.ToGui) {
	s.mu.Lock()
	s.queue = append(s.queue, msg)
	s.mu.Unlock()
}

// takeQueue removes and returns the whole outbound queue.
func (s *Shared) takeQueue() []message.ToGui {
	s.mu.Lock()
	queue := s.queue
	s.queue = nil
	s.mu.Unlock()
	return queue
}

// delete removes a mirror entry.
func (s *Shared) delete(label string) {
	s.mu.Lock()
	s.components.Delete(label)
	s.mu.Unlock()
}

// apply folds one presentation report into the mirror. The targeted
// slot must exist and hold the matching variant.
func (s *Shared) apply(m message.FromGui) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch v := m.(type) {
	case message.ButtonPressed:
		variantOf[*component.Button](s, "manager.ButtonPressed", v.Label).Pressed = true
	case message.ToggleChanged:
		variantOf[*component.Toggle](s, "manager.ToggleChanged", v.Label).Value = v.Value
	case message.RangedChanged:
		variantOf[*component.RangedNumber](s, "manager.RangedChanged", v.Label).Value = v.Value
	case message.EnumChanged:
		variantOf[*component.EnumCombo](s, "manager.EnumChanged", v.Label).Value = v.Value
	default:
		panic(&errors.DesyncError{Op: "manager.apply", Detail: fmt.Sprintf("unknown message %T", m)})
	}
}

// variantOf fetches a mirror slot and asserts its concrete variant.
// Callers hold s.mu.
func variantOf[T component.Component](s *Shared, op, label string) T {
	c, ok := s.components.Get(label)
	if !ok {
		panic(&errors.DesyncError{Op: op, Label: label, Detail: "no mirror slot"})
	}
	v, ok := c.(T)
	if !ok {
		panic(&errors.DesyncError{Op: op, Label: label, Detail: fmt.Sprintf("slot holds %T", c)})
	}
	return v
}

// read runs fn with the mirror locked. Handles use it for their value
// reads so aliased access stays serialized.
func (s *Shared) read(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
