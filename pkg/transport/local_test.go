package transport

import (
	"testing"

	"github.com/strasdat/vviz/pkg/message"
)

func TestLocalPairDelivery(t *testing.T) {
	control, gui := NewLocalPair()

	if err := control.Send([]message.ToGui{
		message.AddButton{Label: "a"},
		message.AddButton{Label: "b"},
	}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := control.Send([]message.ToGui{message.AddButton{Label: "c"}}); err != nil {
		t.Fatalf("send: %v", err)
	}

	got, err := gui.Receive()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("received %d messages, want %d", len(got), len(want))
	}
	for i, m := range got {
		if m.(message.AddButton).Label != want[i] {
			t.Errorf("message[%d] = %v, want label %q", i, m, want[i])
		}
	}
}

func TestLocalReceiveNonBlocking(t *testing.T) {
	control, gui := NewLocalPair()

	// Nothing queued in either direction: both drains return empty
	// immediately.
	if got, _ := control.Receive(); len(got) != 0 {
		t.Errorf("control received %d messages from empty queue", len(got))
	}
	if got, _ := gui.Receive(); len(got) != 0 {
		t.Errorf("gui received %d messages from empty queue", len(got))
	}
}

func TestLocalDrainEmptiesQueue(t *testing.T) {
	control, gui := NewLocalPair()

	gui.Send([]message.FromGui{message.ButtonPressed{Label: "go"}})
	first, _ := control.Receive()
	second, _ := control.Receive()

	if len(first) != 1 {
		t.Fatalf("first drain got %d messages", len(first))
	}
	if len(second) != 0 {
		t.Errorf("second drain got %d messages, want 0", len(second))
	}
}

func TestLocalDirectionsIndependent(t *testing.T) {
	control, gui := NewLocalPair()

	control.Send([]message.ToGui{message.AddPanel3D{Label: "scene"}})
	gui.Send([]message.FromGui{message.ToggleChanged{Label: "t", Value: true}})

	toGui, _ := gui.Receive()
	fromGui, _ := control.Receive()

	if len(toGui) != 1 {
		t.Errorf("gui side got %d messages", len(toGui))
	}
	if len(fromGui) != 1 {
		t.Errorf("control side got %d messages", len(fromGui))
	}
}
