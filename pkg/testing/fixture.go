// Package testing provides a deterministic in-process harness for
// exercising the control and presentation sides together: a Manager and
// a gui Loop wired over a local link, pumped one round trip at a time
// with no sleeps and no goroutines.
package testing

import (
	"testing"

	"github.com/strasdat/vviz/pkg/gui"
	"github.com/strasdat/vviz/pkg/manager"
	"github.com/strasdat/vviz/pkg/transport"
)

// Fixture couples a control-side Manager with a presentation-side Loop
// over an in-process link. Tests drive both sides synchronously.
type Fixture struct {
	t *testing.T

	// Manager is the control side under test.
	Manager *manager.Manager

	loop *gui.Loop
}

// Display size handed to headless frames. Only the layout sees it.
const (
	displayWidth  = 1280
	displayHeight = 720
)

// NewFixtureWithT returns a fixture bound to t. Frames render headless
// (no renderer) and no tick sleeps apply.
func NewFixtureWithT(t *testing.T) *Fixture {
	t.Helper()
	control, guiEnd := transport.NewLocalPair()
	return &Fixture{
		t:       t,
		Manager: manager.New(control, manager.WithTick(0)),
		loop:    gui.NewLoop(guiEnd, nil, gui.WithLoopTick(0)),
	}
}

// Store returns the presentation side's authoritative store, for
// injecting input and asserting on applied state.
func (f *Fixture) Store() *gui.Store {
	return f.loop.Store()
}

// PumpToGui flushes pending control commands and runs one presentation
// frame, so adds issued on the Manager become visible in the store.
func (f *Fixture) PumpToGui() {
	f.t.Helper()
	if err := f.Manager.Synchronize(); err != nil {
		f.t.Fatalf("synchronize: %v", err)
	}
	f.frame()
}

// Pump runs one full round trip: control commands reach the store, the
// frame flushes input reports, and the reports land in the mirror.
func (f *Fixture) Pump() {
	f.t.Helper()
	f.PumpToGui()
	if err := f.Manager.Synchronize(); err != nil {
		f.t.Fatalf("synchronize: %v", err)
	}
}

func (f *Fixture) frame() {
	f.t.Helper()
	if err := f.loop.Frame(displayWidth, displayHeight); err != nil {
		f.t.Fatalf("frame: %v", err)
	}
}
