package testing

import (
	"testing"

	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/entity"
	"github.com/strasdat/vviz/pkg/gui"
	"github.com/strasdat/vviz/pkg/manager"
	"github.com/strasdat/vviz/pkg/spatial"
)

type mode int

const (
	modeFoo mode = iota
	modeBar
	modeDaz
)

func (m mode) String() string {
	switch m {
	case modeFoo:
		return "Foo"
	case modeBar:
		return "Bar"
	default:
		return "Daz"
	}
}

func TestButtonPressRoundTrip(t *testing.T) {
	f := NewFixtureWithT(t)
	button := f.Manager.AddButton("go")
	f.PumpToGui()

	if button.WasPressed() {
		t.Error("button reported a press before any click")
	}

	f.Store().PressButton("go")
	f.Pump()

	if !button.WasPressed() {
		t.Error("press never reached the control side")
	}
	if button.WasPressed() {
		t.Error("latch not cleared by the read")
	}
}

func TestEnumSelectionRoundTrip(t *testing.T) {
	f := NewFixtureWithT(t)
	combo := manager.AddEnum(f.Manager, "mode", modeFoo, []mode{modeFoo, modeBar, modeDaz})
	f.PumpToGui()

	f.Store().SelectEnum("mode", "Bar")
	f.Pump()

	if v, ok := combo.GetNew(); !ok || v != modeBar {
		t.Errorf("GetNew = (%v, %t), want (Bar, true)", v, ok)
	}
	if _, ok := combo.GetNew(); ok {
		t.Error("GetNew should report nothing without a further change")
	}
	if got := combo.Get(); got != modeBar {
		t.Errorf("Get = %v, want Bar", got)
	}
}

func TestSliderDragRoundTrip(t *testing.T) {
	f := NewFixtureWithT(t)
	slider := manager.AddRangedNumber(f.Manager, "gamma", float64(1), 0, 4)
	f.PumpToGui()

	// An over-range drag arrives clamped to the declared bounds.
	f.Store().SetSlider("gamma", component.ScalarOf(float64(17)))
	f.Pump()

	if got := slider.Get(); got != 4 {
		t.Errorf("mirror value = %g, want clamped 4", got)
	}
}

func TestToggleRoundTripBothDirections(t *testing.T) {
	f := NewFixtureWithT(t)
	toggle := f.Manager.AddToggle("enabled", false)
	f.PumpToGui()

	f.Store().SetToggle("enabled", true)
	f.Pump()
	if !toggle.Get() {
		t.Error("toggle change never reached the mirror")
	}

	// Re-adding from the control side overwrites the presentation copy.
	f.Manager.AddToggle("enabled", false)
	f.PumpToGui()
	c, _ := f.Store().Component("enabled")
	if c.(*component.Toggle).Value {
		t.Error("re-add did not overwrite the store value")
	}
}

func TestEntityPoseFlowsToScene(t *testing.T) {
	f := NewFixtureWithT(t)
	panel := f.Manager.AddPanel3D("scene")
	panel.PlaceEntity("cube", entity.ColoredCube(1))
	f.PumpToGui()

	pose := spatial.RotZ(0.5).Mul(spatial.Translate(spatial.Vec3{X: 1}))
	panel.UpdateEntityPose("cube", pose)
	f.PumpToGui()

	p, ok := f.Store().Panel("scene")
	if !ok {
		t.Fatal("panel missing")
	}
	e, ok := p.(*gui.Panel3D).Entity("cube")
	if !ok {
		t.Fatal("entity missing")
	}
	if e.ScenePose != pose {
		t.Errorf("scene pose = %+v, want %+v", e.ScenePose, pose)
	}
}

func TestDeleteComponentRoundTrip(t *testing.T) {
	f := NewFixtureWithT(t)
	f.Manager.AddButton("go")
	f.PumpToGui()

	f.Manager.DeleteComponent("go")
	f.PumpToGui()

	if _, ok := f.Store().Component("go"); ok {
		t.Error("component survived deletion")
	}
	if got := f.Store().Stats().DeletesDropped; got != 0 {
		t.Errorf("dropped deletes = %d, want 0", got)
	}
}
