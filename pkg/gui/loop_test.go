package gui

import (
	"context"
	"testing"

	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/entity"
	"github.com/strasdat/vviz/pkg/message"
	"github.com/strasdat/vviz/pkg/transport"
)

// recordingRenderer captures the draw calls of one frame.
type recordingRenderer struct {
	drawn2D []string
	drawn3D []string
	scenes  map[string]Scene
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{scenes: make(map[string]Scene)}
}

func (r *recordingRenderer) RenderPanel2D(label string, _ component.ImageRGBA8, _, _ float64) {
	r.drawn2D = append(r.drawn2D, label)
}

func (r *recordingRenderer) RenderPanel3D(label string, scene Scene, _, _ float64) {
	r.drawn3D = append(r.drawn3D, label)
	r.scenes[label] = scene
}

func newTestLoop(renderer Renderer) (*Loop, transport.ControlLink) {
	control, gui := transport.NewLocalPair()
	return NewLoop(gui, renderer, WithLoopTick(0)), control
}

func TestFrameAppliesCommandsBeforeDrawing(t *testing.T) {
	renderer := newRecordingRenderer()
	loop, control := newTestLoop(renderer)

	control.Send([]message.ToGui{
		message.AddPanel3D{Label: "scene"},
		message.PlaceEntity{Panel: "scene", Entity: entity.Named3{Label: "cube", Entity: entity.ColoredCube(1)}},
		message.AddPanel2D{Label: "camera", Image: component.ImageRGBA8{Width: 2, Height: 2, Bytes: make([]byte, 16)}},
	})

	if err := loop.Frame(800, 600); err != nil {
		t.Fatalf("frame: %v", err)
	}

	if len(renderer.drawn3D) != 1 || renderer.drawn3D[0] != "scene" {
		t.Errorf("3D draws = %v, want [scene]", renderer.drawn3D)
	}
	if len(renderer.drawn2D) != 1 || renderer.drawn2D[0] != "camera" {
		t.Errorf("2D draws = %v, want [camera]", renderer.drawn2D)
	}
	scene := renderer.scenes["scene"]
	if len(scene.Items) != 1 || scene.Items[0].Label != "cube" {
		t.Errorf("scene items = %+v, want one cube", scene.Items)
	}
}

func TestFrameFlushesInputReports(t *testing.T) {
	loop, control := newTestLoop(nil)

	control.Send([]message.ToGui{message.AddButton{Label: "go"}})
	if err := loop.Frame(800, 600); err != nil {
		t.Fatalf("frame: %v", err)
	}

	loop.Store().PressButton("go")
	if err := loop.Frame(800, 600); err != nil {
		t.Fatalf("frame: %v", err)
	}

	reports, err := control.Receive()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(reports))
	}
	if press, ok := reports[0].(message.ButtonPressed); !ok || press.Label != "go" {
		t.Errorf("reports[0] = %v, want ButtonPressed{go}", reports[0])
	}
}

// closeAfterDriver presses a button on the first frame and closes after
// a fixed frame count.
type closeAfterDriver struct {
	frames int
	left   int
}

func (d *closeAfterDriver) DisplaySize() (float64, float64) { return 800, 600 }

func (d *closeAfterDriver) PollInput(s *Store) {
	if d.left == d.frames {
		if _, ok := s.Component("go"); ok {
			s.PressButton("go")
		}
	}
}

func (d *closeAfterDriver) ShouldClose() bool {
	d.left--
	return d.left < 0
}

func TestRunStopsWhenDriverCloses(t *testing.T) {
	loop, control := newTestLoop(nil)
	control.Send([]message.ToGui{message.AddButton{Label: "go"}})

	drv := &closeAfterDriver{frames: 2, left: 2}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := loop.Run(ctx, drv); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, ok := loop.Store().Component("go"); !ok {
		t.Error("button never applied")
	}
}
