// Command vviz-demo shows the vviz API end to end: a 3D scene with a
// spinning cube, a 2D image panel, and a side panel of interactive
// components, runnable in local, serve or connect mode.
//
// Without a real graphics backend attached, frames render to a console
// renderer that periodically summarizes what would be drawn.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/strasdat/vviz/pkg/app"
	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/entity"
	"github.com/strasdat/vviz/pkg/gui"
	"github.com/strasdat/vviz/pkg/manager"
	"github.com/strasdat/vviz/pkg/spatial"
)

func main() {
	mode := flag.String("mode", "", "local, serve or connect (overrides vviz.yaml)")
	address := flag.String("address", "", "listen or connect address (overrides vviz.yaml)")
	duration := flag.Duration("duration", 10*time.Second, "how long to run the presentation loop")
	flag.Parse()

	cfg, err := resolveConfig(*mode, *address)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	drv := &timedDriver{}
	if err := app.Run(ctx, cfg, control, &consoleRenderer{}, drv); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}

func resolveConfig(mode, address string) (*app.Resolved, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := app.LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if mode != "" {
		cfg.Mode = mode
	}
	if address != "" {
		cfg.Address = address
	}
	return cfg.Resolve()
}

// control builds the demo UI and then drives it: the cube spins while
// the toggle is on, the slider scales the spin rate, the button resets
// the angle, and a number label counts iterations.
func control(m *manager.Manager) {
	scene := m.AddPanel3D("scene")
	scene.PlaceEntity("cube", entity.ColoredCube(0.5))
	scene.PlaceEntityAt("axis", entity.Axis3(1), spatial.IdentityPose())

	m.AddPanel2D("pattern", checkerboard(128, 128, 16))

	spin := m.AddToggle("spin", true)
	speed := manager.AddRangedNumber(m, "speed", float64(1), 0, 5)
	reset := m.AddButton("reset")
	manager.AddEnum(m, "shading", shadingFlat, []shading{shadingFlat, shadingGouraud, shadingOff})

	var angle float32
	for i := 0; ; i++ {
		if err := m.Synchronize(); err != nil {
			log.Printf("control: %v", err)
			return
		}
		if reset.WasPressed() {
			angle = 0
		}
		if spin.Get() {
			angle += 0.02 * float32(speed.Get())
			scene.UpdateEntityPose("cube", spatial.RotY(angle))
		}
		if i%60 == 0 {
			manager.AddNumber(m, "iterations", int64(i))
		}
	}
}

type shading int

const (
	shadingFlat shading = iota
	shadingGouraud
	shadingOff
)

func (s shading) String() string {
	switch s {
	case shadingFlat:
		return "Flat"
	case shadingGouraud:
		return "Gouraud"
	default:
		return "Off"
	}
}

// checkerboard generates a gray and white test pattern.
func checkerboard(width, height, square int) component.ImageRGBA8 {
	img := component.ImageRGBA8{Width: width, Height: height, Bytes: make([]byte, width*height*4)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			shade := byte(90)
			if (x/square+y/square)%2 == 0 {
				shade = 230
			}
			i := (y*width + x) * 4
			img.Bytes[i], img.Bytes[i+1], img.Bytes[i+2], img.Bytes[i+3] = shade, shade, shade, 255
		}
	}
	return img
}

// consoleRenderer summarizes draw calls once a second instead of
// drawing.
type consoleRenderer struct {
	last time.Time
}

func (r *consoleRenderer) RenderPanel2D(label string, img component.ImageRGBA8, w, h float64) {
	r.note(fmt.Sprintf("panel %q: %dx%d image in %.0fx%.0f cell", label, img.Width, img.Height, w, h))
}

func (r *consoleRenderer) RenderPanel3D(label string, scene gui.Scene, w, h float64) {
	r.note(fmt.Sprintf("panel %q: %d entities in %.0fx%.0f cell", label, len(scene.Items), w, h))
}

func (r *consoleRenderer) note(line string) {
	if time.Since(r.last) < time.Second {
		return
	}
	r.last = time.Now()
	log.Print(line)
}

// timedDriver runs headless until the context deadline cancels the run;
// it never closes on its own and delivers no input.
type timedDriver struct{}

func (timedDriver) DisplaySize() (float64, float64) { return 1280, 720 }
func (timedDriver) PollInput(*gui.Store)            {}
func (timedDriver) ShouldClose() bool               { return false }
