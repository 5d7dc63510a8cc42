package gui

import (
	"context"
	"time"

	"github.com/strasdat/vviz/pkg/transport"
)

// Driver abstracts the windowing backend the loop runs under: it sizes
// the display area, routes queued user input into the store between
// frames, and says when the window wants to close.
type Driver interface {
	// DisplaySize returns the current size of the main display area.
	DisplaySize() (width, height float64)
	// PollInput delivers pending input events by calling the store's
	// input methods.
	PollInput(s *Store)
	// ShouldClose reports whether the loop should stop after the
	// current frame.
	ShouldClose() bool
}

// Loop owns the presentation side of one link: the authoritative store,
// the transport endpoint and the renderer.
type Loop struct {
	store    *Store
	link     transport.GuiLink
	renderer Renderer
	tick     time.Duration
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLoopTick overrides the sleep floor applied at the end of every
// frame.
func WithLoopTick(tick time.Duration) LoopOption {
	return func(l *Loop) {
		l.tick = tick
	}
}

// NewLoop returns a Loop speaking over link. A nil renderer is allowed
// and skips the draw phase, which is how headless tests run the loop.
func NewLoop(link transport.GuiLink, renderer Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		store:    NewStore(),
		link:     link,
		renderer: renderer,
		tick:     transport.DefaultTick,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Store returns the loop's authoritative store.
func (l *Loop) Store() *Store {
	return l.store
}

// Frame runs one presentation frame: apply every pending control
// command, draw the panels into the computed grid, then flush the input
// reports collected since the last frame. Commands are applied in
// arrival order before anything is drawn, so a frame never shows a
// partially applied batch.
func (l *Loop) Frame(width, height float64) error {
	inbound, err := l.link.Receive()
	if err != nil {
		return err
	}
	for _, msg := range inbound {
		l.store.Apply(msg)
	}

	if l.renderer != nil {
		grid := l.store.Layout(width, height)
		l.store.panels.Range(func(label string, p Panel) bool {
			switch v := p.(type) {
			case *Panel2D:
				l.renderer.RenderPanel2D(label, v.Image, grid.CellWidth, grid.CellHeight)
			case *Panel3D:
				l.renderer.RenderPanel3D(label, v.Scene(), grid.CellWidth, grid.CellHeight)
			}
			return true
		})
	}

	if err := l.link.Send(l.store.TakePending()); err != nil {
		return err
	}
	if l.tick > 0 {
		time.Sleep(l.tick)
	}
	return nil
}

// Run drives frames under drv until the driver asks to close or ctx is
// done. Input is polled before each frame so a report produced by an
// event is flushed by the same frame.
func (l *Loop) Run(ctx context.Context, drv Driver) error {
	for !drv.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		drv.PollInput(l.store)
		w, h := drv.DisplaySize()
		if err := l.Frame(w, h); err != nil {
			return err
		}
	}
	return nil
}
