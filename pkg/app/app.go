// Package app wires a control function and a presentation loop together
// according to a resolved configuration: in one process over a local
// link, or split across two processes over a WebSocket link.
package app

import (
	"context"
	"fmt"

	"github.com/strasdat/vviz/pkg/errors"
	"github.com/strasdat/vviz/pkg/gui"
	"github.com/strasdat/vviz/pkg/manager"
	"github.com/strasdat/vviz/pkg/transport"
)

// ControlFunc is the application's control loop. It owns the Manager
// for the lifetime of the link and is expected to call Synchronize
// repeatedly; returning ends the control side.
type ControlFunc func(*manager.Manager)

// RunLocal runs control and presentation in this process. The control
// function runs on its own goroutine; the presentation loop runs on the
// calling goroutine (the windowing backend usually requires the main
// thread) until the driver closes or ctx is done.
func RunLocal(ctx context.Context, control ControlFunc, renderer gui.Renderer, drv gui.Driver) error {
	controlLink, guiLink := transport.NewLocalPair()

	go func() {
		defer errors.Recover("app.RunLocal.control")
		control(manager.New(controlLink))
	}()

	return gui.NewLoop(guiLink, renderer).Run(ctx, drv)
}

// ServeControl runs the control side as a server on addr. It blocks
// waiting for the single presentation client, then hands the Manager to
// control and returns when control does.
func ServeControl(addr string, control ControlFunc, opts ...manager.Option) error {
	listener, err := transport.NewListener(addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}
	link, err := listener.Accept(0)
	if err != nil {
		return fmt.Errorf("accept on %s: %w", addr, err)
	}
	defer link.Close()

	control(manager.New(link, opts...))
	return nil
}

// RunRemoteGui connects the presentation side to a control server and
// runs the loop until the driver closes, ctx is done, or the link
// fails. The url is a ws:// endpoint.
func RunRemoteGui(ctx context.Context, url string, renderer gui.Renderer, drv gui.Driver) error {
	link, err := transport.Dial(url, 0)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer link.Close()

	// The remote pump already paces frames; the loop itself runs
	// without a sleep floor.
	return gui.NewLoop(link, renderer, gui.WithLoopTick(0)).Run(ctx, drv)
}

// Run dispatches on the resolved mode. Local mode needs all three of
// control, renderer and driver; serve mode uses only control; connect
// mode uses only renderer and driver.
func Run(ctx context.Context, cfg *Resolved, control ControlFunc, renderer gui.Renderer, drv gui.Driver) error {
	switch cfg.Mode {
	case ModeLocal:
		return RunLocal(ctx, control, renderer, drv)
	case ModeServe:
		return ServeControl(cfg.Address, control, manager.WithTick(cfg.Tick))
	case ModeConnect:
		return RunRemoteGui(ctx, "ws://"+cfg.Address, renderer, drv)
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}
