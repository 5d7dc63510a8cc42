package transport

import (
	"testing"
	"time"

	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/message"
)

// dialRetry gives the listener goroutine a moment to come up.
func dialRetry(t *testing.T, url string) *RemoteGui {
	t.Helper()
	var (
		gui *RemoteGui
		err error
	)
	for i := 0; i < 50; i++ {
		gui, err = Dial(url, time.Millisecond)
		if err == nil {
			return gui
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("dial %s: %v", url, err)
	return nil
}

func TestRemoteRoundTrip(t *testing.T) {
	listener, err := NewListener("127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	type acceptResult struct {
		control *RemoteControl
		err     error
	}
	acceptCh := make(chan acceptResult, 1)
	go func() {
		control, err := listener.Accept(time.Millisecond)
		acceptCh <- acceptResult{control, err}
	}()

	gui := dialRetry(t, "ws://"+listener.Addr())
	defer gui.Close()

	res := <-acceptCh
	if res.err != nil {
		t.Fatalf("accept: %v", res.err)
	}
	control := res.control
	defer control.Close()

	// Control -> presentation.
	if err := control.Send([]message.ToGui{
		message.AddRangedNumber{
			Label: "gamma",
			Value: component.ScalarOf(float32(1)),
			Min:   component.ScalarOf(float32(0)),
			Max:   component.ScalarOf(float32(4)),
		},
	}); err != nil {
		t.Fatalf("control send: %v", err)
	}

	// Presentation -> control. The client writes first each tick, so
	// this also unblocks the server's pending read.
	if err := gui.Send([]message.FromGui{message.ButtonPressed{Label: "go"}}); err != nil {
		t.Fatalf("gui send: %v", err)
	}

	toGui := pollToGui(t, gui)
	if len(toGui) != 1 {
		t.Fatalf("gui received %d messages", len(toGui))
	}
	if m, ok := toGui[0].(message.AddRangedNumber); !ok || m.Label != "gamma" {
		t.Errorf("gui received %v", toGui[0])
	}

	fromGui := pollFromGui(t, control)
	if len(fromGui) != 1 {
		t.Fatalf("control received %d messages", len(fromGui))
	}
	if m, ok := fromGui[0].(message.ButtonPressed); !ok || m.Label != "go" {
		t.Errorf("control received %v", fromGui[0])
	}
}

func pollToGui(t *testing.T, gui *RemoteGui) []message.ToGui {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		batch, err := gui.Receive()
		if err != nil {
			t.Fatalf("gui receive: %v", err)
		}
		if len(batch) > 0 {
			return batch
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for ToGui batch")
	return nil
}

func pollFromGui(t *testing.T, control *RemoteControl) []message.FromGui {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		batch, err := control.Receive()
		if err != nil {
			t.Fatalf("control receive: %v", err)
		}
		if len(batch) > 0 {
			return batch
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for FromGui batch")
	return nil
}
