// Package transport delivers message batches between the control and
// presentation sides. Two interchangeable implementations exist behind
// the same contracts: an in-process queue pair for same-process mode,
// and a WebSocket link for two-process mode. Both preserve FIFO order
// within each message family and never block the draining side.
package transport

import (
	"sync"
	"time"

	"github.com/strasdat/vviz/pkg/message"
)

// DefaultTick is the sleep floor inserted into every synchronization
// tick. It throttles both loops and bounds the remote transport's
// blocking read by the peer's cadence.
const DefaultTick = 15 * time.Millisecond

// ControlLink is the control side's endpoint: outbound ToGui commands,
// inbound FromGui reports. Receive is a non-blocking drain of everything
// currently available.
type ControlLink interface {
	Send(batch []message.ToGui) error
	Receive() ([]message.FromGui, error)
	Close() error
}

// GuiLink is the presentation side's endpoint, the mirror image of
// ControlLink.
type GuiLink interface {
	Send(batch []message.FromGui) error
	Receive() ([]message.ToGui, error)
	Close() error
}

// queue is an unbounded FIFO for one direction of one link. The
// producing and consuming sides never block each other beyond the
// mutex hold.
type queue[T any] struct {
	mu    sync.Mutex
	items []T
}

func (q *queue[T]) push(items []T) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, items...)
	q.mu.Unlock()
}

// drain removes and returns everything currently queued.
func (q *queue[T]) drain() []T {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()
	return items
}
