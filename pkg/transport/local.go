package transport

import "github.com/strasdat/vviz/pkg/message"

// localPair is the shared state of an in-process link: one ordered
// unbounded queue per direction. Single producer, single consumer per
// queue.
type localPair struct {
	toGui   queue[message.ToGui]
	fromGui queue[message.FromGui]
}

type localControl struct {
	pair *localPair
}

type localGui struct {
	pair *localPair
}

// NewLocalPair returns the two endpoints of an in-process link. The
// control endpoint goes to the application goroutine, the gui endpoint
// to the render loop.
func NewLocalPair() (ControlLink, GuiLink) {
	pair := &localPair{}
	return &localControl{pair: pair}, &localGui{pair: pair}
}

func (l *localControl) Send(batch []message.ToGui) error {
	l.pair.toGui.push(batch)
	return nil
}

func (l *localControl) Receive() ([]message.FromGui, error) {
	return l.pair.fromGui.drain(), nil
}

func (l *localControl) Close() error {
	return nil
}

func (l *localGui) Send(batch []message.FromGui) error {
	l.pair.fromGui.push(batch)
	return nil
}

func (l *localGui) Receive() ([]message.ToGui, error) {
	return l.pair.toGui.drain(), nil
}

func (l *localGui) Close() error {
	return nil
}
