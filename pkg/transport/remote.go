package transport

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/strasdat/vviz/pkg/errors"
	"github.com/strasdat/vviz/pkg/message"
)

// The remote transport mirrors the local queue pair over a WebSocket.
// Each tick one side serializes its entire queued batch to a JSON text
// frame, sends it, then performs one blocking read of the peer's frame
// before the next tick. The request/response coupling is deliberate:
// each side's blocking read is bounded by the peer's tick cadence and
// the shared sleep floor, and neither side needs independent streams.
//
// The server (control side) reads first then writes; the client
// (presentation side) writes first then reads. A handshake frame
// carrying the protocol version is exchanged before any batch so that
// schema drift between independently deployed processes fails the
// connection instead of corrupting state.

// helloFrame is the handshake payload. Its shape is part of the wire
// compatibility surface.
type helloFrame struct {
	Protocol string `json:"protocol"`
}

func exchangeHello(conn *websocket.Conn, sendFirst bool) error {
	send := func() error {
		data, err := json.Marshal(helloFrame{Protocol: message.ProtocolVersion})
		if err != nil {
			return err
		}
		return conn.WriteMessage(websocket.TextMessage, data)
	}
	receive := func() error {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var hello helloFrame
		if err := json.Unmarshal(data, &hello); err != nil {
			return fmt.Errorf("malformed hello frame: %w", err)
		}
		return message.CheckCompatible(message.ProtocolVersion, hello.Protocol)
	}

	if sendFirst {
		if err := send(); err != nil {
			return err
		}
		return receive()
	}
	if err := receive(); err != nil {
		return err
	}
	return send()
}

// remoteState is the queue pair plus the terminal error of a remote
// link. Once the pump goroutine dies, every endpoint call returns the
// recorded error; there is no reconnect.
type remoteState struct {
	toGui   queue[message.ToGui]
	fromGui queue[message.FromGui]

	mu     sync.Mutex
	failed error
	closed bool
}

func (s *remoteState) fail(op string, addr string, err error) {
	s.mu.Lock()
	if s.failed == nil {
		s.failed = err
	}
	closed := s.closed
	s.mu.Unlock()
	if !closed {
		errors.Report(&errors.VizError{
			Op:      op,
			Kind:    errors.KindTransport,
			Err:     err,
			Address: addr,
		})
	}
}

func (s *remoteState) err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

func (s *remoteState) markClosed() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// RemoteControl is the control-side endpoint of a WebSocket link. It
// accepts exactly one presentation client; the link lives for the
// process.
type RemoteControl struct {
	state    *remoteState
	conn     *websocket.Conn
	listener net.Listener
}

var upgrader = websocket.Upgrader{
	// The presentation client is not a browser; no origin policy applies.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Listener waits for the single presentation client of a control-side
// link.
type Listener struct {
	listener net.Listener
	accepted chan acceptResult
}

type acceptResult struct {
	conn *websocket.Conn
	err  error
}

// NewListener binds addr and starts accepting WebSocket upgrades. The
// bound address is available immediately via Addr; the link itself is
// established by Accept.
func NewListener(addr string) (*Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	l := &Listener{
		listener: listener,
		accepted: make(chan acceptResult, 1),
	}
	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		select {
		case l.accepted <- acceptResult{conn: conn, err: err}:
		default:
			// A second client; the link is single-consumer.
			if conn != nil {
				conn.Close()
			}
		}
	})}
	go server.Serve(listener)
	return l, nil
}

// Addr returns the bound listen address.
func (l *Listener) Addr() string {
	return l.listener.Addr().String()
}

// Accept blocks until one presentation client connects and completes
// the protocol handshake, then starts the tick-coupled pump and returns
// the control endpoint. tick <= 0 selects DefaultTick.
func (l *Listener) Accept(tick time.Duration) (*RemoteControl, error) {
	if tick <= 0 {
		tick = DefaultTick
	}
	res := <-l.accepted
	if res.err != nil {
		l.listener.Close()
		return nil, res.err
	}
	if err := exchangeHello(res.conn, false); err != nil {
		res.conn.Close()
		l.listener.Close()
		return nil, err
	}

	rc := &RemoteControl{
		state:    &remoteState{},
		conn:     res.conn,
		listener: l.listener,
	}
	go rc.pump(tick)
	return rc, nil
}

// pump runs the server tick loop: one blocking read of the client's
// FromGui batch, then one write of everything queued, then the sleep
// floor. Any error terminates the loop and poisons the link.
func (rc *RemoteControl) pump(tick time.Duration) {
	addr := rc.conn.RemoteAddr().String()
	for {
		_, data, err := rc.conn.ReadMessage()
		if err != nil {
			rc.state.fail("transport.RemoteControl.read", addr, err)
			return
		}
		batch, err := message.DecodeFromGuiBatch(data)
		if err != nil {
			rc.state.fail("transport.RemoteControl.decode", addr, err)
			return
		}
		rc.state.fromGui.push(batch)

		out, err := message.EncodeToGuiBatch(rc.state.toGui.drain())
		if err != nil {
			rc.state.fail("transport.RemoteControl.encode", addr, err)
			return
		}
		if err := rc.conn.WriteMessage(websocket.TextMessage, out); err != nil {
			rc.state.fail("transport.RemoteControl.write", addr, err)
			return
		}

		time.Sleep(tick)
	}
}

// Send queues a ToGui batch for the next tick.
func (rc *RemoteControl) Send(batch []message.ToGui) error {
	if err := rc.state.err(); err != nil {
		return err
	}
	rc.state.toGui.push(batch)
	return nil
}

// Receive drains every FromGui message that has arrived so far.
func (rc *RemoteControl) Receive() ([]message.FromGui, error) {
	if err := rc.state.err(); err != nil {
		return nil, err
	}
	return rc.state.fromGui.drain(), nil
}

// Close tears down the connection and the listener.
func (rc *RemoteControl) Close() error {
	rc.state.markClosed()
	rc.conn.Close()
	return rc.listener.Close()
}

// RemoteGui is the presentation-side endpoint of a WebSocket link.
type RemoteGui struct {
	state *remoteState
	conn  *websocket.Conn
}

// Dial connects to a control-side listener at url (ws://host:port),
// completes the protocol handshake and starts the tick-coupled pump.
// tick <= 0 selects DefaultTick.
func Dial(url string, tick time.Duration) (*RemoteGui, error) {
	if tick <= 0 {
		tick = DefaultTick
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	if err := exchangeHello(conn, true); err != nil {
		conn.Close()
		return nil, err
	}

	rg := &RemoteGui{state: &remoteState{}, conn: conn}
	go rg.pump(tick)
	return rg, nil
}

// pump runs the client tick loop: write everything queued, then one
// blocking read of the server's ToGui batch, then the sleep floor.
func (rg *RemoteGui) pump(tick time.Duration) {
	addr := rg.conn.RemoteAddr().String()
	for {
		out, err := message.EncodeFromGuiBatch(rg.state.fromGui.drain())
		if err != nil {
			rg.state.fail("transport.RemoteGui.encode", addr, err)
			return
		}
		if err := rg.conn.WriteMessage(websocket.TextMessage, out); err != nil {
			rg.state.fail("transport.RemoteGui.write", addr, err)
			return
		}

		_, data, err := rg.conn.ReadMessage()
		if err != nil {
			rg.state.fail("transport.RemoteGui.read", addr, err)
			return
		}
		batch, err := message.DecodeToGuiBatch(data)
		if err != nil {
			rg.state.fail("transport.RemoteGui.decode", addr, err)
			return
		}
		rg.state.toGui.push(batch)

		time.Sleep(tick)
	}
}

// Send queues a FromGui batch for the next tick.
func (rg *RemoteGui) Send(batch []message.FromGui) error {
	if err := rg.state.err(); err != nil {
		return err
	}
	rg.state.fromGui.push(batch)
	return nil
}

// Receive drains every ToGui message that has arrived so far.
func (rg *RemoteGui) Receive() ([]message.ToGui, error) {
	if err := rg.state.err(); err != nil {
		return nil, err
	}
	return rg.state.toGui.drain(), nil
}

// Close tears down the connection.
func (rg *RemoteGui) Close() error {
	rg.state.markClosed()
	return rg.conn.Close()
}
