package events

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Channel names a notification stream delivered through a Sink
type Channel string

// Channels emitted by the shell core
const (
	// ChannelInit fires once, after external attachment completes
	ChannelInit Channel = "init"

	// ChannelTick fires once per simulation step, before buffers shift
	ChannelTick Channel = "tick"

	// ChannelRender fires once per frame-pacing invocation
	// Payload is the interpolation fraction (float64, 0..1)
	ChannelRender Channel = "render"
)

// ErrNotSubscribable reports a Sink that does not accept handler registration
var ErrNotSubscribable = errors.New("events: sink does not support subscription")

// Handler processes a single notification
// Called synchronously during the emit; a slow handler delays the emitter
type Handler func(payload any)

// Sink is the abstract emit contract the engine core depends on
// Implementations decide delivery; the stock Dispatcher delivers synchronously
type Sink interface {
	Emit(ch Channel, payload any)
}

// Subscriber is implemented by sinks that accept handler registration
type Subscriber interface {
	// Subscribe registers a handler and returns its subscription id
	Subscribe(ch Channel, fn Handler) int

	// Unsubscribe removes a subscription; returns false if unknown
	Unsubscribe(ch Channel, id int) bool
}

type subscription struct {
	id int
	fn Handler
}

// Dispatcher is the stock notification sink
//
// Architecture:
//   - Synchronous dispatch on the emitting goroutine
//   - Multiple handlers per channel, invoked in subscription order
//   - Handlers registered or removed mid-emit take effect on the next emit
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Channel][]subscription
	nextID   int

	emitted atomic.Uint64
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Channel][]subscription),
	}
}

// Subscribe registers a handler for the named channel
func (d *Dispatcher) Subscribe(ch Channel, fn Handler) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	d.handlers[ch] = append(d.handlers[ch], subscription{id: d.nextID, fn: fn})
	return d.nextID
}

// Unsubscribe removes the subscription with the given id from the channel
func (d *Dispatcher) Unsubscribe(ch Channel, id int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	subs := d.handlers[ch]
	for i, s := range subs {
		if s.id == id {
			d.handlers[ch] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// Emit delivers payload to every handler subscribed to ch, in order
// The handler slice is snapshotted so handlers may re-enter the dispatcher
func (d *Dispatcher) Emit(ch Channel, payload any) {
	d.mu.RLock()
	subs := d.handlers[ch]
	d.mu.RUnlock()

	d.emitted.Add(1)
	for _, s := range subs {
		s.fn(payload)
	}
}

// HandlerCount returns the number of handlers subscribed to ch
func (d *Dispatcher) HandlerCount(ch Channel) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[ch])
}

// Emitted returns the total number of Emit calls
func (d *Dispatcher) Emitted() uint64 {
	return d.emitted.Load()
}
