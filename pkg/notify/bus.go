package notify

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/hrmkit/employee-console/pkg/eventbus"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// State is the single toast slot observed by subscribers. At most one message
// is visible at a time.
type State struct {
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
	Visible bool   `json:"visible"`
}

// Bus is the app-wide transient notification channel. Each Show replaces the
// current message and schedules an auto-clear; the generation counter ensures
// a newer Show invalidates timers scheduled by older ones.
type Bus struct {
	mu    sync.Mutex
	state State
	gen   uint64

	delay     time.Duration
	clock     clockwork.Clock
	publisher eventbus.EventBus
}

func NewBus(publisher eventbus.EventBus, delay time.Duration, clock clockwork.Clock) *Bus {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Bus{
		state:     State{Kind: KindSuccess},
		delay:     delay,
		clock:     clock,
		publisher: publisher,
	}
}

func (b *Bus) Show(message string, kind Kind) {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.state = State{Message: message, Kind: kind, Visible: true}
	st := b.state
	b.mu.Unlock()

	b.publisher.Publish(st)
	b.clock.AfterFunc(b.delay, func() {
		b.expire(gen)
	})
}

func (b *Bus) Hide() {
	b.mu.Lock()
	b.gen++
	b.state = State{Kind: KindSuccess}
	st := b.state
	b.mu.Unlock()

	b.publisher.Publish(st)
}

// Current returns the state as of the call; it may be cleared concurrently by
// an expiring timer.
func (b *Bus) Current() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Subscribe registers a handler observing every state transition.
func (b *Bus) Subscribe(handler func(State)) {
	b.publisher.Subscribe(handler)
}

func (b *Bus) expire(gen uint64) {
	b.mu.Lock()
	if b.gen != gen || !b.state.Visible {
		b.mu.Unlock()
		return
	}
	b.state = State{Kind: KindSuccess}
	st := b.state
	b.mu.Unlock()

	b.publisher.Publish(st)
}
