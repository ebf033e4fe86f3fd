package task

import (
	"context"
	"sync"
)

// DefaultMailboxSize is the buffer size used by NewMailbox
const DefaultMailboxSize = 64

// Mailbox is a multi-producer, single-consumer queue of UI mutations.
// Workers Post closures; exactly one consumer runs them in posting order.
type Mailbox struct {
	ch     chan func()
	once   sync.Once
	closed chan struct{}
}

// NewMailbox creates a mailbox with the default buffer
func NewMailbox() *Mailbox {
	return NewMailboxSize(DefaultMailboxSize)
}

// NewMailboxSize creates a mailbox with the given buffer size
func NewMailboxSize(size int) *Mailbox {
	if size < 1 {
		size = 1
	}
	return &Mailbox{
		ch:     make(chan func(), size),
		closed: make(chan struct{}),
	}
}

// Post enqueues fn. It blocks while the buffer is full and drops fn once the
// mailbox is closed.
func (m *Mailbox) Post(fn func()) {
	if fn == nil {
		return
	}
	select {
	case <-m.closed:
		return
	default:
	}
	select {
	case m.ch <- fn:
	case <-m.closed:
	}
}

// Pending returns the number of queued closures
func (m *Mailbox) Pending() int {
	return len(m.ch)
}

// Drain runs every queued closure on the calling goroutine and returns how
// many ran. It never blocks waiting for new posts.
func (m *Mailbox) Drain() int {
	n := 0
	for {
		select {
		case fn := <-m.ch:
			fn()
			n++
		default:
			return n
		}
	}
}

// Pump forwards queued closures one at a time to deliver until ctx is done or
// the mailbox is closed. deliver must run fn on the UI goroutine and return
// after it ran, so mutations are applied strictly in posting order.
func (m *Mailbox) Pump(ctx context.Context, deliver func(fn func())) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.closed:
			return
		case fn := <-m.ch:
			deliver(fn)
		}
	}
}

// Close stops Pump and makes further posts no-ops
func (m *Mailbox) Close() {
	m.once.Do(func() { close(m.closed) })
}
