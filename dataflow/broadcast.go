package dataflow

import (
	"sync"

	"github.com/lithammer/shortuuid/v3"
)

// Broadcast is a multi-subscriber source. Each subscription reads the
// full emitted sequence through its own cursor; subscribers arriving
// after publishing has begun replay the history first.
type Broadcast struct {
	id string

	mu      sync.Mutex
	history []interface{}
	subs    []*Queue
	closed  bool
}

var _ Subscribable = (*Broadcast)(nil)

func NewBroadcast() *Broadcast {
	return &Broadcast{id: shortuuid.New()}
}

func (b *Broadcast) ID() string { return b.id }

func (b *Broadcast) Subscribe() ReadChannel {
	b.mu.Lock()
	defer b.mu.Unlock()
	q := NewQueue()
	for _, v := range b.history {
		q.Put(v)
	}
	if b.closed {
		q.Close()
	} else {
		b.subs = append(b.subs, q)
	}
	return q
}

// Publish emits v to every current subscriber. Publishing on a closed
// broadcast is a no-op.
func (b *Broadcast) Publish(v interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.history = append(b.history, v)
	for _, q := range b.subs {
		q.Put(v)
	}
}

func (b *Broadcast) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, q := range b.subs {
		q.Close()
	}
	b.subs = nil
}
