package dataflow

import "github.com/lithammer/shortuuid/v3"

// Queue is an unbounded first-in-first-out conduit. It implements both
// the read and the write end; Put never blocks.
type Queue struct {
	id  string
	in  chan interface{}
	out chan interface{}
}

var _ ReadChannel = (*Queue)(nil)
var _ WriteChannel = (*Queue)(nil)

func NewQueue() *Queue {
	q := &Queue{
		id:  shortuuid.New(),
		in:  make(chan interface{}),
		out: make(chan interface{}),
	}
	go q.pump()
	return q
}

// NewQueueOf returns a queue pre-loaded with items in order and already
// closed for writing. Reads drain the items and then see completion.
func NewQueueOf(items ...interface{}) *Queue {
	q := NewQueue()
	for _, item := range items {
		q.Put(item)
	}
	q.Close()
	return q
}

func (q *Queue) ID() string { return q.id }

func (q *Queue) Out() <-chan interface{} { return q.out }

// Put appends v. Put after Close panics, like sending on a closed Go
// channel.
func (q *Queue) Put(v interface{}) { q.in <- v }

// Close ends the sequence; readers still drain buffered items first.
func (q *Queue) Close() { close(q.in) }

func (q *Queue) pump() {
	defer close(q.out)
	var buf []interface{}
	in := q.in
	for in != nil || len(buf) > 0 {
		var out chan interface{}
		var head interface{}
		if len(buf) > 0 {
			out = q.out
			head = buf[0]
		}
		select {
		case v, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			buf = append(buf, v)
		case out <- head:
			buf = buf[1:]
		}
	}
}
