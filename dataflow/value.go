package dataflow

import "github.com/lithammer/shortuuid/v3"

// Value is a single-value channel: its value is immediately available
// to the first read and the channel completes after it.
type Value struct {
	id  string
	out chan interface{}
}

var _ ReadChannel = (*Value)(nil)

func NewValue(v interface{}) *Value {
	out := make(chan interface{}, 1)
	out <- v
	close(out)
	return &Value{id: shortuuid.New(), out: out}
}

func (c *Value) ID() string { return c.id }

func (c *Value) Out() <-chan interface{} { return c.out }
