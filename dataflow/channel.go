package dataflow

// ReadChannel is the consumer end of a conduit between pipeline stages.
// Out is closed after the last element for finite channels.
type ReadChannel interface {
	Out() <-chan interface{}
	ID() string
}

// WriteChannel is the producer end of a conduit.
type WriteChannel interface {
	Put(v interface{})
	Close()
	ID() string
}

// Subscribable is a multi-subscriber source. Every Subscribe call
// yields an independent read cursor over the same emitted sequence.
type Subscribable interface {
	Subscribe() ReadChannel
}
