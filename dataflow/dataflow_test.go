package dataflow

import (
	"reflect"
	"testing"
)

func drain(ch ReadChannel) []interface{} {
	var got []interface{}
	for v := range ch.Out() {
		got = append(got, v)
	}
	return got
}

func TestQueueOrdering(t *testing.T) {
	q := NewQueue()
	for i := 1; i <= 100; i++ {
		q.Put(i) // no reader yet; Put must not block
	}
	q.Close()

	got := drain(q)
	if len(got) != 100 {
		t.Fatalf("drained %d items, want 100", len(got))
	}
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("item %d = %v, want %d", i, v, i+1)
		}
	}
}

func TestQueueOfCompletes(t *testing.T) {
	got := drain(NewQueueOf("a", "b", "c"))
	if !reflect.DeepEqual(got, []interface{}{"a", "b", "c"}) {
		t.Fatalf("got %v, want [a b c]", got)
	}
}

func TestQueueOfEmpty(t *testing.T) {
	if got := drain(NewQueueOf()); len(got) != 0 {
		t.Fatalf("empty queue produced %v", got)
	}
}

func TestValueSingleRead(t *testing.T) {
	c := NewValue(42)
	v, ok := <-c.Out()
	if !ok || v != 42 {
		t.Fatalf("first read = (%v, %v), want (42, true)", v, ok)
	}
	if _, ok := <-c.Out(); ok {
		t.Fatal("value channel produced a second element")
	}
}

func TestChannelIDsAreDistinct(t *testing.T) {
	a, b := NewQueue(), NewQueue()
	defer a.Close()
	defer b.Close()
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("ids %q and %q are not distinct", a.ID(), b.ID())
	}
}

func TestBroadcastIndependentCursors(t *testing.T) {
	b := NewBroadcast()
	early := b.Subscribe()

	b.Publish(1)
	b.Publish(2)

	// A late subscriber replays the history before new publishes.
	late := b.Subscribe()
	b.Publish(3)
	b.Close()

	want := []interface{}{1, 2, 3}
	if got := drain(early); !reflect.DeepEqual(got, want) {
		t.Fatalf("early cursor read %v, want %v", got, want)
	}
	if got := drain(late); !reflect.DeepEqual(got, want) {
		t.Fatalf("late cursor read %v, want %v", got, want)
	}
}

func TestBroadcastSubscribeAfterClose(t *testing.T) {
	b := NewBroadcast()
	b.Publish("x")
	b.Close()

	got := drain(b.Subscribe())
	if !reflect.DeepEqual(got, []interface{}{"x"}) {
		t.Fatalf("post-close subscription read %v, want [x]", got)
	}
}

func TestBroadcastPublishAfterCloseDropped(t *testing.T) {
	b := NewBroadcast()
	b.Close()
	b.Publish("late")
	if got := drain(b.Subscribe()); len(got) != 0 {
		t.Fatalf("publish after close leaked: %v", got)
	}
}
