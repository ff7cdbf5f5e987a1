package event

import "testing"

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) { l.got = append(l.got, e) }

func TestDispatchOnlyToSubscribers(t *testing.T) {
	d := NewDispatcher()
	clicks := &countingListener{}
	closes := &countingListener{}
	d.Subscribe(MouseLeftPressed, clicks)
	d.Subscribe(CloseRequested, closes)

	d.Dispatch(Event{Type: MouseLeftPressed, Data: MousePosition{X: 3, Y: 4}})
	d.Dispatch(Event{Type: MouseLeftPressed})
	d.Dispatch(Event{Type: "KeyPressed"})

	if len(clicks.got) != 2 {
		t.Fatalf("click listener got %d events, want 2", len(clicks.got))
	}
	if pos, ok := clicks.got[0].Data.(MousePosition); !ok || pos.X != 3 || pos.Y != 4 {
		t.Errorf("first click data = %#v", clicks.got[0].Data)
	}
	if len(closes.got) != 0 {
		t.Errorf("close listener got %d events, want 0", len(closes.got))
	}
}

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var order []string
	first := &countingListener{}
	second := ListenerFunc(func(Event) { order = append(order, "second") })
	d.Subscribe(CloseRequested, first)
	d.Subscribe(CloseRequested, ListenerFunc(func(Event) { order = append(order, "after-first") }))
	d.Subscribe(MouseLeftPressed, second)

	d.Dispatch(Event{Type: CloseRequested})
	if len(first.got) != 1 || len(order) != 1 || order[0] != "after-first" {
		t.Fatalf("unexpected dispatch: first=%d order=%v", len(first.got), order)
	}

	d.Unsubscribe(CloseRequested, first)
	d.Dispatch(Event{Type: CloseRequested})
	if len(first.got) != 1 {
		t.Errorf("unsubscribed listener still called: %d", len(first.got))
	}
	if len(order) != 2 {
		t.Errorf("remaining listener calls = %d, want 2", len(order))
	}
}
