package eventbus

import "testing"

type testEvent struct {
	ProjectID int
}

func TestPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Publish(testEvent{ProjectID: 7})
	got := <-ch
	if ev, ok := got.(testEvent); !ok || ev.ProjectID != 7 {
		t.Fatalf("expected testEvent{7}, got %v", got)
	}
	bus.Unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed after unsubscribe")
	}
}

func TestCloseClosesAllSubscribers(t *testing.T) {
	bus := New()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
	// Publishing and unsubscribing after Close must not panic.
	bus.Publish(testEvent{})
	bus.Unsubscribe(ch1)
}

func TestSubscribeAfterClose(t *testing.T) {
	bus := New()
	bus.Close()
	ch := bus.Subscribe()
	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel from closed bus")
	}
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := New()
	_ = bus.Subscribe()
	for i := 0; i < subscriberBuffer*2; i++ {
		bus.Publish(testEvent{ProjectID: i})
	}
}
