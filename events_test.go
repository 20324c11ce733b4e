package feather2d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) reset() {
	ec.events = ec.events[:0]
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) hasEventType(eventType EventType) bool {
	for _, e := range ec.events {
		if e.Type() == eventType {
			return true
		}
	}
	return false
}

func subscribeAll(events *Events, capture *eventCapture) {
	for _, eventType := range []EventType{COLLISION_ENTER, COLLISION_STAY, COLLISION_EXIT} {
		events.Subscribe(eventType, capture.capture)
	}
}

// =============================================================================
// Events manager
// =============================================================================

func TestEvents_Subscribe(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}

	events.Subscribe(COLLISION_ENTER, capture.capture)

	if len(events.listeners[COLLISION_ENTER]) != 1 {
		t.Errorf("Expected 1 listener for COLLISION_ENTER, got %d", len(events.listeners[COLLISION_ENTER]))
	}
}

func TestEvents_EnterStayExit(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	events.recordContact(3, 1)
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(COLLISION_ENTER) {
		t.Fatalf("first contact: got %v, want one enter event", capture.events)
	}
	a, b := capture.events[0].Bodies()
	if a != 1 || b != 3 {
		t.Errorf("pair = (%d,%d), want ordered (1,3)", a, b)
	}

	capture.reset()
	events.recordContact(1, 3)
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(COLLISION_STAY) {
		t.Fatalf("second contact: got %v, want one stay event", capture.events)
	}

	capture.reset()
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(COLLISION_EXIT) {
		t.Fatalf("no contact: got %v, want one exit event", capture.events)
	}

	capture.reset()
	events.flush()
	if capture.count() != 0 {
		t.Errorf("idle flush: got %v, want nothing", capture.events)
	}
}

func TestEvents_SortedDispatch(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	events.recordContact(5, 4)
	events.recordContact(0, 2)
	events.recordContact(0, 1)
	events.flush()

	want := []pairKey{{0, 1}, {0, 2}, {4, 5}}
	if capture.count() != len(want) {
		t.Fatalf("got %d events, want %d", capture.count(), len(want))
	}
	for i, event := range capture.events {
		a, b := event.Bodies()
		if (pairKey{a, b}) != want[i] {
			t.Errorf("event %d pair = (%d,%d), want %v", i, a, b, want[i])
		}
	}
}

func TestEvents_ForgetSkipsExit(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	events.recordContact(0, 1)
	events.recordContact(1, 2)
	events.flush()
	capture.reset()

	events.forget(1)
	events.flush()
	if capture.count() != 0 {
		t.Errorf("forgotten pairs emitted %v", capture.events)
	}
}

func TestEventType_String(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      string
	}{
		{COLLISION_ENTER, "enter"},
		{COLLISION_STAY, "stay"},
		{COLLISION_EXIT, "exit"},
		{EventType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.eventType.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.eventType, got, tt.want)
		}
	}
}

// =============================================================================
// World integration
// =============================================================================

func TestWorld_CollisionEvents(t *testing.T) {
	w := NewWorld(DefaultConfig())
	capture := &eventCapture{}
	subscribeAll(&w.Events, capture)

	a := mustAddBody(t, w, circleDef(mgl64.Vec2{0, 0}, 5))
	b := mustAddBody(t, w, circleDef(mgl64.Vec2{9, 0}, 5))
	far := mustAddBody(t, w, circleDef(mgl64.Vec2{100, 0}, 5))

	w.Tick()
	if capture.count() != 1 || !capture.hasEventType(COLLISION_ENTER) {
		t.Fatalf("tick 1: got %v, want one enter event", capture.events)
	}
	if first, second := capture.events[0].Bodies(); first != a || second != b {
		t.Errorf("enter pair = (%d,%d), want (%d,%d)", first, second, a, b)
	}

	// pin the bodies back in contact for a second tick
	capture.reset()
	bodyA, bodyB := mustBody(t, w, a), mustBody(t, w, b)
	bodyA.Transform.Position, bodyA.Velocity = mgl64.Vec2{0, 0}, mgl64.Vec2{}
	bodyB.Transform.Position, bodyB.Velocity = mgl64.Vec2{9, 0}, mgl64.Vec2{}
	w.Tick()
	if capture.count() != 1 || !capture.hasEventType(COLLISION_STAY) {
		t.Fatalf("tick 2: got %v, want one stay event", capture.events)
	}

	capture.reset()
	bodyB.Transform.Position = mgl64.Vec2{50, 0}
	w.Tick()
	if capture.count() != 1 || !capture.hasEventType(COLLISION_EXIT) {
		t.Fatalf("tick 3: got %v, want one exit event", capture.events)
	}

	for _, event := range capture.events {
		if first, second := event.Bodies(); first == far || second == far {
			t.Errorf("unexpected event for distant body: %v", event)
		}
	}
}

func TestWorld_RemoveBodyForgetsContacts(t *testing.T) {
	w := NewWorld(DefaultConfig())
	capture := &eventCapture{}
	subscribeAll(&w.Events, capture)

	mustAddBody(t, w, circleDef(mgl64.Vec2{0, 0}, 5))
	b := mustAddBody(t, w, circleDef(mgl64.Vec2{9, 0}, 5))

	w.Tick()
	capture.reset()

	if err := w.RemoveBody(b); err != nil {
		t.Fatal(err)
	}
	w.Tick()
	if capture.count() != 0 {
		t.Errorf("removed body emitted %v", capture.events)
	}
}
