package feather2d

import (
	"cmp"
	"slices"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case COLLISION_ENTER:
		return "enter"
	case COLLISION_STAY:
		return "stay"
	case COLLISION_EXIT:
		return "exit"
	default:
		return "unknown"
	}
}

type pairKey struct {
	bodyA BodyHandle
	bodyB BodyHandle
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(bodyA, bodyB BodyHandle) pairKey {
	if bodyB < bodyA {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

func comparePairs(a, b pairKey) int {
	if c := cmp.Compare(a.bodyA, b.bodyA); c != 0 {
		return c
	}
	return cmp.Compare(a.bodyB, b.bodyB)
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
	Bodies() (BodyHandle, BodyHandle)
}

type CollisionEnterEvent struct {
	BodyA BodyHandle
	BodyB BodyHandle
}

func (e CollisionEnterEvent) Type() EventType                  { return COLLISION_ENTER }
func (e CollisionEnterEvent) Bodies() (BodyHandle, BodyHandle) { return e.BodyA, e.BodyB }

type CollisionStayEvent struct {
	BodyA BodyHandle
	BodyB BodyHandle
}

func (e CollisionStayEvent) Type() EventType                  { return COLLISION_STAY }
func (e CollisionStayEvent) Bodies() (BodyHandle, BodyHandle) { return e.BodyA, e.BodyB }

type CollisionExitEvent struct {
	BodyA BodyHandle
	BodyB BodyHandle
}

func (e CollisionExitEvent) Type() EventType                  { return COLLISION_EXIT }
func (e CollisionExitEvent) Bodies() (BodyHandle, BodyHandle) { return e.BodyA, e.BodyB }

// EventListener - callback for events
type EventListener func(event Event)

// Events tracks which pairs are in contact from one tick to the next and
// dispatches Enter/Stay/Exit events at the end of each tick.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordContact marks a pair as touching during the current tick
func (e *Events) recordContact(bodyA, bodyB BodyHandle) {
	e.currentActivePairs[makePairKey(bodyA, bodyB)] = true
}

// forget drops every pair involving the body, without an Exit event
func (e *Events) forget(body BodyHandle) {
	for pair := range e.previousActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(e.previousActivePairs, pair)
		}
	}
	for pair := range e.currentActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(e.currentActivePairs, pair)
		}
	}
}

// processCollisionEvents compares current and previous pairs to detect
// Enter/Stay/Exit. Pairs are visited in handle order.
func (e *Events) processCollisionEvents() {
	current := sortedPairs(e.currentActivePairs)
	for _, pair := range current {
		if e.previousActivePairs[pair] {
			e.buffer = append(e.buffer, CollisionStayEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		} else {
			e.buffer = append(e.buffer, CollisionEnterEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	for _, pair := range sortedPairs(e.previousActivePairs) {
		if !e.currentActivePairs[pair] {
			e.buffer = append(e.buffer, CollisionExitEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

func sortedPairs(pairs map[pairKey]bool) []pairKey {
	keys := make([]pairKey, 0, len(pairs))
	for pair := range pairs {
		keys = append(keys, pair)
	}
	slices.SortFunc(keys, comparePairs)

	return keys
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processCollisionEvents()

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
