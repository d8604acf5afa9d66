package ecs

import (
	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/common"
)

// EventType names a presentation or gameplay event.
type EventType string

const (
	EventAnimation EventType = "animation"
	EventAudio     EventType = "audio"
	EventEffect    EventType = "effect"
	EventDamage    EventType = "damage"
	EventDeath     EventType = "death"
	EventScene     EventType = "scene"
	EventCamera    EventType = "camera"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// AnimationEvent asks the presentation layer to play a named state.
type AnimationEvent struct {
	Entity Entity
	Name   string
}

// AudioEvent requests a one-shot cue.
type AudioEvent struct {
	Entity Entity
	Cue    string
}

// EffectEvent spawns a cosmetic effect at Position.
type EffectEvent struct {
	Name     string
	Position common.Vec2
}

type DamageEvent struct {
	Entity    Entity
	Category  actor.Category
	Amount    int
	Remaining int
}

type DeathEvent struct {
	Entity   Entity
	Category actor.Category
}

// SceneEvent reports that a scene load was requested.
type SceneEvent struct {
	Name string
}

// EventQueue collects events during a tick and hands them to subscribers
// when the tick ends. Delivery is fire-and-forget.
type EventQueue struct {
	items       []Event
	subscribers []func(Event)
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Subscribe registers fn for every flushed event.
func (q *EventQueue) Subscribe(fn func(Event)) {
	if q == nil || fn == nil {
		return
	}
	q.subscribers = append(q.subscribers, fn)
}

// Pending returns the queued events without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// flush delivers queued events. Events pushed by a subscriber are delivered
// in the same flush.
func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	for len(q.items) > 0 {
		batch := q.Drain()
		for _, evt := range batch {
			for _, fn := range q.subscribers {
				fn(evt)
			}
		}
	}
}
