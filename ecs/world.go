package ecs

import (
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/timer"
)

// World owns entities, their components, the event queue and the timer
// queue. Systems live in a Scheduler.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue
	timers   *timer.Queue
	elapsed  float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*sparseSet),
		timers: timer.NewQueue(),
	}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes e with all of its components and pending timers.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	w.timers.CancelOwner(uint64(e))
	return w.entities.destroy(e)
}

func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	id := kind.ID()
	if value == nil {
		return component.ErrNilComponent
	}
	s := w.stores[id]
	if s == nil {
		s = newSparseSet()
		w.stores[id] = s
	}
	s.set(e, value)
	return nil
}

func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	return w.stores[kind.ID()].get(e)
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.stores[kind.ID()].has(e)
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil {
		return false
	}
	return w.stores[kind.ID()].remove(e)
}

// Query returns the live entities carrying every listed component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	ids := make([]component.ComponentID, len(kinds))
	for i, k := range kinds {
		ids[i] = k.ID()
	}
	smallest := w.stores[ids[0]]
	for _, id := range ids[1:] {
		s := w.stores[id]
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	if smallest.len() == 0 {
		return nil
	}

	var out []Entity
	for _, e := range smallest.entities() {
		ok := true
		for _, id := range ids {
			if !w.stores[id].has(e) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	s := w.stores[kind.ID()]
	if s.len() == 0 {
		return 0, false
	}
	return s.dense[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit queues an event for delivery at the end of the tick.
func (w *World) Emit(typ EventType, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: typ, Data: data})
}

// Timers returns the queue that backs timed waits.
func (w *World) Timers() *timer.Queue {
	if w == nil {
		return nil
	}
	return w.timers
}

// After runs fn after delay seconds unless e is destroyed first. Scheduling
// the same slot again replaces the pending call.
func (w *World) After(e Entity, slot string, delay float64, fn func()) {
	if w == nil {
		return
	}
	w.timers.After(timer.Key{Owner: uint64(e), Slot: slot}, delay, fn)
}

// Cancel drops a pending call scheduled with After.
func (w *World) Cancel(e Entity, slot string) {
	if w == nil {
		return
	}
	w.timers.Cancel(timer.Key{Owner: uint64(e), Slot: slot})
}

// Elapsed is the simulated time in seconds.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

func (w *World) advance(dt float64) {
	w.elapsed += dt
	w.timers.Advance(dt)
}
