package system

import (
	"sort"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// TriggerSystem recomputes which triggers hold an actor of their filter
// category (any actor for CategoryNone) and raises Entered/Exited on changes
// only. Dead actors and disabled colliders count as outside.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem {
	return &TriggerSystem{}
}

func (s *TriggerSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	type candidate struct {
		e        ecs.Entity
		category actor.Category
		body     *component.PhysicsBody
		t        *component.Transform
	}
	var actors []candidate
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if body.Static || body.Disabled || !alive(w, e) {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent)
		actors = append(actors, candidate{e: e, category: body.Category, body: body, t: t})
	}

	ecs.ForEach(w, component.TriggerComponent, func(e ecs.Entity, trig *component.Trigger) {
		trig.Entered = false
		trig.Exited = false
		trig.Arrivals = trig.Arrivals[:0]
		trig.Departures = trig.Departures[:0]

		now := make(map[uint64]bool, len(trig.Occupants))
		for _, c := range actors {
			if c.e == e || (trig.Filter != actor.CategoryNone && c.category != trig.Filter) {
				continue
			}
			if !c.body.Bounds(c.t).Intersects(trig.Area) {
				continue
			}
			id := uint64(c.e)
			now[id] = true
			if !trig.Occupants[id] {
				trig.Arrivals = append(trig.Arrivals, id)
			}
		}
		for id := range trig.Occupants {
			if !now[id] {
				trig.Departures = append(trig.Departures, id)
			}
		}
		// map order is random; keep departures stable for callers
		sort.Slice(trig.Departures, func(i, j int) bool { return trig.Departures[i] < trig.Departures[j] })

		inside := len(now) > 0
		switch {
		case inside && !trig.Inside:
			trig.Entered = true
			trig.Other = trig.Arrivals[0]
		case !inside && trig.Inside:
			trig.Exited = true
			if len(trig.Departures) > 0 {
				trig.Other = trig.Departures[0]
			}
		}
		trig.Inside = inside
		trig.Occupants = now
	})
}

// DeathZoneSystem kills every actor that enters a death zone trigger, even
// while another is already inside.
type DeathZoneSystem struct{}

func NewDeathZoneSystem() *DeathZoneSystem {
	return &DeathZoneSystem{}
}

func (s *DeathZoneSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.DeathZoneComponent.Kind(), component.TriggerComponent.Kind()) {
		trig, _ := ecs.Get(w, e, component.TriggerComponent)
		for _, id := range trig.Arrivals {
			Kill(w, ecs.Entity(id))
		}
	}
}

// CanvasSystem shows a canvas while the player is inside its trigger.
type CanvasSystem struct{}

func NewCanvasSystem() *CanvasSystem {
	return &CanvasSystem{}
}

func (s *CanvasSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.CanvasComponent, component.TriggerComponent, func(_ ecs.Entity, c *component.Canvas, trig *component.Trigger) {
		switch {
		case trig.Entered:
			c.Visible = true
		case trig.Exited:
			c.Visible = false
		}
	})
}
