package system

import (
	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

const tick = 1.0 / 60.0

// addActor places a dynamic collider of the given category centred on (x, y).
func addActor(w *ecs.World, category actor.Category, x, y, size float64, hp int) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: size, Height: size, Mass: 1, Category: category})
	if hp > 0 {
		_ = ecs.Add(w, e, component.HealthComponent, &component.Health{Health: actor.NewHealth(hp)})
	}
	return e
}

// addPlayer adds a bare player with input and a simple kit.
func addPlayer(w *ecs.World, x, y float64) ecs.Entity {
	e := addActor(w, actor.CategoryPlayer, x, y, 16, 3)
	_ = ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
	_ = ecs.Add(w, e, component.InputComponent, &component.Input{})
	_ = ecs.Add(w, e, component.PlayerComponent, &component.Player{
		Locomotion:         actor.NewLocomotion(100, 300),
		Melee:              actor.NewAttack(0.5, 18, 1),
		Shoot:              actor.NewAttack(0.4, 0, 0),
		ProjectileSpeed:    300,
		ProjectileLifetime: 2,
		ProjectileDamage:   1,
		WindUp:             0.1,
		RestartDelay:       2,
	})
	return e
}

func addTrigger(w *ecs.World, x, y, size float64, filter actor.Category) (ecs.Entity, *component.Trigger) {
	e := ecs.CreateEntity(w)
	trig := &component.Trigger{
		Area:   common.Centered(common.V(x, y), size, size),
		Filter: filter,
	}
	_ = ecs.Add(w, e, component.TriggerComponent, trig)
	return e, trig
}

func input(w *ecs.World, e ecs.Entity) *component.Input {
	in, _ := ecs.Get(w, e, component.InputComponent)
	return in
}

// recordEvents collects every flushed event of typ.
func recordEvents(w *ecs.World, typ ecs.EventType) *[]ecs.Event {
	var got []ecs.Event
	w.Events().Subscribe(func(evt ecs.Event) {
		if evt.Type == typ {
			got = append(got, evt)
		}
	})
	return &got
}

func cues(events []ecs.Event) []string {
	var out []string
	for _, evt := range events {
		if a, ok := evt.Data.(ecs.AudioEvent); ok {
			out = append(out, a.Cue)
		}
	}
	return out
}

func run(s *ecs.Scheduler, w *ecs.World, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Update(w, tick)
	}
}
