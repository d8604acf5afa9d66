package system

import (
	"log"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// DefaultDeathDelay is how long a dead actor lingers before removal.
const DefaultDeathDelay = 2.0

// HealthSystem counts down invulnerability and processes deaths: the body
// stops and stops colliding, the die presentation plays, and the entity is
// removed after its death delay. A dead player restarts the scene instead.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent, func(e ecs.Entity, inv *component.Invulnerable) {
		if inv.Remaining <= 0 {
			return
		}
		inv.Remaining -= dt
		if inv.Remaining <= 0 {
			ecs.Remove(w, e, component.InvulnerableComponent)
		}
	})

	ecs.ForEach(w, component.HealthComponent, func(e ecs.Entity, hp *component.Health) {
		if hp.Health == nil || hp.Alive() || hp.Handled {
			return
		}
		hp.Handled = true

		category := CategoryOf(w, e)
		w.Emit(ecs.EventDeath, ecs.DeathEvent{Entity: e, Category: category})
		playAnimation(w, e, "die")
		w.Emit(ecs.EventAudio, ecs.AudioEvent{Entity: e, Cue: "die"})

		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
			body.Velocity.X, body.Velocity.Y = 0, 0
			body.Disabled = true
		}

		if category == actor.CategoryPlayer {
			delay := DefaultDeathDelay
			if p, ok := ecs.Get(w, e, component.PlayerComponent); ok && p.RestartDelay > 0 {
				delay = p.RestartDelay
			}
			w.After(e, "restart", delay, func() {
				name := CurrentScene(w)
				log.Printf("health: player died, restarting %s", name)
				RequestScene(w, name)
			})
			return
		}

		delay := hp.DeathDelay
		if delay <= 0 {
			delay = DefaultDeathDelay
		}
		w.After(e, "remove", delay, func() {
			ecs.DestroyEntity(w, e)
		})
	})
}
