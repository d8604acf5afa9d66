package system

import (
	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// Damage applies amount to e's health unless e is invulnerable. A landed hit
// emits the hurt presentation and knocks the player back.
func Damage(w *ecs.World, e ecs.Entity, amount int) bool {
	hp, ok := ecs.Get(w, e, component.HealthComponent)
	if !ok || !hp.Alive() {
		return false
	}
	if ecs.Has(w, e, component.InvulnerableComponent) {
		return false
	}
	if !hp.ApplyDamage(amount) {
		return false
	}

	category := CategoryOf(w, e)
	w.Emit(ecs.EventDamage, ecs.DamageEvent{Entity: e, Category: category, Amount: amount, Remaining: hp.Current})
	if hp.Dead {
		return true
	}

	playAnimation(w, e, "hurt")
	w.Emit(ecs.EventAudio, ecs.AudioEvent{Entity: e, Cue: "hurt"})
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		w.Emit(ecs.EventEffect, ecs.EffectEvent{Name: "hurt", Position: t.Position()})
	}

	if category == actor.CategoryPlayer {
		knockback(w, e)
	}
	return true
}

// Kill drops e's health to zero.
func Kill(w *ecs.World, e ecs.Entity) bool {
	hp, ok := ecs.Get(w, e, component.HealthComponent)
	if !ok {
		return false
	}
	return hp.Kill()
}

// knockback pushes the player away from where they face.
func knockback(w *ecs.World, e ecs.Entity) {
	p, ok := ecs.Get(w, e, component.PlayerComponent)
	if !ok {
		return
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return
	}
	facing := 1
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		facing = t.Facing()
	}
	body.Velocity.X = -float64(facing) * p.KnockbackX
	body.Velocity.Y = -p.KnockbackY
}

func playAnimation(w *ecs.World, e ecs.Entity, name string) {
	if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok {
		anim.Play(name)
	}
	w.Emit(ecs.EventAnimation, ecs.AnimationEvent{Entity: e, Name: name})
}

func alive(w *ecs.World, e ecs.Entity) bool {
	hp, ok := ecs.Get(w, e, component.HealthComponent)
	if !ok {
		return w.IsAlive(e)
	}
	return hp.Alive()
}

// PlayerPosition returns the first live player's position.
func PlayerPosition(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind()) {
		if !alive(w, e) {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent)
		return e, t, true
	}
	return 0, nil, false
}
