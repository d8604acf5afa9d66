package system

import (
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// PlayerControllerSystem turns Input into body velocity through the
// player's Locomotion.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.TransformComponent.Kind(),
	) {
		if !alive(w, e) {
			continue
		}
		player, _ := ecs.Get(w, e, component.PlayerComponent)
		input, _ := ecs.Get(w, e, component.InputComponent)
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		if player.Locomotion == nil {
			continue
		}

		d := player.Locomotion.Step(input.MoveX, input.JumpPressed, body.Grounded, body.Velocity.Y)
		body.Velocity.X = d.VX
		body.Velocity.Y = d.VY
		if d.Flipped {
			transform.Face(player.Locomotion.Facing)
		}

		if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok {
			anim.Set("isRun", d.Running)
			anim.Set("isJump", !body.Grounded || d.Jumped)
		}
		if d.StartedRunning {
			w.Emit(ecs.EventAudio, ecs.AudioEvent{Entity: e, Cue: "walk"})
		}
		if d.Jumped {
			w.Emit(ecs.EventAudio, ecs.AudioEvent{Entity: e, Cue: "jump"})
		}
	}
}
