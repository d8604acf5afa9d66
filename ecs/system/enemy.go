package system

import (
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// EnemySystem ticks each enemy's behavior and applies its command to the
// body.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	var player *common.Vec2
	if _, t, ok := PlayerPosition(w); ok {
		p := t.Position()
		player = &p
	}

	for _, e := range w.Query(
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	) {
		enemy, _ := ecs.Get(w, e, component.EnemyComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if enemy.Behavior == nil || !alive(w, e) {
			continue
		}

		cmd := enemy.Behavior.Tick(dt, transform.Position(), player)
		body.Velocity.X = cmd.VX
		if cmd.Facing != 0 {
			transform.Face(cmd.Facing)
			if enemy.Locomotion != nil {
				enemy.Locomotion.Face(float64(cmd.Facing))
			}
		}
		enemy.Running = cmd.Running
		if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok {
			anim.Set("isRun", cmd.Running)
		}
	}
}
