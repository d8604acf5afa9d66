package system

import (
	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/camera"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

const (
	hurtShakeDuration = 0.2
	hurtShakeStrength = 3.0
)

// CameraSystem feeds the player to every camera rig, confines rigs without
// explicit boundaries to the level, and shakes on player damage.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	var target *camera.Target
	if e, t, ok := PlayerPosition(w); ok {
		target = &camera.Target{Position: t.Position()}
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
			target.Velocity = body.Velocity
		}
	}

	hurt := false
	for _, evt := range w.Events().Pending() {
		if d, ok := evt.Data.(ecs.DamageEvent); ok && evt.Type == ecs.EventDamage && d.Category == actor.CategoryPlayer {
			hurt = true
		}
	}

	_, lb, hasBounds := ecs.First(w, component.LevelBoundsComponent)

	ecs.ForEach(w, component.CameraComponent, func(_ ecs.Entity, c *component.Camera) {
		rig := c.Rig
		if rig == nil {
			return
		}
		if hasBounds && rig.Area == nil && rig.UseBounds && c.Size > 0 {
			aspect := c.Aspect
			if aspect <= 0 {
				aspect = 16.0 / 9.0
			}
			hw, hh := camera.OrthographicExtents(c.Size, aspect)
			area := lb.Rect
			rig.Area = &area
			rig.HalfExtents.X, rig.HalfExtents.Y = hw, hh
		}
		if hurt {
			rig.Shake(hurtShakeDuration, hurtShakeStrength)
		}
		rig.Update(dt, target)
	})
}
