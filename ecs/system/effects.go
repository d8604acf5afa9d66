package system

import (
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// minIdleHold keeps a zero-length clip from re-arming within one tick.
const minIdleHold = 0.1

// EffectsSystem drives the cosmetic loops: emergency lights, the
// assistant's idle cycle and animation clocks.
type EffectsSystem struct{}

func NewEffectsSystem() *EffectsSystem {
	return &EffectsSystem{}
}

func (s *EffectsSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.EmergencyLightsComponent, func(_ ecs.Entity, l *component.EmergencyLights) {
		if l.Light == nil {
			return
		}
		if l.StartOnLoad && !l.Started {
			l.Started = true
			l.Light.Start()
		}
		l.Light.Update(dt)
	})

	ecs.ForEach(w, component.IdleAnimationComponent, func(e ecs.Entity, idle *component.IdleAnimation) {
		if idle.Cycler == nil || idle.Started {
			return
		}
		idle.Started = true
		playAnimation(w, e, idle.Cycler.Current().Name)
		s.scheduleIdle(w, e, idle)
	})

	ecs.ForEach(w, component.AnimationComponent, func(_ ecs.Entity, a *component.Animation) {
		a.Time += dt
	})
}

// scheduleIdle plays the next clip once the current one and the extra wait
// have passed, then re-arms itself.
func (s *EffectsSystem) scheduleIdle(w *ecs.World, e ecs.Entity, idle *component.IdleAnimation) {
	w.After(e, "idle", max(idle.Cycler.Hold(), minIdleHold), func() {
		clip := idle.Cycler.Next()
		playAnimation(w, e, clip.Name)
		s.scheduleIdle(w, e, idle)
	})
}
