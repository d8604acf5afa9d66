package system

import (
	"log"

	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/progress"
	"github.com/milk9111/bunker/scripting"
)

// DefaultLoaderTarget is where a level loader goes when it names no scene.
const DefaultLoaderTarget = "Memories"

// LevelLoaderSystem marks a level complete the first time the player reaches
// its exit, then loads the target scene after a short delay.
type LevelLoaderSystem struct {
	tracker *progress.Tracker
}

func NewLevelLoaderSystem(tracker *progress.Tracker) *LevelLoaderSystem {
	return &LevelLoaderSystem{tracker: tracker}
}

func (s *LevelLoaderSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.LevelLoaderComponent, component.TriggerComponent, func(e ecs.Entity, ll *component.LevelLoader, trig *component.Trigger) {
		if !trig.Entered || ll.Triggered {
			return
		}
		ll.Triggered = true

		if s.tracker != nil {
			if err := s.tracker.Complete(ll.Level); err != nil {
				log.Printf("level loader: complete level %d: %v", ll.Level, err)
			}
		}
		target := ll.Target
		if target == "" {
			target = DefaultLoaderTarget
		}
		w.After(e, "load", ll.Delay, func() {
			RequestScene(w, target)
		})
	})
}

// Env builds the scripting environment for w: progress flags and the number
// of live enemies.
func Env(w *ecs.World, tracker *progress.Tracker) scripting.Env {
	return scripting.Env{
		Flag: func(key string) bool {
			return tracker != nil && tracker.Flag(key)
		},
		Enemies: func() int {
			return LiveEnemies(w)
		},
	}
}

// LiveEnemies counts enemies that are still alive.
func LiveEnemies(w *ecs.World) int {
	n := 0
	for _, e := range w.Query(component.EnemyComponent.Kind()) {
		if alive(w, e) {
			n++
		}
	}
	return n
}

// SceneGateSystem loads its target when the player enters and the gate's
// condition holds.
type SceneGateSystem struct {
	tracker *progress.Tracker
}

func NewSceneGateSystem(tracker *progress.Tracker) *SceneGateSystem {
	return &SceneGateSystem{tracker: tracker}
}

func (s *SceneGateSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.SceneGateComponent, component.TriggerComponent, func(_ ecs.Entity, gate *component.SceneGate, trig *component.Trigger) {
		if !trig.Entered {
			return
		}
		if gate.Condition != nil {
			ok, err := gate.Condition.Eval(Env(w, s.tracker))
			if err != nil {
				log.Printf("scene gate: %v", err)
				return
			}
			if !ok {
				log.Printf("scene gate: %s is still closed (%s)", gate.Target, gate.Condition.Source)
				return
			}
		}
		RequestScene(w, gate.Target)
	})
}

// ActivatorSystem removes activator entities whose condition is false. The
// check runs once, on the first tick after the scene loads.
type ActivatorSystem struct {
	tracker *progress.Tracker
}

func NewActivatorSystem(tracker *progress.Tracker) *ActivatorSystem {
	return &ActivatorSystem{tracker: tracker}
}

func (s *ActivatorSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	env := Env(w, s.tracker)
	ecs.ForEach(w, component.ActivatorComponent, func(e ecs.Entity, act *component.Activator) {
		if act.Checked {
			return
		}
		act.Checked = true
		if act.Condition == nil {
			return
		}
		ok, err := act.Condition.Eval(env)
		if err != nil {
			log.Printf("activator: %v", err)
			return
		}
		if !ok {
			ecs.DestroyEntity(w, e)
		}
	})
}
