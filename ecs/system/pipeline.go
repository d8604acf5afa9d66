package system

import (
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/progress"
)

type Options struct {
	Input   InputSource
	Tracker *progress.Tracker
	// Gravity defaults to DefaultGravity when zero.
	Gravity float64
}

// Pipeline is the game's scheduler in its fixed order, plus the physics
// system the host resets on scene changes.
type Pipeline struct {
	*ecs.Scheduler
	Physics *PhysicsSystem
}

func NewPipeline(opts Options) *Pipeline {
	gravity := opts.Gravity
	if gravity == 0 {
		gravity = DefaultGravity
	}
	physics := NewPhysicsSystem(gravity)

	scheduler := ecs.NewScheduler(
		NewInputSystem(opts.Input),
		NewActivatorSystem(opts.Tracker),
		NewPlayerControllerSystem(),
		NewEnemySystem(),
		physics,
		NewCombatSystem(physics),
		NewProjectileSystem(),
		NewHealthSystem(),
		NewTriggerSystem(),
		NewDeathZoneSystem(),
		NewDoorSystem(),
		NewDialogueSystem(),
		NewLevelLoaderSystem(opts.Tracker),
		NewSceneGateSystem(opts.Tracker),
		NewCanvasSystem(),
		NewCameraSystem(),
		NewEffectsSystem(),
		NewTTLSystem(),
	)
	return &Pipeline{Scheduler: scheduler, Physics: physics}
}
