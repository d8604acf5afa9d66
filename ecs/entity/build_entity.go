package entity

import (
	"fmt"
	"math"
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/ai"
	"github.com/milk9111/bunker/camera"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/door"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/effects"
	"github.com/milk9111/bunker/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":       addPlayerTag,
	"camera_tag":       addCameraTag,
	"assistant_tag":    addAssistantTag,
	"transform":        addTransform,
	"input":            addInput,
	"physics_body":     addPhysicsBody,
	"player":           addPlayer,
	"health":           addHealth,
	"enemy":            addEnemy,
	"animation":        addAnimation,
	"appearance":       addAppearance,
	"camera":           addCamera,
	"idle_animation":   addIdleAnimation,
	"emergency_lights": addEmergencyLights,
	"door":             addDoor,
}

// componentBuildOrder puts transform before anything that reads the spawn
// position.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"assistant_tag",
	"transform",
	"input",
	"physics_body",
	"player",
	"health",
	"enemy",
	"animation",
	"appearance",
	"camera",
	"idle_animation",
	"emergency_lights",
	"door",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	return e, nil
}

// SetEntityTransform moves e to (x, y), also moving anything positioned
// relative to its spawn.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
		if err := ecs.Add(w, e, component.TransformComponent, t); err != nil {
			return err
		}
	}
	delta := common.V(x-t.X, y-t.Y)
	t.X, t.Y = x, y

	if enemy, ok := ecs.Get(w, e, component.EnemyComponent); ok {
		if p, ok := enemy.Behavior.(*ai.Patrol); ok && p.Active() {
			a, b := p.A.Add(delta), p.B.Add(delta)
			p.A, p.B = &a, &b
		}
	}
	if trig, ok := ecs.Get(w, e, component.TriggerComponent); ok {
		trig.Area.X += delta.X
		trig.Area.Y += delta.Y
	}
	if d, ok := ecs.Get(w, e, component.DoorComponent); ok {
		if slider := d.Slider(); slider != nil {
			slider.Translate(delta)
		}
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && body.Body != nil && !body.Static {
		body.Body.SetPosition(cp.Vector{X: x, Y: y})
	}
	return nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent, &component.CameraTag{})
}

func addAssistantTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AssistantTagComponent, &component.AssistantTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent, &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return err
	}
	category, err := actor.ParseCategory(spec.Category)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:     spec.Width,
		Height:    spec.Height,
		Mass:      spec.Mass,
		Friction:  spec.Friction,
		Static:    spec.Static,
		Kinematic: spec.Kinematic,
		Category:  category,
	})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return err
	}
	loco := actor.NewLocomotion(spec.MoveSpeed, spec.JumpSpeed)
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		loco.Facing = t.Facing()
	}
	return ecs.Add(w, e, component.PlayerComponent, &component.Player{
		Locomotion:         loco,
		Melee:              actor.NewAttack(spec.MeleeCooldown, spec.MeleeRange, spec.MeleeDamage),
		Shoot:              actor.NewAttack(spec.ShootCooldown, 0, 0),
		ProjectileSpeed:    spec.ProjectileSpeed,
		ProjectileLifetime: spec.ProjectileLifetime,
		ProjectileDamage:   spec.ProjectileDamage,
		WindUp:             spec.WindUp,
		KnockbackX:         spec.KnockbackX,
		KnockbackY:         spec.KnockbackY,
		RestartDelay:       spec.RestartDelay,
	})
}

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.HealthComponent, &component.Health{
		Health:     actor.NewHealth(spec.Max),
		DeathDelay: spec.DeathDelay,
	})
}

func addEnemy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyComponentSpec](raw)
	if err != nil {
		return err
	}
	kind, err := ai.ParseKind(spec.Behavior)
	if err != nil {
		return err
	}

	enemy := &component.Enemy{
		Locomotion:      actor.NewLocomotion(spec.Speed, 0),
		ContactDamage:   spec.ContactDamage,
		ContactCooldown: spec.ContactCooldown,
	}
	switch kind {
	case ai.KindChaser:
		enemy.Behavior = ai.NewChaser(spec.DetectionRange, spec.AttackRange, spec.Speed)
		if spec.AttackDamage > 0 {
			enemy.Attack = actor.NewAttack(spec.AttackCooldown, spec.AttackRange, spec.AttackDamage)
		}
	default:
		var origin common.Vec2
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			origin = t.Position()
		}
		patrol := patrolAround(origin, spec.PatrolDistance, spec.Speed, spec.Wait)
		enemy.Behavior = patrol
	}
	return ecs.Add(w, e, component.EnemyComponent, enemy)
}

// patrolAround spans distance horizontally, centred on origin. A zero
// distance leaves the patrol inactive until points are assigned.
func patrolAround(origin common.Vec2, distance, speed, wait float64) *ai.Patrol {
	if distance <= 0 {
		p := ai.NewPatrol(nil, nil, speed, wait)
		p.IgnoreY = true
		return p
	}
	a := origin.Add(common.V(-distance/2, 0))
	b := origin.Add(common.V(distance/2, 0))
	p := ai.NewPatrol(&a, &b, speed, wait)
	p.IgnoreY = true
	return p
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.AnimationComponent, &component.Animation{
		Current: spec.Initial,
		Params:  map[string]bool{},
	})
}

func addAppearance(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AppearanceComponentSpec](raw)
	if err != nil {
		return err
	}
	glyph := '#'
	for _, r := range spec.Glyph {
		glyph = r
		break
	}
	return ecs.Add(w, e, component.AppearanceComponent, &component.Appearance{
		Color:  spec.Color.RGBA,
		Glyph:  glyph,
		Width:  spec.Width,
		Height: spec.Height,
		Layer:  spec.Layer,
		Label:  spec.Label,
	})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return err
	}
	mode, err := camera.ParseMode(spec.Mode)
	if err != nil {
		return err
	}
	forward, err := common.ParseEase(spec.ForwardEase)
	if err != nil {
		return err
	}
	backward, err := common.ParseEase(spec.BackwardEase)
	if err != nil {
		return err
	}

	rig := camera.NewRig()
	rig.Offset = common.V(spec.OffsetX, spec.OffsetY)
	if spec.SmoothTime > 0 {
		rig.SmoothTime = spec.SmoothTime
	}
	if spec.LookAhead != nil {
		rig.LookAhead = *spec.LookAhead
	}
	if spec.LookAheadDistance > 0 {
		rig.LookAheadDistance = spec.LookAheadDistance
	}
	if spec.ForwardDuration > 0 {
		rig.ForwardDuration = spec.ForwardDuration
	}
	if spec.BackwardDuration > 0 {
		rig.BackwardDuration = spec.BackwardDuration
	}
	rig.ForwardEase = forward
	rig.BackwardEase = backward
	if spec.FollowAfterWaypoints != nil {
		rig.FollowAfterWaypoints = *spec.FollowAfterWaypoints
	}
	rig.LoopWaypoints = spec.LoopWaypoints
	// no level area yet; the camera system confines the rig once it knows one
	rig.UseBounds = true
	rig.Bounds = camera.Bounds{MinX: math.Inf(-1), MaxX: math.Inf(1), MinY: math.Inf(-1), MaxY: math.Inf(1)}
	rig.SetMode(mode)

	return ecs.Add(w, e, component.CameraComponent, &component.Camera{Rig: rig, Size: spec.Size})
}

func addIdleAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.IdleAnimationComponentSpec](raw)
	if err != nil {
		return err
	}
	clips := make([]effects.Clip, 0, len(spec.Clips))
	for _, c := range spec.Clips {
		clips = append(clips, effects.Clip{Name: c.Name, Duration: c.Duration})
	}
	return ecs.Add(w, e, component.IdleAnimationComponent, &component.IdleAnimation{
		Cycler: effects.NewIdleCycler(clips, spec.ExtraWait),
	})
}

func addEmergencyLights(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EmergencyLightsComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.EmergencyLightsComponent, &component.EmergencyLights{
		Light:       effects.NewEmergencyLight(spec.Lights, spec.FlashSpeed, spec.Alternating),
		StartOnLoad: spec.StartOnLoad,
	})
}

// addDoor builds an automatic door. NewDoor swaps in a keypad when the level
// gives the door a code.
func addDoor(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.DoorComponentSpec](raw)
	if err != nil {
		return err
	}
	ease, err := common.ParseEase(spec.Ease)
	if err != nil {
		return err
	}
	var closed common.Vec2
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		closed = t.Position()
	}
	slider := door.NewSlider(closed, closed.Add(common.V(spec.OpenOffsetX, spec.OpenOffsetY)), spec.OpenDuration)
	slider.Ease = ease

	if err := ecs.Add(w, e, component.DoorComponent, &component.Door{Automatic: &door.Automatic{Slider: slider}}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.TriggerComponent, &component.Trigger{
		Area:   common.Centered(closed, spec.TriggerWidth, spec.TriggerHeight),
		Filter: actor.CategoryPlayer,
	})
}
