package system

import (
	"testing"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/camera"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/effects"
)

func TestCameraConfinesToLevelAndShakes(t *testing.T) {
	w := ecs.NewWorld()
	lb := ecs.CreateEntity(w)
	_ = ecs.Add(w, lb, component.LevelBoundsComponent, &component.LevelBounds{Rect: common.Rect{Width: 1000, Height: 200}})
	player := addPlayer(w, 990, 100)

	cam := ecs.CreateEntity(w)
	rig := camera.NewRig()
	rig.LookAhead = false
	rig.Position = common.V(990, 100)
	_ = ecs.Add(w, cam, component.CameraComponent, &component.Camera{Rig: rig, Size: 50, Aspect: 2})

	sys := NewCameraSystem()
	sys.Update(w, tick)
	if rig.Area == nil {
		t.Fatalf("rig should adopt the level area")
	}
	// half width 100: the centre may not pass x=900
	if rig.Position.X > 900+1e-9 {
		t.Fatalf("camera escaped the level: %v", rig.Position)
	}
	if rig.Shaking() {
		t.Fatalf("no damage yet, no shake")
	}

	w.Emit(ecs.EventDamage, ecs.DamageEvent{Entity: player, Category: actor.CategoryPlayer, Amount: 1})
	sys.Update(w, tick)
	if !rig.Shaking() {
		t.Fatalf("player damage should shake the camera")
	}
}

func TestEffectsLightsAndIdle(t *testing.T) {
	w := ecs.NewWorld()
	lights := ecs.CreateEntity(w)
	light := effects.NewEmergencyLight(2, 1, true)
	_ = ecs.Add(w, lights, component.EmergencyLightsComponent, &component.EmergencyLights{Light: light, StartOnLoad: true})

	npc := ecs.CreateEntity(w)
	anim := &component.Animation{}
	_ = ecs.Add(w, npc, component.AnimationComponent, anim)
	clips := []effects.Clip{{Name: "Idle", Duration: 0.5}, {Name: "Greet", Duration: 0.5}}
	_ = ecs.Add(w, npc, component.IdleAnimationComponent, &component.IdleAnimation{Cycler: effects.NewIdleCycler(clips, 0)})

	s := ecs.NewScheduler(NewEffectsSystem())
	run(s, w, 1)
	if !light.Running() {
		t.Fatalf("lights should start on load")
	}
	if anim.Current != "Idle" {
		t.Fatalf("expected Idle, got %q", anim.Current)
	}
	run(s, w, 31)
	if anim.Current != "Greet" {
		t.Fatalf("expected Greet after the first hold, got %q", anim.Current)
	}
	run(s, w, 31)
	if anim.Current != "Idle" {
		t.Fatalf("expected the cycle to wrap, got %q", anim.Current)
	}
}

func TestTTLRemovesEntity(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TTLComponent, &component.TTL{Remaining: 0.1})
	s := ecs.NewScheduler(NewTTLSystem())
	run(s, w, 3)
	if !w.IsAlive(e) {
		t.Fatalf("entity should live until its TTL runs out")
	}
	run(s, w, 5)
	if w.IsAlive(e) {
		t.Fatalf("entity should be removed after its TTL")
	}
}
