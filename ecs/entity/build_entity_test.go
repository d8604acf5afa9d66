package entity

import (
	"math"
	"testing"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/ai"
	"github.com/milk9111/bunker/camera"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"golang.org/x/image/colornames"
)

func TestBuildEntityPrefabs(t *testing.T) {
	cases := []struct {
		prefab string
		check  func(t *testing.T, w *ecs.World, e ecs.Entity)
	}{
		{"player.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			if !ecs.Has(w, e, component.PlayerTagComponent) || !ecs.Has(w, e, component.InputComponent) {
				t.Fatalf("player is missing tag or input")
			}
			body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
			if !ok || body.Category != actor.CategoryPlayer {
				t.Fatalf("expected player body, got %+v", body)
			}
			hp, ok := ecs.Get(w, e, component.HealthComponent)
			if !ok || hp.Max != 5 || hp.Current != 5 {
				t.Fatalf("expected 5/5 health, got %+v", hp.Health)
			}
			p, _ := ecs.Get(w, e, component.PlayerComponent)
			if p.Melee == nil || p.Shoot == nil || p.Locomotion == nil {
				t.Fatalf("player attacks not built: %+v", p)
			}
		}},
		{"chaser_enemy.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			enemy, ok := ecs.Get(w, e, component.EnemyComponent)
			if !ok {
				t.Fatalf("missing enemy component")
			}
			if enemy.Behavior.Kind() != ai.KindChaser {
				t.Fatalf("expected chaser, got %s", enemy.Behavior.Kind())
			}
			if enemy.Attack == nil {
				t.Fatalf("chaser should carry a melee attack")
			}
		}},
		{"camera.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			c, ok := ecs.Get(w, e, component.CameraComponent)
			if !ok || c.Rig == nil {
				t.Fatalf("missing camera rig")
			}
			if c.Rig.Mode != camera.ModeFollowPlayer {
				t.Fatalf("expected follow mode, got %v", c.Rig.Mode)
			}
			if c.Size != 135 {
				t.Fatalf("expected size 135, got %v", c.Size)
			}
		}},
		{"assistant.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			idle, ok := ecs.Get(w, e, component.IdleAnimationComponent)
			if !ok || len(idle.Cycler.Clips) != 3 {
				t.Fatalf("expected three idle clips")
			}
		}},
		{"emergency_lights.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			l, ok := ecs.Get(w, e, component.EmergencyLightsComponent)
			if !ok || !l.StartOnLoad || len(l.Light.Colors()) != 4 {
				t.Fatalf("unexpected lights: %+v", l)
			}
		}},
	}

	for _, c := range cases {
		t.Run(c.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildEntity(w, c.prefab)
			if err != nil {
				t.Fatalf("BuildEntity: %v", err)
			}
			c.check(t, w, e)
		})
	}
}

func TestBuildEntityErrors(t *testing.T) {
	if _, err := BuildEntity(nil, "player.yaml"); err == nil {
		t.Fatalf("expected error for nil world")
	}
	w := ecs.NewWorld()
	if _, err := BuildEntity(w, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("failed builds should leave no entities, got %d", n)
	}
}

func TestPatrolEnemyPointsFollowSpawn(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewEnemyAt(w, "patrol", 100, 50)
	if err != nil {
		t.Fatalf("NewEnemyAt: %v", err)
	}
	enemy, _ := ecs.Get(w, e, component.EnemyComponent)
	p, ok := enemy.Behavior.(*ai.Patrol)
	if !ok {
		t.Fatalf("expected patrol behavior, got %T", enemy.Behavior)
	}
	if !p.IgnoreY {
		t.Fatalf("walkers should patrol on X only")
	}
	if *p.A != common.V(68, 50) || *p.B != common.V(132, 50) {
		t.Fatalf("unexpected patrol points %v %v", *p.A, *p.B)
	}

	if _, err := NewEnemyAt(w, "flyer", 0, 0); err == nil {
		t.Fatalf("expected error for unknown behavior")
	}
}

func TestNewDoor(t *testing.T) {
	w := ecs.NewWorld()

	auto, err := NewDoor(w, 200, 100, "")
	if err != nil {
		t.Fatalf("NewDoor: %v", err)
	}
	d, _ := ecs.Get(w, auto, component.DoorComponent)
	if d.Automatic == nil || d.Password != nil {
		t.Fatalf("expected automatic door")
	}
	slider := d.Slider()
	if slider.Closed != common.V(200, 100) || slider.Opened != common.V(200, 52) {
		t.Fatalf("unexpected slider track %v -> %v", slider.Closed, slider.Opened)
	}
	if slider.Position() != slider.Closed {
		t.Fatalf("door should start closed at %v, got %v", slider.Closed, slider.Position())
	}
	trig, _ := ecs.Get(w, auto, component.TriggerComponent)
	if !trig.Area.Contains(common.V(200, 100)) || trig.Filter != actor.CategoryPlayer {
		t.Fatalf("trigger should surround the door: %+v", trig)
	}

	locked, err := NewDoor(w, 0, 0, "1234")
	if err != nil {
		t.Fatalf("NewDoor: %v", err)
	}
	d, _ = ecs.Get(w, locked, component.DoorComponent)
	if d.Password == nil || d.Automatic != nil || d.Password.Secret != "1234" {
		t.Fatalf("expected password door, got %+v", d)
	}
}

func TestSceneObjects(t *testing.T) {
	w := ecs.NewWorld()
	area := common.Rect{X: 10, Y: 20, Width: 30, Height: 40}

	if _, err := NewSceneGate(w, area, "Level1", "!flag("); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := NewSceneGate(w, area, "", ""); err == nil {
		t.Fatalf("expected error for empty target")
	}
	gateEnt, err := NewSceneGate(w, area, "Level1", `flag("Level0_Completed")`)
	if err != nil {
		t.Fatalf("NewSceneGate: %v", err)
	}
	gate, _ := ecs.Get(w, gateEnt, component.SceneGateComponent)
	if gate.Condition == nil || gate.Target != "Level1" {
		t.Fatalf("unexpected gate %+v", gate)
	}

	zone := NewDeathZone(w, area)
	trig, _ := ecs.Get(w, zone, component.TriggerComponent)
	if trig.Filter != actor.CategoryNone || trig.Area != area {
		t.Fatalf("death zone should watch every actor in its area: %+v", trig)
	}

	ground := NewGround(w, area, colornames.Slategray)
	body, _ := ecs.Get(w, ground, component.PhysicsBodyComponent)
	tr, _ := ecs.Get(w, ground, component.TransformComponent)
	if !body.Static || body.Bounds(tr) != area {
		t.Fatalf("ground bounds %v, want %v", body.Bounds(tr), area)
	}

	if err := SetActivator(w, ground, "enemies() == 0"); err != nil {
		t.Fatalf("SetActivator: %v", err)
	}
	if err := SetActivator(w, ground, ""); err == nil {
		t.Fatalf("expected error for empty condition")
	}
}

func TestSetEntityTransformMovesTrigger(t *testing.T) {
	w := ecs.NewWorld()
	e := newTrigger(w, common.Rect{X: -5, Y: -5, Width: 10, Height: 10}, actor.CategoryPlayer)
	if err := SetEntityTransform(w, e, 100, 0); err != nil {
		t.Fatalf("SetEntityTransform: %v", err)
	}
	trig, _ := ecs.Get(w, e, component.TriggerComponent)
	if math.Abs(trig.Area.X-95) > 1e-9 || math.Abs(trig.Area.Y+5) > 1e-9 {
		t.Fatalf("trigger did not follow: %+v", trig.Area)
	}
}
