package system

import (
	"math"
	"testing"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

func addGround(w *ecs.World, x, y, width, height float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: width, Height: height, Static: true, Category: actor.CategoryGround})
	return e
}

func TestPhysicsLandsOnGround(t *testing.T) {
	w := ecs.NewWorld()
	addGround(w, 100, 110, 200, 20)
	player := addPlayer(w, 100, 60)
	ps := NewPhysicsSystem(DefaultGravity)
	s := ecs.NewScheduler(ps)

	run(s, w, 120)
	tr, _ := ecs.Get(w, player, component.TransformComponent)
	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent)
	// ground top is at 100, the body is 16 tall
	if math.Abs(tr.Y-92) > 1.5 {
		t.Fatalf("expected to rest at y=92, got %v", tr.Y)
	}
	if !body.Grounded {
		t.Fatalf("resting body should be grounded")
	}
	if ps.Tracked() != 2 {
		t.Fatalf("expected two tracked bodies, got %d", ps.Tracked())
	}

	ecs.DestroyEntity(w, player)
	run(s, w, 1)
	if ps.Tracked() != 1 {
		t.Fatalf("destroyed body should be dropped, tracked %d", ps.Tracked())
	}
}

func TestPhysicsFallsWithoutGround(t *testing.T) {
	w := ecs.NewWorld()
	e := addActor(w, actor.CategoryEnemy, 0, 0, 16, 1)
	s := ecs.NewScheduler(NewPhysicsSystem(DefaultGravity))

	run(s, w, 60)
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	if tr.Y < 300 || body.Velocity.Y < 800 {
		t.Fatalf("body should be falling fast, y=%v vy=%v", tr.Y, body.Velocity.Y)
	}
	if body.Grounded {
		t.Fatalf("falling body is not grounded")
	}

	body.Disabled = true
	y := tr.Y
	run(s, w, 10)
	if tr.Y != y || body.Grounded {
		t.Fatalf("disabled body should not move")
	}
}

func TestPhysicsQueryCircle(t *testing.T) {
	w := ecs.NewWorld()
	near := addActor(w, actor.CategoryEnemy, 10, 0, 16, 1)
	addActor(w, actor.CategoryEnemy, 100, 0, 16, 1)
	ps := NewPhysicsSystem(0)
	ps.Update(w, 0)

	got := ps.QueryCircle(common.V(0, 0), 5)
	if len(got) != 1 || got[0] != near {
		t.Fatalf("expected only the near body, got %v", got)
	}
}

func TestPhysicsQueryCircleIsExact(t *testing.T) {
	w := ecs.NewWorld()
	// inside the circle's bounding box but about 12 units from its centre
	addActor(w, actor.CategoryEnemy, 9.5, 9.5, 2, 1)
	touching := addActor(w, actor.CategoryEnemy, -12, 0, 6, 1)
	ps := NewPhysicsSystem(0)
	ps.Update(w, 0)

	got := ps.QueryCircle(common.V(0, 0), 10)
	if len(got) != 1 || got[0] != touching {
		t.Fatalf("expected only the body overlapping the circle, got %v", got)
	}
}
