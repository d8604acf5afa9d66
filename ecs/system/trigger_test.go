package system

import (
	"testing"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

func TestTriggerEdges(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, -100, 0)
	_, trig := addTrigger(w, 0, 0, 20, actor.CategoryPlayer)
	addActor(w, actor.CategoryEnemy, 0, 0, 16, 1)
	sys := NewTriggerSystem()

	pt, _ := ecs.Get(w, player, component.TransformComponent)
	steps := []struct {
		name    string
		x       float64
		inside  bool
		entered bool
		exited  bool
	}{
		{"enemy_ignored", -100, false, false, false},
		{"enter", 0, true, true, false},
		{"stay", 5, true, false, false},
		{"leave", 100, false, false, true},
		{"away", 100, false, false, false},
	}
	for _, s := range steps {
		pt.X = s.x
		sys.Update(w, tick)
		if trig.Inside != s.inside || trig.Entered != s.entered || trig.Exited != s.exited {
			t.Fatalf("%s: got inside=%v entered=%v exited=%v", s.name, trig.Inside, trig.Entered, trig.Exited)
		}
		if s.entered && trig.Other != uint64(player) {
			t.Fatalf("%s: expected player as other", s.name)
		}
	}
}

func TestTriggerIgnoresDeadAndDisabled(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 0, 0)
	_, trig := addTrigger(w, 0, 0, 20, actor.CategoryPlayer)
	sys := NewTriggerSystem()

	sys.Update(w, tick)
	if !trig.Entered {
		t.Fatalf("expected enter")
	}
	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent)
	body.Disabled = true
	sys.Update(w, tick)
	if !trig.Exited || trig.Inside {
		t.Fatalf("disabled collider should leave the trigger")
	}

	body.Disabled = false
	Kill(w, player)
	sys.Update(w, tick)
	if trig.Inside || trig.Entered {
		t.Fatalf("dead actor should not enter")
	}
}

func TestDeathZoneKillsAnyActor(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addActor(w, actor.CategoryEnemy, 0, 0, 16, 3)
	zone, _ := addTrigger(w, 0, 0, 40, actor.CategoryNone)
	_ = ecs.Add(w, zone, component.DeathZoneComponent, &component.DeathZone{})

	s := ecs.NewScheduler(NewTriggerSystem(), NewDeathZoneSystem())
	run(s, w, 1)
	hp, _ := ecs.Get(w, enemy, component.HealthComponent)
	if hp.Alive() {
		t.Fatalf("enemy in death zone should die")
	}
}

func TestDeathZoneKillsEveryArrival(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addActor(w, actor.CategoryEnemy, 0, 0, 16, 3)
	player := addActor(w, actor.CategoryPlayer, 4, 0, 16, 3)
	zone, trig := addTrigger(w, 0, 0, 40, actor.CategoryNone)
	_ = ecs.Add(w, zone, component.DeathZoneComponent, &component.DeathZone{})

	// arrives later, while the zone already holds the corpses
	late := addActor(w, actor.CategoryEnemy, 200, 0, 16, 3)

	s := ecs.NewScheduler(NewTriggerSystem(), NewDeathZoneSystem())
	run(s, w, 1)
	for name, e := range map[string]ecs.Entity{"enemy": enemy, "player": player} {
		hp, _ := ecs.Get(w, e, component.HealthComponent)
		if hp.Alive() {
			t.Fatalf("%s entered together with another actor and should die", name)
		}
	}

	lateT, _ := ecs.Get(w, late, component.TransformComponent)
	lateT.X = 0
	run(s, w, 1)
	if hp, _ := ecs.Get(w, late, component.HealthComponent); hp.Alive() {
		t.Fatalf("late arrival should die, trigger inside=%v arrivals=%v", trig.Inside, trig.Arrivals)
	}
}

func TestTriggerTracksEveryOccupant(t *testing.T) {
	w := ecs.NewWorld()
	a := addActor(w, actor.CategoryEnemy, 0, 0, 16, 3)
	b := addActor(w, actor.CategoryEnemy, 200, 0, 16, 3)
	_, trig := addTrigger(w, 0, 0, 40, actor.CategoryEnemy)
	sys := NewTriggerSystem()

	sys.Update(w, tick)
	if !trig.Entered || len(trig.Arrivals) != 1 || trig.Arrivals[0] != uint64(a) {
		t.Fatalf("expected a to enter, got entered=%v arrivals=%v", trig.Entered, trig.Arrivals)
	}

	bt, _ := ecs.Get(w, b, component.TransformComponent)
	bt.X = 5
	sys.Update(w, tick)
	if trig.Entered || len(trig.Arrivals) != 1 || trig.Arrivals[0] != uint64(b) {
		t.Fatalf("expected b to arrive without a volume edge, got entered=%v arrivals=%v", trig.Entered, trig.Arrivals)
	}

	at, _ := ecs.Get(w, a, component.TransformComponent)
	at.X = 300
	sys.Update(w, tick)
	if trig.Exited || !trig.Inside || len(trig.Departures) != 1 || trig.Departures[0] != uint64(a) {
		t.Fatalf("expected a to depart while b stays, got exited=%v inside=%v departures=%v", trig.Exited, trig.Inside, trig.Departures)
	}

	bt.X = 300
	sys.Update(w, tick)
	if !trig.Exited || trig.Inside || trig.Other != uint64(b) {
		t.Fatalf("expected the volume to empty after b leaves, got exited=%v inside=%v other=%d", trig.Exited, trig.Inside, trig.Other)
	}
}

func TestCanvasFollowsTrigger(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 0, 0)
	e, _ := addTrigger(w, 0, 0, 20, actor.CategoryPlayer)
	canvas := &component.Canvas{Text: "hello"}
	_ = ecs.Add(w, e, component.CanvasComponent, canvas)

	s := ecs.NewScheduler(NewTriggerSystem(), NewCanvasSystem())
	run(s, w, 1)
	if !canvas.Visible {
		t.Fatalf("canvas should show while the player is inside")
	}
	pt, _ := ecs.Get(w, player, component.TransformComponent)
	pt.X = 500
	run(s, w, 1)
	if canvas.Visible {
		t.Fatalf("canvas should hide after the player leaves")
	}
}
