package actor

import (
	"math"
	"testing"

	"github.com/milk9111/bunker/common"
)

func TestHealthDamageSequences(t *testing.T) {
	cases := []struct {
		name     string
		max      int
		hits     []int
		wantHP   int
		wantDead bool
		deaths   int
	}{
		{"survives", 5, []int{1, 2}, 2, false, 0},
		{"exact_kill", 3, []int{1, 1, 1}, 0, true, 1},
		{"overkill_clamps", 3, []int{10}, 0, true, 1},
		{"hits_after_death_ignored", 2, []int{2, 5, 1}, 0, true, 1},
		{"negative_rejected", 4, []int{-3, 0, 1}, 3, false, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(c.max)
			deaths := 0
			h.OnDeath = func(*Health, DamageEvent) { deaths++ }

			prev := h.Current
			for _, dmg := range c.hits {
				h.ApplyDamage(dmg)
				if h.Current > prev {
					t.Fatalf("health increased from %d to %d", prev, h.Current)
				}
				if h.Current < 0 {
					t.Fatalf("health went negative: %d", h.Current)
				}
				if h.Alive() != (h.Current > 0) {
					t.Fatalf("alive flag out of sync: alive=%v current=%d", h.Alive(), h.Current)
				}
				prev = h.Current
			}
			if h.Current != c.wantHP || h.Dead != c.wantDead || deaths != c.deaths {
				t.Fatalf("got hp=%d dead=%v deaths=%d, want hp=%d dead=%v deaths=%d",
					h.Current, h.Dead, deaths, c.wantHP, c.wantDead, c.deaths)
			}
		})
	}
}

func TestHealthKillIsIdempotent(t *testing.T) {
	h := NewHealth(3)
	if !h.Kill() {
		t.Fatalf("first kill should apply")
	}
	if h.Kill() {
		t.Fatalf("second kill should be a no-op")
	}
}

func TestLocomotionFacingAndJump(t *testing.T) {
	l := NewLocomotion(10, 15)

	d := l.Step(1, false, true, 0)
	if d.VX != 10 || d.Flipped || !d.StartedRunning {
		t.Fatalf("unexpected drive moving right: %+v", d)
	}
	d = l.Step(1, false, true, 0)
	if d.StartedRunning {
		t.Fatalf("run start should fire once")
	}

	d = l.Step(-0.5, false, true, 0)
	if !d.Flipped || l.Facing != -1 || d.VX != -5 {
		t.Fatalf("expected flip to the left: %+v facing=%d", d, l.Facing)
	}

	d = l.Step(0, false, true, 3)
	if d.Flipped || l.Facing != -1 || d.VX != 0 || d.VY != 3 {
		t.Fatalf("zero input must keep facing and pass vy: %+v", d)
	}

	d = l.Step(0, true, false, 3)
	if d.Jumped || d.VY != 3 {
		t.Fatalf("airborne jump must be ignored: %+v", d)
	}
	d = l.Step(0, true, true, 0)
	if !d.Jumped || d.VY != -15 {
		t.Fatalf("grounded jump should set vy=-15: %+v", d)
	}
}

type fakeTargets struct {
	positions map[uint64]common.Vec2
	health    map[uint64]*Health
	dupes     bool
}

func (f *fakeTargets) InCircle(center common.Vec2, radius float64) []uint64 {
	var out []uint64
	for id, p := range f.positions {
		if common.Distance(center, p) <= radius {
			out = append(out, id)
			if f.dupes {
				out = append(out, id)
			}
		}
	}
	return out
}

func (f *fakeTargets) Damage(id uint64, amount int) bool {
	h := f.health[id]
	return h.ApplyDamage(amount)
}

func TestAttackCooldownScenario(t *testing.T) {
	targets := &fakeTargets{
		positions: map[uint64]common.Vec2{1: common.V(0.5, 0)},
		health:    map[uint64]*Health{1: NewHealth(100)},
	}
	a := NewAttack(0.5, 1, 10)

	const dt = 0.1
	attackAt := map[int]bool{0: true, 2: true, 6: true}
	var hitTicks []int
	for tick := 0; tick <= 10; tick++ {
		if attackAt[tick] {
			if res, ok := a.Perform(common.V(0, 0), targets); ok && len(res.Hits) > 0 {
				hitTicks = append(hitTicks, tick)
			}
		}
		a.Tick(dt)
	}
	if len(hitTicks) != 2 || hitTicks[0] != 0 || hitTicks[1] != 6 {
		t.Fatalf("expected hits at t=0 and t=0.6, got ticks %v", hitTicks)
	}
	if targets.health[1].Current != 80 {
		t.Fatalf("expected 2 hits of 10, health=%d", targets.health[1].Current)
	}
}

func TestAttackHitsEachTargetOncePerSwing(t *testing.T) {
	targets := &fakeTargets{
		positions: map[uint64]common.Vec2{
			1: common.V(0.2, 0),
			2: common.V(-0.3, 0.1),
			3: common.V(5, 0),
		},
		health: map[uint64]*Health{1: NewHealth(10), 2: NewHealth(10), 3: NewHealth(10)},
		dupes:  true,
	}
	a := NewAttack(0.5, 1, 4)
	res, ok := a.Perform(common.V(0, 0), targets)
	if !ok || len(res.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %v ok=%v", res.Hits, ok)
	}
	if targets.health[1].Current != 6 || targets.health[2].Current != 6 || targets.health[3].Current != 10 {
		t.Fatalf("unexpected health: %d %d %d", targets.health[1].Current, targets.health[2].Current, targets.health[3].Current)
	}
}

func TestProjectileExpires(t *testing.T) {
	p := NewProjectile(common.V(0, 0), -1, 20, 3, 1)
	steps := 0
	for p.Advance(0.1, nil) {
		steps++
		if steps > 100 {
			t.Fatalf("projectile never expired")
		}
	}
	if math.Abs(p.Age-3) > 0.11 {
		t.Fatalf("expected expiry near 3s, got %f", p.Age)
	}
	if p.Position.X >= 0 {
		t.Fatalf("projectile should travel left, x=%f", p.Position.X)
	}

	world := common.Rect{X: -5, Y: -5, Width: 10, Height: 10}
	q := NewProjectile(common.V(0, 0), 1, 20, 3, 1)
	q.Advance(0.1, &world)
	if q.Advance(0.2, &world) {
		t.Fatalf("projectile outside the world should expire")
	}
}

func TestHostile(t *testing.T) {
	if !Hostile(CategoryPlayer, CategoryEnemy) || Hostile(CategoryPlayer, CategoryPlayer) {
		t.Fatalf("player attacks should only hit enemies")
	}
	if !Hostile(CategoryEnemy, CategoryPlayer) || Hostile(CategoryEnemy, CategoryEnemy) {
		t.Fatalf("enemy attacks should only hit the player")
	}
	if _, err := ParseCategory("wizard"); err == nil {
		t.Fatalf("expected parse error")
	}
}
