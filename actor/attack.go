package actor

import "github.com/milk9111/bunker/common"

// Targets is the hit-detection boundary for an attack: it lists the ids of
// everything inside a circle and applies damage to one of them.
type Targets interface {
	InCircle(center common.Vec2, radius float64) []uint64
	Damage(id uint64, amount int) bool
}

// Attack is a cooldown-gated circular melee resolver.
type Attack struct {
	Cooldown float64
	Range    float64
	Damage   int

	remaining float64
}

// AttackResult lists the targets damaged by one swing.
type AttackResult struct {
	Hits []uint64
}

const cooldownEpsilon = 1e-9

func NewAttack(cooldown, rng float64, damage int) *Attack {
	return &Attack{Cooldown: cooldown, Range: rng, Damage: damage}
}

// Tick advances the cooldown timer.
func (a *Attack) Tick(dt float64) {
	if a == nil || a.remaining <= 0 {
		return
	}
	a.remaining -= dt
	if a.remaining < 0 {
		a.remaining = 0
	}
}

// Ready reports whether a new attack would be accepted.
func (a *Attack) Ready() bool {
	return a != nil && a.remaining <= cooldownEpsilon
}

// Remaining returns the cooldown left in seconds.
func (a *Attack) Remaining() float64 {
	if a == nil {
		return 0
	}
	return a.remaining
}

// Perform swings once if off cooldown. Every distinct target in range takes
// Damage exactly once. The bool is false when the swing was rejected.
func (a *Attack) Perform(origin common.Vec2, targets Targets) (AttackResult, bool) {
	if !a.Ready() {
		return AttackResult{}, false
	}
	a.remaining = a.Cooldown

	var res AttackResult
	if targets == nil || a.Range <= 0 || a.Damage <= 0 {
		return res, true
	}

	seen := make(map[uint64]struct{})
	for _, id := range targets.InCircle(origin, a.Range) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if targets.Damage(id, a.Damage) {
			res.Hits = append(res.Hits, id)
		}
	}
	return res, true
}
