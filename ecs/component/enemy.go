package component

import (
	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/ai"
)

// Enemy drives a hostile actor from an ai.Behavior. The variant is fixed at
// construction.
type Enemy struct {
	Behavior   ai.Behavior
	Locomotion *actor.Locomotion
	// Attack swings when a chaser is in attack range. Nil means contact only.
	Attack        *actor.Attack
	ContactDamage int
	// ContactCooldown is the invulnerability granted to the player after a
	// contact hit.
	ContactCooldown float64

	Running bool
}

var EnemyComponent = NewComponent[Enemy]()
