package component

import "github.com/milk9111/bunker/actor"

type Projectile struct {
	*actor.Projectile
	// Owner is the entity that fired it (ecs.Entity is uint64).
	Owner  uint64
	Radius float64
}

var ProjectileComponent = NewComponent[Projectile]()
