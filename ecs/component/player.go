package component

import "github.com/milk9111/bunker/actor"

type Player struct {
	Locomotion *actor.Locomotion
	Melee      *actor.Attack
	Shoot      *actor.Attack

	ProjectileSpeed    float64
	ProjectileLifetime float64
	ProjectileDamage   int
	// WindUp delays the projectile spawn after the shoot input.
	WindUp float64

	KnockbackX float64
	KnockbackY float64
	// RestartDelay is how long after death the scene restarts.
	RestartDelay float64
}

var PlayerComponent = NewComponent[Player]()
