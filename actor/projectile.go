package actor

import "github.com/milk9111/bunker/common"

// Projectile travels at constant velocity until its lifetime elapses or it
// leaves the world.
type Projectile struct {
	Position common.Vec2
	Velocity common.Vec2
	Lifetime float64
	Age      float64
	Damage   int
	Expired  bool
}

// NewProjectile fires along facing (+1/-1) at speed.
func NewProjectile(origin common.Vec2, facing int, speed, lifetime float64, damage int) *Projectile {
	if facing == 0 {
		facing = 1
	}
	return &Projectile{
		Position: origin,
		Velocity: common.Vec2{X: float64(facing) * speed},
		Lifetime: lifetime,
		Damage:   damage,
	}
}

// Advance moves the projectile and reports whether it is still live. A nil
// world means the projectile is only bounded by its lifetime.
func (p *Projectile) Advance(dt float64, world *common.Rect) bool {
	if p == nil || p.Expired {
		return false
	}
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Age += dt
	if p.Lifetime > 0 && p.Age >= p.Lifetime {
		p.Expired = true
	}
	if world != nil && !world.Contains(p.Position) {
		p.Expired = true
	}
	return !p.Expired
}
