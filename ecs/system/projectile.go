package system

import (
	"image/color"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"golang.org/x/image/colornames"
)

var projectileColor = color.RGBA(colornames.Gold)

// ProjectileSystem moves projectiles, damages the first enemy they touch and
// removes them when they expire, hit ground or leave the level.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	var bounds *common.Rect
	if _, lb, ok := ecs.First(w, component.LevelBoundsComponent); ok {
		r := lb.Rect
		bounds = &r
	}

	ecs.ForEach(w, component.ProjectileComponent, func(e ecs.Entity, p *component.Projectile) {
		live := p.Advance(dt, bounds)
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			t.SetPosition(p.Position)
		}
		if !live {
			ecs.DestroyEntity(w, e)
			return
		}
		if hit, ok := s.firstHit(w, p); ok {
			if CategoryOf(w, hit) != actor.CategoryGround {
				Damage(w, hit, p.Damage)
			}
			ecs.DestroyEntity(w, e)
		}
	})
}

// firstHit finds an enemy or ground collider within the projectile radius.
func (s *ProjectileSystem) firstHit(w *ecs.World, p *component.Projectile) (ecs.Entity, bool) {
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if uint64(e) == p.Owner {
			continue
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if body.Disabled {
			continue
		}
		switch {
		case body.Category == actor.CategoryGround:
		case actor.Hostile(actor.CategoryProjectile, body.Category) && alive(w, e):
		default:
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent)
		if body.Bounds(t).Distance(p.Position) <= p.Radius {
			return e, true
		}
	}
	return 0, false
}
