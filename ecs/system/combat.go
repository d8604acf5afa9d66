package system

import (
	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/ai"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// CombatSystem resolves melee swings, shooting and enemy contact damage.
// Melee targets come from a chipmunk point query when a PhysicsSystem is
// supplied and from a collider scan otherwise.
type CombatSystem struct {
	physics *PhysicsSystem
}

func NewCombatSystem(physics *PhysicsSystem) *CombatSystem {
	return &CombatSystem{physics: physics}
}

// targets adapts the world to actor.Targets for one attacker.
type targets struct {
	w        *ecs.World
	physics  *PhysicsSystem
	attacker actor.Category
	self     ecs.Entity
}

func (t targets) InCircle(center common.Vec2, radius float64) []uint64 {
	var candidates []ecs.Entity
	if t.physics != nil {
		candidates = t.physics.QueryCircle(center, radius)
	} else {
		for _, e := range t.w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
			body, _ := ecs.Get(t.w, e, component.PhysicsBodyComponent)
			tr, _ := ecs.Get(t.w, e, component.TransformComponent)
			if body.Disabled {
				continue
			}
			if body.Bounds(tr).Distance(center) <= radius {
				candidates = append(candidates, e)
			}
		}
	}

	out := make([]uint64, 0, len(candidates))
	for _, e := range candidates {
		if e == t.self || !alive(t.w, e) {
			continue
		}
		if !actor.Hostile(t.attacker, CategoryOf(t.w, e)) {
			continue
		}
		out = append(out, uint64(e))
	}
	return out
}

func (t targets) Damage(id uint64, amount int) bool {
	return Damage(t.w, ecs.Entity(id), amount)
}

func (s *CombatSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	s.updatePlayers(w, dt)
	s.updateEnemies(w, dt)
	s.contactDamage(w)
}

func (s *CombatSystem) updatePlayers(w *ecs.World, dt float64) {
	for _, e := range w.Query(component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind()) {
		player, _ := ecs.Get(w, e, component.PlayerComponent)
		input, _ := ecs.Get(w, e, component.InputComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		player.Melee.Tick(dt)
		player.Shoot.Tick(dt)
		if !alive(w, e) {
			continue
		}

		if input.AttackPressed && player.Melee.Ready() {
			origin := meleeOrigin(transform, player.Melee)
			player.Melee.Perform(origin, targets{w: w, physics: s.physics, attacker: actor.CategoryPlayer, self: e})
			playAnimation(w, e, "attack")
			w.Emit(ecs.EventAudio, ecs.AudioEvent{Entity: e, Cue: "attack"})
		}

		if input.ShootPressed && player.Shoot.Ready() {
			// the swing only starts the cooldown; the shot spawns after the wind-up
			player.Shoot.Perform(transform.Position(), nil)
			playAnimation(w, e, "attack")
			w.After(e, "shoot", player.WindUp, func() {
				shooter, ok := ecs.Get(w, e, component.TransformComponent)
				if !ok || !alive(w, e) {
					return
				}
				SpawnProjectile(w, e, shooter, player)
			})
		}
	}
}

func (s *CombatSystem) updateEnemies(w *ecs.World, dt float64) {
	for _, e := range w.Query(component.EnemyComponent.Kind(), component.TransformComponent.Kind()) {
		enemy, _ := ecs.Get(w, e, component.EnemyComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		if enemy.Attack == nil {
			continue
		}
		enemy.Attack.Tick(dt)
		if !alive(w, e) {
			continue
		}
		chaser, ok := enemy.Behavior.(*ai.Chaser)
		if !ok || !chaser.InAttackRange || !enemy.Attack.Ready() {
			continue
		}
		origin := meleeOrigin(transform, enemy.Attack)
		enemy.Attack.Perform(origin, targets{w: w, physics: s.physics, attacker: actor.CategoryEnemy, self: e})
		playAnimation(w, e, "attack")
		w.Emit(ecs.EventAudio, ecs.AudioEvent{Entity: e, Cue: "attack"})
	}
}

// contactDamage hurts a player touching a live enemy, then grants a short
// invulnerability so one contact is one hit.
func (s *CombatSystem) contactDamage(w *ecs.World) {
	playerEnt, playerT, ok := PlayerPosition(w)
	if !ok {
		return
	}
	playerBody, ok := ecs.Get(w, playerEnt, component.PhysicsBodyComponent)
	if !ok || playerBody.Disabled {
		return
	}
	// inflate by a unit so resting contact still counts as touching
	pb := playerBody.Bounds(playerT)
	pb = common.Rect{X: pb.X - 1, Y: pb.Y - 1, Width: pb.Width + 2, Height: pb.Height + 2}

	for _, e := range w.Query(component.EnemyComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		enemy, _ := ecs.Get(w, e, component.EnemyComponent)
		if enemy.ContactDamage <= 0 || !alive(w, e) {
			continue
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		if !body.Bounds(t).Intersects(pb) {
			continue
		}
		if Damage(w, playerEnt, enemy.ContactDamage) && enemy.ContactCooldown > 0 {
			_ = ecs.Add(w, playerEnt, component.InvulnerableComponent, &component.Invulnerable{Remaining: enemy.ContactCooldown})
		}
		return
	}
}

func meleeOrigin(t *component.Transform, a *actor.Attack) common.Vec2 {
	return t.Position().Add(common.V(float64(t.Facing())*a.Range*0.5, 0))
}

// SpawnProjectile fires a projectile from shooter along its facing.
func SpawnProjectile(w *ecs.World, owner ecs.Entity, shooter *component.Transform, player *component.Player) ecs.Entity {
	facing := shooter.Facing()
	p := actor.NewProjectile(shooter.Position(), facing, player.ProjectileSpeed, player.ProjectileLifetime, player.ProjectileDamage)

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: p.Position.X, Y: p.Position.Y, ScaleX: float64(facing), ScaleY: 1})
	_ = ecs.Add(w, e, component.ProjectileComponent, &component.Projectile{Projectile: p, Owner: uint64(owner), Radius: 3})
	_ = ecs.Add(w, e, component.AppearanceComponent, &component.Appearance{Color: projectileColor, Glyph: '-', Width: 6, Height: 3, Layer: 2})
	w.Emit(ecs.EventAudio, ecs.AudioEvent{Entity: owner, Cue: "shoot"})
	return e
}
