package component

import "github.com/milk9111/bunker/actor"

// Health wraps the actor model with the ECS-side death handling state.
type Health struct {
	*actor.Health
	// DeathDelay is how long a dead entity stays in the world.
	DeathDelay float64
	// Handled is set once the death has been processed.
	Handled bool
}

var HealthComponent = NewComponent[Health]()

// Invulnerable makes an entity immune to damage until Remaining reaches
// zero. A zero Remaining means indefinite.
type Invulnerable struct {
	Remaining float64
}

var InvulnerableComponent = NewComponent[Invulnerable]()

// HealthBar draws the player's health on the HUD.
type HealthBar struct {
	Width  float64
	Height float64
}

var HealthBarComponent = NewComponent[HealthBar]()
