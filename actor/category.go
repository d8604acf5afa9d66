package actor

import "fmt"

// Category classifies what an actor or collider is for collision and
// trigger filtering.
type Category int

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryEnemy
	CategoryProjectile
	CategoryGround
	CategoryDeathZone
	CategoryAssistant
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryProjectile:
		return "projectile"
	case CategoryGround:
		return "ground"
	case CategoryDeathZone:
		return "death_zone"
	case CategoryAssistant:
		return "assistant"
	default:
		return "none"
	}
}

// ParseCategory maps a prefab/level label to a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "", "none":
		return CategoryNone, nil
	case "player":
		return CategoryPlayer, nil
	case "enemy":
		return CategoryEnemy, nil
	case "projectile":
		return CategoryProjectile, nil
	case "ground":
		return CategoryGround, nil
	case "death_zone":
		return CategoryDeathZone, nil
	case "assistant":
		return CategoryAssistant, nil
	}
	return CategoryNone, fmt.Errorf("actor: unknown category %q", s)
}

// Hostile reports whether an attack from attacker may damage target.
func Hostile(attacker, target Category) bool {
	switch attacker {
	case CategoryPlayer, CategoryProjectile:
		return target == CategoryEnemy
	case CategoryEnemy:
		return target == CategoryPlayer
	case CategoryDeathZone:
		return target == CategoryPlayer || target == CategoryEnemy
	default:
		return false
	}
}
