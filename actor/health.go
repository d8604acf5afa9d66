package actor

// DamageEvent describes one applied hit.
type DamageEvent struct {
	Amount    int
	Remaining int
	Killed    bool
}

// Health tracks hit points for any entity that can take damage. Once Dead is
// set it never clears.
type Health struct {
	Max     int
	Current int
	Dead    bool

	OnDamage func(h *Health, evt DamageEvent)
	OnDeath  func(h *Health, evt DamageEvent)
}

// NewHealth creates a Health with Current initialized to max.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// Alive reports whether the entity is alive.
func (h *Health) Alive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount, clamped at zero. Non-positive amounts and
// damage to a dead entity are ignored. The death callback runs exactly once.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	evt := DamageEvent{Amount: amount, Remaining: h.Current, Killed: h.Current == 0}
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current == 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
	}
	return true
}

// Kill drops health to zero regardless of remaining hit points.
func (h *Health) Kill() bool {
	if h == nil || h.Dead {
		return false
	}
	return h.ApplyDamage(h.Current)
}

// Fraction returns Current/Max in [0,1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
