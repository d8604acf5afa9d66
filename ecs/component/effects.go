package component

import "github.com/milk9111/bunker/effects"

type EmergencyLights struct {
	Light       *effects.EmergencyLight
	StartOnLoad bool
	Started     bool
}

var EmergencyLightsComponent = NewComponent[EmergencyLights]()

type IdleAnimation struct {
	Cycler  *effects.IdleCycler
	Started bool
}

var IdleAnimationComponent = NewComponent[IdleAnimation]()

// TTL destroys its entity after Remaining seconds.
type TTL struct {
	Remaining float64
}

var TTLComponent = NewComponent[TTL]()
