// Package effects holds cosmetic state machines that only feed presentation.
package effects

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// EmergencyLight flashes a set of lights between red and white. Stop is
// observed on the next Update, which resets every light to white.
type EmergencyLight struct {
	FlashSpeed     float64
	Alternating    bool
	Red            color.RGBA
	White          color.RGBA
	RedIntensity   float64
	WhiteIntensity float64

	colors  []color.RGBA
	running bool
	stop    bool
	phase   float64
	red     bool
}

func NewEmergencyLight(lights int, flashSpeed float64, alternating bool) *EmergencyLight {
	if lights < 0 {
		lights = 0
	}
	e := &EmergencyLight{
		FlashSpeed:     flashSpeed,
		Alternating:    alternating,
		Red:            colornames.Red,
		White:          colornames.White,
		RedIntensity:   2,
		WhiteIntensity: 4,
		colors:         make([]color.RGBA, lights),
	}
	e.reset()
	return e
}

func (e *EmergencyLight) Start() {
	if e.running {
		return
	}
	e.running = true
	e.stop = false
	e.phase = 0
	e.red = true
}

// Stop asks the flashing to end on the next Update.
func (e *EmergencyLight) Stop() {
	if e.running {
		e.stop = true
	}
}

func (e *EmergencyLight) Running() bool {
	return e.running
}

// Colors is the current color of each light. The slice is reused.
func (e *EmergencyLight) Colors() []color.RGBA {
	return e.colors
}

// Emission is the glow color for emissive surfaces, scaled by 2^intensity
// and saturated.
func (e *EmergencyLight) Emission() color.RGBA {
	if !e.running {
		return e.White
	}
	if e.red {
		return scale(e.Red, math.Pow(2, e.RedIntensity))
	}
	return scale(e.White, math.Pow(2, e.WhiteIntensity))
}

func (e *EmergencyLight) Update(dt float64) {
	if e.stop {
		e.running = false
		e.stop = false
		e.reset()
		return
	}
	if !e.running {
		return
	}

	e.phase += dt * e.FlashSpeed
	for i := range e.colors {
		lit := e.red
		if e.Alternating && i%2 == 1 {
			lit = !lit
		}
		if lit {
			e.colors[i] = e.Red
		} else {
			e.colors[i] = e.White
		}
	}
	if e.phase >= 1 {
		e.phase = 0
		e.red = !e.red
	}
}

func (e *EmergencyLight) reset() {
	for i := range e.colors {
		e.colors[i] = e.White
	}
}

func scale(c color.RGBA, k float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*k))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
