package common

import (
	"fmt"
	"math"
	"strings"
)

// Ease maps normalized time in [0,1] to normalized progress.
type Ease int

const (
	EaseLinear Ease = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInSine
	EaseOutSine
	EaseInOutSine
)

var easeNames = map[string]Ease{
	"linear":       EaseLinear,
	"in_quad":      EaseInQuad,
	"out_quad":     EaseOutQuad,
	"in_out_quad":  EaseInOutQuad,
	"in_cubic":     EaseInCubic,
	"out_cubic":    EaseOutCubic,
	"in_out_cubic": EaseInOutCubic,
	"in_sine":      EaseInSine,
	"out_sine":     EaseOutSine,
	"in_out_sine":  EaseInOutSine,
}

// ParseEase resolves a snake_case ease name. Empty means linear.
func ParseEase(name string) (Ease, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return EaseLinear, nil
	}
	e, ok := easeNames[n]
	if !ok {
		return EaseLinear, fmt.Errorf("common: unknown ease %q", name)
	}
	return e, nil
}

func (e Ease) Apply(t float64) float64 {
	t = Clamp(t, 0, 1)
	switch e {
	case EaseInQuad:
		return t * t
	case EaseOutQuad:
		return t * (2 - t)
	case EaseInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case EaseInCubic:
		return t * t * t
	case EaseOutCubic:
		u := t - 1
		return u*u*u + 1
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := 2*t - 2
		return 0.5*u*u*u + 1
	case EaseInSine:
		return 1 - math.Cos(t*math.Pi/2)
	case EaseOutSine:
		return math.Sin(t * math.Pi / 2)
	case EaseInOutSine:
		return -(math.Cos(math.Pi*t) - 1) / 2
	default:
		return t
	}
}

// Tween interpolates a scalar from From to To over Duration seconds.
type Tween struct {
	From     float64
	To       float64
	Duration float64
	Ease     Ease
	elapsed  float64
	running  bool
}

// Start restarts the tween from from to to.
func (tw *Tween) Start(from, to, duration float64, ease Ease) {
	tw.From = from
	tw.To = to
	tw.Duration = duration
	tw.Ease = ease
	tw.elapsed = 0
	tw.running = true
}

// Advance steps the tween and returns the current value.
func (tw *Tween) Advance(dt float64) float64 {
	if !tw.running {
		return tw.Value()
	}
	tw.elapsed += dt
	if tw.Duration <= 0 || tw.elapsed >= tw.Duration {
		tw.elapsed = tw.Duration
		tw.running = false
	}
	return tw.Value()
}

func (tw *Tween) Value() float64 {
	if tw.Duration <= 0 {
		return tw.To
	}
	return Lerp(tw.From, tw.To, tw.Ease.Apply(tw.elapsed/tw.Duration))
}

func (tw *Tween) Running() bool {
	return tw.running
}
