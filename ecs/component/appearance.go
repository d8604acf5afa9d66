package component

import "image/color"

// Appearance is how the renderers draw an entity: a filled rectangle in the
// window, a glyph in the terminal.
type Appearance struct {
	Color  color.RGBA
	Glyph  rune
	Width  float64
	Height float64
	Layer  int
	Label  string
	Hidden bool
}

var AppearanceComponent = NewComponent[Appearance]()

// Animation holds the current animation state name and boolean parameters.
type Animation struct {
	Current string
	Params  map[string]bool
	// Time is seconds spent in Current.
	Time float64
}

func (a *Animation) Play(name string) {
	if a.Current == name {
		return
	}
	a.Current = name
	a.Time = 0
}

func (a *Animation) Set(param string, v bool) {
	if a.Params == nil {
		a.Params = map[string]bool{}
	}
	a.Params[param] = v
}

var AnimationComponent = NewComponent[Animation]()
