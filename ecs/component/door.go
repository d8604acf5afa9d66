package component

import "github.com/milk9111/bunker/door"

// Door moves its entity along a Slider. Exactly one of Automatic and
// Password is set.
type Door struct {
	Automatic *door.Automatic
	Password  *door.Password
	// Shake is the remaining wrong-password panel shake in seconds.
	Shake float64
}

// Slider returns whichever slider drives the door.
func (d *Door) Slider() *door.Slider {
	switch {
	case d.Automatic != nil:
		return d.Automatic.Slider
	case d.Password != nil:
		return d.Password.Slider
	}
	return nil
}

var DoorComponent = NewComponent[Door]()
