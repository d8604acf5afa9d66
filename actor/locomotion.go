package actor

import "github.com/milk9111/bunker/common"

// Locomotion turns a horizontal input axis and a jump request into a
// velocity command. Facing is +1 (right) or -1 (left).
type Locomotion struct {
	Speed     float64
	JumpSpeed float64
	Facing    int

	running bool
}

// Drive is the per-tick output of Locomotion.
type Drive struct {
	VX             float64
	VY             float64
	Flipped        bool
	Jumped         bool
	Running        bool
	StartedRunning bool
}

func NewLocomotion(speed, jumpSpeed float64) *Locomotion {
	return &Locomotion{Speed: speed, JumpSpeed: jumpSpeed, Facing: 1}
}

// Step computes the velocity for this tick. vy is the current vertical
// velocity, which passes through unless a grounded jump replaces it. Y grows
// downward so a jump sets a negative vertical velocity.
func (l *Locomotion) Step(axis float64, jumpPressed, grounded bool, vy float64) Drive {
	if l.Facing == 0 {
		l.Facing = 1
	}
	axis = common.Clamp(axis, -1, 1)
	d := Drive{VX: axis * l.Speed, VY: vy}

	if axis != 0 {
		dir := int(common.Sign(axis))
		if dir != l.Facing {
			l.Facing = dir
			d.Flipped = true
		}
		if grounded {
			d.Running = true
			if !l.running {
				d.StartedRunning = true
			}
		}
	}
	l.running = d.Running

	if jumpPressed && grounded {
		d.VY = -l.JumpSpeed
		d.Jumped = true
	}
	return d
}

// Face points the actor at dir (sign only) and reports whether it flipped.
func (l *Locomotion) Face(dir float64) bool {
	s := int(common.Sign(dir))
	if s == 0 || s == l.Facing {
		return false
	}
	l.Facing = s
	return true
}
