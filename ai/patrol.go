package ai

import "github.com/milk9111/bunker/common"

// DefaultArriveDistance is how close a patroller must get to its target
// point before it stops to wait.
const DefaultArriveDistance = 0.01

// Patrol walks between two points, pausing for Wait seconds at each end. It
// heads straight for the target point; with IgnoreY it moves and arrives on
// X only.
type Patrol struct {
	A              *common.Vec2
	B              *common.Vec2
	Speed          float64
	Wait           float64
	ArriveDistance float64
	// IgnoreY measures arrival on X only, for walkers whose height is set
	// by the ground rather than by the points.
	IgnoreY bool

	MovingToB bool
	Waiting   bool

	waitLeft float64
}

// NewPatrol builds a patroller heading for b first. A nil point leaves the
// patrol inactive.
func NewPatrol(a, b *common.Vec2, speed, wait float64) *Patrol {
	return &Patrol{
		A:              a,
		B:              b,
		Speed:          speed,
		Wait:           wait,
		ArriveDistance: DefaultArriveDistance,
		MovingToB:      true,
	}
}

func (p *Patrol) Kind() Kind { return KindPatrol }

// Active reports whether both patrol points are present.
func (p *Patrol) Active() bool {
	return p != nil && p.A != nil && p.B != nil
}

// Target returns the point the patroller is heading for.
func (p *Patrol) Target() (common.Vec2, bool) {
	if !p.Active() {
		return common.Vec2{}, false
	}
	if p.MovingToB {
		return *p.B, true
	}
	return *p.A, true
}

func (p *Patrol) Tick(dt float64, self common.Vec2, _ *common.Vec2) Command {
	if !p.Active() || dt <= 0 {
		return Command{}
	}

	if p.Waiting {
		p.waitLeft -= dt
		if p.waitLeft > 1e-9 {
			return Command{}
		}
		p.Waiting = false
		p.MovingToB = !p.MovingToB
	}

	target, _ := p.Target()
	if p.IgnoreY {
		self.Y = target.Y
	}
	arrive := p.ArriveDistance
	if arrive <= 0 {
		arrive = DefaultArriveDistance
	}
	if common.Distance(self, target) < arrive {
		p.Waiting = true
		p.waitLeft = p.Wait
		return Command{}
	}

	step := target.Sub(self)
	if p.IgnoreY {
		step.Y = 0
	}
	dist := step.Len()
	speed := p.Speed
	if dist/dt < speed {
		// land on the point instead of stepping past it
		speed = dist / dt
	}
	v := step.Normalized().Scale(speed)
	return Command{VX: v.X, VY: v.Y, Facing: int(common.Sign(step.X)), Running: true}
}
