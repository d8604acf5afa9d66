package camera

import (
	"math"

	"github.com/milk9111/bunker/common"
)

type PathOptions struct {
	ForwardDuration  float64
	BackwardDuration float64
	ForwardEase      common.Ease
	BackwardEase     common.Ease
	Loop             bool
}

// Path is one waypoint traversal. Points are copied on construction and
// never change afterwards. Travel along each leg is uniform in arc length
// before easing.
type Path struct {
	points  []common.Vec2
	opts    PathOptions
	lengths []float64
	total   float64
	elapsed float64
	done    bool
}

func NewPath(points []common.Vec2, opts PathOptions) *Path {
	p := &Path{
		points: append([]common.Vec2(nil), points...),
		opts:   opts,
	}
	p.lengths = make([]float64, len(p.points))
	for i := 1; i < len(p.points); i++ {
		p.lengths[i] = p.lengths[i-1] + common.Distance(p.points[i-1], p.points[i])
	}
	if n := len(p.lengths); n > 0 {
		p.total = p.lengths[n-1]
	}
	return p
}

// Duration is the length of one pass: forward, plus backward when looping.
func (p *Path) Duration() float64 {
	d := math.Max(0, p.opts.ForwardDuration)
	if p.opts.Loop {
		d += math.Max(0, p.opts.BackwardDuration)
	}
	return d
}

func (p *Path) Elapsed() float64 { return p.elapsed }
func (p *Path) Done() bool       { return p.done }
func (p *Path) Len() int         { return len(p.points) }

// Advance moves along the path and returns the new position. A looping path
// never completes.
func (p *Path) Advance(dt float64) (common.Vec2, bool) {
	if len(p.points) == 0 {
		p.done = true
		return common.Vec2{}, true
	}
	if p.done {
		return p.Position(), true
	}

	p.elapsed += math.Max(0, dt)
	total := p.Duration()
	switch {
	case total <= 0:
		p.elapsed = 0
		if !p.opts.Loop {
			p.done = true
		}
	case p.opts.Loop:
		p.elapsed = math.Mod(p.elapsed, total)
	case p.elapsed >= total:
		p.elapsed = total
		p.done = true
	}
	return p.Position(), p.done
}

// Position samples the path at the current elapsed time.
func (p *Path) Position() common.Vec2 {
	if len(p.points) == 0 {
		return common.Vec2{}
	}
	if p.done && !p.opts.Loop {
		return p.points[len(p.points)-1]
	}

	fwd := math.Max(0, p.opts.ForwardDuration)
	if p.elapsed < fwd || !p.opts.Loop {
		t := 1.0
		if fwd > 0 {
			t = p.elapsed / fwd
		}
		return p.sample(p.opts.ForwardEase.Apply(t))
	}

	back := math.Max(0, p.opts.BackwardDuration)
	t := 1.0
	if back > 0 {
		t = (p.elapsed - fwd) / back
	}
	return p.sample(1 - p.opts.BackwardEase.Apply(t))
}

// sample returns the point a fraction u of the way along the polyline.
func (p *Path) sample(u float64) common.Vec2 {
	if len(p.points) == 1 || p.total <= 0 {
		return p.points[0]
	}
	d := common.Clamp(u, 0, 1) * p.total
	for i := 1; i < len(p.points); i++ {
		if d <= p.lengths[i] {
			seg := p.lengths[i] - p.lengths[i-1]
			if seg <= 0 {
				return p.points[i]
			}
			return common.LerpVec(p.points[i-1], p.points[i], (d-p.lengths[i-1])/seg)
		}
	}
	return p.points[len(p.points)-1]
}
