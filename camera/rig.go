// Package camera implements the camera mode state machine: a fixed anchor,
// a smoothed player follow with look-ahead, and timed waypoint traversals,
// all clamped to a boundary rectangle.
package camera

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/milk9111/bunker/common"
)

type Mode int

const (
	ModeFixed Mode = iota
	ModeFollowPlayer
	ModeWaypoints
)

func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeFollowPlayer:
		return "follow_player"
	case ModeWaypoints:
		return "waypoints"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "fixed":
		return ModeFixed, nil
	case "", "follow_player", "follow":
		return ModeFollowPlayer, nil
	case "waypoints":
		return ModeWaypoints, nil
	}
	return ModeFollowPlayer, fmt.Errorf("camera: unknown mode %q", s)
}

// Target is what the camera follows, usually the player body.
type Target struct {
	Position common.Vec2
	Velocity common.Vec2
}

// lookAheadMinSpeedSq is the squared speed below which the target counts as
// standing still for look-ahead purposes.
const lookAheadMinSpeedSq = 0.1

type Rig struct {
	Mode     Mode
	Position common.Vec2
	Offset   common.Vec2

	SmoothTime float64

	UseBounds bool
	Bounds    Bounds
	// Area, when set, recomputes Bounds every update from the visible
	// half extents scaled by Zoom.
	Area        *common.Rect
	HalfExtents common.Vec2

	LookAhead           bool
	LookAheadDistance   float64
	LookAheadSmoothTime float64

	// Anchor is the point Fixed mode holds on.
	Anchor *common.Vec2

	Waypoints            []common.Vec2
	ForwardDuration      float64
	BackwardDuration     float64
	ForwardEase          common.Ease
	BackwardEase         common.Ease
	FollowAfterWaypoints bool
	LoopWaypoints        bool

	Zoom float64

	velocity          common.Vec2
	lookAhead         common.Vec2
	lookAheadVelocity common.Vec2
	path              *Path

	shakeLeft     float64
	shakeDuration float64
	shakeStrength float64
	shakeOffset   common.Vec2
	zoom          common.Tween
	rng           *rand.Rand
}

// NewRig returns a follow camera with the default tuning.
func NewRig() *Rig {
	return &Rig{
		Mode:                 ModeFollowPlayer,
		SmoothTime:           0.25,
		UseBounds:            true,
		Bounds:               Bounds{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5},
		LookAhead:            true,
		LookAheadDistance:    2,
		LookAheadSmoothTime:  0.1,
		ForwardDuration:      3,
		BackwardDuration:     5,
		FollowAfterWaypoints: true,
		Zoom:                 1,
		rng:                  rand.New(rand.NewPCG(0x6275, 0x6e6b)),
	}
}

// SetMode switches modes. Leaving Waypoints cancels a running traversal and
// entering it starts a new one.
func (r *Rig) SetMode(m Mode) {
	if r.Mode == ModeWaypoints && m != ModeWaypoints {
		r.path = nil
	}
	r.Mode = m
	if m == ModeWaypoints {
		r.startWaypoints()
	}
}

// Traversing reports whether a waypoint traversal is in flight.
func (r *Rig) Traversing() bool {
	return r.path != nil
}

// Path returns the running traversal, or nil.
func (r *Rig) Path() *Path {
	return r.path
}

func (r *Rig) RestartWaypoints() {
	if r.Mode == ModeWaypoints {
		r.path = nil
		r.startWaypoints()
		return
	}
	r.SetMode(ModeWaypoints)
}

// SetWaypointBehavior changes the completion policy. A running traversal is
// restarted so the new policy applies.
func (r *Rig) SetWaypointBehavior(follow, loop bool) {
	r.FollowAfterWaypoints = follow
	r.LoopWaypoints = loop
	if r.Mode == ModeWaypoints && r.path != nil {
		r.RestartWaypoints()
	}
}

func (r *Rig) SetBoundaries(use bool, minX, maxX, minY, maxY float64) {
	r.UseBounds = use
	r.Area = nil
	r.Bounds = Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}.Normalized()
}

func (r *Rig) SetLookAhead(use bool, distance float64) {
	r.LookAhead = use
	r.LookAheadDistance = distance
}

// Shake jitters the view for duration seconds. The offset decays linearly and
// is applied on top of the clamped position.
func (r *Rig) Shake(duration, strength float64) {
	if duration <= 0 || strength <= 0 {
		return
	}
	r.shakeLeft = duration
	r.shakeDuration = duration
	r.shakeStrength = strength
}

func (r *Rig) Shaking() bool {
	return r.shakeLeft > 0
}

func (r *Rig) ZoomTo(zoom, duration float64) {
	if zoom <= 0 {
		return
	}
	r.zoom.Start(r.Zoom, zoom, duration, common.EaseOutQuad)
	if duration <= 0 {
		r.Zoom = zoom
	}
}

// View is the position to render from, including shake.
func (r *Rig) View() common.Vec2 {
	return r.Position.Add(r.shakeOffset)
}

// Update advances the camera one tick. target may be nil when there is
// nothing to follow.
func (r *Rig) Update(dt float64, target *Target) {
	r.updateZoom(dt)
	r.refreshBounds()

	switch r.Mode {
	case ModeFixed:
		r.updateFixed()
	case ModeWaypoints:
		r.updateWaypoints(dt)
	default:
		r.updateFollow(dt, target)
	}

	r.updateShake(dt)
}

func (r *Rig) clamp(p common.Vec2) common.Vec2 {
	if !r.UseBounds {
		return p
	}
	return r.Bounds.Clamp(p)
}

func (r *Rig) refreshBounds() {
	if r.Area == nil || !r.UseBounds {
		return
	}
	z := r.Zoom
	if z <= 0 {
		z = 1
	}
	r.Bounds = FromArea(*r.Area, r.HalfExtents.X/z, r.HalfExtents.Y/z)
}

func (r *Rig) updateFixed() {
	if r.Anchor == nil {
		return
	}
	r.Position = r.clamp(r.Anchor.Add(r.Offset))
}

func (r *Rig) updateFollow(dt float64, target *Target) {
	if target == nil {
		return
	}

	desired := target.Position.Add(r.Offset)
	if r.LookAhead {
		var goal common.Vec2
		if target.Velocity.LenSq() > lookAheadMinSpeedSq {
			goal = target.Velocity.Normalized().Scale(r.LookAheadDistance)
		}
		r.lookAhead = common.SmoothDampVec(r.lookAhead, goal, &r.lookAheadVelocity, r.LookAheadSmoothTime, math.Inf(1), dt)
		desired = desired.Add(r.lookAhead)
	}

	next := common.SmoothDampVec(r.Position, desired, &r.velocity, r.SmoothTime, math.Inf(1), dt)
	r.Position = r.clamp(next)
}

func (r *Rig) startWaypoints() {
	if len(r.Waypoints) == 0 {
		return
	}
	points := make([]common.Vec2, len(r.Waypoints))
	for i, wp := range r.Waypoints {
		points[i] = r.clamp(wp.Add(r.Offset))
	}
	r.Position = points[0]
	r.path = NewPath(points, PathOptions{
		ForwardDuration:  r.ForwardDuration,
		BackwardDuration: r.BackwardDuration,
		ForwardEase:      r.ForwardEase,
		BackwardEase:     r.BackwardEase,
		Loop:             r.LoopWaypoints,
	})
}

func (r *Rig) updateWaypoints(dt float64) {
	if r.path == nil {
		r.startWaypoints()
		if r.path == nil {
			return
		}
	}

	pos, done := r.path.Advance(dt)
	r.Position = pos
	if !done {
		return
	}

	r.path = nil
	if r.FollowAfterWaypoints {
		r.velocity = common.Vec2{}
		r.SetMode(ModeFollowPlayer)
		return
	}
	// hold the final point: Fixed mode on an anchor that maps back onto it
	hold := r.Waypoints[len(r.Waypoints)-1]
	r.Anchor = &hold
	r.Mode = ModeFixed
}

func (r *Rig) updateZoom(dt float64) {
	if !r.zoom.Running() {
		return
	}
	r.Zoom = r.zoom.Advance(dt)
}

func (r *Rig) updateShake(dt float64) {
	if r.shakeLeft <= 0 {
		r.shakeOffset = common.Vec2{}
		return
	}
	r.shakeLeft -= dt
	if r.shakeLeft <= 0 {
		r.shakeLeft = 0
		r.shakeOffset = common.Vec2{}
		return
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(0x6275, 0x6e6b))
	}
	k := r.shakeStrength * r.shakeLeft / r.shakeDuration
	angle := r.rng.Float64() * 2 * math.Pi
	r.shakeOffset = common.V(math.Cos(angle)*k, math.Sin(angle)*k)
}
