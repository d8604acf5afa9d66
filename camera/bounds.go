package camera

import (
	"math"

	"github.com/milk9111/bunker/common"
)

// Bounds is the range the camera center may occupy. FromArea and Normalized
// never return an inverted axis.
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// FromArea shrinks area by the visible half extents. An axis on which the
// view is larger than the area collapses to the area's center.
func FromArea(area common.Rect, halfW, halfH float64) Bounds {
	b := Bounds{
		MinX: area.X + halfW,
		MaxX: area.X + area.Width - halfW,
		MinY: area.Y + halfH,
		MaxY: area.Y + area.Height - halfH,
	}
	if b.MinX > b.MaxX {
		c := area.X + area.Width*0.5
		b.MinX, b.MaxX = c, c
	}
	if b.MinY > b.MaxY {
		c := area.Y + area.Height*0.5
		b.MinY, b.MaxY = c, c
	}
	return b
}

// Normalized collapses an inverted axis to its midpoint.
func (b Bounds) Normalized() Bounds {
	if b.MinX > b.MaxX {
		c := (b.MinX + b.MaxX) * 0.5
		b.MinX, b.MaxX = c, c
	}
	if b.MinY > b.MaxY {
		c := (b.MinY + b.MaxY) * 0.5
		b.MinY, b.MaxY = c, c
	}
	return b
}

func (b Bounds) Clamp(p common.Vec2) common.Vec2 {
	return common.Vec2{
		X: common.Clamp(p.X, b.MinX, b.MaxX),
		Y: common.Clamp(p.Y, b.MinY, b.MaxY),
	}
}

func (b Bounds) Contains(p common.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// OrthographicExtents returns the visible half extents of an orthographic
// view whose half height is size.
func OrthographicExtents(size, aspect float64) (halfW, halfH float64) {
	halfH = size
	halfW = size * aspect
	return halfW, halfH
}

// PerspectiveExtents returns the visible half extents of a perspective view
// with vertical field of view fovDeg looking at a plane distance away.
func PerspectiveExtents(fovDeg, distance, aspect float64) (halfW, halfH float64) {
	halfH = math.Abs(distance) * math.Tan(fovDeg*0.5*math.Pi/180)
	halfW = halfH * aspect
	return halfW, halfH
}
