package common

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Min() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.Width, Y: r.Y + r.Height}
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Centered builds a rect of the given size around center.
func Centered(center Vec2, w, h float64) Rect {
	return Rect{X: center.X - w/2, Y: center.Y - h/2, Width: w, Height: h}
}

// Distance is how far p lies outside r, zero when inside.
func (r Rect) Distance(p Vec2) float64 {
	dx := max(r.X-p.X, 0, p.X-(r.X+r.Width))
	dy := max(r.Y-p.Y, 0, p.Y-(r.Y+r.Height))
	return Vec2{X: dx, Y: dy}.Len()
}
