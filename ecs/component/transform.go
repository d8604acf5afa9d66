package component

import "github.com/milk9111/bunker/common"

// Transform is the centre of an entity in world units. Y grows downward.
// A negative ScaleX means the entity faces left.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

func (t *Transform) Position() common.Vec2 {
	return common.V(t.X, t.Y)
}

func (t *Transform) SetPosition(p common.Vec2) {
	t.X, t.Y = p.X, p.Y
}

// Facing returns +1 or -1 from the sign of ScaleX.
func (t *Transform) Facing() int {
	if t.ScaleX < 0 {
		return -1
	}
	return 1
}

// Face flips ScaleX so its sign matches dir. Magnitude is preserved.
func (t *Transform) Face(dir int) {
	if dir == 0 {
		return
	}
	mag := t.ScaleX
	if mag < 0 {
		mag = -mag
	}
	if mag == 0 {
		mag = 1
	}
	t.ScaleX = mag * float64(dir)
}

var TransformComponent = NewComponent[Transform]()
