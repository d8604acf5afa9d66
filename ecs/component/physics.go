package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/common"
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Velocity is the intended velocity: controllers write it before the physics
// step and the physics system writes the solved value back afterwards.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Static   bool
	// Kinematic bodies follow their Transform and push dynamic bodies.
	Kinematic bool
	Category  actor.Category

	Velocity common.Vec2
	Grounded bool
	// Disabled removes the shape from the space, e.g. after death.
	Disabled bool
}

// Bounds returns the collider rectangle centred on t.
func (b *PhysicsBody) Bounds(t *Transform) common.Rect {
	return common.Centered(t.Position(), b.Width, b.Height)
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
