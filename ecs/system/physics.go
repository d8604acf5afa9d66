package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeGround
	collisionTypeSolid
)

// DefaultGravity is in world units per second squared, pointing down.
const DefaultGravity = 900.0

// PhysicsSystem owns the chipmunk space. Bodies are created lazily for every
// entity with a PhysicsBody and a Transform and removed when the entity dies.
type PhysicsSystem struct {
	space         *cp.Space
	gravity       float64
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	owners       map[*cp.Shape]ecs.Entity
	groundShapes map[*cp.Shape]ecs.Entity
	grounded     map[ecs.Entity]bool
}

type bodyInfo struct {
	body        *cp.Body
	mainShape   *cp.Shape
	groundShape *cp.Shape
	shapes      []*cp.Shape
	static      bool
	kinematic   bool
	enabled     bool
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	ps := &PhysicsSystem{gravity: gravity}
	ps.reset()
	return ps
}

func (ps *PhysicsSystem) reset() {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	ps.space = space
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.owners = make(map[*cp.Shape]ecs.Entity)
	ps.groundShapes = make(map[*cp.Shape]ecs.Entity)
	ps.grounded = make(map[ecs.Entity]bool)
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops every body. The host calls it when a scene is reloaded into a
// fresh world.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.reset()
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.pushState(w)

	for e := range ps.grounded {
		delete(ps.grounded, e)
	}
	if dt > 0 {
		ps.space.Step(dt)
	}

	ps.pullState(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypeGround, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		e, okA := sys.groundShapes[shapeA]
		if !okA {
			var okB bool
			e, okB = sys.groundShapes[shapeB]
			if !okB {
				return true
			}
		}

		n := arb.Normal()
		if !okA {
			n = n.Neg()
		}
		// the sensor sits under the body, so ground below has a downward normal
		if n.Y <= 0.5 {
			return true
		}
		sys.grounded[e] = true
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		if info := ps.entities[e]; info != nil {
			ps.setEnabled(info, !bodyComp.Disabled)
			continue
		}

		info := ps.createBodyInfo(transform, bodyComp)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		ps.owners[info.mainShape] = e
		if info.groundShape != nil {
			ps.groundShapes[info.groundShape] = e
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.mainShape
		ps.setEnabled(info, !bodyComp.Disabled)
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 16
		height = 16
	}

	info := &bodyInfo{static: bodyComp.Static, kinematic: bodyComp.Kinematic}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionTypeSolid)

		info.body = ps.space.StaticBody
		info.mainShape = shape
		info.shapes = []*cp.Shape{shape}
		return info
	}

	var body *cp.Body
	if bodyComp.Kinematic {
		body = cp.NewKinematicBody()
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// infinite moment keeps actors upright
		body = cp.NewBody(mass, math.Inf(1))
	}
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	if bodyComp.Kinematic {
		shape.SetCollisionType(collisionTypeSolid)
	} else {
		shape.SetCollisionType(collisionTypeActor)
	}

	info.body = body
	info.mainShape = shape
	info.shapes = []*cp.Shape{shape}

	if !bodyComp.Kinematic {
		ground := createGroundSensor(width, height, body)
		info.groundShape = ground
		info.shapes = append(info.shapes, ground)
	}
	return info
}

func createGroundSensor(width, height float64, body *cp.Body) *cp.Shape {
	groundBB := cp.BB{
		L: -width * 0.45,
		B: height / 2.0,
		R: width * 0.45,
		T: height/2.0 + 2,
	}
	groundShape := cp.NewBox2(body, groundBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypeGround)
	return groundShape
}

func (ps *PhysicsSystem) setEnabled(info *bodyInfo, enabled bool) {
	if info.enabled == enabled {
		return
	}
	info.enabled = enabled
	if enabled {
		if !info.static {
			ps.space.AddBody(info.body)
		}
		for _, shape := range info.shapes {
			ps.space.AddShape(shape)
		}
		return
	}
	for _, shape := range info.shapes {
		ps.space.RemoveShape(shape)
	}
	if !info.static {
		ps.space.RemoveBody(info.body)
	}
}

// pushState hands the intended velocities and kinematic poses to chipmunk.
func (ps *PhysicsSystem) pushState(w *ecs.World) {
	for e, info := range ps.entities {
		if !info.enabled || info.static {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}
		if info.kinematic {
			if transform, ok := ecs.Get(w, e, component.TransformComponent); ok {
				info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
			}
			info.body.SetVelocity(0, 0)
			continue
		}
		info.body.SetVelocity(bodyComp.Velocity.X, bodyComp.Velocity.Y)
	}
}

func (ps *PhysicsSystem) pullState(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.kinematic {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}
		if !info.enabled {
			bodyComp.Grounded = false
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := info.body.Position()
		vel := info.body.Velocity()
		transform.X, transform.Y = pos.X, pos.Y
		bodyComp.Velocity = common.V(vel.X, vel.Y)
		bodyComp.Grounded = ps.grounded[e]
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		ps.setEnabled(info, false)
		for _, shape := range info.shapes {
			delete(ps.owners, shape)
			delete(ps.groundShapes, shape)
		}
		delete(ps.entities, e)
	}
}

// QueryCircle lists the live entities whose collider lies within radius of
// center. Ground sensors are not reported. Candidates come from the bounding
// box query; each is then checked against the exact circle.
func (ps *PhysicsSystem) QueryCircle(center common.Vec2, radius float64) []ecs.Entity {
	if ps == nil || ps.space == nil {
		return nil
	}
	c := cp.Vector{X: center.X, Y: center.Y}
	var out []ecs.Entity
	ps.space.BBQuery(cp.NewBBForCircle(c, radius), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := ps.owners[shape]
		if !ok {
			return
		}
		if shape.PointQuery(c).Distance <= radius {
			out = append(out, e)
		}
	}, nil)
	return out
}

// Tracked reports how many entities currently own chipmunk shapes.
func (ps *PhysicsSystem) Tracked() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}

// CategoryOf reports the collision category of e's body.
func CategoryOf(w *ecs.World, e ecs.Entity) actor.Category {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return actor.CategoryNone
	}
	return body.Category
}
