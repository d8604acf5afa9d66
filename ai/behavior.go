// Package ai holds the enemy behavior state machines. A behavior is chosen
// when the enemy is built and never changes afterwards.
package ai

import (
	"fmt"

	"github.com/milk9111/bunker/common"
)

// Kind names a behavior variant.
type Kind string

const (
	KindPatrol Kind = "patrol"
	KindChaser Kind = "chaser"
)

// Command is what a behavior asks the body to do this tick.
type Command struct {
	// VX is the horizontal velocity to apply.
	VX float64
	// VY is the vertical velocity for bodies that are not held by gravity.
	// Ground walkers ignore it.
	VY float64
	// Facing is the requested facing sign, or 0 to keep the current one.
	Facing int
	// Running drives the "isRun" animation parameter.
	Running bool
}

// Behavior is ticked once per frame with the enemy position and the player
// position, which is nil while no player exists.
type Behavior interface {
	Kind() Kind
	Tick(dt float64, self common.Vec2, player *common.Vec2) Command
}

// ParseKind validates a prefab behavior name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPatrol, KindChaser:
		return Kind(s), nil
	}
	return "", fmt.Errorf("ai: unknown behavior %q", s)
}
