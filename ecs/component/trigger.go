package component

import (
	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/common"
)

// Trigger is an axis-aligned volume that reports when actors of Filter
// category start or stop overlapping it. Entered and Exited are edges of the
// whole volume (empty to occupied and back); Arrivals and Departures list
// every entity that crossed this tick. All four are valid for the tick they
// were raised on only.
type Trigger struct {
	Area   common.Rect
	Filter actor.Category

	Inside  bool
	Entered bool
	Exited  bool
	// Other is the entity that caused the last edge (ecs.Entity is uint64).
	Other uint64

	Occupants  map[uint64]bool
	Arrivals   []uint64
	Departures []uint64
}

var TriggerComponent = NewComponent[Trigger]()
