package component

import "github.com/milk9111/bunker/common"

// LevelBounds stores the world-space bounds of the current level.
type LevelBounds struct {
	Rect common.Rect
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
