package component

import "github.com/milk9111/bunker/scripting"

// SceneRequest is a one-shot request for the host to load a different scene.
// Systems only emit it; the Game loop owns world reinitialization.
type SceneRequest struct {
	Name string
}

var SceneRequestComponent = NewComponent[SceneRequest]()

// LevelLoader completes Level and loads Target after Delay when the player
// first enters its trigger.
type LevelLoader struct {
	Level     int
	Target    string
	Delay     float64
	Triggered bool
}

var LevelLoaderComponent = NewComponent[LevelLoader]()

// SceneGate loads Target on player enter when Condition holds. A nil
// Condition always holds.
type SceneGate struct {
	Target    string
	Condition *scripting.Condition
}

var SceneGateComponent = NewComponent[SceneGate]()

// Activator keeps its entity only while Condition holds at scene load.
type Activator struct {
	Condition *scripting.Condition
	Checked   bool
}

var ActivatorComponent = NewComponent[Activator]()

// Canvas is an overlay label shown while the player is inside the trigger.
type Canvas struct {
	Text    string
	Visible bool
}

var CanvasComponent = NewComponent[Canvas]()

// SceneInfo names the loaded scene. One per world.
type SceneInfo struct {
	Name string
}

var SceneInfoComponent = NewComponent[SceneInfo]()
