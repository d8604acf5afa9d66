package component

import "github.com/milk9111/bunker/camera"

type Camera struct {
	Rig *camera.Rig
	// Size is the orthographic half height; the host supplies Aspect.
	Size   float64
	Aspect float64
}

var CameraComponent = NewComponent[Camera]()
