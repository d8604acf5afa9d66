package system

import (
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// RequestScene asks the host to load name at the end of the tick. The
// latest request wins.
func RequestScene(w *ecs.World, name string) {
	if w == nil || name == "" {
		return
	}
	if _, req, ok := ecs.First(w, component.SceneRequestComponent); ok {
		req.Name = name
	} else {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.SceneRequestComponent, &component.SceneRequest{Name: name})
	}
	w.Emit(ecs.EventScene, ecs.SceneEvent{Name: name})
}

// PendingScene returns the requested scene, if any.
func PendingScene(w *ecs.World) (string, bool) {
	_, req, ok := ecs.First(w, component.SceneRequestComponent)
	if !ok {
		return "", false
	}
	return req.Name, true
}

// TakeScene returns the requested scene and removes the request, so a scene
// that fails to load is not retried every tick.
func TakeScene(w *ecs.World) (string, bool) {
	e, req, ok := ecs.First(w, component.SceneRequestComponent)
	if !ok {
		return "", false
	}
	name := req.Name
	ecs.DestroyEntity(w, e)
	return name, true
}

// CurrentScene returns the name of the loaded scene.
func CurrentScene(w *ecs.World) string {
	if _, info, ok := ecs.First(w, component.SceneInfoComponent); ok {
		return info.Name
	}
	return ""
}
