package system

import "github.com/milk9111/bunker/ecs"

// CuePlayer plays a named one-shot sound.
type CuePlayer interface {
	Play(name string) bool
}

// SubscribeAudio routes every audio event of w to player.
func SubscribeAudio(w *ecs.World, player CuePlayer) {
	if w == nil || player == nil {
		return
	}
	w.Events().Subscribe(func(evt ecs.Event) {
		if evt.Type != ecs.EventAudio {
			return
		}
		if a, ok := evt.Data.(ecs.AudioEvent); ok {
			player.Play(a.Cue)
		}
	})
}
