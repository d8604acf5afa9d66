package system

import (
	"github.com/milk9111/bunker/door"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// wrongShake is how long the keypad shakes after a wrong code.
const wrongShake = 0.3

// DoorSystem opens doors from their triggers, feeds the player's typing to
// visible keypads and slides the panels.
type DoorSystem struct{}

func NewDoorSystem() *DoorSystem {
	return &DoorSystem{}
}

func (s *DoorSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	var input *component.Input
	if e, _, ok := PlayerPosition(w); ok {
		input, _ = ecs.Get(w, e, component.InputComponent)
	}

	for _, e := range w.Query(component.DoorComponent.Kind(), component.TransformComponent.Kind()) {
		d, _ := ecs.Get(w, e, component.DoorComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		s.wireCues(w, e, d)

		if trig, ok := ecs.Get(w, e, component.TriggerComponent); ok {
			switch {
			case trig.Entered:
				s.enter(d)
			case trig.Exited:
				s.exit(d)
			}
		}

		if d.Password != nil {
			s.keypad(w, e, d, input)
		}
		if d.Shake > 0 {
			d.Shake -= dt
		}

		if slider := d.Slider(); slider != nil {
			transform.SetPosition(slider.Advance(dt))
		}
	}
}

func (s *DoorSystem) wireCues(w *ecs.World, e ecs.Entity, d *component.Door) {
	cue := func(name string) {
		w.Emit(ecs.EventAudio, ecs.AudioEvent{Entity: e, Cue: name})
	}
	if d.Automatic != nil && d.Automatic.OnCue == nil {
		d.Automatic.OnCue = cue
	}
	if d.Password != nil && d.Password.OnCue == nil {
		d.Password.OnCue = cue
	}
}

func (s *DoorSystem) enter(d *component.Door) {
	switch {
	case d.Automatic != nil:
		d.Automatic.Enter()
	case d.Password != nil:
		d.Password.Enter()
	}
}

func (s *DoorSystem) exit(d *component.Door) {
	switch {
	case d.Automatic != nil:
		d.Automatic.Exit()
	case d.Password != nil:
		d.Password.Exit()
	}
}

func (s *DoorSystem) keypad(w *ecs.World, e ecs.Entity, d *component.Door, input *component.Input) {
	pw := d.Password
	if !pw.Visible || input == nil {
		return
	}
	if input.EscapePressed {
		pw.Hide()
		return
	}
	for _, r := range input.Typed {
		pw.Type(r)
	}
	if input.Backspace {
		pw.Backspace()
	}
	if !input.Submit {
		return
	}
	switch pw.Submit() {
	case door.ResultCorrect:
		w.After(e, "open", door.OpenDelay, func() {
			// the player may have walked away during the delay
			if pw.InTrigger {
				pw.Open()
			}
		})
	case door.ResultWrong:
		d.Shake = wrongShake
	}
}
