package system

import (
	"slices"
	"testing"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/door"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

func addDoor(w *ecs.World, code string) (ecs.Entity, *component.Door) {
	e, _ := addTrigger(w, 0, 0, 40, actor.CategoryPlayer)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{ScaleX: 1, ScaleY: 1})
	slider := door.NewSlider(common.V(0, 0), common.V(0, -48), 1)
	d := &component.Door{}
	if code == "" {
		d.Automatic = &door.Automatic{Slider: slider}
	} else {
		d.Password = door.NewPassword(code, slider)
	}
	_ = ecs.Add(w, e, component.DoorComponent, d)
	return e, d
}

func TestAutomaticDoorOpensAndCloses(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 0, 0)
	e, d := addDoor(w, "")
	audio := recordEvents(w, ecs.EventAudio)
	s := ecs.NewScheduler(NewTriggerSystem(), NewDoorSystem())

	run(s, w, 90)
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if !d.Automatic.Slider.IsOpen() || tr.Y != -48 {
		t.Fatalf("door should be fully open, at %v", tr.Position())
	}

	pt, _ := ecs.Get(w, player, component.TransformComponent)
	pt.X = 200
	run(s, w, 90)
	if d.Automatic.Slider.IsOpen() || tr.Y != 0 {
		t.Fatalf("door should be closed again, at %v", tr.Position())
	}
	if got := cues(*audio); !slices.Equal(got, []string{door.CueOpen, door.CueClose}) {
		t.Fatalf("unexpected cues %v", got)
	}
}

func TestPasswordDoorKeypad(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 0, 0)
	_, d := addDoor(w, "42")
	pw := d.Password
	audio := recordEvents(w, ecs.EventAudio)
	s := ecs.NewScheduler(NewTriggerSystem(), NewDoorSystem())
	in := input(w, player)

	run(s, w, 1)
	if !pw.Visible {
		t.Fatalf("keypad should show on enter")
	}

	in.Typed = []rune("41")
	in.Submit = true
	run(s, w, 1)
	in.Reset()
	if d.Shake <= 0 || pw.Correct {
		t.Fatalf("wrong code should shake the panel")
	}

	in.Typed = []rune("423")
	in.Backspace = true
	run(s, w, 1)
	in.Reset()
	if pw.Mask() != "**" {
		t.Fatalf("expected two digits after backspace, got %q", pw.Mask())
	}
	in.Submit = true
	run(s, w, 1)
	in.Reset()
	if !pw.Correct || pw.Visible {
		t.Fatalf("correct code should hide the keypad")
	}
	if pw.Slider.IsOpen() {
		t.Fatalf("door should wait before opening")
	}

	run(s, w, 40)
	if !pw.Slider.IsOpen() {
		t.Fatalf("door should open after the delay")
	}

	got := cues(*audio)
	for _, want := range []string{door.CueWrong, door.CueKeyPress, door.CueCorrect, door.CueOpen} {
		if !slices.Contains(got, want) {
			t.Fatalf("missing cue %q in %v", want, got)
		}
	}
}

func TestPasswordDoorStaysShutIfPlayerLeaves(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 0, 0)
	_, d := addDoor(w, "7")
	s := ecs.NewScheduler(NewTriggerSystem(), NewDoorSystem())
	in := input(w, player)

	run(s, w, 1)
	in.Typed = []rune("7")
	in.Submit = true
	run(s, w, 1)
	in.Reset()

	pt, _ := ecs.Get(w, player, component.TransformComponent)
	pt.X = 300
	run(s, w, 60)
	if d.Password.Slider.IsOpen() {
		t.Fatalf("door should not open once the player walked away")
	}

	pt.X = 0
	run(s, w, 1)
	if !d.Password.Slider.IsOpen() {
		t.Fatalf("re-entering after a correct code should open directly")
	}
}

func TestKeypadEscapeHides(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 0, 0)
	_, d := addDoor(w, "1")
	s := ecs.NewScheduler(NewTriggerSystem(), NewDoorSystem())

	run(s, w, 1)
	in := input(w, player)
	in.EscapePressed = true
	run(s, w, 1)
	if d.Password.Visible {
		t.Fatalf("escape should hide the keypad")
	}
}
