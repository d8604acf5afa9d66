package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/bunker/ecs/component"
)

// holdWindow stands in for key-up events, which terminals do not send. A
// move key counts as held until this long after its last repeat.
const holdWindow = 150 * time.Millisecond

type termInput struct {
	now func() time.Time

	leftUntil  time.Time
	rightUntil time.Time
	pending    component.Input
}

func newTermInput() *termInput {
	return &termInput{now: time.Now}
}

// Handle records one key event until the next Poll.
func (t *termInput) Handle(ev *tcell.EventKey) {
	now := t.now()
	switch ev.Key() {
	case tcell.KeyLeft:
		t.leftUntil, t.rightUntil = now.Add(holdWindow), time.Time{}
		return
	case tcell.KeyRight:
		t.rightUntil, t.leftUntil = now.Add(holdWindow), time.Time{}
		return
	case tcell.KeyEscape:
		t.pending.EscapePressed = true
		t.pending.PausePressed = true
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.pending.Backspace = true
		return
	case tcell.KeyEnter:
		t.pending.Submit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	switch r {
	case 'a', 'A':
		t.leftUntil, t.rightUntil = now.Add(holdWindow), time.Time{}
	case 'd', 'D':
		t.rightUntil, t.leftUntil = now.Add(holdWindow), time.Time{}
	case ' ':
		t.pending.JumpPressed = true
	case 'j', 'J':
		t.pending.AttackPressed = true
	case 'f', 'F':
		t.pending.ShootPressed = true
	case 'e', 'E':
		t.pending.InteractPressed = true
	case 'n', 'N':
		t.pending.NextPressed = true
	}
	t.pending.Typed = append(t.pending.Typed, r)
}

func (t *termInput) Poll(in *component.Input) {
	now := t.now()
	switch {
	case now.Before(t.leftUntil):
		in.MoveX = -1
	case now.Before(t.rightUntil):
		in.MoveX = 1
	}

	in.JumpPressed = t.pending.JumpPressed
	in.AttackPressed = t.pending.AttackPressed
	in.ShootPressed = t.pending.ShootPressed
	in.InteractPressed = t.pending.InteractPressed
	in.NextPressed = t.pending.NextPressed
	in.EscapePressed = t.pending.EscapePressed
	in.PausePressed = t.pending.PausePressed
	in.Backspace = t.pending.Backspace
	in.Submit = t.pending.Submit
	in.Typed = append(in.Typed, t.pending.Typed...)

	t.pending.Reset()
}
