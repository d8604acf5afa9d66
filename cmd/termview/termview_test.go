package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/ecs/system"
	"github.com/milk9111/bunker/progress"
)

func newSimScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(w, h)
	if err := ss.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

func fixedClock(now *time.Time) func() time.Time {
	return func() time.Time { return *now }
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		check func(in component.Input) bool
	}{
		{"jump", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), func(in component.Input) bool { return in.JumpPressed }},
		{"attack", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), func(in component.Input) bool { return in.AttackPressed }},
		{"shoot", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), func(in component.Input) bool { return in.ShootPressed }},
		{"interact", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), func(in component.Input) bool { return in.InteractPressed }},
		{"next", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), func(in component.Input) bool { return in.NextPressed }},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), func(in component.Input) bool { return in.EscapePressed }},
		{"submit", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(in component.Input) bool { return in.Submit }},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), func(in component.Input) bool {
			return len(in.Typed) == 1 && in.Typed[0] == '7'
		}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), func(in component.Input) bool { return in.MoveX == -1 }},
		{"right", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), func(in component.Input) bool { return in.MoveX == 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Unix(100, 0)
			in := newTermInput()
			in.now = fixedClock(&now)
			in.Handle(tt.ev)

			var frame component.Input
			in.Poll(&frame)
			if !tt.check(frame) {
				t.Fatalf("unexpected input %+v", frame)
			}
		})
	}
}

func TestOneShotsClearAfterPoll(t *testing.T) {
	now := time.Unix(100, 0)
	in := newTermInput()
	in.now = fixedClock(&now)
	in.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	var frame component.Input
	in.Poll(&frame)
	frame.Reset()
	in.Poll(&frame)
	if frame.JumpPressed || len(frame.Typed) != 0 {
		t.Fatalf("expected one-shot input to clear, got %+v", frame)
	}
}

func TestHeldMoveExpires(t *testing.T) {
	now := time.Unix(100, 0)
	in := newTermInput()
	in.now = fixedClock(&now)
	in.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	now = now.Add(holdWindow / 2)
	var frame component.Input
	in.Poll(&frame)
	if frame.MoveX != 1 {
		t.Fatalf("expected move inside the hold window, got %v", frame.MoveX)
	}

	now = now.Add(holdWindow)
	frame.Reset()
	in.Poll(&frame)
	if frame.MoveX != 0 {
		t.Fatalf("expected move to expire, got %v", frame.MoveX)
	}
}

func TestDrawShowsPlayerAndHUD(t *testing.T) {
	s := newSession(progress.NewTracker(progress.NewMemoryStore()), nil)
	if err := s.load("Level0"); err != nil {
		t.Fatalf("load: %v", err)
	}
	s.step(1.0 / tps)

	// wide enough to cover the whole level wherever the camera sits
	screen := newSimScreen(t, 240, 80)
	drawWorld(screen, s.world)
	screen.Show()

	cols, rows := screen.Size()
	foundPlayer := false
	for y := 0; y < rows && !foundPlayer; y++ {
		for x := 0; x < cols; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == '@' {
				foundPlayer = true
				break
			}
		}
	}
	if !foundPlayer {
		t.Fatalf("expected the player glyph on screen")
	}

	if r, _, _, _ := screen.GetContent(0, 0); r != 'H' {
		t.Fatalf("expected the health readout in the corner, got %q", r)
	}
}

func TestPutStringClipsToScreen(t *testing.T) {
	screen := newSimScreen(t, 4, 1)
	putString(screen, 2, 0, "abcd", hudStyle)
	putString(screen, 0, 5, "zz", hudStyle)

	if r, _, _, _ := screen.GetContent(3, 0); r != 'b' {
		t.Fatalf("expected clipped text, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r == 'z' {
		t.Fatalf("expected off-screen row to be dropped")
	}
}

func TestFailedSceneLoadIsNotRetried(t *testing.T) {
	s := newSession(progress.NewTracker(progress.NewMemoryStore()), nil)
	if err := s.load("Level0"); err != nil {
		t.Fatalf("load: %v", err)
	}
	world := s.world

	system.RequestScene(s.world, "NoSuchScene")
	s.step(1.0 / tps)
	if s.world != world || s.scene != "Level0" {
		t.Fatalf("expected Level0 to keep running, got scene %q", s.scene)
	}
	if _, ok := system.PendingScene(s.world); ok {
		t.Fatalf("expected the failed request to be dropped")
	}
}
