package main

import (
	"testing"
	"time"

	"github.com/milk9111/bunker/audio"
	"github.com/milk9111/bunker/door"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/ecs/system"
	"github.com/milk9111/bunker/progress"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	tracker := progress.NewTracker(progress.NewMemoryStore())
	g := &Game{
		tracker: tracker,
		cues:    audio.NewCuePlayer(nil),
	}
	g.pipeline = system.NewPipeline(system.Options{Tracker: tracker})
	if err := g.loadScene("Level0"); err != nil {
		t.Fatalf("load Level0: %v", err)
	}
	return g
}

func TestFailedSceneRequestKeepsCurrentScene(t *testing.T) {
	g := newTestGame(t)
	world := g.world

	system.RequestScene(g.world, "NoSuchScene")
	g.applySceneRequest()
	if g.world != world || g.scene != "Level0" {
		t.Fatalf("expected Level0 to keep running, got scene %q", g.scene)
	}
	if _, ok := system.PendingScene(g.world); ok {
		t.Fatalf("expected the failed request to be dropped")
	}

	system.RequestScene(g.world, "Level1")
	g.applySceneRequest()
	if g.scene != "Level1" || g.world == world {
		t.Fatalf("expected a switch to Level1, got %q", g.scene)
	}
}

func TestGameCloseWithoutAudioOrWatcher(t *testing.T) {
	g := newTestGame(t)
	g.Close()
	g.Close()
}

func TestScreenshotName(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	if got, want := ScreenshotName(now), "Screenshot_2024-03-09-14-05-07.png"; got != want {
		t.Fatalf("ScreenshotName = %q, want %q", got, want)
	}
}

func TestKeypadOpenOwnsEscape(t *testing.T) {
	w := ecs.NewWorld()
	if keypadOpen(w) {
		t.Fatalf("expected no keypad in an empty world")
	}

	pw := door.NewPassword("1234", nil)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.DoorComponent, &component.Door{Password: pw}); err != nil {
		t.Fatalf("add door: %v", err)
	}
	if keypadOpen(w) {
		t.Fatalf("expected a hidden keypad not to own escape")
	}

	pw.Visible = true
	if !keypadOpen(w) {
		t.Fatalf("expected a visible keypad to own escape")
	}
}
