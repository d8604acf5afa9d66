// Command termview plays bunker scenes in a terminal. Entities are drawn as
// glyphs on a character grid; the simulation is the same pipeline the
// windowed game runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/bunker/audio"
	"github.com/milk9111/bunker/dialogue"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/entity"
	"github.com/milk9111/bunker/ecs/system"
	"github.com/milk9111/bunker/levels"
	"github.com/milk9111/bunker/prefabs"
	"github.com/milk9111/bunker/progress"
)

const tps = 60

type session struct {
	scene    string
	world    *ecs.World
	pipeline *system.Pipeline
	input    *termInput
	tracker  *progress.Tracker
	dialogue *dialogue.Data
	cues     *audio.CuePlayer
}

func newSession(tracker *progress.Tracker, cues *audio.CuePlayer) *session {
	s := &session{
		input:   newTermInput(),
		tracker: tracker,
		cues:    cues,
	}
	s.pipeline = system.NewPipeline(system.Options{Input: s.input, Tracker: tracker})

	if raw, err := prefabs.Load(prefabs.DialogueFile); err != nil {
		log.Printf("dialogue: %v", err)
	} else if data, err := dialogue.Parse(raw); err != nil {
		log.Printf("dialogue: %v", err)
	} else {
		s.dialogue = data
	}
	return s
}

func (s *session) load(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}
	w := ecs.NewWorld()
	if err := entity.SpawnLevel(w, lvl, entity.SceneOptions{Tracker: s.tracker, Dialogue: s.dialogue}); err != nil {
		return err
	}
	if s.cues != nil {
		system.SubscribeAudio(w, s.cues)
	}
	s.pipeline.Physics.Reset()
	s.world = w
	s.scene = name
	return nil
}

func (s *session) step(dt float64) {
	s.pipeline.Update(s.world, dt)
	if name, ok := system.TakeScene(s.world); ok {
		if err := s.load(name); err != nil {
			log.Printf("load scene %s: %v", name, err)
		}
	}
}

func main() {
	sceneName := flag.String("scene", "MainMenu", "scene to start in")
	saveName := flag.String("save", "bunker", "save data app name")
	mute := flag.Bool("mute", false, "disable sound cues")
	logPath := flag.String("log", "termview.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	if err := run(*sceneName, *saveName, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scene, save string, mute bool) error {
	store, err := progress.OpenGdataStore(save)
	if err != nil {
		log.Printf("progress: %v; progress will not persist", err)
	}

	var cues *audio.CuePlayer
	if !mute {
		cues = audio.NewCuePlayer(nil)
		if err := cues.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer cues.Close()
	}

	s := newSession(progress.NewTracker(store), cues)
	if err := s.load(scene); err != nil {
		return fmt.Errorf("load scene %s: %w", scene, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return loop(screen, s)
}

func loop(screen tcell.Screen, s *session) error {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / tps)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
					return nil
				}
				s.input.Handle(ev)
			}
		case <-ticker.C:
			s.step(1.0 / tps)
			drawWorld(screen, s.world)
			screen.Show()
		}
	}
}
