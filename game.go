package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bunker/audio"
	"github.com/milk9111/bunker/dialogue"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/ecs/entity"
	"github.com/milk9111/bunker/ecs/render"
	"github.com/milk9111/bunker/ecs/system"
	"github.com/milk9111/bunker/levels"
	"github.com/milk9111/bunker/prefabs"
	"github.com/milk9111/bunker/progress"
)

const (
	baseWidth  = 480
	baseHeight = 270
)

type Game struct {
	frames int
	debug  bool

	scene    string
	world    *ecs.World
	pipeline *system.Pipeline
	input    *KeyboardInput
	renderer *render.Renderer

	tracker  *progress.Tracker
	dialogue *dialogue.Data
	cues     *audio.CuePlayer
	watcher  *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(scene, save string, debug bool) *Game {
	store, err := progress.OpenGdataStore(save)
	if err != nil {
		log.Printf("progress: %v; progress will not persist", err)
	}

	g := &Game{
		debug:    debug,
		input:    NewKeyboardInput(),
		renderer: render.NewRenderer(),
		tracker:  progress.NewTracker(store),
		cues:     audio.NewCuePlayer(nil),
	}
	g.renderer.Debug = debug
	g.pipeline = system.NewPipeline(system.Options{Input: g.input, Tracker: g.tracker})

	if err := g.cues.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	if err := g.loadDialogue(); err != nil {
		log.Printf("dialogue: %v", err)
	}

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.loadScene(scene); err != nil {
		panic(fmt.Sprintf("load scene %s: %v", scene, err))
	}
	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.cues != nil {
		g.cues.Close()
	}
}

func (g *Game) loadDialogue() error {
	raw, err := prefabs.Load(prefabs.DialogueFile)
	if err != nil {
		return err
	}
	data, err := dialogue.Parse(raw)
	if err != nil {
		return err
	}
	g.dialogue = data
	return nil
}

// loadScene swaps in a freshly spawned world. The old world keeps running
// if the new scene fails to load.
func (g *Game) loadScene(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	if err := entity.SpawnLevel(w, lvl, entity.SceneOptions{Tracker: g.tracker, Dialogue: g.dialogue}); err != nil {
		return err
	}
	system.SubscribeAudio(w, g.cues)

	g.pipeline.Physics.Reset()
	g.world = w
	g.scene = name
	g.paused = false
	log.Printf("scene %s loaded", name)
	return nil
}

func (g *Game) switchScene(name string) {
	if err := g.loadScene(name); err != nil {
		log.Printf("load scene %s: %v", name, err)
	}
}

func (g *Game) Update() error {
	g.frames++

	g.hotReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !keypadOpen(g.world) {
		g.setPaused(!g.paused)
		return nil
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pipeline.Update(g.world, 1/float64(ebiten.TPS()))
	g.applySceneRequest()
	return nil
}

// applySceneRequest loads the scene requested during the last tick. On
// failure the current scene keeps running.
func (g *Game) applySceneRequest() {
	if name, ok := system.TakeScene(g.world); ok {
		g.switchScene(name)
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		// rebuilt each time so the level select reflects current progress
		g.pauseUI = NewPauseUI(g)
	}
}

func (g *Game) hotReload() {
	if g.watcher == nil {
		return
	}
	reload := false
	for _, c := range g.watcher.Poll() {
		switch c.Kind {
		case prefabs.ChangeDialogue:
			if err := g.loadDialogue(); err != nil {
				log.Printf("reload dialogue: %v", err)
				continue
			}
			reload = true
		case prefabs.ChangeLevel:
			// other scenes pick up the edit when they are next loaded
			reload = reload || c.Name == g.scene
		default:
			reload = true
		}
	}
	if reload {
		log.Printf("reloading %s after content changes", g.scene)
		g.switchScene(g.scene)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		render.DrawText(screen, fmt.Sprintf("%s  FPS: %.0f", g.scene, ebiten.ActualFPS()), baseWidth-120, 4, render.DebugTextColor)
	}

	if g.input.TakeScreenshot() {
		path, err := SaveScreenshot(screen, time.Now())
		if err != nil {
			log.Printf("%v", err)
		} else {
			log.Printf("saved %s", path)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// keypadOpen reports whether a password keypad owns the Escape key.
func keypadOpen(w *ecs.World) bool {
	open := false
	ecs.ForEach(w, component.DoorComponent, func(_ ecs.Entity, d *component.Door) {
		if d.Password != nil && d.Password.Visible {
			open = true
		}
	})
	return open
}
