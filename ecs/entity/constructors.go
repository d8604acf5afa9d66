package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/bunker/actor"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/dialogue"
	"github.com/milk9111/bunker/door"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/scripting"
	"golang.org/x/image/colornames"
)

// BuildEntityAt builds a prefab and moves it to (x, y).
func BuildEntityAt(w *ecs.World, prefabPath string, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return BuildEntityAt(w, "player.yaml", x, y)
}

// NewEnemyAt builds a "patrol" or "chaser" enemy.
func NewEnemyAt(w *ecs.World, behavior string, x, y float64) (ecs.Entity, error) {
	switch behavior {
	case "", "patrol":
		return BuildEntityAt(w, "patrol_enemy.yaml", x, y)
	case "chaser":
		return BuildEntityAt(w, "chaser_enemy.yaml", x, y)
	}
	return 0, fmt.Errorf("new enemy: unknown behavior %q", behavior)
}

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml")
}

func NewAssistant(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return BuildEntityAt(w, "assistant.yaml", x, y)
}

func NewEmergencyLights(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return BuildEntityAt(w, "emergency_lights.yaml", x, y)
}

// NewDoor builds a door panel centred on (x, y). A non-empty code puts the
// door behind a keypad.
func NewDoor(w *ecs.World, x, y float64, code string) (ecs.Entity, error) {
	e, err := BuildEntityAt(w, "door.yaml", x, y)
	if err != nil {
		return 0, err
	}
	if code == "" {
		return e, nil
	}
	d, ok := ecs.Get(w, e, component.DoorComponent)
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("new door: prefab has no door component")
	}
	d.Password = door.NewPassword(code, d.Automatic.Slider)
	d.Automatic = nil
	return e, nil
}

// NewGround adds a static solid covering area.
func NewGround(w *ecs.World, area common.Rect, c color.RGBA) ecs.Entity {
	e := ecs.CreateEntity(w)
	center := area.Center()
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: center.X, Y: center.Y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:    area.Width,
		Height:   area.Height,
		Static:   true,
		Category: actor.CategoryGround,
	})
	_ = ecs.Add(w, e, component.AppearanceComponent, &component.Appearance{
		Color:  c,
		Glyph:  '=',
		Width:  area.Width,
		Height: area.Height,
	})
	return e
}

// NewDeathZone kills any actor that enters area.
func NewDeathZone(w *ecs.World, area common.Rect) ecs.Entity {
	e := newTrigger(w, area, actor.CategoryNone)
	_ = ecs.Add(w, e, component.DeathZoneComponent, &component.DeathZone{})
	_ = ecs.Add(w, e, component.AppearanceComponent, &component.Appearance{
		Color:  colornames.Darkred,
		Glyph:  '^',
		Width:  area.Width,
		Height: area.Height,
	})
	return e
}

func NewLevelBounds(w *ecs.World, area common.Rect) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.LevelBoundsComponent, &component.LevelBounds{Rect: area})
	return e
}

func NewSceneInfo(w *ecs.World, name string) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.SceneInfoComponent, &component.SceneInfo{Name: name})
	return e
}

// AttachDialogue gives e a dialogue trigger covering area.
func AttachDialogue(w *ecs.World, e ecs.Entity, area common.Rect, director *dialogue.Director) error {
	if director == nil {
		return fmt.Errorf("attach dialogue: director is nil")
	}
	if err := ecs.Add(w, e, component.TriggerComponent, &component.Trigger{Area: area, Filter: actor.CategoryPlayer}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.DialogueComponent, &component.Dialogue{Director: director})
}

// NewLevelLoader completes level and loads target when the player enters
// area. An empty target falls back to the memories scene.
func NewLevelLoader(w *ecs.World, area common.Rect, level int, target string, delay float64) ecs.Entity {
	e := newTrigger(w, area, actor.CategoryPlayer)
	_ = ecs.Add(w, e, component.LevelLoaderComponent, &component.LevelLoader{Level: level, Target: target, Delay: delay})
	return e
}

// NewSceneGate loads target when the player enters area and condition, if
// any, holds.
func NewSceneGate(w *ecs.World, area common.Rect, target, condition string) (ecs.Entity, error) {
	if target == "" {
		return 0, fmt.Errorf("new scene gate: target is empty")
	}
	gate := &component.SceneGate{Target: target}
	if condition != "" {
		c, err := scripting.Compile(condition)
		if err != nil {
			return 0, fmt.Errorf("new scene gate: %w", err)
		}
		gate.Condition = c
	}
	e := newTrigger(w, area, actor.CategoryPlayer)
	_ = ecs.Add(w, e, component.SceneGateComponent, gate)
	return e, nil
}

func NewCanvas(w *ecs.World, area common.Rect, text string) ecs.Entity {
	e := newTrigger(w, area, actor.CategoryPlayer)
	_ = ecs.Add(w, e, component.CanvasComponent, &component.Canvas{Text: text})
	return e
}

// SetActivator keeps e only while condition holds when the scene starts.
func SetActivator(w *ecs.World, e ecs.Entity, condition string) error {
	c, err := scripting.Compile(condition)
	if err != nil {
		return fmt.Errorf("set activator: %w", err)
	}
	return ecs.Add(w, e, component.ActivatorComponent, &component.Activator{Condition: c})
}

func newTrigger(w *ecs.World, area common.Rect, filter actor.Category) ecs.Entity {
	e := ecs.CreateEntity(w)
	center := area.Center()
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: center.X, Y: center.Y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.TriggerComponent, &component.Trigger{Area: area, Filter: filter})
	return e
}
