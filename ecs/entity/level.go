package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/bunker/camera"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/dialogue"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/levels"
	"github.com/milk9111/bunker/prefabs"
	"github.com/milk9111/bunker/progress"
	"golang.org/x/image/colornames"
)

// SceneOptions are the collaborators scene objects are wired to. Either may
// be nil; dialogue triggers are skipped without them.
type SceneOptions struct {
	Tracker  *progress.Tracker
	Dialogue *dialogue.Data
}

// fallMargin is how far below the level the catch-all death zone sits.
const fallMargin = 32

// SpawnLevel populates w with lvl: bounds, ground and hazards from physics
// layers, then the placed entities. Unknown entity types are logged and
// skipped.
func SpawnLevel(w *ecs.World, lvl *levels.Level, opts SceneOptions) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("spawn level: world and level are required")
	}

	NewSceneInfo(w, lvl.Name)
	bounds := lvl.Bounds()
	NewLevelBounds(w, bounds)

	for i := range lvl.Layers {
		meta := lvl.Meta(i)
		if !meta.HasPhysics {
			continue
		}
		c, err := prefabs.ParseColor(meta.Color)
		if err != nil {
			c = colornames.Steelblue
		}
		for _, r := range lvl.Runs(i, levels.TileSolid) {
			NewGround(w, r, c)
		}
		for _, r := range lvl.Runs(i, levels.TileHazard) {
			NewDeathZone(w, r)
		}
	}
	NewDeathZone(w, common.Rect{
		X:      bounds.X - bounds.Width,
		Y:      bounds.Y + bounds.Height + fallMargin,
		Width:  bounds.Width * 3,
		Height: fallMargin * 2,
	})

	for i, spec := range lvl.Entities {
		e, ok, err := spawnEntity(w, lvl, spec, opts)
		if err != nil {
			return fmt.Errorf("spawn level %s: entity %d (%s): %w", lvl.Name, i, spec.Type, err)
		}
		if !ok {
			continue
		}
		if cond := spec.String("active_if"); cond != "" {
			if err := SetActivator(w, e, cond); err != nil {
				return fmt.Errorf("spawn level %s: entity %d (%s): %w", lvl.Name, i, spec.Type, err)
			}
		}
	}
	return nil
}

func spawnEntity(w *ecs.World, lvl *levels.Level, spec levels.Entity, opts SceneOptions) (ecs.Entity, bool, error) {
	var (
		e   ecs.Entity
		err error
	)
	switch spec.Type {
	case "player":
		e, err = NewPlayerAt(w, spec.X, spec.Y)
	case "enemy":
		e, err = NewEnemyAt(w, spec.String("behavior"), spec.X, spec.Y)
	case "camera":
		e, err = newLevelCamera(w, lvl, spec)
	case "door":
		e, err = NewDoor(w, spec.X, spec.Y, spec.String("code"))
	case "assistant":
		e, err = NewAssistant(w, spec.X, spec.Y)
		if err == nil && spec.Props["dialogue"] == true {
			if opts.Dialogue == nil {
				log.Printf("spawn level: %s has a dialogue trigger but no dialogue data", lvl.Name)
				break
			}
			err = AttachDialogue(w, e, spec.Area(64, 64), dialogue.NewDirector(opts.Dialogue, opts.Tracker))
		}
	case "emergency_lights":
		e, err = NewEmergencyLights(w, spec.X, spec.Y)
	case "level_loader":
		e = NewLevelLoader(w, spec.Area(32, 64), spec.Int("level", 0), spec.String("target"), spec.Float("delay", 0.5))
	case "scene_gate":
		e, err = NewSceneGate(w, spec.Area(32, 64), spec.String("target"), spec.String("condition"))
	case "canvas":
		e = NewCanvas(w, spec.Area(64, 64), spec.String("text"))
	case "death_zone":
		e = NewDeathZone(w, spec.Area(32, 32))
	default:
		log.Printf("spawn level: %s: unknown entity type %q", lvl.Name, spec.Type)
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return e, true, nil
}

// newLevelCamera builds the camera prefab with the level's mode override.
// Fixed cameras hold on the level centre.
func newLevelCamera(w *ecs.World, lvl *levels.Level, spec levels.Entity) (ecs.Entity, error) {
	e, err := NewCamera(w)
	if err != nil {
		return 0, err
	}
	c, ok := ecs.Get(w, e, component.CameraComponent)
	if !ok {
		return e, nil
	}
	rig := c.Rig
	rig.Waypoints = spec.Points("waypoints")
	anchor := lvl.Bounds().Center()
	rig.Anchor = &anchor
	rig.Position = anchor

	if name := spec.String("mode"); name != "" {
		mode, err := camera.ParseMode(name)
		if err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
		rig.SetMode(mode)
	}
	return e, nil
}
