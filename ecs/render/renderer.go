// Package render draws a bunker world with ebiten: entities as tinted
// rectangles, then the HUD and any open panels.
package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"golang.org/x/image/colornames"
)

var background = color.RGBA{R: 0x12, G: 0x14, B: 0x1c, A: 0xff}

type Renderer struct {
	camEntity ecs.Entity
	// Debug outlines colliders and trigger volumes.
	Debug bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// view maps world coordinates onto the screen around the camera centre.
type view struct {
	center common.Vec2
	zoom   float64
	halfW  float64
	halfH  float64
}

func (v view) toScreen(p common.Vec2) (float64, float64) {
	return (p.X-v.center.X)*v.zoom + v.halfW, (p.Y-v.center.Y)*v.zoom + v.halfH
}

func (r *Renderer) view(w *ecs.World, screen *ebiten.Image) view {
	b := screen.Bounds()
	v := view{zoom: 1, halfW: float64(b.Dx()) / 2, halfH: float64(b.Dy()) / 2}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent)
	if !ok || cam.Rig == nil {
		return v
	}
	v.center = cam.Rig.View()
	if cam.Rig.Zoom > 0 {
		v.zoom = cam.Rig.Zoom
	}
	if cam.Size > 0 {
		// fit the orthographic half height to the screen
		v.zoom *= v.halfH / cam.Size
	}
	return v
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(background)
	v := r.view(w, screen)

	entities := w.Query(component.TransformComponent.Kind(), component.AppearanceComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		ai, _ := ecs.Get(w, entities[i], component.AppearanceComponent)
		aj, _ := ecs.Get(w, entities[j], component.AppearanceComponent)
		if ai.Layer != aj.Layer {
			return ai.Layer < aj.Layer
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		a, _ := ecs.Get(w, e, component.AppearanceComponent)
		if a.Hidden {
			continue
		}
		if lights, ok := ecs.Get(w, e, component.EmergencyLightsComponent); ok && lights.Light != nil && lights.Light.Running() {
			r.drawLights(screen, v, t, a, lights)
			continue
		}
		c := a.Color
		if hp, ok := ecs.Get(w, e, component.HealthComponent); ok && hp.Health != nil && !hp.Alive() {
			c = fade(c)
		} else if ecs.Has(w, e, component.InvulnerableComponent) {
			c = colornames.White
		}
		x, y := v.toScreen(common.V(t.X-a.Width/2, t.Y-a.Height/2))
		FillRect(screen, x, y, a.Width*v.zoom, a.Height*v.zoom, c)
	}

	if r.Debug {
		r.drawDebug(w, screen, v)
	}
	drawHUD(w, screen, v)
}

// drawLights spreads the lights evenly across the appearance width.
func (r *Renderer) drawLights(screen *ebiten.Image, v view, t *component.Transform, a *component.Appearance, lights *component.EmergencyLights) {
	colors := lights.Light.Colors()
	if len(colors) == 0 {
		return
	}
	size := a.Width
	gap := size * 2
	start := t.X - gap*float64(len(colors)-1)/2
	for i, c := range colors {
		x, y := v.toScreen(common.V(start+gap*float64(i)-size/2, t.Y-a.Height/2))
		FillRect(screen, x, y, size*v.zoom, a.Height*v.zoom, c)
	}
}

func (r *Renderer) drawDebug(w *ecs.World, screen *ebiten.Image, v view) {
	outline := color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0x60}
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(_ ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
		if b.Disabled {
			return
		}
		rect := b.Bounds(t)
		x, y := v.toScreen(rect.Min())
		FillRect(screen, x, y, rect.Width*v.zoom, rect.Height*v.zoom, outline)
	})
	volume := color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0x30}
	ecs.ForEach(w, component.TriggerComponent, func(_ ecs.Entity, trig *component.Trigger) {
		x, y := v.toScreen(trig.Area.Min())
		FillRect(screen, x, y, trig.Area.Width*v.zoom, trig.Area.Height*v.zoom, volume)
	})
}

func fade(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 3, G: c.G / 3, B: c.B / 3, A: c.A}
}
