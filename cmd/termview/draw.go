package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"github.com/milk9111/bunker/ecs/system"
)

// One cell covers cellW x cellH world units; terminal cells are about twice
// as tall as they are wide.
const (
	cellW = 8.0
	cellH = 16.0
)

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

type grid struct {
	screen tcell.Screen
	cols   int
	rows   int
	center common.Vec2
}

// cell maps a world point to a column and row.
func (g grid) cell(p common.Vec2) (int, int) {
	x := math.Floor((p.X-g.center.X)/cellW) + float64(g.cols/2)
	y := math.Floor((p.Y-g.center.Y)/cellH) + float64(g.rows/2)
	return int(x), int(y)
}

func drawWorld(screen tcell.Screen, w *ecs.World) {
	screen.Clear()
	if w == nil {
		return
	}
	cols, rows := screen.Size()
	g := grid{screen: screen, cols: cols, rows: rows}
	if _, cam, ok := ecs.First(w, component.CameraComponent); ok && cam.Rig != nil {
		g.center = cam.Rig.View()
	}

	entities := w.Query(component.TransformComponent.Kind(), component.AppearanceComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		ai, _ := ecs.Get(w, entities[i], component.AppearanceComponent)
		aj, _ := ecs.Get(w, entities[j], component.AppearanceComponent)
		return ai.Layer < aj.Layer
	})
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		a, _ := ecs.Get(w, e, component.AppearanceComponent)
		if a.Hidden {
			continue
		}
		glyph := a.Glyph
		if glyph == 0 {
			glyph = '#'
		}
		c := a.Color
		if lights, ok := ecs.Get(w, e, component.EmergencyLightsComponent); ok && lights.Light != nil && lights.Light.Running() {
			c = lights.Light.Emission()
		}
		if hp, ok := ecs.Get(w, e, component.HealthComponent); ok && hp.Health != nil && !hp.Alive() {
			glyph = 'x'
		}
		style := tcell.StyleDefault.Foreground(rgb(c)).Background(tcell.ColorBlack)
		g.fill(common.Centered(t.Position(), a.Width, a.Height), glyph, style)
	}

	drawHUD(g, w)
}

// fill covers every cell the rect touches; a rect smaller than a cell still
// gets one.
func (g grid) fill(r common.Rect, glyph rune, style tcell.Style) {
	x0, y0 := g.cell(r.Min())
	x1, y1 := g.cell(common.V(r.X+r.Width-0.001, r.Y+r.Height-0.001))
	x1, y1 = max(x1, x0), max(y1, y0)
	width := runewidth.RuneWidth(glyph)
	if width < 1 {
		width = 1
	}
	for y := max(y0, 0); y <= min(y1, g.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, g.cols-1); x += width {
			g.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func drawHUD(g grid, w *ecs.World) {
	status := system.CurrentScene(w)
	if e, _, ok := ecs.First(w, component.PlayerTagComponent); ok {
		if hp, ok := ecs.Get(w, e, component.HealthComponent); ok && hp.Health != nil {
			status = fmt.Sprintf("HP %s%s  %s", strings.Repeat("#", hp.Current), strings.Repeat("-", hp.Max-max(hp.Current, 0)), status)
		}
	}
	putString(g.screen, 0, 0, status, hudStyle)

	ecs.ForEach2(w, component.CanvasComponent, component.TransformComponent, func(_ ecs.Entity, c *component.Canvas, t *component.Transform) {
		if !c.Visible || c.Text == "" {
			return
		}
		x, y := g.cell(t.Position())
		putString(g.screen, x-runewidth.StringWidth(c.Text)/2, y-2, c.Text, hudStyle)
	})

	ecs.ForEach(w, component.DialogueComponent, func(_ ecs.Entity, d *component.Dialogue) {
		if !d.Visible {
			return
		}
		putString(g.screen, 1, g.rows-2, d.Line+"  [n] next", hudStyle)
	})

	ecs.ForEach(w, component.DoorComponent, func(_ ecs.Entity, d *component.Door) {
		if d.Password == nil || !d.Password.Visible {
			return
		}
		label := "CODE " + d.Password.Mask()
		x := g.cols/2 - runewidth.StringWidth(label)/2
		if d.Shake > 0 && int(d.Shake*40)%2 == 0 {
			x++
		}
		putString(g.screen, x, g.rows/2, label, hudStyle.Foreground(tcell.ColorGold))
	})
}

// putString writes s starting at (x, y), advancing by each rune's display
// width.
func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	cols, rows := screen.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= cols {
			screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
