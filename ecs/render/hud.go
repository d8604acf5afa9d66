package render

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

const (
	lineHeight   = 14
	panelPadding = 8
	barWidth     = 80
	barHeight    = 6
)

var panelColor = color.RGBA{A: 200}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineHeight
	ebtext.Draw(dst, s, face, op)
}

// TextWidth measures s in pixels with the HUD face.
func TextWidth(s string) float64 {
	w, _ := ebtext.Measure(s, face, lineHeight)
	return w
}

func drawHUD(w *ecs.World, screen *ebiten.Image, v view) {
	drawHealthBar(w, screen)

	ecs.ForEach2(w, component.CanvasComponent, component.TransformComponent, func(_ ecs.Entity, c *component.Canvas, t *component.Transform) {
		if !c.Visible || c.Text == "" {
			return
		}
		x, y := v.toScreen(t.Position())
		drawPanel(screen, c.Text, x-TextWidth(c.Text)/2, y-lineHeight*2, colornames.Lightgray)
	})

	ecs.ForEach(w, component.DialogueComponent, func(_ ecs.Entity, d *component.Dialogue) {
		if !d.Visible {
			return
		}
		b := screen.Bounds()
		drawPanel(screen, d.Line+"\n[N] next", panelPadding*2, float64(b.Dy())-lineHeight*4, colornames.White)
	})

	ecs.ForEach(w, component.DoorComponent, func(_ ecs.Entity, d *component.Door) {
		if d.Password == nil || !d.Password.Visible {
			return
		}
		b := screen.Bounds()
		label := "CODE " + d.Password.Mask() + strings.Repeat("_", max(len(d.Password.Secret)-len(d.Password.Mask()), 0))
		x := float64(b.Dx())/2 - TextWidth(label)/2
		if d.Shake > 0 {
			// alternate sides every few hundredths of a second
			if int(d.Shake*40)%2 == 0 {
				x += 3
			} else {
				x -= 3
			}
		}
		drawPanel(screen, label, x, float64(b.Dy())/2, colornames.Gold)
	})
}

func drawHealthBar(w *ecs.World, screen *ebiten.Image) {
	e, _, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return
	}
	hp, ok := ecs.Get(w, e, component.HealthComponent)
	if !ok || hp.Health == nil || hp.Max <= 0 {
		return
	}
	width, height := float64(barWidth), float64(barHeight)
	if bar, ok := ecs.Get(w, e, component.HealthBarComponent); ok && bar.Width > 0 {
		width, height = bar.Width, bar.Height
	}
	FillRect(screen, panelPadding, panelPadding, width, height, colornames.Darkred)
	FillRect(screen, panelPadding, panelPadding, width*hp.Fraction(), height, colornames.Limegreen)
}

func drawPanel(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	lines := strings.Split(s, "\n")
	width := 0.0
	for _, l := range lines {
		width = max(width, TextWidth(l))
	}
	FillRect(screen, x-panelPadding, y-panelPadding/2, width+panelPadding*2, float64(len(lines))*lineHeight+panelPadding, panelColor)
	DrawText(screen, s, x, y, c)
}

var DebugTextColor = colornames.Yellow
