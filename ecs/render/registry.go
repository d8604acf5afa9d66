package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// pixel is a 1x1 white image; tinted and scaled it draws any solid rect.
func pixel() *ebiten.Image {
	if img := GetImage("pixel"); img != nil {
		return img
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	RegisterImage("pixel", img)
	return img
}

// FillRect draws a solid rectangle in screen pixels.
func FillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel(), op)
}
