package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

const screenshotDir = "screenshots"

var clipboardReady = clipboard.Init() == nil

// SaveScreenshot writes screen as a png under screenshots/ and copies it to
// the system clipboard when one is available.
func SaveScreenshot(screen *ebiten.Image, now time.Time) (string, error) {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("screenshot: encode: %w", err)
	}

	if err := os.MkdirAll(screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	path := filepath.Join(screenshotDir, ScreenshotName(now))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	if clipboardReady {
		clipboard.Write(clipboard.FmtImage, buf.Bytes())
	} else {
		log.Printf("screenshot: clipboard unavailable, saved %s only", path)
	}
	return path, nil
}

func ScreenshotName(now time.Time) string {
	return "Screenshot_" + now.Format("2006-01-02-15-04-05") + ".png"
}
