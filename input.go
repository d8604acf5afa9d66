package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bunker/ecs/component"
)

// KeyboardInput reads the keyboard and the first gamepad once per tick.
type KeyboardInput struct {
	chars []rune

	screenshot bool
}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

func (k *KeyboardInput) Poll(in *component.Input) {
	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.AttackPressed = inpututil.IsKeyJustPressed(ebiten.KeyJ)
	in.ShootPressed = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.InteractPressed = inpututil.IsKeyJustPressed(ebiten.KeyE)
	in.NextPressed = inpututil.IsKeyJustPressed(ebiten.KeyN)
	in.EscapePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.PausePressed = in.EscapePressed
	in.ScreenshotPressed = inpututil.IsKeyJustPressed(ebiten.KeyK)
	in.Backspace = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	in.Submit = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX > stickDeadzone || leftX < -stickDeadzone {
			moveX = leftX
		}
		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.AttackPressed = in.AttackPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.ShootPressed = in.ShootPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		in.InteractPressed = in.InteractPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
	}
	in.MoveX = moveX

	k.chars = ebiten.AppendInputChars(k.chars[:0])
	in.Typed = append(in.Typed, k.chars...)

	if in.ScreenshotPressed {
		k.screenshot = true
	}
}

// TakeScreenshot reports and clears a pending screenshot request.
func (k *KeyboardInput) TakeScreenshot() bool {
	ok := k.screenshot
	k.screenshot = false
	return ok
}
