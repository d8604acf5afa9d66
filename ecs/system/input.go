package system

import (
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// InputSource fills one tick of input. The ebiten and tcell hosts each
// provide one.
type InputSource interface {
	Poll(in *component.Input)
}

type InputSystem struct {
	source InputSource
	frame  component.Input
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	i.frame.Reset()
	if i.source != nil {
		i.source.Poll(&i.frame)
	}

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		typed := append(input.Typed[:0], i.frame.Typed...)
		*input = i.frame
		input.Typed = typed
	})
}
