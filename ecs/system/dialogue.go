package system

import (
	"log"

	"github.com/milk9111/bunker/dialogue"
	"github.com/milk9111/bunker/ecs"
	"github.com/milk9111/bunker/ecs/component"
)

// DialogueSystem runs a Director from its trigger: entering starts or
// resumes, Next advances, leaving hides. A finished dialogue loads the next
// scene.
type DialogueSystem struct{}

func NewDialogueSystem() *DialogueSystem {
	return &DialogueSystem{}
}

func (s *DialogueSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	var input *component.Input
	if e, _, ok := PlayerPosition(w); ok {
		input, _ = ecs.Get(w, e, component.InputComponent)
	}

	ecs.ForEach2(w, component.DialogueComponent, component.TriggerComponent, func(e ecs.Entity, dl *component.Dialogue, trig *component.Trigger) {
		dir := dl.Director
		if dir == nil {
			return
		}
		if dir.OnShow == nil {
			dir.OnShow = func(line string) {
				dl.Line = line
				dl.Visible = true
			}
			dir.OnHide = func() {
				dl.Visible = false
			}
			dir.OnComplete = func(level int) {
				next, ok := dialogue.NextScene(level)
				if !ok {
					return
				}
				log.Printf("dialogue: level %d finished, loading %s", level, next)
				RequestScene(w, next)
			}
		}

		switch {
		case trig.Entered:
			dir.Enter()
			if dir.Active() {
				playAnimation(w, e, "talk")
			}
		case trig.Exited:
			dir.Exit()
		case input != nil && input.NextPressed && dir.Active():
			dir.Next()
		}
	})
}
