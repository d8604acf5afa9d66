package component

import "github.com/milk9111/bunker/dialogue"

// Dialogue shows the Director's lines while the player stands in the
// trigger.
type Dialogue struct {
	Director *dialogue.Director
	Line     string
	Visible  bool
}

var DialogueComponent = NewComponent[Dialogue]()
