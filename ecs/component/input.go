package component

// Input stores per-tick input state. The host fills it once per tick; the
// *Pressed fields are true only on the tick the key went down.
type Input struct {
	MoveX             float64
	JumpPressed       bool
	AttackPressed     bool
	ShootPressed      bool
	InteractPressed   bool
	NextPressed       bool
	PausePressed      bool
	EscapePressed     bool
	ScreenshotPressed bool

	Typed     []rune
	Backspace bool
	Submit    bool
}

// Reset clears the edge-triggered fields for the next tick.
func (in *Input) Reset() {
	*in = Input{Typed: in.Typed[:0]}
}

var InputComponent = NewComponent[Input]()
