package door

import (
	"strings"
	"unicode"
)

// OpenDelay is how long a door waits after a correct password before it
// starts to open.
const OpenDelay = 0.5

type Result int

const (
	ResultNone Result = iota
	ResultCorrect
	ResultWrong
)

// Password is a door behind a numeric keypad. Entering the trigger shows the
// keypad until the right code has been entered once; after that the door
// behaves like an automatic one.
type Password struct {
	Secret string
	Slider *Slider
	OnCue  func(cue string)

	Visible   bool
	Correct   bool
	InTrigger bool

	input []rune
}

func NewPassword(secret string, slider *Slider) *Password {
	return &Password{Secret: secret, Slider: slider}
}

func (p *Password) Enter() {
	p.InTrigger = true
	if p.Correct {
		p.Open()
		return
	}
	p.show()
}

func (p *Password) Exit() {
	p.InTrigger = false
	if !p.Correct {
		p.Hide()
		return
	}
	if p.Slider.Close() {
		p.cue(CueClose)
	}
}

// Open slides the door open. It is called directly on re-entry and after
// OpenDelay following a correct code.
func (p *Password) Open() {
	if p.Slider.Open() {
		p.cue(CueOpen)
	}
}

// Type accepts one digit while the keypad is up.
func (p *Password) Type(r rune) {
	if !p.Visible || !unicode.IsDigit(r) {
		return
	}
	p.input = append(p.input, r)
	p.cue(CueKeyPress)
}

func (p *Password) Backspace() {
	if !p.Visible || len(p.input) == 0 {
		return
	}
	p.input = p.input[:len(p.input)-1]
	p.cue(CueKeyPress)
}

// Mask is what the keypad displays: one star per typed digit.
func (p *Password) Mask() string {
	return strings.Repeat("*", len(p.input))
}

// Submit checks the typed code. An empty entry is ignored.
func (p *Password) Submit() Result {
	if !p.Visible || len(p.input) == 0 {
		return ResultNone
	}
	if string(p.input) == p.Secret {
		p.Correct = true
		p.cue(CueCorrect)
		p.Hide()
		return ResultCorrect
	}
	p.cue(CueWrong)
	p.input = p.input[:0]
	return ResultWrong
}

// Hide closes the keypad and drops whatever was typed.
func (p *Password) Hide() {
	p.Visible = false
	p.input = p.input[:0]
}

func (p *Password) show() {
	p.Visible = true
	p.input = p.input[:0]
}

func (p *Password) cue(name string) {
	if p.OnCue != nil {
		p.OnCue(name)
	}
}
