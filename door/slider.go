// Package door holds the sliding door panels and the password keypad that
// gates them.
package door

import "github.com/milk9111/bunker/common"

// Cue names emitted by doors.
const (
	CueOpen     = "door_open"
	CueClose    = "door_close"
	CueKeyPress = "key_press"
	CueCorrect  = "password_correct"
	CueWrong    = "password_wrong"
)

// Slider moves a door panel between its closed and open positions.
type Slider struct {
	Closed   common.Vec2
	Opened   common.Vec2
	Duration float64
	Ease     common.Ease

	pos   common.Vec2
	from  common.Vec2
	to    common.Vec2
	tween common.Tween
	open  bool
}

func NewSlider(closed, opened common.Vec2, duration float64) *Slider {
	return &Slider{
		Closed:   closed,
		Opened:   opened,
		Duration: duration,
		Ease:     common.EaseInOutQuad,
		pos:      closed,
	}
}

func (s *Slider) Position() common.Vec2 { return s.pos }
func (s *Slider) IsOpen() bool          { return s.open }
func (s *Slider) Moving() bool          { return s.tween.Running() }

// Open starts sliding toward the open position from wherever the panel is.
// It returns false when the door is already open.
func (s *Slider) Open() bool {
	if s.open {
		return false
	}
	s.open = true
	s.moveTo(s.Opened)
	return true
}

func (s *Slider) Close() bool {
	if !s.open {
		return false
	}
	s.open = false
	s.moveTo(s.Closed)
	return true
}

func (s *Slider) Advance(dt float64) common.Vec2 {
	if !s.tween.Running() {
		return s.pos
	}
	t := s.tween.Advance(dt)
	s.pos = common.LerpVec(s.from, s.to, t)
	return s.pos
}

func (s *Slider) moveTo(target common.Vec2) {
	s.from = s.pos
	s.to = target
	s.tween.Start(0, 1, s.Duration, s.Ease)
	if s.Duration <= 0 {
		s.pos = target
	}
}

// Automatic opens while the player stands in its trigger.
type Automatic struct {
	Slider *Slider
	OnCue  func(cue string)
}

func (a *Automatic) Enter() {
	if a.Slider.Open() {
		a.cue(CueOpen)
	}
}

func (a *Automatic) Exit() {
	if a.Slider.Close() {
		a.cue(CueClose)
	}
}

func (a *Automatic) cue(name string) {
	if a.OnCue != nil {
		a.OnCue(name)
	}
}

// Translate shifts the whole track by d, keeping the panel's place on it.
func (s *Slider) Translate(d common.Vec2) {
	s.Closed = s.Closed.Add(d)
	s.Opened = s.Opened.Add(d)
	s.pos = s.pos.Add(d)
	s.from = s.from.Add(d)
	s.to = s.to.Add(d)
}
