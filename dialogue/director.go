// Package dialogue picks the assistant's lines from level progress and walks
// the player through them.
package dialogue

import (
	"log"

	"github.com/milk9111/bunker/progress"
)

// Session is one run through a line sequence.
type Session struct {
	Level     int
	Lines     []string
	Index     int
	Active    bool
	Completed bool
	Finale    bool

	once bool
}

func (s *Session) Current() string {
	if s == nil || s.Index < 0 || s.Index >= len(s.Lines) {
		return ""
	}
	return s.Lines[s.Index]
}

// Director owns the dialogue for one scene.
type Director struct {
	data    *Data
	tracker *progress.Tracker
	session *Session

	OnShow     func(line string)
	OnHide     func()
	OnComplete func(level int)
}

func NewDirector(data *Data, tracker *progress.Tracker) *Director {
	return &Director{data: data, tracker: tracker}
}

func (d *Director) Session() *Session {
	return d.session
}

// Active reports whether a line is on screen.
func (d *Director) Active() bool {
	return d.session != nil && d.session.Active
}

// Enter starts the dialogue for the last completed level, or resumes a
// session that was interrupted. A completed session stays finished.
func (d *Director) Enter() {
	if d.session != nil {
		if d.session.Completed || d.session.Active {
			return
		}
		d.session.Active = true
		d.show()
		return
	}
	if d.tracker == nil {
		return
	}

	level := d.tracker.LastCompleted()
	ld, ok := d.data.Find(level)
	if !ok || len(ld.Lines) == 0 {
		log.Printf("dialogue: no dialogue for level %d", level)
		return
	}

	s := &Session{Level: level, Lines: ld.Lines, once: ld.Once}
	if ld.Once && d.tracker.Shown(progress.DialogueShownKey(level)) {
		if len(ld.Finale) == 0 {
			log.Printf("dialogue: no finale for level %d", level)
			return
		}
		s.Lines = ld.Finale
		s.Finale = true
	}
	s.Active = true
	d.session = s
	d.show()
}

// Next advances to the following line, completing the session after the
// last one.
func (d *Director) Next() {
	s := d.session
	if s == nil || !s.Active {
		return
	}
	s.Index++
	if s.Index < len(s.Lines) {
		d.show()
		return
	}

	s.Active = false
	s.Completed = true
	s.Index = len(s.Lines)
	d.hide()
	if s.once && !s.Finale {
		if err := d.tracker.MarkShown(progress.DialogueShownKey(s.Level)); err != nil {
			log.Printf("dialogue: mark shown: %v", err)
		}
	}
	if d.OnComplete != nil {
		d.OnComplete(s.Level)
	}
}

// Exit hides the dialogue. The current line is kept for the next Enter.
func (d *Director) Exit() {
	if d.session == nil || !d.session.Active {
		return
	}
	d.session.Active = false
	d.hide()
}

func (d *Director) show() {
	if d.OnShow != nil {
		d.OnShow(d.session.Current())
	}
}

func (d *Director) hide() {
	if d.OnHide != nil {
		d.OnHide()
	}
}

// NextScene is the scene to load once the dialogue for level is finished.
func NextScene(level int) (string, bool) {
	switch {
	case level <= 0:
		return "Level1", true
	case level == 1:
		return "Level2", true
	default:
		log.Printf("dialogue: all levels are completed")
		return "", false
	}
}
