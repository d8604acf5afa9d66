package progress

import (
	"fmt"
	"log"
)

// MaxLevel is the highest level number LastCompleted looks at.
const MaxLevel = 10

func CompletedKey(level int) string {
	return fmt.Sprintf("Level%d_Completed", level)
}

func DialogueShownKey(level int) string {
	return fmt.Sprintf("Level%d_DialogueShown", level)
}

// Tracker is the only writer of progress flags. Flags only ever go from 0
// to 1, except through ResetAll.
type Tracker struct {
	store Store
}

func NewTracker(store Store) *Tracker {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Tracker{store: store}
}

func (t *Tracker) Store() Store {
	return t.store
}

// Complete marks level as done and saves.
func (t *Tracker) Complete(level int) error {
	return t.set(CompletedKey(level))
}

func (t *Tracker) Completed(level int) bool {
	return t.store.Int(CompletedKey(level)) == 1
}

// LastCompleted returns the highest completed level in 1..MaxLevel, or 0
// when none is.
func (t *Tracker) LastCompleted() int {
	last := 0
	for i := 1; i <= MaxLevel; i++ {
		if t.Completed(i) {
			last = i
		}
	}
	return last
}

func (t *Tracker) MarkShown(key string) error {
	return t.set(key)
}

func (t *Tracker) Shown(key string) bool {
	return t.store.Int(key) == 1
}

// Flag reads any key as a boolean.
func (t *Tracker) Flag(key string) bool {
	return t.store.Int(key) == 1
}

// ResetAll clears every flag and saves.
func (t *Tracker) ResetAll() error {
	t.store.DeleteAll()
	if err := t.store.Save(); err != nil {
		return err
	}
	log.Printf("progress: all progress has been reset")
	return nil
}

func (t *Tracker) set(key string) error {
	if t.store.Int(key) == 1 {
		return nil
	}
	t.store.SetInt(key, 1)
	return t.store.Save()
}

// Unlocked reports whether the level select menu lets the player pick scene.
func (t *Tracker) Unlocked(scene string) bool {
	switch scene {
	case "Level1":
		return t.Completed(0)
	case "Level2":
		return t.Completed(1)
	case "CleanLevel":
		return t.Completed(2)
	default:
		return true
	}
}
