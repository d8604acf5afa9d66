package dialogue

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LevelDialogue is the line sequence shown after a given level. A Once
// dialogue is replaced by Finale after it has been completed.
type LevelDialogue struct {
	Level  int      `yaml:"level"`
	Lines  []string `yaml:"lines"`
	Once   bool     `yaml:"once"`
	Finale []string `yaml:"finale"`
}

type Data struct {
	Levels []LevelDialogue `yaml:"levels"`
}

func Parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("dialogue: parse: %w", err)
	}
	seen := map[int]bool{}
	for _, l := range d.Levels {
		if seen[l.Level] {
			return nil, fmt.Errorf("dialogue: level %d defined twice", l.Level)
		}
		seen[l.Level] = true
	}
	return &d, nil
}

func (d *Data) Find(level int) (LevelDialogue, bool) {
	if d == nil {
		return LevelDialogue{}, false
	}
	for _, l := range d.Levels {
		if l.Level == level {
			return l, true
		}
	}
	return LevelDialogue{}, false
}
