package prefabs

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce drops repeated events for one file; editors often write twice.
const debounce = 100 * time.Millisecond

type ChangeKind int

const (
	ChangePrefab ChangeKind = iota
	ChangeDialogue
	ChangeLevel
)

// Change is one content file edited on disk.
type Change struct {
	Name string
	Kind ChangeKind
}

// DialogueFile is the prefab holding every level's dialogue.
const DialogueFile = "dialogue.yaml"

// Classify maps a file path to the content it holds. Anything that is not
// yaml or json is ignored.
func Classify(path string) (Change, bool) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if name == DialogueFile {
			return Change{Name: name, Kind: ChangeDialogue}, true
		}
		return Change{Name: name, Kind: ChangePrefab}, true
	case ".json":
		return Change{Name: strings.TrimSuffix(name, filepath.Ext(name)), Kind: ChangeLevel}, true
	}
	return Change{}, false
}

// Watcher reports content files that changed on disk. The pump goroutine
// only forwards classified changes; the game loop drains them with Poll.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan Change
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		changes: make(chan Change, 16),
		closeCh: make(chan struct{}),
	}
	go w.pump()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns the changes seen since the last call without blocking. A
// file edited several times is reported once.
func (w *Watcher) Poll() []Change {
	if w == nil {
		return nil
	}
	var out []Change
	seen := map[Change]bool{}
	for {
		select {
		case c := <-w.changes:
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		default:
			return out
		}
	}
}

func (w *Watcher) pump() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			change, ok := Classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.changes <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("prefabs: watch: %v", err)
		case <-w.closeCh:
			return
		}
	}
}
