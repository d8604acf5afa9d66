package progress

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	flagsObject   = "progress"
	flagsProperty = "flags"
)

// GdataStore keeps flags in memory and writes them as one yaml property
// through gdata on Save. A nil manager degrades to memory only.
type GdataStore struct {
	manager *gdata.Manager
	values  map[string]int
}

// OpenGdataStore opens the per-user data directory for appName. When that
// fails the returned store still works, without persistence.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewGdataStore(nil), fmt.Errorf("progress: open %s: %w", appName, err)
	}
	s := NewGdataStore(m)
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

func NewGdataStore(m *gdata.Manager) *GdataStore {
	return &GdataStore{manager: m, values: map[string]int{}}
}

// Load replaces the in-memory flags with the persisted ones.
func (s *GdataStore) Load() error {
	if s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(flagsObject, flagsProperty) {
		s.values = map[string]int{}
		return nil
	}

	data, err := s.manager.LoadObjectProp(flagsObject, flagsProperty)
	if err != nil {
		return fmt.Errorf("progress: load flags: %w", err)
	}
	values := map[string]int{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("progress: decode flags: %w", err)
	}
	s.values = values
	log.Printf("progress: loaded %d flags", len(values))
	return nil
}

func (s *GdataStore) Int(key string) int {
	return s.values[key]
}

func (s *GdataStore) SetInt(key string, value int) {
	s.values[key] = value
}

func (s *GdataStore) DeleteAll() {
	s.values = map[string]int{}
}

func (s *GdataStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("progress: encode flags: %w", err)
	}
	if err := s.manager.SaveObjectProp(flagsObject, flagsProperty, data); err != nil {
		return fmt.Errorf("progress: save flags: %w", err)
	}
	return nil
}

func (s *GdataStore) Keys() []string {
	return sortedKeys(s.values)
}
