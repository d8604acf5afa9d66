// Package progress persists level completion flags and answers the
// questions the menus and dialogue ask about them.
package progress

import "sort"

// Store is a flat key to integer store. Missing keys read as 0.
type Store interface {
	Int(key string) int
	SetInt(key string, value int)
	DeleteAll()
	Save() error
}

// MemoryStore keeps flags for the lifetime of the process only.
type MemoryStore struct {
	values map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]int{}}
}

func (s *MemoryStore) Int(key string) int {
	return s.values[key]
}

func (s *MemoryStore) SetInt(key string, value int) {
	if s.values == nil {
		s.values = map[string]int{}
	}
	s.values[key] = value
}

func (s *MemoryStore) DeleteAll() {
	s.values = map[string]int{}
}

func (s *MemoryStore) Save() error {
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *MemoryStore) Keys() []string {
	return sortedKeys(s.values)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
