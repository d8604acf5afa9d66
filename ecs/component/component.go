// Package component declares the data the bunker ECS stores. Each component
// type gets one handle, created at package init.
package component

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

// Kind is satisfied by every ComponentKind and is what untyped world queries
// accept.
type Kind interface {
	ID() ComponentID
}

var (
	nextComponentID atomic.Uint32
	namesMu         sync.Mutex
	names           = map[ComponentID]string{}
)

type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	id := ComponentID(nextComponentID.Add(1))
	namesMu.Lock()
	names[id] = reflect.TypeFor[T]().String()
	namesMu.Unlock()
	return ComponentKind[T]{id: id}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// Name is the Go type name of the component, used by the debug overlay.
func Name(id ComponentID) string {
	namesMu.Lock()
	defer namesMu.Unlock()
	return names[id]
}

type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
