package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton gives systems cached pointer access to a world-global
// component that belongs to no entity (clocks, configuration, input state).
type Singleton[T any] struct {
	world *World
	ptr   unsafe.Pointer
}

// NewSingleton binds a singleton accessor to the world, creating the
// stored value first if it does not exist. With an initializer the created
// value starts from it, otherwise from the zero value.
func NewSingleton[T any](world *World, initializer ...T) *Singleton[T] {
	t := reflect.TypeFor[T]()
	if world.singletonFor(t) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		world.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(world)
	return s
}

// Init binds the accessor to a world. Called by the scheduler when the
// owning system is registered.
func (s *Singleton[T]) Init(world *World) {
	s.world = world
	s.refresh()
}

// Get returns a pointer to the singleton value, or nil if the world holds
// no singleton of this type.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.refresh()
	}
	if s.ptr == nil {
		return nil
	}
	return (*T)(s.ptr)
}

// Exists reports whether the singleton has been added to the world.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) refresh() {
	if s.world == nil {
		return
	}
	if entry := s.world.singletonFor(reflect.TypeFor[T]()); entry != nil {
		s.ptr = entry.ptr
	} else {
		s.ptr = nil
	}
}
