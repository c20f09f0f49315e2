package ecs

import (
	"iter"
	"reflect"
	"slices"
	"unsafe"
	"weak"

	"github.com/kamstrup/intmap"
)

// Archetype stores every entity that carries exactly one combination of
// component types. Types are kept sorted by name; the column order matches
// the type order. Slot indices are stable until the entity is deleted.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []iColumn

	// Live EntityRefs handed out for entities in this archetype, keyed by
	// entity id. Weak pointers let abandoned refs be collected.
	refs *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]iColumn, len(types)),
		refs:    intmap.New[EntityId, weak.Pointer[EntityRef]](64),
	}
	for i, t := range types {
		factory := registry.factory(t)
		if factory == nil {
			panic("ecs: component type " + t.String() + " not registered")
		}
		a.columns[i] = factory()
	}
	return a
}

// Id returns the archetype's identifier.
func (a *Archetype) Id() uint32 {
	return a.id
}

// Types returns the sorted component types stored by this archetype.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// HasType reports whether the archetype stores the given component type.
func (a *Archetype) HasType(t reflect.Type) bool {
	return slices.Contains(a.types, t)
}

// Len returns the number of live entities in the archetype.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

func (a *Archetype) columnIndex(t reflect.Type) int {
	return slices.Index(a.types, t)
}

// spawn appends the components (already ordered to match a.types) and
// returns the new slot.
func (a *Archetype) spawn(components []any) uint32 {
	var slot int
	for i, comp := range components {
		slot = a.columns[i].Append(comp)
	}
	return uint32(slot)
}

// component returns a pointer to the entity's component of type t, or nil.
func (a *Archetype) component(slot uint32, t reflect.Type) any {
	idx := a.columnIndex(t)
	if idx < 0 {
		return nil
	}
	return a.columns[idx].Get(int(slot))
}

// delete frees the entity's slot in every column and invalidates any ref.
func (a *Archetype) delete(slot uint32) {
	id := MakeEntityId(a.id, slot)
	if ptr, ok := a.refs.Get(id); ok {
		if ref := ptr.Value(); ref != nil {
			ref.Id = 0
			ref.Archetype = nil
		}
		a.refs.Del(id)
	}
	for _, col := range a.columns {
		col.Delete(int(slot))
	}
}

// Entities iterates the ids of all live entities in this archetype.
func (a *Archetype) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for slot := range a.columns[0].Slots() {
			if !yield(MakeEntityId(a.id, uint32(slot))) {
				return
			}
		}
	}
}

// sortTypes orders component types canonically (by type name) so that any
// permutation of the same component set hashes to the same archetype.
func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, func(a, b reflect.Type) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
}

// hashTypes derives the archetype id from a sorted type list using FNV-1a
// over the runtime type pointers.
func hashTypes(types []reflect.Type) uint32 {
	const offsetBasis uint32 = 2166136261
	const prime uint32 = 16777619

	h := offsetBasis
	for _, t := range types {
		ptr := uintptr((*iface)(unsafe.Pointer(&t)).data)
		val := uint32(ptr)
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(ptr >> 32)
		}
		h ^= val
		h *= prime
	}
	return h
}
