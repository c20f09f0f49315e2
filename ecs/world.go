package ecs

import (
	"reflect"
	"unsafe"
	"weak"
)

// World owns all entity and singleton storage for one ECS instance.
type World struct {
	archetypes map[uint32]*Archetype
	registry   *ComponentRegistry
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	typ reflect.Type
	ptr unsafe.Pointer
}

// NewWorld creates an empty world backed by the given component registry.
func NewWorld(registry *ComponentRegistry) *World {
	return &World{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Spawn creates an entity from the given components and returns its id.
// Components may be passed by value or by pointer; they are stored by value.
func (w *World) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("ecs: cannot spawn an entity without components")
	}

	types := componentTypes(components)
	ordered := orderComponents(components, types)

	archetypeId := hashTypes(types)
	archetype, ok := w.archetypes[archetypeId]
	if !ok {
		archetype = newArchetype(archetypeId, types, w.registry)
		w.archetypes[archetypeId] = archetype
	}

	slot := archetype.spawn(ordered)
	return MakeEntityId(archetypeId, slot)
}

// Delete removes the entity and all its components. Deleting an unknown id
// is a no-op.
func (w *World) Delete(id EntityId) {
	if archetype, ok := w.archetypes[id.ArchetypeId()]; ok {
		archetype.delete(id.Slot())
	}
}

// GetComponent returns a pointer to the entity's component of type t, or
// nil if the entity does not exist or lacks the component.
func (w *World) GetComponent(id EntityId, t reflect.Type) any {
	archetype, ok := w.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.component(id.Slot(), t)
}

// HasComponent reports whether the entity's archetype stores type t.
func (w *World) HasComponent(id EntityId, t reflect.Type) bool {
	archetype, ok := w.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.HasType(t)
}

// AddComponent moves the entity to the archetype extended by the new
// component and returns its new id. Live EntityRefs are rewritten.
func (w *World) AddComponent(id EntityId, component any) EntityId {
	old := w.archetypes[id.ArchetypeId()]
	if old == nil {
		return 0
	}

	addType := reflect.TypeOf(component)
	if addType.Kind() == reflect.Ptr {
		addType = addType.Elem()
	}

	types := make([]reflect.Type, 0, len(old.types)+1)
	types = append(types, old.types...)
	types = append(types, addType)
	sortTypes(types)

	components := make([]any, len(types))
	for i, t := range types {
		if t == addType {
			components[i] = component
		} else {
			components[i] = old.component(id.Slot(), t)
		}
	}

	return w.migrate(old, id, types, components)
}

// RemoveComponent moves the entity to the archetype without type t and
// returns its new id. Removing the last component deletes the entity and
// returns 0.
func (w *World) RemoveComponent(id EntityId, t reflect.Type) EntityId {
	old := w.archetypes[id.ArchetypeId()]
	if old == nil {
		return 0
	}

	types := make([]reflect.Type, 0, len(old.types))
	components := make([]any, 0, len(old.types))
	for _, typ := range old.types {
		if typ == t {
			continue
		}
		types = append(types, typ)
		components = append(components, old.component(id.Slot(), typ))
	}

	if len(types) == 0 {
		old.delete(id.Slot())
		return 0
	}

	return w.migrate(old, id, types, components)
}

// migrate respawns the entity in the archetype for types, carries its live
// ref over, and frees the old slot.
func (w *World) migrate(old *Archetype, id EntityId, types []reflect.Type, components []any) EntityId {
	newArchetypeId := hashTypes(types)
	next, ok := w.archetypes[newArchetypeId]
	if !ok {
		next = newArchetype(newArchetypeId, types, w.registry)
		w.archetypes[newArchetypeId] = next
	}

	weakPtr, hasRef := old.refs.Get(id)

	slot := next.spawn(components)
	newId := MakeEntityId(newArchetypeId, slot)

	if hasRef {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = newId
			ref.Archetype = next
		}
		old.refs.Del(id)
		next.refs.Put(newId, weakPtr)
	}

	// Free the old slot directly: delete() would also clear the ref that
	// was just moved.
	for _, col := range old.columns {
		col.Delete(int(id.Slot()))
	}
	return newId
}

// EntityRefFor returns a stable ref for the entity, reusing a live ref if
// one exists. Returns nil for an unknown id.
func (w *World) EntityRefFor(id EntityId) *EntityRef {
	archetype, ok := w.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}

	if ptr, ok := archetype.refs.Get(id); ok {
		if ref := ptr.Value(); ref != nil {
			return ref
		}
		archetype.refs.Del(id)
	}

	ref := &EntityRef{Id: id, Archetype: archetype}
	archetype.refs.Put(id, weak.Make(ref))
	return ref
}

// ResolveEntityRef returns the entity id behind a ref, or false if the ref
// is nil or its entity has been deleted.
func (w *World) ResolveEntityRef(ref *EntityRef) (EntityId, bool) {
	if ref == nil || ref.Id == 0 {
		return 0, false
	}
	return ref.Id, true
}

// Archetype returns the archetype storing exactly the given component
// combination, or nil if no entity with that combination was ever spawned.
func (w *World) Archetype(components ...any) *Archetype {
	types := componentTypes(components)
	return w.archetypes[hashTypes(types)]
}

// AddSingleton stores a world-global component instance keyed by its type.
// Re-adding a type replaces the previous value.
func (w *World) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
		value = reflect.ValueOf(value).Elem().Interface()
	}

	boxed := reflect.New(t)
	boxed.Elem().Set(reflect.ValueOf(value))
	w.singletons[t] = &singletonEntry{
		typ: t,
		ptr: boxed.UnsafePointer(),
	}
}

// ReadSingleton fills target, which must be a **T, with a pointer to the
// stored singleton of type T. Reports whether the singleton exists.
func (w *World) ReadSingleton(target any) bool {
	outer := reflect.ValueOf(target)
	if outer.Kind() != reflect.Ptr || outer.Elem().Kind() != reflect.Ptr {
		panic("ecs: ReadSingleton target must be a pointer to a component pointer")
	}

	t := outer.Elem().Type().Elem()
	entry, ok := w.singletons[t]
	if !ok {
		return false
	}

	outer.Elem().Set(reflect.NewAt(t, entry.ptr))
	return true
}

func (w *World) singletonFor(t reflect.Type) *singletonEntry {
	return w.singletons[t]
}

// componentTypes extracts the (sorted, dereferenced) component types of a
// spawn argument list, rejecting non-value component kinds.
func componentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		t := reflect.TypeOf(comp)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("ecs: components must be value types")
		}
		types = append(types, t)
	}
	sortTypes(types)
	return types
}

// orderComponents arranges components to match the sorted type order.
func orderComponents(components []any, types []reflect.Type) []any {
	ordered := make([]any, len(types))
	for _, comp := range components {
		t := reflect.TypeOf(comp)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		for i, want := range types {
			if want == t {
				ordered[i] = comp
				break
			}
		}
	}
	return ordered
}

// ComponentReader is the read-only surface needed by ReadComponent.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent fetches a typed component pointer for an entity. Returns
// nil if the entity lacks the component.
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	comp := reader.GetComponent(id, reflect.TypeFor[T]())
	if comp == nil {
		return nil
	}
	return comp.(*T)
}
