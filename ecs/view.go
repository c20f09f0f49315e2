package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View matches entities carrying a combination of components. The type
// parameter T must be a struct whose fields are pointers to component
// types; an optional ecs.EntityId field receives the entity id. Named
// pointer fields tagged `ecs:"optional"` are filled with nil when the
// component is absent instead of excluding the entity.
type View[T any] struct {
	world *World

	types       []reflect.Type
	optional    []bool
	offsets     []uintptr
	idOffset    int // byte offset of an EntityId field, or -1
	hasIdField  bool
}

// NewView builds a view over the world for the struct type T.
func NewView[T any](world *World) *View[T] {
	var zero T
	structType := reflect.TypeOf(zero)
	if structType.Kind() != reflect.Struct {
		panic("ecs: View type parameter must be a struct")
	}

	v := &View[T]{world: world, idOffset: -1}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == reflect.TypeFor[EntityId]() {
			v.idOffset = int(field.Offset)
			v.hasIdField = true
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("ecs: View struct fields must be component pointers or ecs.EntityId")
		}

		optional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				optional = true
			default:
				panic("ecs: unknown ecs tag value " + tag)
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, optional)
		v.offsets = append(v.offsets, field.Offset)
	}

	return v
}

// matches reports whether the archetype stores every required component.
func (v *View[T]) matches(a *Archetype) bool {
	for i, t := range v.types {
		if v.optional[i] {
			continue
		}
		if !a.HasType(t) {
			return false
		}
	}
	return true
}

// columnIndices maps each view field to its column in the archetype
// (-1 where absent).
func (v *View[T]) columnIndices(a *Archetype) []int {
	indices := make([]int, len(v.types))
	for i, t := range v.types {
		indices[i] = a.columnIndex(t)
	}
	return indices
}

// fill writes component pointers (and the entity id) into the result
// struct through its precomputed field offsets. Returns false if a
// required component is missing.
func (v *View[T]) fill(result unsafe.Pointer, a *Archetype, slot int, indices []int) bool {
	for i, colIdx := range indices {
		fieldPtr := unsafe.Pointer(uintptr(result) + v.offsets[i])

		var comp any
		if colIdx >= 0 {
			comp = a.columns[colIdx].Get(slot)
		}
		if comp == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}
		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&comp)).data
	}

	if v.hasIdField {
		idPtr := unsafe.Pointer(uintptr(result) + uintptr(v.idOffset))
		*(*EntityId)(idPtr) = MakeEntityId(a.id, uint32(slot))
	}
	return true
}

// Get returns the populated view struct for one entity, or nil if the
// entity is missing a required component.
func (v *View[T]) Get(id EntityId) *T {
	archetype, ok := v.world.archetypes[id.ArchetypeId()]
	if !ok || !v.matches(archetype) {
		return nil
	}

	var result T
	if !v.fill(unsafe.Pointer(&result), archetype, int(id.Slot()), v.columnIndices(archetype)) {
		return nil
	}
	return &result
}

// GetRef resolves an entity ref and returns its view struct, or nil.
func (v *View[T]) GetRef(ref *EntityRef) *T {
	id, ok := v.world.ResolveEntityRef(ref)
	if !ok {
		return nil
	}
	return v.Get(id)
}

// Iter yields every matching entity with its populated view struct.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.world.archetypes {
			if !v.matches(archetype) || len(archetype.columns) == 0 {
				continue
			}

			indices := v.columnIndices(archetype)

			var result T
			resultPtr := unsafe.Pointer(&result)

			for slot := range archetype.columns[0].Slots() {
				if !v.fill(resultPtr, archetype, slot, indices) {
					continue
				}
				if !yield(MakeEntityId(archetype.id, uint32(slot)), result) {
					return
				}
			}
		}
	}
}

// Values yields the populated view structs without entity ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
