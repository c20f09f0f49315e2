package ecs

import (
	"iter"
	"unsafe"
)

// Query is a View with per-frame result caching. The scheduler refreshes
// every registered system's queries once per frame before any system runs,
// so systems iterate a consistent snapshot. Iterating a query that has not
// been refreshed this frame panics.
type Query[T any] struct {
	view  *View[T]
	world *World

	matched        []*Archetype
	lastArchetypes int

	entities   []EntityId
	components []T
	fresh      bool
}

// NewQuery builds a standalone query. Queries embedded in system structs
// are initialized by the scheduler instead.
func NewQuery[T any](world *World) *Query[T] {
	q := &Query[T]{}
	q.Init(world)
	return q
}

// Init (re)binds the query to a world. Called by the scheduler when the
// owning system is registered.
func (q *Query[T]) Init(world *World) {
	q.view = NewView[T](world)
	q.world = world
	q.matched = nil
	q.lastArchetypes = -1
	q.fresh = false
}

// Refresh rebuilds the entity and component snapshot for this frame.
func (q *Query[T]) Refresh() {
	if len(q.world.archetypes) != q.lastArchetypes {
		q.matched = q.matched[:0]
		for _, archetype := range q.world.archetypes {
			if q.view.matches(archetype) {
				q.matched = append(q.matched, archetype)
			}
		}
		q.lastArchetypes = len(q.world.archetypes)
	}

	q.entities = q.entities[:0]
	q.components = q.components[:0]

	for _, archetype := range q.matched {
		if len(archetype.columns) == 0 {
			continue
		}
		indices := q.view.columnIndices(archetype)

		var result T
		for slot := range archetype.columns[0].Slots() {
			if !q.view.fill(unsafe.Pointer(&result), archetype, slot, indices) {
				continue
			}
			q.entities = append(q.entities, MakeEntityId(archetype.id, uint32(slot)))
			q.components = append(q.components, result)
		}
	}

	q.fresh = true
}

// Iter yields the cached (EntityId, T) pairs for this frame.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.fresh {
		panic("ecs: Query.Iter called before Refresh")
	}
	return func(yield func(EntityId, T) bool) {
		for i := range q.entities {
			if !yield(q.entities[i], q.components[i]) {
				return
			}
		}
	}
}

// Values yields the cached view structs for this frame.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.fresh {
		panic("ecs: Query.Values called before Refresh")
	}
	return func(yield func(T) bool) {
		for i := range q.components {
			if !yield(q.components[i]) {
				return
			}
		}
	}
}

// Count returns the number of entities in this frame's snapshot.
func (q *Query[T]) Count() int {
	if !q.fresh {
		panic("ecs: Query.Count called before Refresh")
	}
	return len(q.entities)
}
