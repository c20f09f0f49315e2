package ecs

import "unsafe"

// EntityId packs the owning archetype id into the upper 32 bits and the
// slot index within that archetype into the lower 32 bits. The zero value
// is never a live entity.
type EntityId uint64

// MakeEntityId builds an EntityId from an archetype id and a slot index.
func MakeEntityId(archetypeId uint32, slot uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(slot))
}

// ArchetypeId returns the archetype id half of the entity id.
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Slot returns the slot index half of the entity id.
func (e EntityId) Slot() uint32 {
	return uint32(e)
}

// EntityRef is a stable handle to an entity. Unlike an EntityId it survives
// archetype migrations (AddComponent/RemoveComponent): the world rewrites
// live refs in place. A deleted entity leaves the ref with a zero Id.
type EntityRef struct {
	Id        EntityId
	Archetype *Archetype
}

// iface mirrors the runtime layout of an interface value so component
// pointers can be extracted without an allocation.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
