package ecs

import "reflect"

// Commands buffers structural changes requested during a frame. Systems
// must not mutate archetypes while queries iterate them, so spawns,
// deletions and component moves are queued here and applied by the
// scheduler after every system has run.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	adds    []pendingAdd
	removes []pendingRemove
	defers  []func()
}

type pendingAdd struct {
	entity    EntityId
	component any
}

type pendingRemove struct {
	entity EntityId
	typ    reflect.Type
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues the creation of an entity with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues the deletion of an entity.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, pendingAdd{entity: entity, component: component})
}

// RemoveComponent queues a component removal.
func (c *Commands) RemoveComponent(entity EntityId, t reflect.Type) {
	c.removes = append(c.removes, pendingRemove{entity: entity, typ: t})
}

// Defer queues an arbitrary function to run after the structural changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies the buffered operations to the world and resets the
// buffers. Deletions win over adds and removes targeting the same entity.
func (c *Commands) Flush(world *World) {
	deleted := make(map[EntityId]bool, len(c.deletes))
	for _, id := range c.deletes {
		world.Delete(id)
		deleted[id] = true
	}

	for _, rm := range c.removes {
		if !deleted[rm.entity] {
			world.RemoveComponent(rm.entity, rm.typ)
		}
	}

	for _, add := range c.adds {
		if !deleted[add.entity] {
			world.AddComponent(add.entity, add.component)
		}
	}

	for _, components := range c.spawns {
		world.Spawn(components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
