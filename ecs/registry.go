package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry maps component types to column factories. Every World
// owns one registry, so independent worlds never share component state.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iColumn
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iColumn),
	}
}

// RegisterComponent makes T usable as a component in worlds built on this
// registry. Spawning an unregistered component type panics.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() iColumn {
		return &column[T]{}
	}
}

func (r *ComponentRegistry) factory(t reflect.Type) func() iColumn {
	return r.factories[t]
}

// iColumn is the type-erased face of a component column.
type iColumn interface {
	Append(component any) int
	Get(slot int) any
	Has(slot int) bool
	Delete(slot int)
	Len() int
	Slots() iter.Seq[int]
}

const columnBlockSize = 64

// column stores components of one type in fixed-size blocks. Blocks are
// never reallocated, so pointers handed out by Get stay valid while the
// slot is live. Deleted slots are recycled before the column grows.
type column[T any] struct {
	blocks [][columnBlockSize]T
	live   [][columnBlockSize]bool
	free   []int
	top    int
}

func (c *column[T]) locate(slot int) (block, offset int) {
	return slot / columnBlockSize, slot % columnBlockSize
}

// Append stores a component and returns its slot. Accepts T or *T.
func (c *column[T]) Append(component any) int {
	var value T
	switch v := component.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return -1
	}

	var slot int
	if n := len(c.free); n > 0 {
		slot = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		slot = c.top
		c.top++
		if block, _ := c.locate(slot); block >= len(c.blocks) {
			c.blocks = append(c.blocks, [columnBlockSize]T{})
			c.live = append(c.live, [columnBlockSize]bool{})
		}
	}

	block, offset := c.locate(slot)
	c.blocks[block][offset] = value
	c.live[block][offset] = true
	return slot
}

// Get returns a pointer to the component at slot, or nil for a dead slot.
func (c *column[T]) Get(slot int) any {
	if slot < 0 || slot >= c.top {
		return nil
	}
	block, offset := c.locate(slot)
	if !c.live[block][offset] {
		return nil
	}
	return &c.blocks[block][offset]
}

// Has reports whether slot holds a live component.
func (c *column[T]) Has(slot int) bool {
	if slot < 0 || slot >= c.top {
		return false
	}
	block, offset := c.locate(slot)
	return c.live[block][offset]
}

// Delete zeroes the slot and marks it for reuse.
func (c *column[T]) Delete(slot int) {
	if slot < 0 || slot >= c.top {
		return
	}
	block, offset := c.locate(slot)
	if !c.live[block][offset] {
		return
	}
	var zero T
	c.blocks[block][offset] = zero
	c.live[block][offset] = false
	c.free = append(c.free, slot)
}

// Len returns the number of live components.
func (c *column[T]) Len() int {
	return c.top - len(c.free)
}

// Slots iterates the live slot indices in ascending order.
func (c *column[T]) Slots() iter.Seq[int] {
	return func(yield func(int) bool) {
		for slot := 0; slot < c.top; slot++ {
			block, offset := c.locate(slot)
			if !c.live[block][offset] {
				continue
			}
			if !yield(slot) {
				return
			}
		}
	}
}
