package store

import "github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"

type entry[T any] struct {
	rec     T
	version int64
}

// collection is one ordered, versioned record sequence. Callers hold the
// Store lock; the collection itself does no locking.
type collection[T any] struct {
	keyOf      func(T) entities.ID
	order      []entities.ID
	entries    map[entities.ID]entry[T]
	tombstones map[entities.ID]int64
}

func newCollection[T any](keyOf func(T) entities.ID) *collection[T] {
	return &collection[T]{
		keyOf:      keyOf,
		entries:    make(map[entities.ID]entry[T]),
		tombstones: make(map[entities.ID]int64),
	}
}

func (c *collection[T]) upsert(rec T, version int64) {
	id := c.keyOf(rec)
	if _, exists := c.entries[id]; !exists {
		c.order = append(c.order, id)
	}
	c.entries[id] = entry[T]{rec: rec, version: version}
	delete(c.tombstones, id)
}

func (c *collection[T]) remove(id entities.ID, version int64) {
	if _, exists := c.entries[id]; !exists {
		return
	}
	delete(c.entries, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.tombstones[id] = version
}

func (c *collection[T]) get(id entities.ID) (T, bool) {
	e, ok := c.entries[id]
	return e.rec, ok
}

func (c *collection[T]) snapshot() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id].rec)
	}
	return out
}

// applyRefresh reconciles the collection with a server snapshot fetched
// while the store's version counter stood at floor. Server records win
// except where the local record (or its tombstone) carries a version newer
// than the floor; locally created records unknown to the server survive
// until a refresh with a later floor settles them.
func (c *collection[T]) applyRefresh(server []T, floor int64) {
	newOrder := make([]entities.ID, 0, len(server))
	newEntries := make(map[entities.ID]entry[T], len(server))
	seen := make(map[entities.ID]bool, len(server))

	for _, rec := range server {
		id := c.keyOf(rec)
		if id == "" || seen[id] {
			continue
		}
		if ts, ok := c.tombstones[id]; ok && ts > floor {
			// deleted locally after the fetch began
			continue
		}
		e := entry[T]{rec: rec}
		if local, ok := c.entries[id]; ok {
			if local.version > floor {
				e = local
			}
		}
		newOrder = append(newOrder, id)
		newEntries[id] = e
		seen[id] = true
	}

	// keep records the server does not know about yet
	for _, id := range c.order {
		if seen[id] {
			continue
		}
		if local, ok := c.entries[id]; ok && local.version > floor {
			newOrder = append(newOrder, id)
			newEntries[id] = local
		}
	}

	for id, ts := range c.tombstones {
		if ts <= floor {
			delete(c.tombstones, id)
		}
	}

	c.order = newOrder
	c.entries = newEntries
}
