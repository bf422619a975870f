package ecs

// erasedStore is the type-erased face of a component store. The registry
// keeps one per component type so it can bulk-remove an entity's data
// without knowing any concrete type.
type erasedStore interface {
	Remove(id Entity)
}

// store is a typed map store for one component type. Components are held
// behind pointers so callers can mutate them in place; no reflect on the
// access path, pure generics.
type store[T any] struct {
	data map[Entity]*T
}

func newStore[T any]() *store[T] {
	return &store[T]{data: make(map[Entity]*T, 256)}
}

// Set inserts or overwrites the component for id. Overwriting replaces the
// stored pointer, so pointers handed out earlier keep observing the old
// value.
func (s *store[T]) Set(id Entity, c *T) {
	s.data[id] = c
}

func (s *store[T]) Get(id Entity) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *store[T]) Remove(id Entity) {
	delete(s.data, id)
}

func (s *store[T]) Has(id Entity) bool {
	_, ok := s.data[id]
	return ok
}

func (s *store[T]) Len() int {
	return len(s.data)
}
