package ecs

import "github.com/TheBitDrifter/mask"

// Query is a read-oriented view over one component type. The entity list is
// a snapshot taken at construction time: Entities, Count and First operate
// over that snapshot, while Get re-reads the live registry. Adding or
// removing components of T after construction therefore makes the snapshot
// stale — callers that mutate while iterating must build a fresh Query.
type Query[T any] struct {
	world *World
	ids   []Entity
}

// NewQuery captures the sorted list of entities currently holding T.
func NewQuery[T any](w *World) *Query[T] {
	return &Query[T]{world: w, ids: EntitiesWith[T](w)}
}

// Entities returns the snapshot entity list, sorted ascending. The slice is
// owned by the query; callers must not mutate it.
func (q *Query[T]) Entities() []Entity {
	return q.ids
}

func (q *Query[T]) Count() int {
	return len(q.ids)
}

// First returns the lowest-id entity in the snapshot, or false when the
// snapshot is empty.
func (q *Query[T]) First() (Entity, bool) {
	if len(q.ids) == 0 {
		return 0, false
	}
	return q.ids[0], true
}

// Get reads the live registry, not the snapshot, so it observes removals
// and overwrites that happened after the query was built. The pointer
// confers write access; scheduler discipline (one system mutates the world
// at a time) keeps that safe.
func (q *Query[T]) Get(id Entity) (*T, bool) {
	return Get[T](q.world, id)
}

// Join2 calls fn for every entity holding both A and B, in ascending entity
// order. Candidates come from the smaller of the two stores and are
// filtered through signature masks before any store lookup. Both pointers
// are mutable; the stores are distinct per type, so writes through one
// cannot alias the other.
func Join2[A, B any](w *World, fn func(Entity, *A, *B)) {
	r := w.registry
	sa := storeFor[A](r)
	sb := storeFor[B](r)
	if sa == nil || sb == nil {
		return
	}
	want, ok := r.maskFor(typeKey[A](), typeKey[B]())
	if !ok {
		return
	}

	var seed []Entity
	if sa.Len() <= sb.Len() {
		seed = keysOf(sa)
	} else {
		seed = keysOf(sb)
	}

	for _, id := range joinCandidates(r, want, seed) {
		a, _ := sa.Get(id)
		b, _ := sb.Get(id)
		fn(id, a, b)
	}
}

// Join3 calls fn for every entity holding A, B and C, in ascending entity
// order.
func Join3[A, B, C any](w *World, fn func(Entity, *A, *B, *C)) {
	r := w.registry
	sa := storeFor[A](r)
	sb := storeFor[B](r)
	sc := storeFor[C](r)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	want, ok := r.maskFor(typeKey[A](), typeKey[B](), typeKey[C]())
	if !ok {
		return
	}

	seed := keysOf(sa)
	smallest := sa.Len()
	if sb.Len() < smallest {
		seed, smallest = keysOf(sb), sb.Len()
	}
	if sc.Len() < smallest {
		seed = keysOf(sc)
	}

	for _, id := range joinCandidates(r, want, seed) {
		a, _ := sa.Get(id)
		b, _ := sb.Get(id)
		c, _ := sc.Get(id)
		fn(id, a, b, c)
	}
}

func keysOf[T any](s *store[T]) []Entity {
	keys := make([]Entity, 0, s.Len())
	for id := range s.data {
		keys = append(keys, id)
	}
	return keys
}

// joinCandidates keeps the seed entities whose signature contains every
// wanted bit, sorted for deterministic iteration.
func joinCandidates(r *Registry, want mask.Mask, seed []Entity) []Entity {
	ids := seed[:0]
	for _, id := range seed {
		sig := r.signatureOf(id)
		if sig.ContainsAll(want) {
			ids = append(ids, id)
		}
	}
	sortEntities(ids)
	return ids
}
