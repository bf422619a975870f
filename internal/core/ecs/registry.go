package ecs

import (
	"reflect"
	"sort"

	"github.com/TheBitDrifter/mask"
)

// Registry is the type-erased component storage. It maps runtime type
// identity to one typed store per component type, created lazily on first
// insert, and maintains a per-entity signature bitmask recording which
// component types the entity currently holds. Signatures let joins and
// filters test membership without probing every store.
//
// The boxed value behind a type key always downcasts to the store of that
// type; a failed assertion here is a programming error, not a runtime
// condition, so the casts are unchecked.
type Registry struct {
	stores     map[reflect.Type]erasedStore
	bits       map[reflect.Type]uint32
	nextBit    uint32
	signatures map[Entity]mask.Mask
}

func NewRegistry() *Registry {
	return &Registry{
		stores:     make(map[reflect.Type]erasedStore, 16),
		bits:       make(map[reflect.Type]uint32, 16),
		signatures: make(map[Entity]mask.Mask, 256),
	}
}

// typeKey derives the registry key for a component type.
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// storeFor returns the typed store for T, or nil when no component of that
// type was ever added.
func storeFor[T any](r *Registry) *store[T] {
	s, ok := r.stores[typeKey[T]()]
	if !ok {
		return nil
	}
	return s.(*store[T])
}

// ensureStore returns the typed store for T, creating it and assigning the
// type its signature bit on first use.
func ensureStore[T any](r *Registry) *store[T] {
	key := typeKey[T]()
	if s, ok := r.stores[key]; ok {
		return s.(*store[T])
	}
	s := newStore[T]()
	r.stores[key] = s
	r.bits[key] = r.nextBit
	r.nextBit++
	return s
}

// RegistryAdd inserts or overwrites the component of type T for an entity.
// Replacing an existing value is silent; there is no "already exists" state.
func RegistryAdd[T any](r *Registry, id Entity, c T) {
	s := ensureStore[T](r)
	v := c
	s.Set(id, &v)

	sig := r.signatures[id]
	sig.Mark(r.bits[typeKey[T]()])
	r.signatures[id] = sig
}

// RegistryGet looks up the component of type T for an entity. The returned
// pointer addresses live storage, so writes through it are visible to every
// later lookup.
func RegistryGet[T any](r *Registry, id Entity) (*T, bool) {
	s := storeFor[T](r)
	if s == nil {
		return nil, false
	}
	return s.Get(id)
}

// RegistryRemove removes the component of type T from an entity. Removing a
// component that is not present is a no-op.
func RegistryRemove[T any](r *Registry, id Entity) {
	s := storeFor[T](r)
	if s == nil {
		return
	}
	s.Remove(id)

	if sig, ok := r.signatures[id]; ok {
		sig.Unmark(r.bits[typeKey[T]()])
		r.signatures[id] = sig
	}
}

// RegistryEntities returns every entity currently holding a component of
// type T, sorted ascending so iteration order is stable across runs.
func RegistryEntities[T any](r *Registry) []Entity {
	s := storeFor[T](r)
	if s == nil {
		return nil
	}
	ids := make([]Entity, 0, s.Len())
	for id := range s.data {
		ids = append(ids, id)
	}
	sortEntities(ids)
	return ids
}

// RemoveAll clears the given entity from every registered component store.
func (r *Registry) RemoveAll(id Entity) {
	for _, s := range r.stores {
		s.Remove(id)
	}
	delete(r.signatures, id)
}

// TypeCount reports how many component types have stores.
func (r *Registry) TypeCount() int {
	return len(r.stores)
}

// signatureOf returns the entity's component signature. The zero mask means
// the entity holds nothing.
func (r *Registry) signatureOf(id Entity) mask.Mask {
	return r.signatures[id]
}

// maskFor builds the signature bits for a set of already registered type
// keys. Unregistered types report false so callers can short-circuit.
func (r *Registry) maskFor(keys ...reflect.Type) (mask.Mask, bool) {
	var m mask.Mask
	for _, key := range keys {
		bit, ok := r.bits[key]
		if !ok {
			return m, false
		}
		m.Mark(bit)
	}
	return m, true
}

func sortEntities(ids []Entity) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
