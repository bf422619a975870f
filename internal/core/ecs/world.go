package ecs

import (
	"time"

	"go.uber.org/zap"
)

// World is the top-level ECS container. It owns the entity allocator, the
// component registry, and the system scheduler, and is the single
// integration point gameplay code depends on.
//
// The world is single-owner and single-threaded: one host loop drives
// Update, systems run strictly one after another, and each has the world to
// itself while its Update call is running. That sequential discipline is
// the only concurrency guarantee, and it is what makes the core lock-free.
type World struct {
	alloc     *Allocator
	registry  *Registry
	scheduler *Scheduler
	log       *zap.Logger
	tick      uint64
}

type WorldOption func(*World)

// WithLogger attaches a structured logger. The default is a nop logger.
func WithLogger(log *zap.Logger) WorldOption {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

func NewWorld(opts ...WorldOption) *World {
	w := &World{
		alloc:    NewAllocator(),
		registry: NewRegistry(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.scheduler = NewScheduler(w.log)
	return w
}

// CreateEntity issues a new unique entity id, never reused.
func (w *World) CreateEntity() Entity {
	return w.alloc.Allocate()
}

// EntityCount reports how many ids have been issued.
func (w *World) EntityCount() int {
	return w.alloc.Allocated()
}

// Systems exposes the scheduler for registration, introspection and
// enable/disable control.
func (w *World) Systems() *Scheduler {
	return w.scheduler
}

// AddSystem registers a system at the default Normal tier.
func (w *World) AddSystem(sys System, name string) error {
	return w.scheduler.AddSystem(sys, name)
}

// AddSystemWithOrder registers a system at an explicit execution order.
func (w *World) AddSystemWithOrder(sys System, name string, order ExecutionOrder) error {
	return w.scheduler.AddSystemWithOrder(sys, name, order)
}

// RemoveAllComponents strips every component from an entity. The id itself
// stays allocated; ids are never recycled.
func (w *World) RemoveAllComponents(id Entity) {
	w.registry.RemoveAll(id)
}

// ComponentTypes reports how many component types have been seen.
func (w *World) ComponentTypes() int {
	return w.registry.TypeCount()
}

// Tick reports how many times Update has run.
func (w *World) Tick() uint64 {
	return w.tick
}

// Update advances the world one tick: it runs every enabled system in
// scheduler order, then logs tick diagnostics at debug level.
func (w *World) Update(dt time.Duration) {
	w.tick++
	start := time.Now()
	w.scheduler.Update(w, dt)
	w.log.Debug("tick",
		zap.Uint64("n", w.tick),
		zap.Duration("dt", dt),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("systems", w.scheduler.Len()),
		zap.Int("entities", w.alloc.Allocated()))
}

// Add inserts or overwrites the component of type T for an entity, lazily
// creating the store for T on first use.
func Add[T any](w *World, id Entity, c T) {
	RegistryAdd(w.registry, id, c)
}

// Get returns the component of type T for an entity. The pointer addresses
// live storage; writes through it are immediately visible.
func Get[T any](w *World, id Entity) (*T, bool) {
	return RegistryGet[T](w.registry, id)
}

// Remove removes the component of type T from an entity; removing an absent
// component is a no-op.
func Remove[T any](w *World, id Entity) {
	RegistryRemove[T](w.registry, id)
}

// EntitiesWith returns every entity currently holding T, sorted ascending.
func EntitiesWith[T any](w *World) []Entity {
	return RegistryEntities[T](w.registry)
}
