package event

import "github.com/emberfall/engine/internal/core/ecs"

// Engine-level event types.

// EntitySpawned fires when gameplay code finishes assembling a new entity.
type EntitySpawned struct {
	ID   ecs.Entity
	Kind string
}

// EntityExpired fires when an entity's lifetime runs out and its components
// have been stripped.
type EntityExpired struct {
	ID ecs.Entity
}
