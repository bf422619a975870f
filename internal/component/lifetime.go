package component

import "time"

// Lifetime marks an entity for expiry after a fixed duration. The lifetime
// system strips expired entities of all components at tick end.
type Lifetime struct {
	Remaining time.Duration
}

// Kind labels an entity with the spawn template it was built from.
type Kind struct {
	Name string
}
