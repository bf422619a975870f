package system

import (
	"time"

	"github.com/emberfall/engine/internal/core/ecs"
	"github.com/emberfall/engine/internal/core/event"
)

// DispatchSystem pumps the event bus at tick start: events emitted during
// the previous tick become visible, then get delivered to handlers. Runs
// at (Critical, 0) so every other system sees a settled bus.
type DispatchSystem struct {
	bus *event.Bus
}

func NewDispatchSystem(bus *event.Bus) *DispatchSystem {
	return &DispatchSystem{bus: bus}
}

func (s *DispatchSystem) Update(_ *ecs.World, _ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
