package system

import (
	"time"

	"github.com/emberfall/engine/internal/component"
	"github.com/emberfall/engine/internal/core/ecs"
	"github.com/emberfall/engine/internal/core/event"
)

// LifetimeSystem counts down Lifetime components and strips expired
// entities of everything they hold. Runs at (Cleanup, 0) so expiry never
// races the frame's game logic. Expiries are announced on the bus and
// delivered next tick.
type LifetimeSystem struct {
	bus *event.Bus
}

func NewLifetimeSystem(bus *event.Bus) *LifetimeSystem {
	return &LifetimeSystem{bus: bus}
}

func (s *LifetimeSystem) Update(w *ecs.World, dt time.Duration) {
	q := ecs.NewQuery[component.Lifetime](w)
	for _, id := range q.Entities() {
		lt, ok := q.Get(id)
		if !ok {
			continue
		}
		lt.Remaining -= dt
		if lt.Remaining > 0 {
			continue
		}
		w.RemoveAllComponents(id)
		event.Emit(s.bus, event.EntityExpired{ID: id})
	}
}
