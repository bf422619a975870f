package system

import (
	"time"

	"github.com/emberfall/engine/internal/component"
	"github.com/emberfall/engine/internal/core/ecs"
)

// MovementSystem integrates velocity into position. Runs at (High, 0).
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World, dt time.Duration) {
	secs := dt.Seconds()
	ecs.Join2(w, func(_ ecs.Entity, pos *component.Position, vel *component.Velocity) {
		pos.X += vel.DX * secs
		pos.Y += vel.DY * secs
	})
}
