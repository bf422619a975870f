package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/emberfall/engine/internal/component"
	"github.com/emberfall/engine/internal/core/ecs"
)

// statsInterval gates how often the stats system writes a log line.
const statsInterval = 60

// StatsSystem periodically logs world population counts. Runs at (Low, 0),
// after all game logic for the tick.
type StatsSystem struct {
	log       *zap.Logger
	tickCount int
}

func NewStatsSystem(log *zap.Logger) *StatsSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatsSystem{log: log}
}

func (s *StatsSystem) Update(w *ecs.World, _ time.Duration) {
	s.tickCount++
	if s.tickCount%statsInterval != 0 {
		return
	}
	s.log.Info("world stats",
		zap.Uint64("tick", w.Tick()),
		zap.Int("entities", w.EntityCount()),
		zap.Int("moving", ecs.NewQuery[component.Velocity](w).Count()),
		zap.Int("alive", ecs.NewQuery[component.Health](w).Count()),
		zap.Int("expiring", ecs.NewQuery[component.Lifetime](w).Count()))
}
