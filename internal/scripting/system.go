package scripting

import (
	"time"

	"go.uber.org/zap"

	"github.com/emberfall/engine/internal/core/ecs"
)

// System adapts one global Lua function to the ecs.System contract. A
// script error is logged and the tick continues; scripts cannot take the
// loop down.
type System struct {
	engine *Engine
	fn     string
}

func NewSystem(engine *Engine, fn string) *System {
	return &System{engine: engine, fn: fn}
}

func (s *System) Update(_ *ecs.World, dt time.Duration) {
	if err := s.engine.CallTick(s.fn, dt.Seconds()); err != nil {
		s.engine.log.Error("lua tick failed",
			zap.String("fn", s.fn),
			zap.Error(err))
	}
}
