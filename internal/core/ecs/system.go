package ecs

import "time"

// System is a unit of per-tick behavior. Update receives exclusive access
// to the world for the duration of the call only; systems must not retain
// the pointer across ticks.
type System interface {
	Update(w *World, dt time.Duration)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(w *World, dt time.Duration)

func (f SystemFunc) Update(w *World, dt time.Duration) {
	f(w, dt)
}
