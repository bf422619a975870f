package ecs

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// PriorityTier defines coarse execution ordering within a single tick.
// Lower tiers run first.
type PriorityTier uint8

const (
	TierCritical PriorityTier = iota // input polling, event dispatch
	TierHigh                         // physics, movement
	TierNormal                       // game logic
	TierLow                          // rendering prep, UI
	TierCleanup                      // end-of-tick bookkeeping
)

func (t PriorityTier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierHigh:
		return "high"
	case TierNormal:
		return "normal"
	case TierLow:
		return "low"
	case TierCleanup:
		return "cleanup"
	}
	return "unknown"
}

// ExecutionOrder positions a system within a tick: tier first, then Sub for
// fine ordering inside a tier. It carries no semantics beyond run order.
type ExecutionOrder struct {
	Tier PriorityTier
	Sub  int
}

type systemEntry struct {
	sys     System
	name    string
	order   ExecutionOrder
	enabled bool
}

// Scheduler runs registered systems in a deterministic order each tick.
//
// The run order is a stable sort of entries by (tier, sub), so systems with
// equal ordering keep their registration order. The sorted permutation and
// the name lookup are cached and rebuilt only on structural mutation;
// enabling or disabling a system does not touch either.
type Scheduler struct {
	entries []systemEntry
	order   []int
	byName  map[string]int
	log     *zap.Logger
}

func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		entries: make([]systemEntry, 0, 16),
		byName:  map[string]int{},
		log:     log,
	}
}

// AddSystem registers a system at (TierNormal, 0).
func (s *Scheduler) AddSystem(sys System, name string) error {
	return s.AddSystemWithOrder(sys, name, ExecutionOrder{Tier: TierNormal})
}

// AddSystemWithOrder registers a system at an explicit position. Systems
// start enabled. Names must be unique; a duplicate is rejected rather than
// shadowing the earlier registration.
func (s *Scheduler) AddSystemWithOrder(sys System, name string, order ExecutionOrder) error {
	if sys == nil {
		return ErrNilSystem
	}
	if _, exists := s.byName[name]; exists {
		return ErrDuplicateSystem
	}
	s.entries = append(s.entries, systemEntry{
		sys:     sys,
		name:    name,
		order:   order,
		enabled: true,
	})
	s.rebuild()
	s.log.Debug("system registered",
		zap.String("name", name),
		zap.Stringer("tier", order.Tier),
		zap.Int("sub", order.Sub))
	return nil
}

// RemoveSystem unregisters the named system, reporting whether it existed.
func (s *Scheduler) RemoveSystem(name string) bool {
	idx, ok := s.byName[name]
	if !ok {
		return false
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.rebuild()
	s.log.Debug("system removed", zap.String("name", name))
	return true
}

// SetEnabled toggles the named system without changing its position in the
// run order. Disabled systems stay registered and keep their slot.
func (s *Scheduler) SetEnabled(name string, enabled bool) bool {
	idx, ok := s.byName[name]
	if !ok {
		return false
	}
	s.entries[idx].enabled = enabled
	return true
}

// Enabled reports whether the named system is currently enabled.
func (s *Scheduler) Enabled(name string) (bool, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return false, false
	}
	return s.entries[idx].enabled, true
}

// SystemNames returns the registered names in execution order, enabled or
// not.
func (s *Scheduler) SystemNames() []string {
	names := make([]string, 0, len(s.order))
	for _, idx := range s.order {
		names = append(names, s.entries[idx].name)
	}
	return names
}

// Len reports how many systems are registered.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Update runs every enabled system once, in the cached order. Each system
// gets the world to itself for the duration of its Update call.
func (s *Scheduler) Update(w *World, dt time.Duration) {
	for _, idx := range s.order {
		entry := &s.entries[idx]
		if !entry.enabled {
			continue
		}
		entry.sys.Update(w, dt)
	}
}

// rebuild recomputes the cached run order and the name lookup. Called after
// every structural mutation.
func (s *Scheduler) rebuild() {
	s.order = s.order[:0]
	for i := range s.entries {
		s.order = append(s.order, i)
	}
	sort.SliceStable(s.order, func(i, j int) bool {
		a, b := s.entries[s.order[i]].order, s.entries[s.order[j]].order
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return a.Sub < b.Sub
	})

	clear(s.byName)
	for i, entry := range s.entries {
		s.byName[entry.name] = i
	}
}
