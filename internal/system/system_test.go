package system

import (
	"testing"
	"time"

	"github.com/emberfall/engine/internal/component"
	"github.com/emberfall/engine/internal/core/ecs"
	"github.com/emberfall/engine/internal/core/event"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	ecs.Add(w, e, component.Position{X: 1, Y: 1})
	ecs.Add(w, e, component.Velocity{DX: 10, DY: -4})

	NewMovementSystem().Update(w, 500*time.Millisecond)

	pos, _ := ecs.Get[component.Position](w, e)
	if pos.X != 6 || pos.Y != -1 {
		t.Fatalf("pos = %+v, want {6 -1}", *pos)
	}
}

func TestLifetimeExpiry(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()

	doomed := w.CreateEntity()
	ecs.Add(w, doomed, component.Position{})
	ecs.Add(w, doomed, component.Lifetime{Remaining: 30 * time.Millisecond})

	durable := w.CreateEntity()
	ecs.Add(w, durable, component.Position{})

	var expired []ecs.Entity
	event.Subscribe(bus, func(ev event.EntityExpired) {
		expired = append(expired, ev.ID)
	})

	sys := NewLifetimeSystem(bus)
	sys.Update(w, 16*time.Millisecond)
	if _, ok := ecs.Get[component.Position](w, doomed); !ok {
		t.Fatal("entity expired early")
	}

	sys.Update(w, 16*time.Millisecond)
	if _, ok := ecs.Get[component.Position](w, doomed); ok {
		t.Fatal("expired entity kept its components")
	}
	if _, ok := ecs.Get[component.Position](w, durable); !ok {
		t.Fatal("entity without lifetime was stripped")
	}

	// expiry event arrives after the next bus pump
	bus.SwapBuffers()
	bus.DispatchAll()
	if len(expired) != 1 || expired[0] != doomed {
		t.Fatalf("expired = %v, want [%d]", expired, doomed)
	}
}

func TestFullTickPipeline(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()

	if err := w.AddSystemWithOrder(NewDispatchSystem(bus), "events", ecs.ExecutionOrder{Tier: ecs.TierCritical}); err != nil {
		t.Fatal(err)
	}
	if err := w.AddSystemWithOrder(NewMovementSystem(), "movement", ecs.ExecutionOrder{Tier: ecs.TierHigh}); err != nil {
		t.Fatal(err)
	}
	if err := w.AddSystemWithOrder(NewLifetimeSystem(bus), "lifetime", ecs.ExecutionOrder{Tier: ecs.TierCleanup}); err != nil {
		t.Fatal(err)
	}

	e := w.CreateEntity()
	ecs.Add(w, e, component.Position{})
	ecs.Add(w, e, component.Velocity{DX: 1})
	ecs.Add(w, e, component.Lifetime{Remaining: 40 * time.Millisecond})

	gone := false
	event.Subscribe(bus, func(event.EntityExpired) { gone = true })

	for i := 0; i < 4; i++ {
		w.Update(16 * time.Millisecond)
	}

	if !gone {
		t.Fatal("expiry event never delivered through the scheduler")
	}
	if _, ok := ecs.Get[component.Velocity](w, e); ok {
		t.Fatal("expired entity still holds velocity")
	}
}
