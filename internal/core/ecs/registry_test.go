package ecs

import "testing"

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

type health struct {
	Cur, Max int
}

func TestComponentRoundTrip(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	Add(w, e, position{X: 3, Y: 4})

	p, ok := Get[position](w, e)
	if !ok {
		t.Fatal("component missing after add")
	}
	if p.X != 3 || p.Y != 4 {
		t.Fatalf("got %+v, want {3 4}", *p)
	}

	Remove[position](w, e)
	if _, ok := Get[position](w, e); ok {
		t.Fatal("component still present after remove")
	}
}

func TestAddOverwritesSilently(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	Add(w, e, health{Cur: 10, Max: 10})
	Add(w, e, health{Cur: 3, Max: 10})

	h, ok := Get[health](w, e)
	if !ok || h.Cur != 3 {
		t.Fatalf("got %+v, want Cur=3", h)
	}
}

func TestGetReturnsLivePointer(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Add(w, e, position{X: 1})

	p, _ := Get[position](w, e)
	p.X = 99

	p2, _ := Get[position](w, e)
	if p2.X != 99 {
		t.Fatalf("write through pointer not visible, got %v", p2.X)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	// no store exists yet
	Remove[velocity](w, e)

	// store exists, entity not in it
	other := w.CreateEntity()
	Add(w, other, velocity{DX: 1})
	Remove[velocity](w, e)

	if _, ok := Get[velocity](w, other); !ok {
		t.Fatal("unrelated entity lost its component")
	}
}

func TestEntitiesWithMatchesGets(t *testing.T) {
	w := NewWorld()

	var want []Entity
	for i := 0; i < 20; i++ {
		e := w.CreateEntity()
		if i%2 == 0 {
			Add(w, e, position{X: float64(i)})
			want = append(want, e)
		} else {
			Add(w, e, velocity{})
		}
	}
	// churn: remove a few, re-add one
	Remove[position](w, want[0])
	Remove[position](w, want[1])
	Add(w, want[1], position{})
	want = want[1:]

	got := EntitiesWith[position](w)
	if len(got) != len(want) {
		t.Fatalf("got %d entities, want %d", len(got), len(want))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("entity list not sorted: %v", got)
		}
	}
	for _, e := range got {
		if _, ok := Get[position](w, e); !ok {
			t.Fatalf("EntitiesWith returned %d but Get misses", e)
		}
	}
}

func TestRemoveAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Add(w, e, position{})
	Add(w, e, velocity{})
	Add(w, e, health{Cur: 5})

	w.RemoveAllComponents(e)

	if _, ok := Get[position](w, e); ok {
		t.Fatal("position survived RemoveAllComponents")
	}
	if _, ok := Get[velocity](w, e); ok {
		t.Fatal("velocity survived RemoveAllComponents")
	}
	if _, ok := Get[health](w, e); ok {
		t.Fatal("health survived RemoveAllComponents")
	}
	if w.ComponentTypes() != 3 {
		t.Fatalf("stores should persist after RemoveAll, got %d", w.ComponentTypes())
	}
}

func TestSignatureTracksStoreContents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Add(w, e, position{})
	Add(w, e, velocity{})

	// removal must drop the entity from two-type joins
	Remove[velocity](w, e)

	found := false
	Join2(w, func(id Entity, _ *position, _ *velocity) {
		found = true
	})
	if found {
		t.Fatal("join matched an entity whose velocity was removed")
	}

	// re-add restores membership
	Add(w, e, velocity{DX: 2})
	Join2(w, func(id Entity, _ *position, v *velocity) {
		if id == e && v.DX == 2 {
			found = true
		}
	})
	if !found {
		t.Fatal("join missed an entity after component re-add")
	}
}
