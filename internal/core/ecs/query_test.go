package ecs

import "testing"

func TestQuerySnapshot(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	Add(w, a, position{X: 1})
	Add(w, b, position{X: 2})

	q := NewQuery[position](w)
	if q.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", q.Count())
	}
	if first, ok := q.First(); !ok || first != a {
		t.Fatalf("First() = %d,%v, want %d,true", first, ok, a)
	}

	// snapshot is fixed at construction; live reads are not
	Remove[position](w, b)
	if q.Count() != 2 {
		t.Fatalf("snapshot changed under mutation, Count() = %d", q.Count())
	}
	if _, ok := q.Get(b); ok {
		t.Fatal("Get read the snapshot instead of the live registry")
	}
	if p, ok := q.Get(a); !ok || p.X != 1 {
		t.Fatalf("Get(a) = %v,%v", p, ok)
	}
}

func TestQueryEmpty(t *testing.T) {
	w := NewWorld()
	q := NewQuery[health](w)
	if q.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", q.Count())
	}
	if _, ok := q.First(); ok {
		t.Fatal("First() on empty query returned ok")
	}
}

func TestJoin2Intersection(t *testing.T) {
	w := NewWorld()

	both := w.CreateEntity()
	posOnly := w.CreateEntity()
	velOnly := w.CreateEntity()
	Add(w, both, position{X: 1})
	Add(w, both, velocity{DX: 2})
	Add(w, posOnly, position{X: 3})
	Add(w, velOnly, velocity{DX: 4})

	var seen []Entity
	Join2(w, func(id Entity, p *position, v *velocity) {
		seen = append(seen, id)
		if p.X != 1 || v.DX != 2 {
			t.Fatalf("join handed wrong values: %+v %+v", *p, *v)
		}

		// references match direct lookups
		dp, _ := Get[position](w, id)
		if dp != p {
			t.Fatal("join pointer differs from direct lookup")
		}
	})
	if len(seen) != 1 || seen[0] != both {
		t.Fatalf("join matched %v, want [%d]", seen, both)
	}
}

func TestJoin2DeterministicOrder(t *testing.T) {
	w := NewWorld()
	var ids []Entity
	for i := 0; i < 50; i++ {
		e := w.CreateEntity()
		Add(w, e, position{})
		Add(w, e, velocity{})
		ids = append(ids, e)
	}

	for run := 0; run < 3; run++ {
		var got []Entity
		Join2(w, func(id Entity, _ *position, _ *velocity) {
			got = append(got, id)
		})
		if len(got) != len(ids) {
			t.Fatalf("run %d: matched %d, want %d", run, len(got), len(ids))
		}
		for i := range got {
			if got[i] != ids[i] {
				t.Fatalf("run %d: order diverged at %d: %v", run, i, got)
			}
		}
	}
}

func TestJoin2MissingStore(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Add(w, e, position{})

	Join2(w, func(Entity, *position, *velocity) {
		t.Fatal("join over a never-registered type must match nothing")
	})
}

func TestJoin2MutatesInPlace(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Add(w, e, position{X: 0})
	Add(w, e, velocity{DX: 5})

	Join2(w, func(_ Entity, p *position, v *velocity) {
		p.X += v.DX
	})

	p, _ := Get[position](w, e)
	if p.X != 5 {
		t.Fatalf("mutation through join lost, X = %v", p.X)
	}
}

func TestJoin3Intersection(t *testing.T) {
	w := NewWorld()

	full := w.CreateEntity()
	partial := w.CreateEntity()
	Add(w, full, position{})
	Add(w, full, velocity{})
	Add(w, full, health{Cur: 7})
	Add(w, partial, position{})
	Add(w, partial, velocity{})

	var seen []Entity
	Join3(w, func(id Entity, _ *position, _ *velocity, h *health) {
		seen = append(seen, id)
		if h.Cur != 7 {
			t.Fatalf("join handed wrong health: %+v", *h)
		}
	})
	if len(seen) != 1 || seen[0] != full {
		t.Fatalf("join matched %v, want [%d]", seen, full)
	}
}
