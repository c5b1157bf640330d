package ecs

import "testing"

type health struct{ Current, Max int }
type position struct{ X, Y int }
type marker struct{}

func TestEntityPoolRecyclesLIFO(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	b := p.Create()
	c := p.Create()

	p.Destroy(b)
	p.Destroy(c)

	// Most recently destroyed id comes back first, before any fresh id.
	if got := p.Create(); got != c {
		t.Fatalf("expected recycled id %d, got %d", c, got)
	}
	if got := p.Create(); got != b {
		t.Fatalf("expected recycled id %d, got %d", b, got)
	}
	fresh := p.Create()
	if fresh == a || fresh == b || fresh == c {
		t.Fatalf("expected a never-issued id, got %d", fresh)
	}
}

func TestDestroyRemovesFromEveryStore(t *testing.T) {
	w := NewWorld(NewRegistry())
	hp := NewStore[health]()
	pos := NewStore[position]()
	w.Registry().Register(hp)
	w.Registry().Register(pos)

	e := w.Create()
	hp.Set(e, &health{Current: 10, Max: 10})
	pos.Set(e, &position{X: 1, Y: 2})

	w.Destroy(e)

	if w.Alive(e) {
		t.Fatal("destroyed entity still in live set")
	}
	if hp.Has(e) || pos.Has(e) {
		t.Fatal("destroyed entity still present in a component store")
	}
	if got := w.Create(); got != e {
		t.Fatalf("expected id %d to be reused next, got %d", e, got)
	}
}

func TestDoubleDestroyIsNoop(t *testing.T) {
	w := NewWorld(NewRegistry())
	e := w.Create()
	w.Destroy(e)
	w.Destroy(e)

	a := w.Create()
	b := w.Create()
	if a == b {
		t.Fatalf("double destroy put id %d on the free list twice", a)
	}
}

func TestSetOverwrites(t *testing.T) {
	hp := NewStore[health]()
	e := EntityID(1)
	hp.Set(e, &health{Current: 5, Max: 10})
	hp.Set(e, &health{Current: 7, Max: 12})

	got, ok := hp.Get(e)
	if !ok || got.Current != 7 || got.Max != 12 {
		t.Fatalf("expected overwritten component, got %+v ok=%v", got, ok)
	}
	if hp.Len() != 1 {
		t.Fatalf("expected one entry after overwrite, got %d", hp.Len())
	}
}

func TestGetAbsentReturnsFalse(t *testing.T) {
	hp := NewStore[health]()
	if c, ok := hp.Get(42); ok || c != nil {
		t.Fatalf("expected (nil,false) for absent entity, got (%v,%v)", c, ok)
	}
}

func TestQueryIntersection(t *testing.T) {
	hp := NewStore[health]()
	pos := NewStore[position]()
	tag := NewStore[marker]()

	// 1: all three, 2: health+position, 3: health only, 4: tag only.
	hp.Set(1, &health{})
	pos.Set(1, &position{})
	tag.Set(1, &marker{})
	hp.Set(2, &health{})
	pos.Set(2, &position{})
	hp.Set(3, &health{})
	tag.Set(4, &marker{})

	got := Query(hp, pos)
	want := map[EntityID]bool{1: true, 2: true}
	if len(got) != len(want) {
		t.Fatalf("query(health,position) = %v, want ids 1 and 2", got)
	}
	for _, id := range got {
		if !want[id] {
			t.Fatalf("query returned unexpected id %d", id)
		}
	}

	got = Query(hp, pos, tag)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("query(health,position,marker) = %v, want [1]", got)
	}

	// 4 is the only tagged entity in this store and has no position.
	lone := NewStore[marker]()
	lone.Set(4, &marker{})
	if got := Query(lone, pos); len(got) != 0 {
		t.Fatalf("expected empty intersection, got %v", got)
	}
}

func TestEach2VisitsIntersectionOnly(t *testing.T) {
	hp := NewStore[health]()
	pos := NewStore[position]()
	hp.Set(1, &health{})
	hp.Set(2, &health{})
	pos.Set(2, &position{})
	pos.Set(3, &position{})

	seen := map[EntityID]bool{}
	Each2(hp, pos, func(id EntityID, _ *health, _ *position) {
		seen[id] = true
	})
	if len(seen) != 1 || !seen[2] {
		t.Fatalf("Each2 visited %v, want only entity 2", seen)
	}
}
