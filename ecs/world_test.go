package ecs

import "testing"

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			for _, e := range ents {
				if !w.IsAlive(e) {
					t.Fatalf("entity %v should be alive after creation", e)
				}
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func TestWorldStaleHandle(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if !w.DestroyEntity(e) {
		t.Fatalf("first destroy should succeed")
	}
	if w.DestroyEntity(e) {
		t.Fatalf("second destroy of the same handle should fail")
	}

	recycled := w.CreateEntity()
	if recycled.ID != e.ID {
		t.Fatalf("expected id %d to be recycled, got %d", e.ID, recycled.ID)
	}
	if w.IsAlive(e) {
		t.Fatalf("stale handle must not alias the recycled entity")
	}
	if !w.IsAlive(recycled) {
		t.Fatalf("recycled entity should be alive")
	}
}

func TestWorldDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Vitals().Set(e.ID, "vitals")
	w.Bleeds().Set(e.ID, "bleed")
	w.SpeciesTags().Set(e.ID, "wolf")

	w.DestroyEntity(e)

	if w.Vitals().Has(e.ID) || w.Bleeds().Has(e.ID) || w.SpeciesTags().Has(e.ID) {
		t.Fatalf("destroyed entity should have no components")
	}
}

func TestSparseSet(t *testing.T) {
	t.Run("set_get_remove", func(t *testing.T) {
		s := &SparseSet{}
		s.Set(1, "a")
		s.Set(3, "b")
		s.Set(1, "c") // replace

		if got := s.Get(1); got != "c" {
			t.Fatalf("expected replaced value c, got %v", got)
		}
		if s.Len() != 2 {
			t.Fatalf("expected 2 components, got %d", s.Len())
		}

		s.Remove(1)
		if s.Has(1) {
			t.Fatalf("removed id should not be present")
		}
		if got := s.Get(3); got != "b" {
			t.Fatalf("swap-remove must keep other values, got %v", got)
		}
	})

	t.Run("invalid_ids", func(t *testing.T) {
		s := &SparseSet{}
		if s.Has(0) || s.Has(-1) || s.Has(10) {
			t.Fatalf("invalid ids should not be present")
		}
		s.Set(0, "x")
		if s.Len() != 0 {
			t.Fatalf("id 0 must not be stored")
		}
		s.Remove(5) // no-op
	})
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (s *recordingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	first := &recordingSystem{name: "first", log: &order}
	second := &recordingSystem{name: "second", log: &order}

	sched := NewScheduler(first)
	sched.Add(second)
	sched.Add(nil) // ignored

	if got := len(sched.Systems()); got != 2 {
		t.Fatalf("expected 2 systems, got %d", got)
	}

	sched.Update(NewWorld())
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected system order: %v", order)
	}
}

func TestEntityValid(t *testing.T) {
	if (Entity{}).Valid() {
		t.Fatalf("zero entity must be invalid")
	}

	w := NewWorld()
	e := w.CreateEntity()
	if !e.Valid() {
		t.Fatalf("created entity must be valid")
	}
	if w.IsAlive(Entity{}) {
		t.Fatalf("invalid handle must not be alive")
	}
}

func TestEventQueueDrain(t *testing.T) {
	q := &EventQueue{}
	q.Push(Event{Type: "a"})
	q.Push(Event{Type: "b"})

	events := q.Drain()
	if len(events) != 2 || events[0].Type != "a" || events[1].Type != "b" {
		t.Fatalf("unexpected drained events: %v", events)
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty after drain")
	}
	if q.Drain() != nil {
		t.Fatalf("draining an empty queue should return nil")
	}
}
