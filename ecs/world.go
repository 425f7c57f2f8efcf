package ecs

// World owns creature entities, their component stores, and system order.
// All mutation happens on the world update tick; the world is not safe for
// concurrent use.
type World struct {
	entities entityStore
	sched    *Scheduler
	events   EventQueue
	ticks    int

	vitals  *SparseSet
	bleeds  *SparseSet
	species *SparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{sched: NewScheduler()}
}

// CreateEntity allocates a new creature entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return Entity{}
	}
	return w.entities.create()
}

// DestroyEntity invalidates an entity handle and drops its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	w.Vitals().Remove(e.ID)
	w.Bleeds().Remove(e.ID)
	w.SpeciesTags().Remove(e.ID)
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	if w.sched == nil {
		w.sched = NewScheduler()
	}
	w.sched.Add(s)
}

// Update runs all systems once and advances the tick counter.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.ticks++
	w.sched.Update(w)
}

// Ticks returns the number of completed updates.
func (w *World) Ticks() int {
	if w == nil {
		return 0
	}
	return w.ticks
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Vitals returns the health/blood component storage.
func (w *World) Vitals() *SparseSet {
	if w == nil {
		return nil
	}
	if w.vitals == nil {
		w.vitals = &SparseSet{}
	}
	return w.vitals
}

// Bleeds returns the active bleed storage. At most one bleed per entity is
// representable, which is how the single-bleed invariant is enforced.
func (w *World) Bleeds() *SparseSet {
	if w == nil {
		return nil
	}
	if w.bleeds == nil {
		w.bleeds = &SparseSet{}
	}
	return w.bleeds
}

// SpeciesTags returns the species name storage.
func (w *World) SpeciesTags() *SparseSet {
	if w == nil {
		return nil
	}
	if w.species == nil {
		w.species = &SparseSet{}
	}
	return w.species
}
