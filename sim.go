// Package fauna simulates wounded animals: hits on named body zones drain
// health, and wounds may start a bleed that drains blood every tick until
// the creature dies.
package fauna

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/fauna/component"
	"github.com/milk9111/fauna/defs"
	"github.com/milk9111/fauna/ecs"
	"github.com/milk9111/fauna/system"
)

// Sim owns a world of creatures and the wound resolver acting on them.
type Sim struct {
	world    *ecs.World
	registry *defs.Registry
	resolver *component.WoundResolver
	emitter  *component.CombatEventEmitter
}

// NewSim creates a simulation over the given defs.
func NewSim(registry *defs.Registry) *Sim {
	s := &Sim{
		world:    ecs.NewWorld(),
		registry: registry,
		emitter:  &component.CombatEventEmitter{},
	}
	s.resolver = component.NewWoundResolver(registry, registry)
	s.resolver.Emitter = s.emitter

	// combat events surface on the world queue for the host to drain
	s.emitter.Handlers = append(s.emitter.Handlers, func(evt component.CombatEvent) {
		s.world.Events().Push(ecs.Event{Type: string(evt.Type), Data: evt})
	})

	s.world.AddSystem(system.NewBleedSystem(s.emitter))
	s.world.AddSystem(system.NewShockSystem())
	return s
}

// Seed makes wound rolls deterministic.
func (s *Sim) Seed(seed int64) {
	if s == nil || s.resolver == nil {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	s.resolver.Rand = rng.Float64
}

// Resolver returns the wound resolver, e.g. to override its random source.
func (s *Sim) Resolver() *component.WoundResolver {
	if s == nil {
		return nil
	}
	return s.resolver
}

// World returns the underlying ECS world.
func (s *Sim) World() *ecs.World {
	if s == nil {
		return nil
	}
	return s.world
}

// Registry returns the loaded defs.
func (s *Sim) Registry() *defs.Registry {
	if s == nil {
		return nil
	}
	return s.registry
}

// SetRegistry swaps the defs, e.g. after a hot reload.
func (s *Sim) SetRegistry(registry *defs.Registry) {
	if s == nil || registry == nil {
		return
	}
	s.registry = registry
	s.resolver.Zones = registry
	s.resolver.Ammo = registry
}

// Spawn creates a creature of the given species with full pools.
func (s *Sim) Spawn(species string) (ecs.Entity, error) {
	if s == nil {
		return ecs.Entity{}, fmt.Errorf("fauna: nil sim")
	}
	def, ok := s.registry.SpeciesByName(species)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("fauna: unknown species %q", species)
	}

	e := s.world.CreateEntity()
	v := component.NewVitals(def.Health, def.Blood, def.Shock)
	v.ShockRecovery = def.ShockRecovery
	v.OnDeath = func() {
		s.emitter.Emit(component.CombatEvent{
			Type:     component.EventDeath,
			TargetID: e.ID,
		})
	}
	for zone, zoneDef := range def.DamageZones {
		v.AddZone(zone, zoneDef.Health)
	}
	s.world.Vitals().Set(e.ID, v)
	s.world.SpeciesTags().Set(e.ID, species)
	return e, nil
}

// Hit resolves a shot of the given ammo against a body zone of a creature.
// The damage report is built from the ammo def, damage is applied, and a
// bleed may start. A new bleed replaces any active one, which is cancelled
// explicitly first.
func (s *Sim) Hit(e ecs.Entity, zone, ammo string) error {
	if s == nil || !s.world.IsAlive(e) {
		return fmt.Errorf("fauna: hit on invalid entity %v", e)
	}
	v, _ := s.world.Vitals().Get(e.ID).(*component.Vitals)
	if v == nil {
		return fmt.Errorf("fauna: entity %v has no vitals", e)
	}
	species, _ := s.world.SpeciesTags().Get(e.ID).(string)

	res := component.NewDamageResult()
	if def, ok := s.registry.AmmoByName(ammo); ok && zone != "" {
		res.Add(zone, component.ResourceHealth, def.DamageApplied.Health)
		res.Add(zone, component.ResourceBlood, def.DamageApplied.Blood)
	}

	bleed := s.resolver.CreateWound(v, res, e.ID, species, zone, ammo)
	if bleed == nil {
		return nil
	}

	bleeds := s.world.Bleeds()
	if bleeds.Has(e.ID) {
		bleeds.Remove(e.ID)
		s.emitter.Emit(component.CombatEvent{
			Type:     component.EventBleedStopped,
			TargetID: e.ID,
			Reason:   component.StopReasonReplaced,
		})
	}
	bleeds.Set(e.ID, bleed)
	return nil
}

// Advance runs n world ticks.
func (s *Sim) Advance(n int) {
	if s == nil {
		return
	}
	for i := 0; i < n; i++ {
		s.world.Update()
	}
}

// Vitals returns a creature's vitals, or nil.
func (s *Sim) Vitals(e ecs.Entity) *component.Vitals {
	if s == nil || !s.world.IsAlive(e) {
		return nil
	}
	v, _ := s.world.Vitals().Get(e.ID).(*component.Vitals)
	return v
}

// IsBleeding reports whether a creature has an active bleed.
func (s *Sim) IsBleeding(e ecs.Entity) bool {
	if s == nil || !s.world.IsAlive(e) {
		return false
	}
	return s.world.Bleeds().Has(e.ID)
}

// DrainEvents returns and clears the queued world events.
func (s *Sim) DrainEvents() []ecs.Event {
	if s == nil {
		return nil
	}
	return s.world.Events().Drain()
}
