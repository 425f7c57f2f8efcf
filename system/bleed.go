package system

import (
	"github.com/milk9111/fauna/component"
	"github.com/milk9111/fauna/ecs"
)

// BleedSystem drains blood from actively bleeding creatures once per tick.
// A creature whose pre-tick blood level is already below the pass-out floor
// is killed outright on that tick. Bleeds on dead creatures stop themselves.
type BleedSystem struct {
	Emitter *component.CombatEventEmitter
}

// NewBleedSystem creates a BleedSystem.
func NewBleedSystem(emitter *component.CombatEventEmitter) *BleedSystem {
	return &BleedSystem{Emitter: emitter}
}

// Update advances every active bleed by one tick.
func (s *BleedSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	bleeds := w.Bleeds()
	vitals := w.Vitals()
	if bleeds.Len() == 0 {
		return
	}

	// snapshot: stopping a bleed reorders the dense list
	ids := append([]int(nil), bleeds.Entities()...)
	for _, id := range ids {
		bleed, _ := bleeds.Get(id).(*component.Bleed)
		if bleed == nil {
			bleeds.Remove(id)
			continue
		}
		v, _ := vitals.Get(id).(*component.Vitals)

		if v == nil || !v.IsAlive() {
			bleeds.Remove(id)
			s.emit(component.CombatEvent{
				Type:     component.EventBleedStopped,
				TargetID: id,
				Reason:   component.StopReasonDeath,
			})
			continue
		}

		drain := component.BaseBleedRate * bleed.Intensity

		// The pass-out check reads the blood level before this tick's drain.
		bloodBefore := v.GetHealth(component.GlobalZone, component.ResourceBlood)
		v.DecreaseHealth(component.GlobalZone, component.ResourceBlood, drain)
		bleed.Ticks++

		s.emit(component.CombatEvent{
			Type:      component.EventBleedTick,
			TargetID:  id,
			Amount:    drain,
			Intensity: bleed.Intensity,
			Ticks:     bleed.Ticks,
		})

		// death surfaces through the vitals OnDeath hook, like any other kill
		if bloodBefore < component.PassOutAmount {
			v.SetHealth(component.GlobalZone, "", 0)
		}
	}
}

func (s *BleedSystem) emit(evt component.CombatEvent) {
	if s == nil || s.Emitter == nil {
		return
	}
	s.Emitter.Emit(evt)
}
