package system

import (
	"github.com/milk9111/fauna/component"
	"github.com/milk9111/fauna/ecs"
)

// ShockSystem recovers shock on living creatures each tick, at the
// per-creature recovery rate set when the creature was spawned.
type ShockSystem struct{}

// NewShockSystem creates a ShockSystem.
func NewShockSystem() *ShockSystem {
	return &ShockSystem{}
}

// Update restores shock on every living creature with a shock pool.
func (s *ShockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	vitals := w.Vitals()
	for _, id := range vitals.Entities() {
		v, _ := vitals.Get(id).(*component.Vitals)
		if v == nil || !v.IsAlive() || v.ShockRecovery <= 0 {
			continue
		}
		if v.GetMax(component.GlobalZone, component.ResourceShock) <= 0 {
			continue
		}
		v.IncreaseHealth(component.GlobalZone, component.ResourceShock, v.ShockRecovery)
	}
}
