package component

import "math/rand"

const (
	// BaseBleedRate is the blood drained per bleed tick per unit intensity.
	BaseBleedRate = 250.0
	// PassOutAmount is the blood floor below which a bleeding creature is
	// killed outright on the next tick.
	PassOutAmount = 500.0
)

// WoundIntensity derives the bleed scale from an ammo bleed threshold.
// Higher thresholds bleed harder. The result is not clamped, so thresholds
// above 0.5 produce intensities above 1.
func WoundIntensity(bleedThreshold float64) float64 {
	return bleedThreshold * 2
}

// Bleed is the active bleed state for one creature. Intensity is fixed at
// wound creation and reused on every tick.
type Bleed struct {
	Intensity float64
	Ticks     int
}

// WoundResolver applies hit damage to a creature and decides whether the
// wound starts bleeding. One resolver serves the whole world; the per-bleed
// state lives in Bleed components.
type WoundResolver struct {
	Zones   ZoneConfig
	Ammo    AmmoConfig
	Emitter *CombatEventEmitter

	// Rand draws uniform values in [0,1). Override for deterministic rolls.
	Rand func() float64
}

// NewWoundResolver creates a resolver with the default random source.
func NewWoundResolver(zones ZoneConfig, ammo AmmoConfig) *WoundResolver {
	return &WoundResolver{
		Zones: zones,
		Ammo:  ammo,
		Rand:  rand.Float64,
	}
}

// InflictWoundDamage applies a hit report to the creature's vitals.
// Instant-kill ammo zeroes global health before anything else. An empty zone
// name means the hit did not land on a tracked zone and applies nothing.
func (r *WoundResolver) InflictWoundDamage(v VitalsComponent, res DamageReport, targetID int, zone, ammo string) {
	if r == nil || v == nil {
		return
	}

	if r.Ammo != nil && r.Ammo.InstantKill(ammo) {
		v.SetHealth(GlobalZone, "", 0)
	}

	if zone == "" {
		return
	}

	var healthDamage, bloodDamage float64
	if res != nil {
		healthDamage = res.GetDamage(zone, ResourceHealth)
		bloodDamage = res.GetDamage(zone, ResourceBlood)
	}

	v.DecreaseHealth(GlobalZone, ResourceHealth, healthDamage)
	if zone != "" {
		v.DecreaseHealth(zone, ResourceHealth, healthDamage)
	}
	if bloodDamage > 0 {
		v.DecreaseHealth(GlobalZone, ResourceBlood, bloodDamage)
	}

	if r.Emitter != nil {
		r.Emitter.Emit(CombatEvent{
			Type:     EventWoundInflicted,
			TargetID: targetID,
			Zone:     zone,
			Ammo:     ammo,
			Amount:   healthDamage,
		})
	}
}

// CreateWound applies hit damage and rolls for bleeding. It returns the new
// bleed state, or nil when the wound does not bleed. Damage is applied either
// way. Installing the bleed (and cancelling a previous one) is the caller's
// responsibility.
func (r *WoundResolver) CreateWound(v VitalsComponent, res DamageReport, targetID int, species, zone, ammo string) *Bleed {
	if r == nil {
		return nil
	}

	r.InflictWoundDamage(v, res, targetID, zone, ammo)

	if r.Zones == nil || r.Ammo == nil {
		return nil
	}

	canBleed := r.Zones.CanBleed(species, zone)
	threshold := r.Ammo.BleedThreshold(ammo)
	// a zero threshold never bleeds, even on an exact-zero draw
	if !canBleed || threshold <= 0 || r.rand01() > threshold {
		return nil
	}

	intensity := WoundIntensity(threshold)
	if r.Emitter != nil {
		r.Emitter.Emit(CombatEvent{
			Type:      EventBleedStarted,
			TargetID:  targetID,
			Zone:      zone,
			Ammo:      ammo,
			Intensity: intensity,
		})
	}
	return &Bleed{Intensity: intensity}
}

func (r *WoundResolver) rand01() float64 {
	if r == nil || r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand()
}
